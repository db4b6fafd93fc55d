package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "bookkeeper/internal/errors"
	"bookkeeper/internal/metrics"
	"bookkeeper/internal/middleware"
	"bookkeeper/internal/pagination"
	"bookkeeper/internal/services"
	"bookkeeper/internal/uuid"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error   string `json:"error" example:"INVALID_INPUT"`
	Message string `json:"message,omitempty" example:"Invalid input"`
	Details string `json:"details,omitempty"`
}

// OKResponse acknowledges a delete.
type OKResponse struct {
	OK bool `json:"ok" example:"true"`
}

// getUserID extracts the authenticated user ID from the Gin context.
// Returns ErrUnauthorized if not present.
func getUserID(c *gin.Context) (string, error) {
	userID := c.GetString(middleware.UserIDKey)
	if userID == "" {
		return "", apperrors.ErrUnauthorized
	}
	return userID, nil
}

// parsePathID reads the :id path parameter and rejects anything that is not
// a UUID.
func parsePathID(c *gin.Context) (string, error) {
	id := c.Param("id")
	if !uuid.IsValid(id) {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid id")
	}
	return id, nil
}

// deletePathID reads :id for a delete. A non-UUID id names no stored row,
// so ok is false and the caller reports the delete as already done.
func deletePathID(c *gin.Context) (id string, ok bool) {
	id = c.Param("id")
	return id, uuid.IsValid(id)
}

// bindPage parses optional page and page_size query parameters.
func bindPage(c *gin.Context) (pagination.PageRequest, error) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		return page, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}
	return page, nil
}

// setTotalCount exposes the unpaginated row count when the caller asked for
// a page.
func setTotalCount(c *gin.Context, page pagination.PageRequest, total int64) {
	if page.IsSet() {
		c.Header("X-Total-Count", strconv.FormatInt(total, 10))
	}
}

// recordWrite audits a committed write and counts it. recorder may be nil.
func recordWrite(c *gin.Context, audit services.AuditServicer, recorder *metrics.Recorder, entry services.AuditEntry) {
	entry.IPAddress = c.ClientIP()
	audit.Record(entry)
	recorder.LedgerWrite(string(entry.Resource), string(entry.Verb))
}

// respondWithError hands err to middleware.ErrorHandler and stops the chain.
func respondWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "bookkeeper/internal/errors"
	"bookkeeper/internal/services"
)

// SummaryHandler serves monthly reports.
type SummaryHandler struct {
	summaryService services.SummaryServicer
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(summaryService services.SummaryServicer) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// SummaryQuery holds the optional month filter.
type SummaryQuery struct {
	Month string `form:"month" binding:"omitempty,year_month"`
}

// GetSummary totals one month of the caller's transactions
// @Summary     Monthly summary
// @Description Income and expense totals for a month, compared against the monthly expense cap.
// @Tags        summary
// @Produce     json
// @Security    BearerAuth
// @Param       month query string false "Month as YYYY-MM (default: current month)"
// @Success     200 {object} ledger.MonthlySummary
// @Failure     400 {object} ErrorResponse "Invalid month"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /summary [get]
func (h *SummaryHandler) GetSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var q SummaryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.ErrInvalidMonth)
		return
	}

	summary, err := h.summaryService.MonthlySummary(userID, q.Month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

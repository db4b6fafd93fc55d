package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "bookkeeper/internal/errors"
	"bookkeeper/internal/metrics"
	"bookkeeper/internal/models"
	"bookkeeper/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
	auditService       services.AuditServicer
	metrics            *metrics.Recorder
}

// NewTransactionHandler creates a new TransactionHandler. recorder may be nil.
func NewTransactionHandler(transactionService services.TransactionServicer, auditService services.AuditServicer, recorder *metrics.Recorder) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService, auditService: auditService, metrics: recorder}
}

// CreateTransactionRequest represents the request payload for creating a
// transaction. Tax and total are always derived server-side.
type CreateTransactionRequest struct {
	Date     string   `json:"date" binding:"required,datetime=2006-01-02"`
	Type     string   `json:"type" binding:"required,transaction_type"`
	Category string   `json:"category" binding:"required,max=100"`
	Base     *float64 `json:"base" binding:"required,gte=0,lte=1000000000000" minimum:"0" maximum:"1000000000000"`
	Employee *string  `json:"employee" binding:"omitempty,max=100"`
	Notes    *string  `json:"notes" binding:"omitempty,max=500"`
}

// UpdateTransactionRequest is a partial update; omitted fields keep their
// value and an empty employee or notes clears it.
type UpdateTransactionRequest struct {
	Date     *string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Type     *string  `json:"type" binding:"omitempty,transaction_type"`
	Category *string  `json:"category" binding:"omitempty,max=100"`
	Base     *float64 `json:"base" binding:"omitempty,gte=0,lte=1000000000000" minimum:"0" maximum:"1000000000000"`
	Employee *string  `json:"employee" binding:"omitempty,max=100"`
	Notes    *string  `json:"notes" binding:"omitempty,max=500"`
}

// ListTransactions returns the caller's transactions, newest first
// @Summary     List transactions
// @Description Newest first. With page or page_size set, only that page is returned and X-Total-Count carries the full count.
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (1-based)"
// @Param       page_size query int false "Page size (max 500)"
// @Success     200 {array}  models.Transaction
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	page, err := bindPage(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactions, total, err := h.transactionService.ListTransactions(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	setTotalCount(c, page, total)
	c.JSON(http.StatusOK, transactions)
}

// CreateTransaction handles the creation of a new transaction
// @Summary     Create a transaction
// @Description Create an income or expense entry. Tax and total are computed from the caller's settings.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	transaction, err := h.transactionService.CreateTransaction(userID, services.TransactionInput{
		Date:       req.Date,
		Type:       models.TransactionType(req.Type),
		Category:   req.Category,
		BaseAmount: *req.Base,
		Employee:   req.Employee,
		Notes:      req.Notes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	recordWrite(c, h.auditService, h.metrics, services.AuditEntry{
		UserID: userID, Verb: models.AuditCreate, Resource: models.AuditResourceTransaction, ResourceID: transaction.ID,
		Changes: map[string]any{"type": transaction.Type, "base": transaction.BaseAmount, "total": transaction.Total},
	})

	c.JSON(http.StatusCreated, transaction)
}

// GetTransaction returns one of the caller's transactions
// @Summary     Get a transaction
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} models.Transaction
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parsePathID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.GetTransaction(userID, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, transaction)
}

// UpdateTransaction merges fields into one of the caller's transactions
// @Summary     Update a transaction
// @Description Partial update. Tax and total are recomputed against the current settings on every update.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                   true "Transaction ID"
// @Param       request body UpdateTransactionRequest true "Fields to change"
// @Success     200 {object} models.Transaction
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parsePathID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	patch := services.TransactionPatch{
		Date:       req.Date,
		Category:   req.Category,
		BaseAmount: req.Base,
		Employee:   req.Employee,
		Notes:      req.Notes,
	}
	if req.Type != nil {
		t := models.TransactionType(*req.Type)
		patch.Type = &t
	}

	transaction, err := h.transactionService.UpdateTransaction(userID, id, patch)
	if err != nil {
		respondWithError(c, err)
		return
	}

	recordWrite(c, h.auditService, h.metrics, services.AuditEntry{
		UserID: userID, Verb: models.AuditUpdate, Resource: models.AuditResourceTransaction, ResourceID: transaction.ID,
		Changes: map[string]any{"base": transaction.BaseAmount, "tax": transaction.Tax, "total": transaction.Total},
	})

	c.JSON(http.StatusOK, transaction)
}

// DeleteTransaction removes one of the caller's transactions
// @Summary     Delete a transaction
// @Description Idempotent: deleting an absent or foreign id still returns ok.
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} OKResponse
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, ok := deletePathID(c)
	if !ok {
		c.JSON(http.StatusOK, OKResponse{OK: true})
		return
	}

	err = h.transactionService.DeleteTransaction(userID, id)
	switch {
	case err == nil:
		recordWrite(c, h.auditService, h.metrics, services.AuditEntry{
			UserID: userID, Verb: models.AuditDelete, Resource: models.AuditResourceTransaction, ResourceID: id,
		})
	case errors.Is(err, apperrors.ErrTransactionNotFound):
	default:
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, OKResponse{OK: true})
}

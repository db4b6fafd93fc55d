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

// DebtHandler handles employee advance and repay entries.
type DebtHandler struct {
	debtService  services.DebtServicer
	auditService services.AuditServicer
	metrics      *metrics.Recorder
}

// NewDebtHandler creates a new DebtHandler. recorder may be nil.
func NewDebtHandler(debtService services.DebtServicer, auditService services.AuditServicer, recorder *metrics.Recorder) *DebtHandler {
	return &DebtHandler{debtService: debtService, auditService: auditService, metrics: recorder}
}

// CreateDebtRequest represents the request payload for a debt entry. The
// signed delta is derived from kind.
type CreateDebtRequest struct {
	Date     string  `json:"date" binding:"required,datetime=2006-01-02"`
	Employee string  `json:"employee" binding:"required,max=100"`
	Kind     string  `json:"kind" binding:"required,debt_kind"`
	Amount   float64 `json:"amount" binding:"required,gt=0,lte=1000000000000" maximum:"1000000000000"`
	Notes    *string `json:"notes" binding:"omitempty,max=500"`
}

// UpdateDebtRequest is a partial debt update.
type UpdateDebtRequest struct {
	Date     *string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Employee *string  `json:"employee" binding:"omitempty,max=100"`
	Kind     *string  `json:"kind" binding:"omitempty,debt_kind"`
	Amount   *float64 `json:"amount" binding:"omitempty,gt=0,lte=1000000000000" maximum:"1000000000000"`
	Notes    *string  `json:"notes" binding:"omitempty,max=500"`
}

// ListDebts returns the caller's debt entries, oldest first, each with the
// employee's running balance
// @Summary     List debts
// @Tags        debts
// @Produce     json
// @Security    BearerAuth
// @Param       employee  query string false "Only this employee"
// @Param       page      query int    false "Page number (1-based)"
// @Param       page_size query int    false "Page size (max 500)"
// @Success     200 {array}  ledger.DebtLine
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /debts [get]
func (h *DebtHandler) ListDebts(c *gin.Context) {
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

	var filter services.DebtFilter
	if employee := c.Query("employee"); employee != "" {
		filter.Employee = &employee
	}

	lines, total, err := h.debtService.ListDebtLines(userID, filter, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	setTotalCount(c, page, total)
	c.JSON(http.StatusOK, lines)
}

// GetBalances returns the outstanding balance of every employee
// @Summary     Employee balances
// @Tags        debts
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array}  ledger.EmployeeBalance
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /debts/balances [get]
func (h *DebtHandler) GetBalances(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	balances, err := h.debtService.GetBalances(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, balances)
}

// CreateDebt records an advance or repayment
// @Summary     Create a debt entry
// @Tags        debts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateDebtRequest true "Debt details"
// @Success     201 {object} models.Debt
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /debts [post]
func (h *DebtHandler) CreateDebt(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	debt, err := h.debtService.CreateDebt(userID, services.DebtInput{
		Date:     req.Date,
		Employee: req.Employee,
		Kind:     models.DebtKind(req.Kind),
		Amount:   req.Amount,
		Notes:    req.Notes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	recordWrite(c, h.auditService, h.metrics, services.AuditEntry{
		UserID: userID, Verb: models.AuditCreate, Resource: models.AuditResourceDebt, ResourceID: debt.ID,
		Changes: map[string]any{"employee": debt.Employee, "kind": debt.Kind, "amount": debt.Amount},
	})

	c.JSON(http.StatusCreated, debt)
}

// GetDebt returns one of the caller's debt entries
// @Summary     Get a debt entry
// @Tags        debts
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Debt ID"
// @Success     200 {object} models.Debt
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Debt not found"
// @Router      /debts/{id} [get]
func (h *DebtHandler) GetDebt(c *gin.Context) {
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

	debt, err := h.debtService.GetDebt(userID, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, debt)
}

// UpdateDebt merges fields into one of the caller's debt entries
// @Summary     Update a debt entry
// @Tags        debts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string            true "Debt ID"
// @Param       request body UpdateDebtRequest true "Fields to change"
// @Success     200 {object} models.Debt
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Debt not found"
// @Router      /debts/{id} [put]
func (h *DebtHandler) UpdateDebt(c *gin.Context) {
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

	var req UpdateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	patch := services.DebtPatch{
		Date:     req.Date,
		Employee: req.Employee,
		Amount:   req.Amount,
		Notes:    req.Notes,
	}
	if req.Kind != nil {
		k := models.DebtKind(*req.Kind)
		patch.Kind = &k
	}

	debt, err := h.debtService.UpdateDebt(userID, id, patch)
	if err != nil {
		respondWithError(c, err)
		return
	}

	recordWrite(c, h.auditService, h.metrics, services.AuditEntry{
		UserID: userID, Verb: models.AuditUpdate, Resource: models.AuditResourceDebt, ResourceID: debt.ID,
		Changes: map[string]any{"kind": debt.Kind, "amount": debt.Amount, "delta": debt.Delta},
	})

	c.JSON(http.StatusOK, debt)
}

// DeleteDebt removes one of the caller's debt entries
// @Summary     Delete a debt entry
// @Description Idempotent: deleting an absent or foreign id still returns ok.
// @Tags        debts
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Debt ID"
// @Success     200 {object} OKResponse
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /debts/{id} [delete]
func (h *DebtHandler) DeleteDebt(c *gin.Context) {
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

	err = h.debtService.DeleteDebt(userID, id)
	switch {
	case err == nil:
		recordWrite(c, h.auditService, h.metrics, services.AuditEntry{
			UserID: userID, Verb: models.AuditDelete, Resource: models.AuditResourceDebt, ResourceID: id,
		})
	case errors.Is(err, apperrors.ErrDebtNotFound):
	default:
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, OKResponse{OK: true})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "bookkeeper/internal/errors"
	"bookkeeper/internal/models"
	"bookkeeper/internal/services"
)

// SettingsHandler serves the caller's tax and currency settings.
type SettingsHandler struct {
	settingsService services.SettingsServicer
	auditService    services.AuditServicer
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settingsService services.SettingsServicer, auditService services.AuditServicer) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService, auditService: auditService}
}

// UpdateSettingsRequest is a partial settings update; omitted fields keep
// their value.
type UpdateSettingsRequest struct {
	Currency          *string  `json:"currency" binding:"omitempty,max=16"`
	TaxIncome         *float64 `json:"tax_income" binding:"omitempty,gte=0,lte=100"`
	TaxExpense        *float64 `json:"tax_expense" binding:"omitempty,gte=0,lte=100"`
	MonthlyExpenseCap *float64 `json:"monthly_expense_cap" binding:"omitempty,gte=0"`
}

// GetSettings returns the caller's settings
// @Summary     Get settings
// @Tags        settings
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.Settings
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Settings not found"
// @Router      /settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	settings, err := h.settingsService.GetSettings(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

// UpdateSettings merges the given fields into the caller's settings
// @Summary     Update settings
// @Description Partially update settings. Existing transactions keep their stored tax until they are next written.
// @Tags        settings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpdateSettingsRequest true "Fields to change"
// @Success     200 {object} models.Settings
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	settings, err := h.settingsService.UpdateSettings(userID, services.SettingsPatch{
		Currency:          req.Currency,
		TaxIncome:         req.TaxIncome,
		TaxExpense:        req.TaxExpense,
		MonthlyExpenseCap: req.MonthlyExpenseCap,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	recordWrite(c, h.auditService, nil, services.AuditEntry{
		UserID: userID, Verb: models.AuditUpdate, Resource: models.AuditResourceSettings, ResourceID: userID,
		Changes: settingsChanges(req),
	})

	c.JSON(http.StatusOK, settings)
}

func settingsChanges(req UpdateSettingsRequest) map[string]any {
	changes := map[string]any{}
	if req.Currency != nil {
		changes["currency"] = *req.Currency
	}
	if req.TaxIncome != nil {
		changes["tax_income"] = *req.TaxIncome
	}
	if req.TaxExpense != nil {
		changes["tax_expense"] = *req.TaxExpense
	}
	if req.MonthlyExpenseCap != nil {
		changes["monthly_expense_cap"] = *req.MonthlyExpenseCap
	}
	return changes
}

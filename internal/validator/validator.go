// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"bookkeeper/internal/models"
)

// MonthLayout is the layout accepted by the year_month tag.
const MonthLayout = "2006-01"

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("transaction_type", validateTransactionType)
		_ = v.RegisterValidation("debt_kind", validateDebtKind)
		_ = v.RegisterValidation("year_month", validateYearMonth)
	}
}

func validateTransactionType(fl validator.FieldLevel) bool {
	return models.TransactionType(fl.Field().String()).Valid()
}

func validateDebtKind(fl validator.FieldLevel) bool {
	return models.DebtKind(fl.Field().String()).Valid()
}

func validateYearMonth(fl validator.FieldLevel) bool {
	_, err := time.Parse(MonthLayout, fl.Field().String())
	return err == nil
}

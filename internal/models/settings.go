package models

import "time"

// Defaults applied to a user's settings at registration.
const (
	DefaultCurrency          = "ر.س"
	DefaultTaxIncome         = 15.0
	DefaultTaxExpense        = 15.0
	DefaultMonthlyExpenseCap = 50000.0
)

// Settings is the per-user tax and currency configuration. It is created
// together with its user and removed with it.
type Settings struct {
	UserID            string    `gorm:"type:uuid;primaryKey" json:"user_id"`
	Currency          string    `gorm:"not null" json:"currency"`
	TaxIncome         float64   `gorm:"not null" json:"tax_income"`
	TaxExpense        float64   `gorm:"not null" json:"tax_expense"`
	MonthlyExpenseCap float64   `gorm:"not null" json:"monthly_expense_cap"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// DefaultSettings returns the settings a newly registered user starts with.
func DefaultSettings(userID string) *Settings {
	return &Settings{
		UserID:            userID,
		Currency:          DefaultCurrency,
		TaxIncome:         DefaultTaxIncome,
		TaxExpense:        DefaultTaxExpense,
		MonthlyExpenseCap: DefaultMonthlyExpenseCap,
	}
}

// RateFor returns the tax rate (percent) that applies to the given
// transaction type. Unknown types have no rate.
func (s *Settings) RateFor(t TransactionType) float64 {
	if s == nil {
		return 0
	}
	switch t {
	case TransactionTypeIncome:
		return s.TaxIncome
	case TransactionTypeExpense:
		return s.TaxExpense
	}
	return 0
}

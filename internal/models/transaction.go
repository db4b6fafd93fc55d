package models

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether t is one of the supported transaction types.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction is an income or expense entry. Tax and Total are derived from
// BaseAmount and the owner's settings at write time.
type Transaction struct {
	Base
	UserID     string          `gorm:"type:uuid;not null;index:idx_tx_user_date,priority:1" json:"user_id"`
	Date       string          `gorm:"not null;index:idx_tx_user_date,priority:2" json:"date"`
	Type       TransactionType `gorm:"not null" json:"type"`
	Category   string          `gorm:"not null" json:"category"`
	BaseAmount float64         `gorm:"column:base;not null" json:"base"`
	Tax        float64         `gorm:"not null" json:"tax"`
	Total      float64         `gorm:"not null" json:"total"`
	Employee   *string         `json:"employee"`
	Notes      *string         `json:"notes"`
}

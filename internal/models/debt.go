package models

// DebtKind distinguishes money handed to an employee from money paid back.
type DebtKind string

const (
	DebtKindAdvance DebtKind = "advance"
	DebtKindRepay   DebtKind = "repay"
)

// Valid reports whether k is one of the supported debt kinds.
func (k DebtKind) Valid() bool {
	return k == DebtKindAdvance || k == DebtKindRepay
}

// Debt is one entry of an employee's advance/repay ledger. Amount is always
// positive; Delta carries the sign derived from Kind.
type Debt struct {
	Base
	UserID   string   `gorm:"type:uuid;not null;index:idx_debt_user_date,priority:1" json:"user_id"`
	Date     string   `gorm:"not null;index:idx_debt_user_date,priority:2" json:"date"`
	Employee string   `gorm:"not null" json:"employee"`
	Kind     DebtKind `gorm:"not null" json:"kind"`
	Amount   float64  `gorm:"not null" json:"amount"`
	Delta    float64  `gorm:"not null" json:"delta"`
	Notes    *string  `json:"notes"`
}

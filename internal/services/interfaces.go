package services

import (
	"time"

	"bookkeeper/internal/ledger"
	"bookkeeper/internal/models"
	"bookkeeper/internal/pagination"
)

// UserServicer defines the contract for user persistence.
type UserServicer interface {
	CreateUser(email, passwordHash string, companyName *string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
}

// AuthResult is returned by a successful registration or login.
type AuthResult struct {
	Token string
	User  *models.User
}

// AuthServicer defines the contract for registration and login.
type AuthServicer interface {
	Register(email, password string, companyName *string) (*AuthResult, error)
	Login(email, password string) (*AuthResult, error)
}

// SettingsPatch is a partial settings update. Nil fields keep their
// current value.
type SettingsPatch struct {
	Currency          *string
	TaxIncome         *float64
	TaxExpense        *float64
	MonthlyExpenseCap *float64
}

// SettingsServicer defines the contract for per-user settings.
type SettingsServicer interface {
	GetSettings(userID string) (*models.Settings, error)
	UpdateSettings(userID string, patch SettingsPatch) (*models.Settings, error)
}

// TransactionInput holds the caller-supplied fields of a new transaction.
// Tax and total are never accepted from callers.
type TransactionInput struct {
	Date       string
	Type       models.TransactionType
	Category   string
	BaseAmount float64
	Employee   *string
	Notes      *string
}

// TransactionPatch is a partial transaction update. Nil fields keep their
// current value; an empty Employee or Notes clears the field.
type TransactionPatch struct {
	Date       *string
	Type       *models.TransactionType
	Category   *string
	BaseAmount *float64
	Employee   *string
	Notes      *string
}

// TransactionServicer defines the contract for owner-scoped transactions.
type TransactionServicer interface {
	ListTransactions(userID string, page pagination.PageRequest) ([]models.Transaction, int64, error)
	CreateTransaction(userID string, input TransactionInput) (*models.Transaction, error)
	GetTransaction(userID, transactionID string) (*models.Transaction, error)
	UpdateTransaction(userID, transactionID string, patch TransactionPatch) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID string) error
}

// DebtInput holds the caller-supplied fields of a new debt entry. Delta is
// never accepted from callers.
type DebtInput struct {
	Date     string
	Employee string
	Kind     models.DebtKind
	Amount   float64
	Notes    *string
}

// DebtPatch is a partial debt update. Nil fields keep their current value;
// an empty Notes clears the field.
type DebtPatch struct {
	Date     *string
	Employee *string
	Kind     *models.DebtKind
	Amount   *float64
	Notes    *string
}

// DebtFilter holds optional filters for listing debts.
type DebtFilter struct {
	Employee *string
}

// DebtServicer defines the contract for owner-scoped employee debts.
type DebtServicer interface {
	ListDebts(userID string, filter DebtFilter, page pagination.PageRequest) ([]models.Debt, int64, error)
	ListDebtLines(userID string, filter DebtFilter, page pagination.PageRequest) ([]ledger.DebtLine, int64, error)
	CreateDebt(userID string, input DebtInput) (*models.Debt, error)
	GetDebt(userID, debtID string) (*models.Debt, error)
	UpdateDebt(userID, debtID string, patch DebtPatch) (*models.Debt, error)
	DeleteDebt(userID, debtID string) error
	GetBalances(userID string) ([]ledger.EmployeeBalance, error)
}

// SummaryServicer defines the contract for monthly reports.
type SummaryServicer interface {
	MonthlySummary(userID, month string) (*ledger.MonthlySummary, error)
}

// Backup is the full JSON export of every table.
type Backup struct {
	Users        []models.User        `json:"users"`
	Settings     []models.Settings    `json:"settings"`
	Transactions []models.Transaction `json:"transactions"`
	Debts        []models.Debt        `json:"debts"`
	AuditLogs    []models.AuditLog    `json:"audit_logs"`
	ExportedAt   time.Time            `json:"exported_at"`
}

// BackupServicer defines the contract for admin exports.
type BackupServicer interface {
	ExportJSON() (*Backup, error)
	Snapshot(dst string) error
}

// AuditServicer defines the contract for the audit trail.
type AuditServicer interface {
	Record(entry AuditEntry)
}

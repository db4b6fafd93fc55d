package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "bookkeeper/internal/errors"
	"bookkeeper/internal/ledger"
	"bookkeeper/internal/models"
	"bookkeeper/internal/pagination"
)

// DateLayout is the calendar date format stored on transactions and debts.
const DateLayout = "2006-01-02"

// transactionService handles owner-scoped income and expense entries.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

func validateDate(date string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "date must be formatted as YYYY-MM-DD")
	}
	return nil
}

// optionalText turns an empty or blank string into nil.
func optionalText(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func validateTransaction(t *models.Transaction) error {
	if err := validateDate(t.Date); err != nil {
		return err
	}
	if !t.Type.Valid() {
		return apperrors.ErrInvalidTransactionType
	}
	if strings.TrimSpace(t.Category) == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}
	return ledger.ValidateAmount("base", t.BaseAmount)
}

// ownedBy scopes a query to rows belonging to userID.
func ownedBy(userID string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}

// applyTotals derives tax and total from the base amount and the owner's
// current settings.
func applyTotals(tx *gorm.DB, t *models.Transaction) error {
	settings, err := settingsOrNil(tx, t.UserID)
	if err != nil {
		return err
	}
	t.Tax, t.Total, err = ledger.ComputeTransactionTotals(t.BaseAmount, t.Type, settings)
	return err
}

// ListTransactions returns the caller's transactions, newest first.
func (s *transactionService) ListTransactions(userID string, page pagination.PageRequest) ([]models.Transaction, int64, error) {
	owned := ownedBy(userID)

	var totalItems int64
	if err := s.db.Model(&models.Transaction{}).Scopes(owned).Count(&totalItems).Error; err != nil {
		return nil, 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	transactions := []models.Transaction{}
	if err := s.db.Scopes(owned, pagination.Paginate(page)).
		Order("date DESC, created_at DESC, id DESC").
		Find(&transactions).Error; err != nil {
		return nil, 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, totalItems, nil
}

// CreateTransaction stores a new transaction with derived tax and total.
func (s *transactionService) CreateTransaction(userID string, input TransactionInput) (*models.Transaction, error) {
	transaction := &models.Transaction{
		UserID:     userID,
		Date:       input.Date,
		Type:       input.Type,
		Category:   strings.TrimSpace(input.Category),
		BaseAmount: input.BaseAmount,
		Employee:   optionalText(input.Employee),
		Notes:      optionalText(input.Notes),
	}
	if err := validateTransaction(transaction); err != nil {
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := applyTotals(tx, transaction); err != nil {
			return err
		}
		if err := tx.Create(transaction).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return transaction, nil
}

// GetTransaction retrieves a transaction owned by the caller.
func (s *transactionService) GetTransaction(userID, transactionID string) (*models.Transaction, error) {
	return findTransaction(s.db, userID, transactionID)
}

func findTransaction(db *gorm.DB, userID, transactionID string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := db.Where("id = ? AND user_id = ?", transactionID, userID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// UpdateTransaction merges patch into a transaction owned by the caller.
// Tax and total are always recomputed against the current settings, even
// when neither the base nor the type changed.
func (s *transactionService) UpdateTransaction(userID, transactionID string, patch TransactionPatch) (*models.Transaction, error) {
	var transaction *models.Transaction
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		transaction, err = findTransaction(tx, userID, transactionID)
		if err != nil {
			return err
		}

		if patch.Date != nil {
			transaction.Date = *patch.Date
		}
		if patch.Type != nil {
			transaction.Type = *patch.Type
		}
		if patch.Category != nil {
			transaction.Category = strings.TrimSpace(*patch.Category)
		}
		if patch.BaseAmount != nil {
			transaction.BaseAmount = *patch.BaseAmount
		}
		if patch.Employee != nil {
			transaction.Employee = optionalText(patch.Employee)
		}
		if patch.Notes != nil {
			transaction.Notes = optionalText(patch.Notes)
		}
		if err := validateTransaction(transaction); err != nil {
			return err
		}

		if err := applyTotals(tx, transaction); err != nil {
			return err
		}
		if err := tx.Save(transaction).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return transaction, nil
}

// DeleteTransaction removes a transaction owned by the caller. It reports
// ErrTransactionNotFound when nothing matched.
func (s *transactionService) DeleteTransaction(userID, transactionID string) error {
	result := s.db.Where("id = ? AND user_id = ?", transactionID, userID).Delete(&models.Transaction{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}

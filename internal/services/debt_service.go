package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "bookkeeper/internal/errors"
	"bookkeeper/internal/ledger"
	"bookkeeper/internal/models"
	"bookkeeper/internal/pagination"
)

// debtService handles owner-scoped employee advance/repay ledgers.
type debtService struct {
	db *gorm.DB
}

// NewDebtService creates a new DebtServicer.
func NewDebtService(db *gorm.DB) DebtServicer {
	return &debtService{db: db}
}

// chronological orders debts the way running balances are read.
const chronological = "date ASC, created_at ASC, id ASC"

func validateDebt(d *models.Debt) error {
	if err := validateDate(d.Date); err != nil {
		return err
	}
	if strings.TrimSpace(d.Employee) == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "employee is required")
	}
	if !d.Kind.Valid() {
		return apperrors.ErrInvalidDebtKind
	}
	if d.Amount == 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	return ledger.ValidateAmount("amount", d.Amount)
}

// applyDelta derives the signed delta from kind and amount.
func applyDelta(d *models.Debt) error {
	delta, err := ledger.ComputeDebtDelta(d.Amount, d.Kind)
	if err != nil {
		return err
	}
	d.Delta = delta
	return nil
}

func applyDebtFilter(q *gorm.DB, f DebtFilter) *gorm.DB {
	if f.Employee != nil && *f.Employee != "" {
		q = q.Where("employee = ?", *f.Employee)
	}
	return q
}

// ListDebts returns the caller's debts, oldest first.
func (s *debtService) ListDebts(userID string, filter DebtFilter, page pagination.PageRequest) ([]models.Debt, int64, error) {
	owned := ownedBy(userID)

	var totalItems int64
	if err := applyDebtFilter(s.db.Model(&models.Debt{}).Scopes(owned), filter).Count(&totalItems).Error; err != nil {
		return nil, 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	debts := []models.Debt{}
	if err := applyDebtFilter(s.db.Scopes(owned, pagination.Paginate(page)), filter).
		Order(chronological).
		Find(&debts).Error; err != nil {
		return nil, 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return debts, totalItems, nil
}

// ListDebtLines returns the caller's debts, oldest first, each annotated
// with the employee's running balance. Balances are computed over the full
// history, so a page shows the same balances it would in an unpaginated
// listing.
func (s *debtService) ListDebtLines(userID string, filter DebtFilter, page pagination.PageRequest) ([]ledger.DebtLine, int64, error) {
	debts, totalItems, err := s.ListDebts(userID, filter, pagination.PageRequest{})
	if err != nil {
		return nil, 0, err
	}

	lines := ledger.RunningBalances(debts)
	if page.IsSet() {
		page.Defaults()
		start := min(page.Offset(), len(lines))
		end := min(start+page.PageSize, len(lines))
		lines = lines[start:end]
	}
	return lines, totalItems, nil
}

// CreateDebt stores a new debt entry with a derived delta.
func (s *debtService) CreateDebt(userID string, input DebtInput) (*models.Debt, error) {
	debt := &models.Debt{
		UserID:   userID,
		Date:     input.Date,
		Employee: strings.TrimSpace(input.Employee),
		Kind:     input.Kind,
		Amount:   input.Amount,
		Notes:    optionalText(input.Notes),
	}
	if err := validateDebt(debt); err != nil {
		return nil, err
	}
	if err := applyDelta(debt); err != nil {
		return nil, err
	}

	if err := s.db.Create(debt).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return debt, nil
}

// GetDebt retrieves a debt entry owned by the caller.
func (s *debtService) GetDebt(userID, debtID string) (*models.Debt, error) {
	return findDebt(s.db, userID, debtID)
}

func findDebt(db *gorm.DB, userID, debtID string) (*models.Debt, error) {
	var debt models.Debt
	if err := db.Where("id = ? AND user_id = ?", debtID, userID).First(&debt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDebtNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &debt, nil
}

// UpdateDebt merges patch into a debt owned by the caller and recomputes
// its delta.
func (s *debtService) UpdateDebt(userID, debtID string, patch DebtPatch) (*models.Debt, error) {
	var debt *models.Debt
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		debt, err = findDebt(tx, userID, debtID)
		if err != nil {
			return err
		}

		if patch.Date != nil {
			debt.Date = *patch.Date
		}
		if patch.Employee != nil {
			debt.Employee = strings.TrimSpace(*patch.Employee)
		}
		if patch.Kind != nil {
			debt.Kind = *patch.Kind
		}
		if patch.Amount != nil {
			debt.Amount = *patch.Amount
		}
		if patch.Notes != nil {
			debt.Notes = optionalText(patch.Notes)
		}
		if err := validateDebt(debt); err != nil {
			return err
		}
		if err := applyDelta(debt); err != nil {
			return err
		}

		if err := tx.Save(debt).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return debt, nil
}

// DeleteDebt removes a debt owned by the caller. It reports ErrDebtNotFound
// when nothing matched.
func (s *debtService) DeleteDebt(userID, debtID string) error {
	result := s.db.Where("id = ? AND user_id = ?", debtID, userID).Delete(&models.Debt{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrDebtNotFound
	}
	return nil
}

// GetBalances returns the outstanding balance of every employee the caller
// has recorded debts for.
func (s *debtService) GetBalances(userID string) ([]ledger.EmployeeBalance, error) {
	debts, _, err := s.ListDebts(userID, DebtFilter{}, pagination.PageRequest{})
	if err != nil {
		return nil, err
	}
	return ledger.Balances(debts), nil
}

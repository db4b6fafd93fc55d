package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "bookkeeper/internal/errors"
	"bookkeeper/internal/models"
)

// settingsService handles per-user tax and currency settings.
type settingsService struct {
	db *gorm.DB
}

// NewSettingsService creates a new SettingsServicer.
func NewSettingsService(db *gorm.DB) SettingsServicer {
	return &settingsService{db: db}
}

// Validate rejects negative rates and caps, rates above 100 percent and
// blank currency labels.
func (p SettingsPatch) Validate() error {
	if p.Currency != nil && strings.TrimSpace(*p.Currency) == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "currency must not be empty")
	}
	for name, rate := range map[string]*float64{"tax_income": p.TaxIncome, "tax_expense": p.TaxExpense} {
		if rate != nil && (*rate < 0 || *rate > 100) {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, name+" must be between 0 and 100")
		}
	}
	if p.MonthlyExpenseCap != nil && *p.MonthlyExpenseCap < 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "monthly_expense_cap must not be negative")
	}
	return nil
}

// Apply merges the set fields of the patch into settings.
func (p SettingsPatch) Apply(settings *models.Settings) {
	if p.Currency != nil {
		settings.Currency = strings.TrimSpace(*p.Currency)
	}
	if p.TaxIncome != nil {
		settings.TaxIncome = *p.TaxIncome
	}
	if p.TaxExpense != nil {
		settings.TaxExpense = *p.TaxExpense
	}
	if p.MonthlyExpenseCap != nil {
		settings.MonthlyExpenseCap = *p.MonthlyExpenseCap
	}
}

// GetSettings returns the caller's settings.
func (s *settingsService) GetSettings(userID string) (*models.Settings, error) {
	return findSettings(s.db, userID)
}

// UpdateSettings merges patch into the stored settings and saves them.
func (s *settingsService) UpdateSettings(userID string, patch SettingsPatch) (*models.Settings, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	var settings *models.Settings
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		settings, err = findSettings(tx, userID)
		if err != nil {
			return err
		}

		patch.Apply(settings)
		if err := tx.Save(settings).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func findSettings(db *gorm.DB, userID string) (*models.Settings, error) {
	var settings models.Settings
	if err := db.Where("user_id = ?", userID).First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.WithMessage(apperrors.ErrNotFound, "settings not found")
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &settings, nil
}

// settingsOrNil returns the caller's settings, or nil when none are stored,
// in which case every rate is treated as zero.
func settingsOrNil(db *gorm.DB, userID string) (*models.Settings, error) {
	settings, err := findSettings(db, userID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil
	}
	return settings, err
}

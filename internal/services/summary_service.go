package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "bookkeeper/internal/errors"
	"bookkeeper/internal/ledger"
	"bookkeeper/internal/models"
)

// MonthLayout is the format of the month parameter.
const MonthLayout = "2006-01"

// summaryService reports monthly totals against the expense cap.
type summaryService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewSummaryService creates a new SummaryServicer.
func NewSummaryService(db *gorm.DB) SummaryServicer {
	return &summaryService{db: db, now: time.Now}
}

// MonthlySummary totals the caller's transactions dated within month
// (YYYY-MM). An empty month means the current one.
func (s *summaryService) MonthlySummary(userID, month string) (*ledger.MonthlySummary, error) {
	if month == "" {
		month = s.now().Format(MonthLayout)
	}
	if _, err := time.Parse(MonthLayout, month); err != nil {
		return nil, apperrors.ErrInvalidMonth
	}

	settings, err := settingsOrNil(s.db, userID)
	if err != nil {
		return nil, err
	}

	var transactions []models.Transaction
	if err := s.db.Scopes(ownedBy(userID)).
		Where("date LIKE ?", month+"-%").
		Order("date ASC, created_at ASC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	summary := ledger.Summarize(month, transactions, settings)
	return &summary, nil
}

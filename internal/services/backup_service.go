package services

import (
	"os"
	"time"

	"gorm.io/gorm"

	"bookkeeper/internal/database"
	apperrors "bookkeeper/internal/errors"
)

// backupService produces admin exports of the whole store.
type backupService struct {
	db     *gorm.DB
	driver string
	now    func() time.Time
}

// NewBackupService creates a new BackupServicer. driver selects whether raw
// snapshots are available.
func NewBackupService(db *gorm.DB, driver string) BackupServicer {
	return &backupService{db: db, driver: driver, now: time.Now}
}

// ExportJSON reads every table inside one transaction so the export is a
// consistent point-in-time view.
func (s *backupService) ExportJSON() (*Backup, error) {
	backup := &Backup{}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, t := range []struct {
			dest  any
			order string
		}{
			{&backup.Users, "created_at ASC, id ASC"},
			{&backup.Settings, "user_id ASC"},
			{&backup.Transactions, "created_at ASC, id ASC"},
			{&backup.Debts, "created_at ASC, id ASC"},
			{&backup.AuditLogs, "created_at ASC, id ASC"},
		} {
			if err := tx.Order(t.order).Find(t.dest).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	backup.ExportedAt = s.now().UTC()
	return backup, nil
}

// Snapshot writes a consistent copy of the sqlite database file to dst.
// dst must not exist yet.
func (s *backupService) Snapshot(dst string) error {
	if s.driver != database.DriverSQLite {
		return apperrors.ErrBackupUnsupported
	}
	if _, err := os.Stat(dst); err == nil {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "snapshot destination already exists")
	}
	if err := s.db.Exec("VACUUM INTO ?", dst).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

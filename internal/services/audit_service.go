package services

import (
	"encoding/json"

	"gorm.io/gorm"

	"bookkeeper/internal/logger"
	"bookkeeper/internal/models"
)

// AuditEntry describes one successful settings or ledger write.
type AuditEntry struct {
	UserID     string
	Verb       models.AuditVerb
	Resource   models.AuditResource
	ResourceID string
	IPAddress  string
	// Changes holds the written field values; nil for deletes.
	Changes map[string]any
}

// Action is the name the entry is stored under.
func (e AuditEntry) Action() string {
	return models.AuditAction(e.Verb, e.Resource)
}

// auditService appends entries to the audit_logs table.
type auditService struct {
	db *gorm.DB
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

// Record stores entry. The write it describes has already committed, so a
// failure here is logged and dropped.
func (s *auditService) Record(entry AuditEntry) {
	row := &models.AuditLog{
		UserID:       entry.UserID,
		Action:       entry.Action(),
		ResourceType: entry.Resource,
		ResourceID:   entry.ResourceID,
		IPAddress:    entry.IPAddress,
		Changes:      encodeChanges(entry),
	}
	if err := s.db.Create(row).Error; err != nil {
		logger.Get().Errorw("audit entry dropped",
			"error", err,
			"user_id", entry.UserID,
			"action", row.Action,
			"resource_id", entry.ResourceID,
		)
	}
}

func encodeChanges(entry AuditEntry) string {
	if entry.Changes == nil {
		return ""
	}
	data, err := json.Marshal(entry.Changes)
	if err != nil {
		logger.Get().Warnw("audit changes not encodable", "error", err, "action", entry.Action())
		return "{}"
	}
	return string(data)
}

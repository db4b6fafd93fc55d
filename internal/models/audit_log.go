package models

import "strings"

// AuditResource is the kind of row an audit entry refers to.
type AuditResource string

const (
	AuditResourceSettings    AuditResource = "settings"
	AuditResourceTransaction AuditResource = "transaction"
	AuditResourceDebt        AuditResource = "debt"
)

// AuditVerb is the write performed on an audited resource.
type AuditVerb string

const (
	AuditCreate AuditVerb = "create"
	AuditUpdate AuditVerb = "update"
	AuditDelete AuditVerb = "delete"
)

// AuditAction returns the stored action name, e.g. CREATE_DEBT.
func AuditAction(verb AuditVerb, resource AuditResource) string {
	return strings.ToUpper(string(verb) + "_" + string(resource))
}

// AuditLog records a settings or ledger write made by a user.
type AuditLog struct {
	Base
	UserID       string        `gorm:"type:uuid;not null;index" json:"user_id"`
	Action       string        `gorm:"not null" json:"action"`
	ResourceType AuditResource `gorm:"not null" json:"resource_type"`
	ResourceID   string        `json:"resource_id"`
	IPAddress    string        `json:"ip_address"`
	Changes      string        `json:"changes,omitempty"`
}

package services

import (
	"testing"

	"bookkeeper/internal/models"
	"bookkeeper/internal/testutil"
)

func TestAuditEntry_Action(t *testing.T) {
	tests := []struct {
		verb     models.AuditVerb
		resource models.AuditResource
		want     string
	}{
		{models.AuditUpdate, models.AuditResourceSettings, "UPDATE_SETTINGS"},
		{models.AuditCreate, models.AuditResourceTransaction, "CREATE_TRANSACTION"},
		{models.AuditDelete, models.AuditResourceDebt, "DELETE_DEBT"},
	}
	for _, tt := range tests {
		if got := (AuditEntry{Verb: tt.verb, Resource: tt.resource}).Action(); got != tt.want {
			t.Errorf("Action() = %q, want %q", got, tt.want)
		}
	}
}

func TestAuditRecord(t *testing.T) {
	t.Run("records_changes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		user := testutil.CreateTestUser(t, db)

		NewAuditService(db).Record(AuditEntry{
			UserID:     user.ID,
			Verb:       models.AuditUpdate,
			Resource:   models.AuditResourceSettings,
			ResourceID: user.ID,
			IPAddress:  "10.0.0.1",
			Changes:    map[string]any{"tax_income": 10},
		})

		var entry models.AuditLog
		if err := db.Where("user_id = ?", user.ID).First(&entry).Error; err != nil {
			t.Fatalf("expected an audit entry: %v", err)
		}
		if entry.Action != "UPDATE_SETTINGS" || entry.ResourceType != models.AuditResourceSettings || entry.IPAddress != "10.0.0.1" {
			t.Errorf("unexpected entry: %+v", entry)
		}
		if entry.Changes != `{"tax_income":10}` {
			t.Errorf("unexpected changes: %s", entry.Changes)
		}
	})

	t.Run("delete_has_no_changes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		user := testutil.CreateTestUser(t, db)

		NewAuditService(db).Record(AuditEntry{UserID: user.ID, Verb: models.AuditDelete, Resource: models.AuditResourceDebt, ResourceID: "x"})

		var entry models.AuditLog
		if err := db.Where("user_id = ?", user.ID).First(&entry).Error; err != nil {
			t.Fatalf("expected an audit entry: %v", err)
		}
		if entry.Changes != "" {
			t.Errorf("expected empty changes, got %q", entry.Changes)
		}
	})

	t.Run("unencodable_changes_stored_as_empty_object", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		user := testutil.CreateTestUser(t, db)

		NewAuditService(db).Record(AuditEntry{
			UserID: user.ID, Verb: models.AuditCreate, Resource: models.AuditResourceDebt, ResourceID: "x",
			Changes: map[string]any{"bad": make(chan int)},
		})

		var entry models.AuditLog
		if err := db.Where("user_id = ?", user.ID).First(&entry).Error; err != nil {
			t.Fatalf("expected an audit entry: %v", err)
		}
		if entry.Changes != "{}" {
			t.Errorf("expected {}, got %q", entry.Changes)
		}
	})

	t.Run("failure_is_swallowed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		user := testutil.CreateTestUser(t, db)

		if err := db.Migrator().DropTable(&models.AuditLog{}); err != nil {
			t.Fatalf("drop audit_logs: %v", err)
		}

		// The insert fails; Record only logs it.
		NewAuditService(db).Record(AuditEntry{UserID: user.ID, Verb: models.AuditDelete, Resource: models.AuditResourceDebt, ResourceID: "x"})
	})
}

package services

import (
	"errors"
	"testing"

	"gorm.io/gorm"

	"bookkeeper/internal/models"
	"bookkeeper/internal/testutil"
)

func TestCreateUser(t *testing.T) {
	t.Run("creates_default_settings", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user, err := svc.CreateUser("  Owner@Example.COM ", "digest", ptr("Acme"))
		testutil.AssertNoError(t, err)

		if user.ID == "" {
			t.Fatal("expected an ID")
		}
		if user.Email != "owner@example.com" {
			t.Errorf("expected normalized email, got %q", user.Email)
		}

		var settings models.Settings
		if err := db.Where("user_id = ?", user.ID).First(&settings).Error; err != nil {
			t.Fatalf("expected settings row: %v", err)
		}
		if settings.Currency != models.DefaultCurrency || settings.TaxIncome != 15 || settings.TaxExpense != 15 || settings.MonthlyExpenseCap != 50000 {
			t.Errorf("unexpected default settings: %+v", settings)
		}
	})

	t.Run("duplicate_email_is_case_insensitive", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("a@x.com", "digest", nil)
		testutil.AssertNoError(t, err)

		_, err = svc.CreateUser("A@X.com", "digest", nil)
		testutil.AssertAppError(t, err, "EMAIL_IN_USE")
	})

	t.Run("settings_failure_rolls_back_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		err := db.Callback().Create().Before("gorm:create").Register("fail_settings", func(tx *gorm.DB) {
			if tx.Statement.Schema != nil && tx.Statement.Schema.Table == "settings" {
				_ = tx.AddError(errors.New("settings write failed"))
			}
		})
		testutil.AssertNoError(t, err)

		_, err = svc.CreateUser("a@x.com", "digest", nil)
		testutil.AssertAppError(t, err, "INTERNAL_ERROR")

		var count int64
		db.Model(&models.User{}).Count(&count)
		if count != 0 {
			t.Errorf("expected no users after rollback, got %d", count)
		}
	})

	t.Run("missing_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("   ", "digest", nil)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewUserService(db)
	user := testutil.CreateTestUser(t, db)

	t.Run("by_email", func(t *testing.T) {
		got, err := svc.GetUserByEmail(user.Email)
		testutil.AssertNoError(t, err)
		if got.ID != user.ID {
			t.Errorf("expected %s, got %s", user.ID, got.ID)
		}
	})

	t.Run("by_id", func(t *testing.T) {
		got, err := svc.GetUserByID(user.ID)
		testutil.AssertNoError(t, err)
		if got.Email != user.Email {
			t.Errorf("expected %s, got %s", user.Email, got.Email)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := svc.GetUserByEmail("nobody@test.com")
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}

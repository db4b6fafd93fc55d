package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"bookkeeper/internal/ledger"
	"bookkeeper/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TestPassword is the plaintext password of every fixture user.
const TestPassword = "password123"

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with default settings and a unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email and default
// settings.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	if err := db.Create(models.DefaultSettings(user.ID)).Error; err != nil {
		t.Fatalf("failed to create test settings: %v", err)
	}
	return user
}

// CreateTestTransaction stores a transaction whose tax and total follow the
// default 15 percent rate.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID, date string, txType models.TransactionType, base float64) *models.Transaction {
	t.Helper()

	tax, total, err := ledger.ComputeTransactionTotals(base, txType, models.DefaultSettings(userID))
	if err != nil {
		t.Fatalf("failed to compute transaction totals: %v", err)
	}
	tx := &models.Transaction{
		UserID:     userID,
		Date:       date,
		Type:       txType,
		Category:   fmt.Sprintf("Category %d", nextID()),
		BaseAmount: base,
		Tax:        tax,
		Total:      total,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestDebt stores a debt entry for employee.
func CreateTestDebt(t *testing.T, db *gorm.DB, userID, date, employee string, kind models.DebtKind, amount float64) *models.Debt {
	t.Helper()

	delta, err := ledger.ComputeDebtDelta(amount, kind)
	if err != nil {
		t.Fatalf("failed to compute debt delta: %v", err)
	}
	debt := &models.Debt{
		UserID:   userID,
		Date:     date,
		Employee: employee,
		Kind:     kind,
		Amount:   amount,
		Delta:    delta,
	}
	if err := db.Create(debt).Error; err != nil {
		t.Fatalf("failed to create test debt: %v", err)
	}
	return debt
}

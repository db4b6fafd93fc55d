package services

import (
	"testing"

	"bookkeeper/internal/models"
	"bookkeeper/internal/pagination"
	"bookkeeper/internal/testutil"
)

func debtInput(date, employee string, kind models.DebtKind, amount float64) DebtInput {
	return DebtInput{Date: date, Employee: employee, Kind: kind, Amount: amount}
}

func TestCreateDebt(t *testing.T) {
	t.Run("signs_delta_by_kind", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDebtService(db)
		user := testutil.CreateTestUser(t, db)

		advance, err := svc.CreateDebt(user.ID, debtInput("2024-01-01", "Ali", models.DebtKindAdvance, 500))
		testutil.AssertNoError(t, err)
		if advance.Delta != 500 {
			t.Errorf("expected +500, got %v", advance.Delta)
		}

		repay, err := svc.CreateDebt(user.ID, debtInput("2024-01-05", "Ali", models.DebtKindRepay, 200))
		testutil.AssertNoError(t, err)
		if repay.Delta != -200 {
			t.Errorf("expected -200, got %v", repay.Delta)
		}
	})

	cases := map[string]struct {
		in   DebtInput
		code string
	}{
		"zero_amount":     {debtInput("2024-01-01", "Ali", models.DebtKindAdvance, 0), "INVALID_INPUT"},
		"negative_amount": {debtInput("2024-01-01", "Ali", models.DebtKindAdvance, -5), "INVALID_INPUT"},
		"overflow_amount": {debtInput("2024-01-01", "Ali", models.DebtKindAdvance, 1.7e308), "INVALID_INPUT"},
		"unknown_kind":    {debtInput("2024-01-01", "Ali", "loan", 5), "INVALID_DEBT_KIND"},
		"no_employee":     {debtInput("2024-01-01", " ", models.DebtKindAdvance, 5), "INVALID_INPUT"},
		"bad_date":        {debtInput("2024-13-01", "Ali", models.DebtKindAdvance, 5), "INVALID_INPUT"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			db := testutil.SetupTestDB(t)
			defer testutil.TeardownTestDB(t, db)
			user := testutil.CreateTestUser(t, db)

			_, err := NewDebtService(db).CreateDebt(user.ID, tc.in)
			testutil.AssertAppError(t, err, tc.code)
		})
	}
}

func TestListDebtLines(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewDebtService(db)
	user := testutil.CreateTestUser(t, db)

	// Inserted out of order; listing must be oldest first.
	testutil.CreateTestDebt(t, db, user.ID, "2024-01-05", "Ali", models.DebtKindRepay, 200)
	testutil.CreateTestDebt(t, db, user.ID, "2024-01-01", "Ali", models.DebtKindAdvance, 500)
	testutil.CreateTestDebt(t, db, user.ID, "2024-01-03", "Sara", models.DebtKindAdvance, 50)

	t.Run("running_balance_per_employee", func(t *testing.T) {
		lines, total, err := svc.ListDebtLines(user.ID, DebtFilter{}, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if total != 3 || len(lines) != 3 {
			t.Fatalf("expected 3 lines, got %d", len(lines))
		}

		want := []struct {
			date     string
			employee string
			balance  float64
		}{
			{"2024-01-01", "Ali", 500},
			{"2024-01-03", "Sara", 50},
			{"2024-01-05", "Ali", 300},
		}
		for i, w := range want {
			if lines[i].Date != w.date || lines[i].Employee != w.employee || lines[i].Balance != w.balance {
				t.Errorf("line %d: expected %+v, got %s %s %v", i, w, lines[i].Date, lines[i].Employee, lines[i].Balance)
			}
		}
	})

	t.Run("employee_filter", func(t *testing.T) {
		lines, total, err := svc.ListDebtLines(user.ID, DebtFilter{Employee: ptr("Ali")}, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if total != 2 || len(lines) != 2 {
			t.Fatalf("expected 2 lines for Ali, got %d", len(lines))
		}
		if lines[1].Balance != 300 {
			t.Errorf("expected final balance 300, got %v", lines[1].Balance)
		}
	})

	t.Run("page_keeps_full_history_balance", func(t *testing.T) {
		lines, total, err := svc.ListDebtLines(user.ID, DebtFilter{}, pagination.PageRequest{Page: 2, PageSize: 2})
		testutil.AssertNoError(t, err)
		if total != 3 {
			t.Errorf("expected total 3, got %d", total)
		}
		if len(lines) != 1 || lines[0].Balance != 300 {
			t.Errorf("expected the Ali repay with balance 300, got %+v", lines)
		}
	})

	t.Run("page_past_end", func(t *testing.T) {
		lines, _, err := svc.ListDebtLines(user.ID, DebtFilter{}, pagination.PageRequest{Page: 9, PageSize: 2})
		testutil.AssertNoError(t, err)
		if len(lines) != 0 {
			t.Errorf("expected empty page, got %d", len(lines))
		}
	})

	t.Run("page_number_overflowing_offset", func(t *testing.T) {
		page := pagination.PageRequest{Page: 20000000000000000, PageSize: 500}

		lines, total, err := svc.ListDebtLines(user.ID, DebtFilter{}, page)
		testutil.AssertNoError(t, err)
		if len(lines) != 0 || total == 0 {
			t.Errorf("expected empty page with full count, got %d lines, total %d", len(lines), total)
		}

		debts, _, err := svc.ListDebts(user.ID, DebtFilter{}, page)
		testutil.AssertNoError(t, err)
		if len(debts) != 0 {
			t.Errorf("expected no debts, got %d", len(debts))
		}
	})
}

func TestGetBalances(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewDebtService(db)
	user := testutil.CreateTestUser(t, db)
	other := testutil.CreateTestUser(t, db)

	testutil.CreateTestDebt(t, db, user.ID, "2024-01-01", "Sara", models.DebtKindAdvance, 80)
	testutil.CreateTestDebt(t, db, user.ID, "2024-01-01", "Ali", models.DebtKindAdvance, 500)
	testutil.CreateTestDebt(t, db, user.ID, "2024-01-05", "Ali", models.DebtKindRepay, 200)
	testutil.CreateTestDebt(t, db, other.ID, "2024-01-05", "Ali", models.DebtKindAdvance, 999)

	balances, err := svc.GetBalances(user.ID)
	testutil.AssertNoError(t, err)
	if len(balances) != 2 {
		t.Fatalf("expected 2 employees, got %d", len(balances))
	}
	if balances[0].Employee != "Ali" || balances[0].Balance != 300 || balances[0].Entries != 2 {
		t.Errorf("unexpected Ali balance: %+v", balances[0])
	}
	if balances[1].Employee != "Sara" || balances[1].Balance != 80 {
		t.Errorf("unexpected Sara balance: %+v", balances[1])
	}
}

func TestUpdateDebt(t *testing.T) {
	t.Run("kind_change_flips_delta", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDebtService(db)
		user := testutil.CreateTestUser(t, db)
		debt := testutil.CreateTestDebt(t, db, user.ID, "2024-01-01", "Ali", models.DebtKindAdvance, 500)

		repay := models.DebtKindRepay
		updated, err := svc.UpdateDebt(user.ID, debt.ID, DebtPatch{Kind: &repay, Amount: ptr(120.0)})
		testutil.AssertNoError(t, err)
		if updated.Delta != -120 {
			t.Errorf("expected -120, got %v", updated.Delta)
		}

		stored, err := svc.GetDebt(user.ID, debt.ID)
		testutil.AssertNoError(t, err)
		if stored.Delta != -120 {
			t.Errorf("expected persisted -120, got %v", stored.Delta)
		}
	})

	t.Run("other_owner", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDebtService(db)
		owner := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		debt := testutil.CreateTestDebt(t, db, owner.ID, "2024-01-01", "Ali", models.DebtKindAdvance, 500)

		_, err := svc.UpdateDebt(other.ID, debt.ID, DebtPatch{Amount: ptr(1.0)})
		testutil.AssertAppError(t, err, "DEBT_NOT_FOUND")
	})

	t.Run("zero_amount_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewDebtService(db)
		user := testutil.CreateTestUser(t, db)
		debt := testutil.CreateTestDebt(t, db, user.ID, "2024-01-01", "Ali", models.DebtKindAdvance, 500)

		_, err := svc.UpdateDebt(user.ID, debt.ID, DebtPatch{Amount: ptr(0.0)})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestDeleteDebt(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewDebtService(db)
	owner := testutil.CreateTestUser(t, db)
	other := testutil.CreateTestUser(t, db)
	debt := testutil.CreateTestDebt(t, db, owner.ID, "2024-01-01", "Ali", models.DebtKindAdvance, 500)

	testutil.AssertAppError(t, svc.DeleteDebt(other.ID, debt.ID), "DEBT_NOT_FOUND")
	testutil.AssertNoError(t, svc.DeleteDebt(owner.ID, debt.ID))
	testutil.AssertAppError(t, svc.DeleteDebt(owner.ID, debt.ID), "DEBT_NOT_FOUND")
}

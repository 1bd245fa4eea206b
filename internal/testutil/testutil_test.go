package testutil_test

import (
	"testing"

	"pesowise/internal/errors"
	"pesowise/internal/models"
	"pesowise/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	// Verify all tables exist by doing a simple count query on each model.
	var count int64
	for _, table := range []string{"users", "transactions", "subscriptions", "categories", "budgets"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.CreateTestUser(t, db)
	if user.ID == 0 {
		t.Fatal("user should have a non-zero ID")
	}

	tx := testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeIncome, 1000)
	if tx.Amount != 1000 {
		t.Errorf("expected amount 1000, got %d", tx.Amount)
	}

	sub := testutil.CreateTestSubscription(t, db, user.ID, 15)
	if sub.DueDay != 15 {
		t.Errorf("expected due day 15, got %d", sub.DueDay)
	}

	category := testutil.CreateTestCategory(t, db, user.ID)
	if category.ID == 0 {
		t.Fatal("category should have a non-zero ID")
	}

	budget := testutil.CreateTestBudget(t, db, user.ID, 2500000)
	if budget.Amount != 2500000 {
		t.Errorf("expected budget amount 2500000, got %d", budget.Amount)
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrTransactionNotFound, "custom message")
	testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}

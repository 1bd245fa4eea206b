package services

import (
	"testing"

	"pesowise/internal/models"
	"pesowise/internal/testutil"
)

func TestSetBudget(t *testing.T) {
	t.Run("creates", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		budget, err := svc.SetBudget(user.ID, 2500000)
		testutil.AssertNoError(t, err)
		if budget.Amount != 2500000 {
			t.Errorf("expected amount 2500000, got %d", budget.Amount)
		}
	})

	t.Run("replaces_existing", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.SetBudget(user.ID, 2500000)
		testutil.AssertNoError(t, err)
		_, err = svc.SetBudget(user.ID, 3000000)
		testutil.AssertNoError(t, err)

		// Still a single row per user.
		var count int64
		if err := db.Model(&models.Budget{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
			t.Fatalf("count failed: %v", err)
		}
		if count != 1 {
			t.Fatalf("expected 1 budget row, got %d", count)
		}

		budget, err := svc.GetBudget(user.ID)
		testutil.AssertNoError(t, err)
		if budget.Amount != 3000000 {
			t.Errorf("expected replaced amount 3000000, got %d", budget.Amount)
		}
	})

	t.Run("zero_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)

		_, err := svc.SetBudget(1, 0)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("negative_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)

		_, err := svc.SetBudget(1, -500)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetBudget(t *testing.T) {
	t.Run("unset_returns_nil", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		budget, err := svc.GetBudget(user.ID)
		testutil.AssertNoError(t, err)
		if budget != nil {
			t.Errorf("expected nil budget, got %+v", budget)
		}
	})

	t.Run("scoped_to_owner", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)

		testutil.CreateTestBudget(t, db, user1.ID, 2500000)

		budget, err := svc.GetBudget(user2.ID)
		testutil.AssertNoError(t, err)
		if budget != nil {
			t.Error("expected no budget for user2")
		}
	})
}

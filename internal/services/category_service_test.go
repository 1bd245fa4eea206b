package services

import (
	"testing"

	"pesowise/internal/models"
	"pesowise/internal/testutil"
)

func TestCreateCategory(t *testing.T) {
	t.Run("creates", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		category, err := svc.CreateCategory(user.ID, "Pets", "🐶")
		testutil.AssertNoError(t, err)
		if category.ID == 0 {
			t.Fatal("expected non-zero category ID")
		}
		if category.Icon != "🐶" {
			t.Errorf("expected icon 🐶, got %s", category.Icon)
		}
	})

	t.Run("default_icon", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		category, err := svc.CreateCategory(user.ID, "Misc", "")
		testutil.AssertNoError(t, err)
		if category.Icon != "🏷️" {
			t.Errorf("expected default icon, got %s", category.Icon)
		}
	})

	t.Run("empty_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		_, err := svc.CreateCategory(1, "   ", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("duplicate_of_builtin", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateCategory(user.ID, "food", "🍜")
		testutil.AssertAppError(t, err, "DUPLICATE_CATEGORY")
	})

	t.Run("duplicate_of_own", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateCategory(user.ID, "Pets", "🐶")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateCategory(user.ID, "PETS", "🐱")
		testutil.AssertAppError(t, err, "DUPLICATE_CATEGORY")
	})

	t.Run("same_name_different_users", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)

		_, err := svc.CreateCategory(user1.ID, "Pets", "🐶")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateCategory(user2.ID, "Pets", "🐶")
		testutil.AssertNoError(t, err)
	})
}

func TestGetUserCategories(t *testing.T) {
	t.Run("builtins_first", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		own := testutil.CreateTestCategory(t, db, user.ID)

		categories, err := svc.GetUserCategories(user.ID)
		testutil.AssertNoError(t, err)

		builtins := models.BuiltinCategories()
		if len(categories) != len(builtins)+1 {
			t.Fatalf("expected %d categories, got %d", len(builtins)+1, len(categories))
		}
		for i, builtin := range builtins {
			if categories[i].Name != builtin.Name {
				t.Errorf("expected builtin %q at position %d, got %q", builtin.Name, i, categories[i].Name)
			}
		}
		if categories[len(builtins)].ID != own.ID {
			t.Error("expected user category after builtins")
		}
	})

	t.Run("scoped_to_owner", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)

		testutil.CreateTestCategory(t, db, user2.ID)

		categories, err := svc.GetUserCategories(user1.ID)
		testutil.AssertNoError(t, err)
		if len(categories) != len(models.BuiltinCategories()) {
			t.Errorf("expected only builtins for user1, got %d categories", len(categories))
		}
	})
}

func TestDeleteCategory(t *testing.T) {
	t.Run("deletes_own_row", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)
		category := testutil.CreateTestCategory(t, db, user.ID)

		rows, err := svc.DeleteCategory(user.ID, category.ID)
		testutil.AssertNoError(t, err)
		if rows != 1 {
			t.Errorf("expected 1 row deleted, got %d", rows)
		}
	})

	t.Run("other_users_row_is_noop", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)
		category := testutil.CreateTestCategory(t, db, user1.ID)

		rows, err := svc.DeleteCategory(user2.ID, category.ID)
		testutil.AssertNoError(t, err)
		if rows != 0 {
			t.Errorf("expected zero-row no-op, got %d rows", rows)
		}
	})
}

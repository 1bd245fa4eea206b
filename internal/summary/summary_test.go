package summary

import (
	"reflect"
	"testing"
	"time"

	"pesowise/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func expense(amount int64, category string, on time.Time) models.Transaction {
	return models.Transaction{
		Type:        models.TransactionTypeExpense,
		Amount:      amount,
		Category:    category,
		Description: category,
		Date:        on,
	}
}

func income(amount int64, on time.Time) models.Transaction {
	return models.Transaction{
		Type:        models.TransactionTypeIncome,
		Amount:      amount,
		Category:    "Salary",
		Description: "Salary",
		Date:        on,
	}
}

func TestComputeEmptyInput(t *testing.T) {
	ref := date(2024, time.March, 15)
	s := Compute(nil, ref, 7)

	if s.TotalIncome != 0 || s.TotalExpenses != 0 || s.TotalBalance != 0 {
		t.Errorf("expected zero totals, got income=%d expenses=%d balance=%d",
			s.TotalIncome, s.TotalExpenses, s.TotalBalance)
	}
	if s.SpentPercentage != 0 || s.SavingsRate != 0 || s.DailyAverage != 0 || s.ExpenseChange != 0 {
		t.Errorf("expected zero rates, got spent=%f savings=%f avg=%f change=%f",
			s.SpentPercentage, s.SavingsRate, s.DailyAverage, s.ExpenseChange)
	}
	if len(s.CategoryBreakdown) != 0 {
		t.Errorf("expected empty breakdown, got %v", s.CategoryBreakdown)
	}
	if s.TopCategory != nil {
		t.Errorf("expected no top category, got %v", s.TopCategory)
	}
	if len(s.DailyHistory) != 7 {
		t.Fatalf("expected 7 history entries, got %d", len(s.DailyHistory))
	}
	for _, day := range s.DailyHistory {
		if day.Amount != 0 {
			t.Errorf("expected zero amount for %s, got %d", day.Label, day.Amount)
		}
	}
}

func TestComputeTypePartition(t *testing.T) {
	ref := date(2024, time.March, 15)

	t.Run("legacy untyped rows count as expenses", func(t *testing.T) {
		legacy := models.Transaction{Amount: 10000, Category: "Food", Date: ref}
		s := Compute([]models.Transaction{legacy}, ref, 7)

		if s.TotalExpenses != 10000 {
			t.Errorf("expected expenses 10000, got %d", s.TotalExpenses)
		}
		if s.TotalIncome != 0 {
			t.Errorf("expected income 0, got %d", s.TotalIncome)
		}
	})

	t.Run("income excluded from expense aggregates", func(t *testing.T) {
		txs := []models.Transaction{
			income(50000, ref),
			expense(20000, "Food", ref),
		}
		s := Compute(txs, ref, 7)

		if s.TotalIncome != 50000 || s.TotalExpenses != 20000 {
			t.Errorf("expected 50000/20000, got %d/%d", s.TotalIncome, s.TotalExpenses)
		}
		if s.TotalBalance != 30000 {
			t.Errorf("expected balance 30000, got %d", s.TotalBalance)
		}
		if len(s.CategoryBreakdown) != 1 || s.CategoryBreakdown[0].Category != "Food" {
			t.Errorf("income must not appear in breakdown: %v", s.CategoryBreakdown)
		}
	})
}

func TestComputeZeroIncomeFloor(t *testing.T) {
	ref := date(2024, time.March, 15)
	s := Compute([]models.Transaction{expense(50000, "Bills", ref)}, ref, 7)

	if s.SpentPercentage != 0 {
		t.Errorf("expected spent percentage 0 with no income, got %f", s.SpentPercentage)
	}
	if s.SavingsRate != 0 {
		t.Errorf("expected savings rate 0 with no income, got %f", s.SavingsRate)
	}
}

func TestComputeClamping(t *testing.T) {
	ref := date(2024, time.March, 15)
	txs := []models.Transaction{
		income(10000, ref),
		expense(25000, "Shopping", ref),
	}
	s := Compute(txs, ref, 7)

	if s.SpentPercentage != 100 {
		t.Errorf("expected spent percentage clamped to 100, got %f", s.SpentPercentage)
	}
	if s.TotalBalance != -15000 {
		t.Errorf("expected unclamped balance -15000, got %d", s.TotalBalance)
	}
	if s.SavingsRate != -150 {
		t.Errorf("expected unclamped savings rate -150, got %f", s.SavingsRate)
	}
}

func TestComputeCategoryBreakdown(t *testing.T) {
	ref := date(2024, time.March, 15)
	txs := []models.Transaction{
		expense(5000, "Food", ref),
		expense(3000, "Food", ref),
		expense(2000, "Transport", ref),
	}
	s := Compute(txs, ref, 7)

	want := []CategoryAmount{
		{Category: "Food", Amount: 8000},
		{Category: "Transport", Amount: 2000},
	}
	if !reflect.DeepEqual(s.CategoryBreakdown, want) {
		t.Errorf("expected %v, got %v", want, s.CategoryBreakdown)
	}
	if s.TopCategory == nil || s.TopCategory.Category != "Food" || s.TopCategory.Amount != 8000 {
		t.Errorf("expected top category Food/8000, got %v", s.TopCategory)
	}
}

func TestComputeTopCategoryTieBreak(t *testing.T) {
	ref := date(2024, time.March, 15)
	txs := []models.Transaction{
		expense(5000, "Transport", ref),
		expense(5000, "Food", ref),
	}
	s := Compute(txs, ref, 7)

	// Strict greater-than: ties keep the first-seen category.
	if s.TopCategory == nil || s.TopCategory.Category != "Transport" {
		t.Errorf("expected tie to keep Transport, got %v", s.TopCategory)
	}
}

func TestComputeDailyHistory(t *testing.T) {
	ref := date(2024, time.March, 15)

	t.Run("zero filled ascending window", func(t *testing.T) {
		s := Compute(nil, ref, 5)

		wantLabels := []string{"Mar 11", "Mar 12", "Mar 13", "Mar 14", "Mar 15"}
		if len(s.DailyHistory) != 5 {
			t.Fatalf("expected 5 entries, got %d", len(s.DailyHistory))
		}
		for i, day := range s.DailyHistory {
			if day.Label != wantLabels[i] {
				t.Errorf("entry %d: expected label %s, got %s", i, wantLabels[i], day.Label)
			}
			if day.Amount != 0 {
				t.Errorf("entry %d: expected 0, got %d", i, day.Amount)
			}
		}
	})

	t.Run("expenses land in their day bucket", func(t *testing.T) {
		txs := []models.Transaction{
			expense(1000, "Food", date(2024, time.March, 15)),
			expense(2000, "Food", date(2024, time.March, 14)),
			expense(4000, "Food", date(2024, time.March, 1)), // outside window
			income(9000, date(2024, time.March, 15)),         // income never charted
		}
		s := Compute(txs, ref, 5)

		last := s.DailyHistory[len(s.DailyHistory)-1]
		if last.Label != "Mar 15" || last.Amount != 1000 {
			t.Errorf("expected Mar 15 = 1000, got %s = %d", last.Label, last.Amount)
		}
		prev := s.DailyHistory[len(s.DailyHistory)-2]
		if prev.Amount != 2000 {
			t.Errorf("expected Mar 14 = 2000, got %d", prev.Amount)
		}
	})

	t.Run("same label in another year does not collide", func(t *testing.T) {
		txs := []models.Transaction{
			expense(7000, "Food", date(2023, time.March, 15)),
		}
		s := Compute(txs, ref, 5)

		last := s.DailyHistory[len(s.DailyHistory)-1]
		if last.Amount != 0 {
			t.Errorf("expected last year's Mar 15 to stay out of the window, got %d", last.Amount)
		}
	})
}

func TestComputeDailyAverage(t *testing.T) {
	txs := []models.Transaction{expense(30000, "Food", date(2024, time.March, 1))}

	t.Run("divides by day of month", func(t *testing.T) {
		s := Compute(txs, date(2024, time.March, 15), 7)
		if s.DailyAverage != 2000 {
			t.Errorf("expected 30000/15 = 2000, got %f", s.DailyAverage)
		}
	})

	t.Run("first of month divides by one", func(t *testing.T) {
		s := Compute(txs, date(2024, time.March, 1), 7)
		if s.DailyAverage != 30000 {
			t.Errorf("expected 30000, got %f", s.DailyAverage)
		}
	})
}

func TestComputeExpenseChange(t *testing.T) {
	t.Run("month over month percentage", func(t *testing.T) {
		ref := date(2024, time.March, 15)
		txs := []models.Transaction{
			expense(15000, "Food", date(2024, time.March, 10)),
			expense(10000, "Food", date(2024, time.February, 10)),
		}
		s := Compute(txs, ref, 7)

		if s.ExpenseChange != 50 {
			t.Errorf("expected +50%%, got %f", s.ExpenseChange)
		}
	})

	t.Run("zero when previous month empty", func(t *testing.T) {
		ref := date(2024, time.March, 15)
		s := Compute([]models.Transaction{expense(15000, "Food", ref)}, ref, 7)

		if s.ExpenseChange != 0 {
			t.Errorf("expected 0, got %f", s.ExpenseChange)
		}
	})

	t.Run("january compares against december", func(t *testing.T) {
		ref := date(2024, time.January, 20)
		txs := []models.Transaction{
			expense(5000, "Food", date(2024, time.January, 10)),
			expense(10000, "Food", date(2023, time.December, 10)),
		}
		s := Compute(txs, ref, 7)

		if s.ExpenseChange != -50 {
			t.Errorf("expected -50%%, got %f", s.ExpenseChange)
		}
	})
}

func TestComputeDeterminism(t *testing.T) {
	ref := date(2024, time.March, 15)
	txs := []models.Transaction{
		income(100000, date(2024, time.March, 1)),
		expense(5000, "Food", date(2024, time.March, 14)),
		expense(3000, "Transport", date(2024, time.March, 15)),
		expense(2500, "Food", date(2024, time.February, 20)),
	}

	first := Compute(txs, ref, 7)
	second := Compute(txs, ref, 7)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical output for identical input:\n%+v\n%+v", first, second)
	}
}

func TestComputeDoesNotMutateInput(t *testing.T) {
	ref := date(2024, time.March, 15)
	txs := []models.Transaction{
		expense(5000, "Food", ref),
		income(9000, ref),
	}
	snapshot := make([]models.Transaction, len(txs))
	copy(snapshot, txs)

	Compute(txs, ref, 7)

	if !reflect.DeepEqual(txs, snapshot) {
		t.Error("input slice was mutated")
	}
}

func TestComputeDefaultWindow(t *testing.T) {
	ref := date(2024, time.March, 15)
	s := Compute(nil, ref, 0)

	if len(s.DailyHistory) != DefaultWindow {
		t.Errorf("expected default window %d, got %d", DefaultWindow, len(s.DailyHistory))
	}
}

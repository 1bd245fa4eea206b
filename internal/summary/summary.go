// Package summary derives the dashboard's numeric view model from a
// user's transaction list. Everything here is a pure function of its
// inputs: no I/O, no clock reads, no mutation of arguments. The caller
// supplies the reference time so results are reproducible.
package summary

import (
	"time"

	"pesowise/internal/models"
)

// DefaultWindow is the number of trailing days covered by the daily
// history series when the caller does not pick one.
const DefaultWindow = 7

// CategoryAmount is one entry of the per-category expense breakdown.
type CategoryAmount struct {
	Category string `json:"category"`
	Amount   int64  `json:"amount"`
}

// DayAmount is one day of the trailing expense history.
type DayAmount struct {
	Label  string `json:"label"`
	Amount int64  `json:"amount"`
}

// Summary is the aggregated view model the dashboard renders.
// Amounts are centavos; percentages are plain percent values.
type Summary struct {
	TotalIncome       int64            `json:"total_income"`
	TotalExpenses     int64            `json:"total_expenses"`
	TotalBalance      int64            `json:"total_balance"`
	SpentPercentage   float64          `json:"spent_percentage"`
	SavingsRate       float64          `json:"savings_rate"`
	DailyAverage      float64          `json:"daily_average"`
	CategoryBreakdown []CategoryAmount `json:"category_breakdown"`
	DailyHistory      []DayAmount      `json:"daily_history"`
	ExpenseChange     float64          `json:"expense_change"`
	TopCategory       *CategoryAmount  `json:"top_category,omitempty"`
	TotalTransactions int              `json:"total_transactions"`
}

// dayKey identifies a calendar day. History buckets are joined on this
// key rather than on the rendered label, so days that happen to format
// identically (same month and day in different years) can never collide.
type dayKey struct {
	year  int
	month time.Month
	day   int
}

func keyOf(t time.Time) dayKey {
	y, m, d := t.Date()
	return dayKey{y, m, d}
}

func (k dayKey) label() string {
	return time.Date(k.year, k.month, k.day, 0, 0, 0, 0, time.UTC).Format("Jan 2")
}

// Compute aggregates transactions into a Summary. ref is the instant
// considered "now"; window is the daily-history length in days (values
// < 1 fall back to DefaultWindow). Compute never fails: empty input
// produces a coherent all-zero summary.
func Compute(transactions []models.Transaction, ref time.Time, window int) Summary {
	if window < 1 {
		window = DefaultWindow
	}

	// Pre-seed the trailing window so every day is present even when no
	// expense fell on it, oldest day first.
	historyKeys := make([]dayKey, 0, window)
	history := make(map[dayKey]int64, window)
	for i := window - 1; i >= 0; i-- {
		k := keyOf(ref.AddDate(0, 0, -i))
		historyKeys = append(historyKeys, k)
		history[k] = 0
	}

	curMonthStart := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	prevMonthStart := curMonthStart.AddDate(0, -1, 0)
	curYear, curMonth, _ := curMonthStart.Date()
	prevYear, prevMonth, _ := prevMonthStart.Date()

	var (
		totalIncome    int64
		totalExpenses  int64
		curMonthSpent  int64
		prevMonthSpent int64
		breakdownIdx   = make(map[string]int)
		breakdown      []CategoryAmount
	)

	for i := range transactions {
		t := &transactions[i]
		if t.IsIncome() {
			totalIncome += t.Amount
			continue
		}

		totalExpenses += t.Amount

		// Category breakdown keeps first-seen order.
		if idx, ok := breakdownIdx[t.Category]; ok {
			breakdown[idx].Amount += t.Amount
		} else {
			breakdownIdx[t.Category] = len(breakdown)
			breakdown = append(breakdown, CategoryAmount{Category: t.Category, Amount: t.Amount})
		}

		k := keyOf(t.Date)
		if _, inWindow := history[k]; inWindow {
			history[k] += t.Amount
		}

		switch y, m, _ := t.Date.Date(); {
		case y == curYear && m == curMonth:
			curMonthSpent += t.Amount
		case y == prevYear && m == prevMonth:
			prevMonthSpent += t.Amount
		}
	}

	s := Summary{
		TotalIncome:       totalIncome,
		TotalExpenses:     totalExpenses,
		TotalBalance:      totalIncome - totalExpenses,
		CategoryBreakdown: breakdown,
		TotalTransactions: len(transactions),
	}

	if totalIncome > 0 {
		s.SpentPercentage = clamp(float64(totalExpenses)/float64(totalIncome)*100, 0, 100)
		s.SavingsRate = float64(totalIncome-totalExpenses) / float64(totalIncome) * 100
	}

	daysPassed := ref.Day()
	if daysPassed < 1 {
		daysPassed = 1
	}
	s.DailyAverage = float64(totalExpenses) / float64(daysPassed)

	if prevMonthSpent > 0 {
		s.ExpenseChange = float64(curMonthSpent-prevMonthSpent) / float64(prevMonthSpent) * 100
	}

	s.DailyHistory = make([]DayAmount, 0, window)
	for _, k := range historyKeys {
		s.DailyHistory = append(s.DailyHistory, DayAmount{Label: k.label(), Amount: history[k]})
	}

	// Ties keep the earlier category: strict greater-than comparison.
	for i := range s.CategoryBreakdown {
		if s.TopCategory == nil || s.CategoryBreakdown[i].Amount > s.TopCategory.Amount {
			top := s.CategoryBreakdown[i]
			s.TopCategory = &top
		}
	}

	return s
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package services

import (
	"time"

	"pesowise/internal/models"
	"pesowise/internal/summary"
)

// dashboardService assembles the full dashboard view model from the
// entity services. It owns no storage of its own.
type dashboardService struct {
	transactions  TransactionServicer
	subscriptions SubscriptionServicer
	categories    CategoryServicer
	budgets       BudgetServicer
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(
	transactions TransactionServicer,
	subscriptions SubscriptionServicer,
	categories CategoryServicer,
	budgets BudgetServicer,
) DashboardServicer {
	return &dashboardService{
		transactions:  transactions,
		subscriptions: subscriptions,
		categories:    categories,
		budgets:       budgets,
	}
}

// GetDashboard loads the user's data and derives every dashboard metric
// in one shot. The search filter narrows the transaction set before
// aggregation, so all derived numbers reflect the filtered view.
func (s *dashboardService) GetDashboard(userID uint, opts DashboardOptions) (*Dashboard, error) {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	transactions, err := s.transactions.ListUserTransactions(userID, opts.Search)
	if err != nil {
		return nil, err
	}

	subscriptions, err := s.subscriptions.GetUserSubscriptions(userID)
	if err != nil {
		return nil, err
	}

	categories, err := s.categories.GetUserCategories(userID)
	if err != nil {
		return nil, err
	}

	budget, err := s.budgets.GetBudget(userID)
	if err != nil {
		return nil, err
	}

	dashboard := &Dashboard{
		Summary:      summary.Compute(transactions, now, opts.Window),
		Transactions: transactions,
		Categories:   categories,
	}

	dashboard.Subscriptions = make([]SubscriptionDue, 0, len(subscriptions))
	for _, sub := range subscriptions {
		dashboard.MonthlySubscriptionTotal += sub.Amount
		dashboard.Subscriptions = append(dashboard.Subscriptions, SubscriptionDue{
			Subscription: sub,
			NextDue:      sub.NextDueDate(now),
			DaysUntilDue: sub.DaysUntilDue(now),
		})
	}

	dashboard.Budget = buildBudgetProgress(budget, transactions, now)

	return dashboard, nil
}

// buildBudgetProgress compares the current calendar month's expenses
// against the budget goal. The percentage is not clamped; overspending
// reads as more than 100%.
func buildBudgetProgress(budget *models.Budget, transactions []models.Transaction, now time.Time) BudgetProgress {
	var progress BudgetProgress
	if budget != nil {
		progress.Budgeted = budget.Amount
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for i := range transactions {
		t := &transactions[i]
		if t.IsIncome() {
			continue
		}
		if t.Date.Before(monthStart) || t.Date.After(now) {
			continue
		}
		progress.Spent += t.Amount
	}

	progress.Remaining = progress.Budgeted - progress.Spent
	if progress.Budgeted > 0 {
		progress.Percentage = float64(progress.Spent) / float64(progress.Budgeted) * 100
	}
	return progress
}

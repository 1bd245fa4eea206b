package services

import (
	"time"

	"pesowise/internal/models"
	"pesowise/internal/pagination"
	"pesowise/internal/summary"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// TransactionServicer defines the contract for transaction-related business logic.
// Deletes are scoped to (id, owner) and report the number of rows removed;
// deleting someone else's row is a zero-row no-op, never an error.
type TransactionServicer interface {
	CreateTransaction(userID uint, transactionType models.TransactionType, amount int64, description, category string, date time.Time) (*models.Transaction, error)
	GetUserTransactions(userID uint, page pagination.PageRequest, search string) (*pagination.PageResponse[models.Transaction], error)
	ListUserTransactions(userID uint, search string) ([]models.Transaction, error)
	GetTransactionByID(userID, transactionID uint) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID uint) (int64, error)
}

// SubscriptionServicer defines the contract for subscription-related business logic.
type SubscriptionServicer interface {
	CreateSubscription(userID uint, name string, amount int64, dueDay int) (*models.Subscription, error)
	GetUserSubscriptions(userID uint) ([]models.Subscription, error)
	DeleteSubscription(userID, subscriptionID uint) (int64, error)
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(userID uint, name, icon string) (*models.Category, error)
	GetUserCategories(userID uint) ([]models.Category, error)
	DeleteCategory(userID, categoryID uint) (int64, error)
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	SetBudget(userID uint, amount int64) (*models.Budget, error)
	GetBudget(userID uint) (*models.Budget, error)
}

// SeedResult reports what ResetAndSeed created for the caller.
type SeedResult struct {
	Transactions  int   `json:"transactions"`
	Subscriptions int   `json:"subscriptions"`
	Categories    int   `json:"categories"`
	BudgetAmount  int64 `json:"budget_amount"`
}

// SeedServicer defines the contract for the demo-data generator.
type SeedServicer interface {
	ResetAndSeed(userID uint) (*SeedResult, error)
}

// DashboardOptions holds the optional knobs for a dashboard read.
type DashboardOptions struct {
	Search string
	Window int
	// Now is the reference instant for all derived metrics.
	// The zero value means the wall clock.
	Now time.Time
}

// SubscriptionDue decorates a subscription with its next due date.
type SubscriptionDue struct {
	models.Subscription
	NextDue      time.Time `json:"next_due"`
	DaysUntilDue int       `json:"days_until_due"`
}

// BudgetProgress contains spending vs budget data for the current month.
type BudgetProgress struct {
	Budgeted   int64   `json:"budgeted"`
	Spent      int64   `json:"spent"`
	Remaining  int64   `json:"remaining"`
	Percentage float64 `json:"percentage"`
}

// Dashboard is the full view model served to the dashboard page.
type Dashboard struct {
	Summary                  summary.Summary      `json:"summary"`
	Transactions             []models.Transaction `json:"transactions"`
	Subscriptions            []SubscriptionDue    `json:"subscriptions"`
	MonthlySubscriptionTotal int64                `json:"monthly_subscription_total"`
	Categories               []models.Category    `json:"categories"`
	Budget                   BudgetProgress       `json:"budget"`
}

// DashboardServicer defines the contract for assembling the dashboard view model.
type DashboardServicer interface {
	GetDashboard(userID uint, opts DashboardOptions) (*Dashboard, error)
}

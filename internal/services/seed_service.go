package services

import (
	"math/rand"
	"time"

	"gorm.io/gorm"

	apperrors "pesowise/internal/errors"
	"pesowise/internal/models"
)

// seedBudgetAmount is the demo budget in centavos (₱25,000.00).
const seedBudgetAmount int64 = 2500000

// seedSubscriptions are the demo recurring obligations.
var seedSubscriptions = []models.Subscription{
	{Name: "Netflix", Amount: 54900, DueDay: 15},
	{Name: "Spotify", Amount: 14900, DueDay: 5},
}

// seedExpensePool pairs plausible descriptions with their category so
// generated data looks like a real ledger instead of random noise.
var seedExpensePool = []struct {
	Description string
	Category    string
	Min, Max    int64
}{
	{"Jollibee lunch", "Food", 15000, 45000},
	{"Grocery run", "Food", 80000, 250000},
	{"Coffee", "Food", 12000, 25000},
	{"Grab ride", "Transport", 15000, 60000},
	{"Jeepney fare", "Transport", 1300, 5000},
	{"Gas refill", "Transport", 100000, 250000},
	{"Electric bill", "Bills", 150000, 400000},
	{"Internet bill", "Bills", 150000, 200000},
	{"Mobile load", "Bills", 5000, 30000},
	{"Shopee order", "Shopping", 30000, 150000},
	{"New shirt", "Shopping", 40000, 120000},
	{"Movie night", "Entertainment", 35000, 80000},
	{"Mobile game top-up", "Entertainment", 5000, 50000},
}

// seedService regenerates a demo data set for a user.
type seedService struct {
	db  *gorm.DB
	rng *rand.Rand
}

// NewSeedService creates a new SeedServicer. The caller supplies the
// random source so tests can seed it deterministically.
func NewSeedService(db *gorm.DB, rng *rand.Rand) SeedServicer {
	return &seedService{db: db, rng: rng}
}

// ResetAndSeed wipes every transaction, subscription, category and
// budget the user owns and replaces them with a generated demo set:
// a monthly budget, two subscriptions, the starter category set, two
// salary deposits and 40-50 everyday expenses spread over the trailing
// 30 days. The wipe and the reseed run in one database transaction so
// a failure leaves the previous data intact.
func (s *seedService) ResetAndSeed(userID uint) (*SeedResult, error) {
	now := time.Now()
	result := &SeedResult{}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Hard delete so reseeding repeatedly does not pile up
		// soft-deleted rows.
		for _, model := range []interface{}{
			&models.Transaction{},
			&models.Subscription{},
			&models.Category{},
			&models.Budget{},
		} {
			if err := tx.Unscoped().Where("user_id = ?", userID).Delete(model).Error; err != nil {
				return err
			}
		}

		budget := models.Budget{UserID: userID, Amount: seedBudgetAmount}
		if err := tx.Create(&budget).Error; err != nil {
			return err
		}
		result.BudgetAmount = budget.Amount

		for _, sub := range seedSubscriptions {
			sub.UserID = userID
			if err := tx.Create(&sub).Error; err != nil {
				return err
			}
			result.Subscriptions++
		}

		for _, category := range models.BuiltinCategories() {
			category.UserID = userID
			if err := tx.Create(&category).Error; err != nil {
				return err
			}
			result.Categories++
		}

		transactions := s.generateTransactions(userID, now)
		if err := tx.Create(&transactions).Error; err != nil {
			return err
		}
		result.Transactions = len(transactions)

		return nil
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return result, nil
}

// generateTransactions builds two salary deposits plus 40-50 expenses
// spread over the trailing 30 days, newest data last.
func (s *seedService) generateTransactions(userID uint, now time.Time) []models.Transaction {
	count := 40 + s.rng.Intn(11)
	transactions := make([]models.Transaction, 0, count+2)

	for _, daysAgo := range []int{28, 14} {
		transactions = append(transactions, models.Transaction{
			UserID:      userID,
			Type:        models.TransactionTypeIncome,
			Amount:      3500000,
			Description: "Salary",
			Category:    "Income",
			Date:        now.AddDate(0, 0, -daysAgo),
		})
	}

	for i := 0; i < count; i++ {
		pick := seedExpensePool[s.rng.Intn(len(seedExpensePool))]
		amount := pick.Min + s.rng.Int63n(pick.Max-pick.Min+1)
		transactions = append(transactions, models.Transaction{
			UserID:      userID,
			Type:        models.TransactionTypeExpense,
			Amount:      amount,
			Description: pick.Description,
			Category:    pick.Category,
			Date:        now.AddDate(0, 0, -s.rng.Intn(30)),
		})
	}

	return transactions
}

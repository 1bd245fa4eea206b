package models

import "time"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// NormalizeTransactionType maps raw input to a valid transaction type.
// Records created before the income/expense split carry no type at all;
// those count as expenses.
func NormalizeTransactionType(raw string) TransactionType {
	if TransactionType(raw) == TransactionTypeIncome {
		return TransactionTypeIncome
	}
	return TransactionTypeExpense
}

// Transaction represents a single income or expense entry.
// Amounts are stored in centavos.
type Transaction struct {
	Base
	UserID      uint            `gorm:"not null;index" json:"user_id"`
	Type        TransactionType `gorm:"not null;default:expense" json:"type"`
	Amount      int64           `gorm:"type:bigint;not null" json:"amount"`
	Description string          `gorm:"not null" json:"description"`
	Category    string          `gorm:"not null" json:"category"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
}

// IsIncome reports whether the transaction counts toward income.
// Anything else, including legacy rows with an unknown type, is an expense.
func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

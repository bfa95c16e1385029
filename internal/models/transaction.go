package models

import "time"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether t is one of the two supported types.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction represents a single income or expense ledger entry.
// JSON field names are fixed by the API contract (camelCase).
type Transaction struct {
	Base
	Type     TransactionType `gorm:"not null" json:"type"`
	Amount   float64         `gorm:"not null" json:"amount"`
	Category string          `gorm:"not null" json:"category"`
	Note     string          `gorm:"default:''" json:"note"`
	Date     time.Time       `gorm:"not null;index" json:"date"`
}

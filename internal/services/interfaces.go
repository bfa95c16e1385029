package services

import (
	"time"

	"github.com/gabrielrealm08/finance-tracker-app/internal/models"
)

// TransactionInput holds the fields required to create a transaction.
type TransactionInput struct {
	Type     models.TransactionType
	Amount   float64
	Category string
	Note     string
	Date     time.Time
}

// TransactionUpdate holds an arbitrary partial-field set for updating a
// transaction. Nil fields are left untouched; the merged result is
// re-validated before it is persisted.
type TransactionUpdate struct {
	Type     *models.TransactionType
	Amount   *float64
	Category *string
	Note     *string
	Date     *time.Time
}

// TransactionServicer defines the contract for the transaction store.
type TransactionServicer interface {
	ListTransactions() ([]models.Transaction, error)
	CreateTransaction(input TransactionInput) (*models.Transaction, error)
	UpdateTransaction(id string, update TransactionUpdate) (*models.Transaction, error)
	DeleteTransaction(id string) error
}

package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "github.com/gabrielrealm08/finance-tracker-app/internal/errors"
	"github.com/gabrielrealm08/finance-tracker-app/internal/models"
)

// transactionService is the gorm-backed transaction store. It is the single
// writer and source of truth; clients hold only a read-through cache.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// ListTransactions returns all transactions ordered by date descending.
// Equal dates fall back to id descending; UUIDv7 ids are time-ordered, so
// that is creation order, newest first.
func (s *transactionService) ListTransactions() ([]models.Transaction, error) {
	transactions := make([]models.Transaction, 0)
	if err := s.db.Order("date DESC, id DESC").Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// CreateTransaction validates the input, assigns an id and timestamps, and
// persists the record. The store-level amount constraint is >= 0, looser
// than the handler's presence check.
func (s *transactionService) CreateTransaction(input TransactionInput) (*models.Transaction, error) {
	transaction := &models.Transaction{
		Type:     input.Type,
		Amount:   input.Amount,
		Category: strings.TrimSpace(input.Category),
		Note:     strings.TrimSpace(input.Note),
		Date:     input.Date,
	}

	if err := validateTransaction(transaction); err != nil {
		return nil, err
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return transaction, nil
}

// UpdateTransaction merges the provided fields into the existing record,
// re-validates the merged result, and persists it. The id and creation
// timestamp are immutable; updatedAt is refreshed by gorm on save.
func (s *transactionService) UpdateTransaction(id string, update TransactionUpdate) (*models.Transaction, error) {
	transaction, err := s.getByID(id)
	if err != nil {
		return nil, err
	}

	if update.Type != nil {
		transaction.Type = *update.Type
	}
	if update.Amount != nil {
		transaction.Amount = *update.Amount
	}
	if update.Category != nil {
		transaction.Category = strings.TrimSpace(*update.Category)
	}
	if update.Note != nil {
		transaction.Note = strings.TrimSpace(*update.Note)
	}
	if update.Date != nil {
		transaction.Date = *update.Date
	}

	if err := validateTransaction(transaction); err != nil {
		return nil, err
	}

	if err := s.db.Save(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return transaction, nil
}

// DeleteTransaction removes the record permanently. No soft delete.
func (s *transactionService) DeleteTransaction(id string) error {
	transaction, err := s.getByID(id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(transaction).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return nil
}

func (s *transactionService) getByID(id string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Where("id = ?", id).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// validateTransaction enforces the store-level invariants on a record about
// to be persisted: a known type, a non-negative amount, a non-empty trimmed
// category, and a date.
func validateTransaction(t *models.Transaction) error {
	if !t.Type.Valid() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "type must be income or expense")
	}
	if t.Amount < 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
	}
	if t.Category == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}
	if t.Date.IsZero() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "date is required")
	}
	return nil
}

package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gabrielrealm08/finance-tracker-app/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestTransaction creates a transaction of the given type and amount
// dated on the given day.
func CreateTestTransaction(t *testing.T, db *gorm.DB, txType models.TransactionType, amount float64, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		Type:     txType,
		Amount:   amount,
		Category: fmt.Sprintf("Test Category %d", nextID()),
		Date:     date,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// Day returns midnight UTC of the given calendar day.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

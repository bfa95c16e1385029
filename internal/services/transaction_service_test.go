package services

import (
	"testing"
	"time"

	"github.com/gabrielrealm08/finance-tracker-app/internal/models"
	"github.com/gabrielrealm08/finance-tracker-app/internal/testutil"
)

func TestCreateTransaction(t *testing.T) {
	t.Run("valid_income", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		tx, err := svc.CreateTransaction(TransactionInput{
			Type:     models.TransactionTypeIncome,
			Amount:   100,
			Category: "Salary",
			Date:     testutil.Day(2024, time.January, 1),
		})
		testutil.AssertNoError(t, err)

		if tx.ID == "" {
			t.Fatal("expected a non-empty transaction ID")
		}
		if tx.Amount != 100 {
			t.Errorf("expected amount 100, got %v", tx.Amount)
		}
		if tx.CreatedAt.IsZero() || tx.UpdatedAt.IsZero() {
			t.Error("expected timestamps to be set on create")
		}
	})

	t.Run("unique_ids", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		first, err := svc.CreateTransaction(TransactionInput{
			Type: models.TransactionTypeExpense, Amount: 1, Category: "Food", Date: testutil.Day(2024, time.March, 1),
		})
		testutil.AssertNoError(t, err)
		second, err := svc.CreateTransaction(TransactionInput{
			Type: models.TransactionTypeExpense, Amount: 2, Category: "Food", Date: testutil.Day(2024, time.March, 1),
		})
		testutil.AssertNoError(t, err)

		if first.ID == second.ID {
			t.Errorf("expected distinct ids, both were %s", first.ID)
		}
	})

	t.Run("trims_category_and_note", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		tx, err := svc.CreateTransaction(TransactionInput{
			Type:     models.TransactionTypeExpense,
			Amount:   12.5,
			Category: "  Food  ",
			Note:     "  lunch  ",
			Date:     testutil.Day(2024, time.February, 10),
		})
		testutil.AssertNoError(t, err)

		if tx.Category != "Food" {
			t.Errorf("expected trimmed category, got %q", tx.Category)
		}
		if tx.Note != "lunch" {
			t.Errorf("expected trimmed note, got %q", tx.Note)
		}
	})

	t.Run("zero_amount_allowed_at_store_level", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		_, err := svc.CreateTransaction(TransactionInput{
			Type: models.TransactionTypeExpense, Amount: 0, Category: "Food", Date: testutil.Day(2024, time.March, 1),
		})
		testutil.AssertNoError(t, err)
	})

	t.Run("negative_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		_, err := svc.CreateTransaction(TransactionInput{
			Type: models.TransactionTypeExpense, Amount: -5, Category: "Food", Date: testutil.Day(2024, time.March, 1),
		})
		testutil.AssertValidationError(t, err)
	})

	t.Run("invalid_type", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		_, err := svc.CreateTransaction(TransactionInput{
			Type: "transfer", Amount: 5, Category: "Food", Date: testutil.Day(2024, time.March, 1),
		})
		testutil.AssertValidationError(t, err)
	})

	t.Run("blank_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		_, err := svc.CreateTransaction(TransactionInput{
			Type: models.TransactionTypeExpense, Amount: 5, Category: "   ", Date: testutil.Day(2024, time.March, 1),
		})
		testutil.AssertValidationError(t, err)
	})

	t.Run("missing_date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		_, err := svc.CreateTransaction(TransactionInput{
			Type: models.TransactionTypeExpense, Amount: 5, Category: "Food",
		})
		testutil.AssertValidationError(t, err)
	})
}

func TestListTransactions(t *testing.T) {
	t.Run("empty_store", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		transactions, err := svc.ListTransactions()
		testutil.AssertNoError(t, err)

		if transactions == nil {
			t.Fatal("expected an empty slice, got nil")
		}
		if len(transactions) != 0 {
			t.Errorf("expected no transactions, got %d", len(transactions))
		}
	})

	t.Run("date_descending", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		testutil.CreateTestTransaction(t, db, models.TransactionTypeIncome, 100, testutil.Day(2024, time.January, 1))
		testutil.CreateTestTransaction(t, db, models.TransactionTypeExpense, 40, testutil.Day(2024, time.January, 2))
		testutil.CreateTestTransaction(t, db, models.TransactionTypeExpense, 10, testutil.Day(2023, time.December, 25))

		transactions, err := svc.ListTransactions()
		testutil.AssertNoError(t, err)

		if len(transactions) != 3 {
			t.Fatalf("expected 3 transactions, got %d", len(transactions))
		}
		for i := 1; i < len(transactions); i++ {
			if transactions[i].Date.After(transactions[i-1].Date) {
				t.Errorf("expected date descending order, got %v before %v",
					transactions[i-1].Date, transactions[i].Date)
			}
		}
		if transactions[0].Amount != 40 {
			t.Errorf("expected the 2024-01-02 expense first, got amount %v", transactions[0].Amount)
		}
	})

	t.Run("equal_dates_newest_first", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		day := testutil.Day(2024, time.May, 5)
		older := testutil.CreateTestTransaction(t, db, models.TransactionTypeExpense, 1, day)
		// UUIDv7 ids carry millisecond timestamps; space the creates out so
		// the tie-break reflects creation order.
		time.Sleep(2 * time.Millisecond)
		newer := testutil.CreateTestTransaction(t, db, models.TransactionTypeExpense, 2, day)

		transactions, err := svc.ListTransactions()
		testutil.AssertNoError(t, err)

		if len(transactions) != 2 {
			t.Fatalf("expected 2 transactions, got %d", len(transactions))
		}
		if transactions[0].ID != newer.ID || transactions[1].ID != older.ID {
			t.Errorf("expected newest-first for equal dates, got %s then %s", transactions[0].ID, transactions[1].ID)
		}
	})
}

func TestUpdateTransaction(t *testing.T) {
	t.Run("unknown_id", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		amount := 10.0
		_, err := svc.UpdateTransaction("00000000-0000-7000-8000-000000000000", TransactionUpdate{Amount: &amount})
		testutil.AssertNotFound(t, err)
	})

	t.Run("partial_merge", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		created := testutil.CreateTestTransaction(t, db, models.TransactionTypeExpense, 40, testutil.Day(2024, time.January, 2))

		amount := 55.0
		updated, err := svc.UpdateTransaction(created.ID, TransactionUpdate{Amount: &amount})
		testutil.AssertNoError(t, err)

		if updated.Amount != 55 {
			t.Errorf("expected amount 55, got %v", updated.Amount)
		}
		if updated.Category != created.Category {
			t.Errorf("expected category unchanged, got %q", updated.Category)
		}
		if updated.ID != created.ID {
			t.Errorf("expected id unchanged, got %s", updated.ID)
		}
		if !updated.CreatedAt.Equal(created.CreatedAt) {
			t.Errorf("expected creation timestamp unchanged, got %v", updated.CreatedAt)
		}
	})

	t.Run("zero_amount_accepted", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		created := testutil.CreateTestTransaction(t, db, models.TransactionTypeExpense, 40, testutil.Day(2024, time.January, 2))

		zero := 0.0
		updated, err := svc.UpdateTransaction(created.ID, TransactionUpdate{Amount: &zero})
		testutil.AssertNoError(t, err)

		if updated.Amount != 0 {
			t.Errorf("expected amount 0, got %v", updated.Amount)
		}

		transactions, err := svc.ListTransactions()
		testutil.AssertNoError(t, err)
		if transactions[0].Amount != 0 {
			t.Errorf("expected stored amount 0, got %v", transactions[0].Amount)
		}
	})

	t.Run("negative_amount_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		created := testutil.CreateTestTransaction(t, db, models.TransactionTypeExpense, 40, testutil.Day(2024, time.January, 2))

		amount := -1.0
		_, err := svc.UpdateTransaction(created.ID, TransactionUpdate{Amount: &amount})
		testutil.AssertValidationError(t, err)

		// The stored record is untouched on a failed merge.
		transactions, listErr := svc.ListTransactions()
		testutil.AssertNoError(t, listErr)
		if transactions[0].Amount != 40 {
			t.Errorf("expected stored amount 40 after failed update, got %v", transactions[0].Amount)
		}
	})

	t.Run("invalid_type_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		created := testutil.CreateTestTransaction(t, db, models.TransactionTypeExpense, 40, testutil.Day(2024, time.January, 2))

		bad := models.TransactionType("transfer")
		_, err := svc.UpdateTransaction(created.ID, TransactionUpdate{Type: &bad})
		testutil.AssertValidationError(t, err)
	})

	t.Run("type_flip", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		created := testutil.CreateTestTransaction(t, db, models.TransactionTypeExpense, 40, testutil.Day(2024, time.January, 2))

		income := models.TransactionTypeIncome
		updated, err := svc.UpdateTransaction(created.ID, TransactionUpdate{Type: &income})
		testutil.AssertNoError(t, err)

		if updated.Type != models.TransactionTypeIncome {
			t.Errorf("expected type income, got %s", updated.Type)
		}
	})
}

func TestDeleteTransaction(t *testing.T) {
	t.Run("unknown_id", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		err := svc.DeleteTransaction("00000000-0000-7000-8000-000000000000")
		testutil.AssertNotFound(t, err)
	})

	t.Run("delete_then_list_excludes_id", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		keep := testutil.CreateTestTransaction(t, db, models.TransactionTypeIncome, 100, testutil.Day(2024, time.January, 1))
		drop := testutil.CreateTestTransaction(t, db, models.TransactionTypeExpense, 40, testutil.Day(2024, time.January, 2))

		testutil.AssertNoError(t, svc.DeleteTransaction(drop.ID))

		transactions, err := svc.ListTransactions()
		testutil.AssertNoError(t, err)
		if len(transactions) != 1 {
			t.Fatalf("expected 1 transaction after delete, got %d", len(transactions))
		}
		if transactions[0].ID != keep.ID {
			t.Errorf("expected %s to remain, got %s", keep.ID, transactions[0].ID)
		}
	})

	t.Run("double_delete", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		tx := testutil.CreateTestTransaction(t, db, models.TransactionTypeExpense, 40, testutil.Day(2024, time.January, 2))

		testutil.AssertNoError(t, svc.DeleteTransaction(tx.ID))
		testutil.AssertNotFound(t, svc.DeleteTransaction(tx.ID))
	})
}

package ledgerclient

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
)

// Totals holds the derived sums over the current transaction cache.
type Totals struct {
	Income  float64
	Expense float64
	Balance float64
}

// Aggregate computes totals over a transaction set. Records typed "income"
// sum into Income, everything else into Expense, and Balance is the
// difference. Non-finite amounts coerce to 0 so one malformed record cannot
// corrupt the aggregate.
func Aggregate(items []Transaction) Totals {
	var totals Totals
	for _, t := range items {
		amount := t.Amount
		if math.IsNaN(amount) || math.IsInf(amount, 0) {
			amount = 0
		}
		if t.Type == "income" {
			totals.Income += amount
		} else {
			totals.Expense += amount
		}
	}
	totals.Balance = totals.Income - totals.Expense
	return totals
}

// Confirmer is the blocking confirmation prompt consulted before a delete.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(prompt string) bool

// Confirm calls f.
func (f ConfirmerFunc) Confirm(prompt string) bool { return f(prompt) }

// Form holds the raw entry form fields. Amount stays a string until submit
// so unparseable input is rejected before any network call.
type Form struct {
	Type     string
	Amount   string
	Category string
	Note     string
	Date     string
}

// NewForm returns a form populated with the entry defaults.
func NewForm() Form {
	return Form{
		Type:     "expense",
		Category: "Food",
		Date:     time.Now().Format("2006-01-02"),
	}
}

// Tracker maintains the client-side transaction state: the cached list from
// the last successful load, the entry form, the edit target, and a
// user-visible error banner. Network failures never propagate as panics;
// they surface as a banner message and leave prior state unchanged.
//
// Tracker performs at most one in-flight submit or delete at a time and is
// not safe for concurrent use.
type Tracker struct {
	client  *Client
	confirm Confirmer

	items      []Transaction
	form       Form
	editingID  string
	errMsg     string
	loading    bool
	submitting bool
	deletingID string
}

// NewTracker creates a Tracker over the given API client. The confirmer is
// consulted before every delete.
func NewTracker(client *Client, confirm Confirmer) *Tracker {
	return &Tracker{
		client:  client,
		confirm: confirm,
		form:    NewForm(),
	}
}

// Load fetches the full transaction list and replaces the cache. On failure
// the cache is left untouched and the error surfaces only as the banner
// message.
func (t *Tracker) Load(ctx context.Context) {
	t.loading = true
	t.errMsg = ""

	items, err := t.client.List(ctx)
	if err != nil {
		t.errMsg = "Failed to load transactions. Is the server running?"
	} else {
		t.items = items
	}

	t.loading = false
}

// Transactions returns a copy of the current cache.
func (t *Tracker) Transactions() []Transaction {
	out := make([]Transaction, len(t.items))
	copy(out, t.items)
	return out
}

// Totals returns the aggregate over the current cache.
func (t *Tracker) Totals() Totals {
	return Aggregate(t.items)
}

// ErrorMessage returns the current banner message, empty when none.
func (t *Tracker) ErrorMessage() string { return t.errMsg }

// Loading reports whether a list fetch is in flight.
func (t *Tracker) Loading() bool { return t.loading }

// Form returns the current entry form.
func (t *Tracker) Form() Form { return t.form }

// SetForm replaces the entry form.
func (t *Tracker) SetForm(form Form) { t.form = form }

// Editing returns the id of the record being edited, empty when none.
func (t *Tracker) Editing() string { return t.editingID }

// StartEdit loads the identified record into the form and marks it as the
// edit target. Starting an edit on a different record silently replaces the
// previous target. Returns false if the id is not in the cache.
func (t *Tracker) StartEdit(id string) bool {
	for _, item := range t.items {
		if item.ID == id {
			t.editingID = id
			t.form = Form{
				Type:     item.Type,
				Amount:   strconv.FormatFloat(item.Amount, 'f', -1, 64),
				Category: item.Category,
				Note:     item.Note,
				Date:     item.Date.Format("2006-01-02"),
			}
			return true
		}
	}
	return false
}

// CancelEdit clears the edit target and resets the form to defaults.
func (t *Tracker) CancelEdit() {
	t.editingID = ""
	t.form = NewForm()
}

// Submit validates the form and sends it to the server: an update when an
// edit is in progress, a create otherwise. Validation failures set the
// banner and never reach the network. On success the cache is reconciled
// (in-place replace for edits, prepend for creates, keeping the newest-first
// convention) and the form resets to defaults.
func (t *Tracker) Submit(ctx context.Context) error {
	if t.submitting {
		return errors.New("submit already in flight")
	}
	t.errMsg = ""

	amount, err := strconv.ParseFloat(strings.TrimSpace(t.form.Amount), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return t.fail("Amount must be a number greater than 0.")
	}
	category := strings.TrimSpace(t.form.Category)
	if category == "" {
		return t.fail("Category is required.")
	}
	if t.form.Date == "" {
		return t.fail("Date is required.")
	}

	payload := Payload{
		Type:     t.form.Type,
		Amount:   amount,
		Category: category,
		Note:     strings.TrimSpace(t.form.Note),
		Date:     t.form.Date,
	}

	t.submitting = true
	defer func() { t.submitting = false }()

	if t.editingID != "" {
		updated, err := t.client.Update(ctx, t.editingID, payload)
		if err != nil {
			t.errMsg = "Failed to save transaction."
			return err
		}
		for i, item := range t.items {
			if item.ID == t.editingID {
				t.items[i] = *updated
				break
			}
		}
		t.editingID = ""
	} else {
		created, err := t.client.Create(ctx, payload)
		if err != nil {
			t.errMsg = "Failed to save transaction."
			return err
		}
		t.items = append([]Transaction{*created}, t.items...)
	}

	t.form = NewForm()
	return nil
}

// Remove asks for confirmation, then deletes the identified record and drops
// it from the cache. If the record was mid-edit, the edit is cancelled.
// A declined confirmation is a silent no-op.
func (t *Tracker) Remove(ctx context.Context, id string) error {
	if t.deletingID != "" {
		return errors.New("delete already in flight")
	}
	if !t.confirm.Confirm("Delete this transaction?") {
		return nil
	}

	t.deletingID = id
	defer func() { t.deletingID = "" }()
	t.errMsg = ""

	if err := t.client.Delete(ctx, id); err != nil {
		t.errMsg = "Failed to delete transaction."
		return err
	}

	filtered := t.items[:0:0]
	for _, item := range t.items {
		if item.ID != id {
			filtered = append(filtered, item)
		}
	}
	t.items = filtered

	if t.editingID == id {
		t.CancelEdit()
	}
	return nil
}

// fail records a validation message on the banner and returns it as an error.
func (t *Tracker) fail(msg string) error {
	t.errMsg = msg
	return errors.New(msg)
}

package testutil

import (
	"errors"
	"testing"

	apperrors "github.com/gabrielrealm08/finance-tracker-app/internal/errors"
)

// AssertAppError fails unless err unwraps to an *AppError carrying the given
// code. A code mismatch reports the status and message too, so taxonomy
// mix-ups (VALIDATION_ERROR vs MISSING_FIELDS, NOT_FOUND vs INTERNAL_ERROR)
// are obvious from the failure.
func AssertAppError(t *testing.T, err error, code string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected %s error, got nil", code)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != code {
		t.Errorf("got code %q (status %d, message %q), want %q",
			appErr.Code, appErr.StatusCode, appErr.Message, code)
	}
}

// AssertValidationError asserts the store rejected the input.
func AssertValidationError(t *testing.T, err error) {
	t.Helper()
	AssertAppError(t, err, apperrors.ErrInvalidInput.Code)
}

// AssertNotFound asserts the id failed to resolve.
func AssertNotFound(t *testing.T, err error) {
	t.Helper()
	AssertAppError(t, err, apperrors.ErrTransactionNotFound.Code)
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

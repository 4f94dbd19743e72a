package stockbook

import (
	"errors"
	"fmt"
)

// Sentinel errors for ledger operations. Callers match them with errors.Is.
var (
	// ErrNotFound reports an operation referencing an unknown stock item id.
	ErrNotFound = errors.New("stock item not found")

	// ErrInsufficientStock reports a sale quantity exceeding the item's
	// current stock. The ledger is left untouched.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ValidationError reports malformed or out-of-range input: an empty required
// field, a non-numeric price, a negative quantity. The operation is rejected
// before any state change.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalidf(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

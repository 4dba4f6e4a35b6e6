package accounting

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// MappingIntegrityError reports a mapping row whose ledger account reference
// can no longer be resolved. This is a data-integrity fault, not a normal
// absence: callers must never treat a partial result as complete.
type MappingIntegrityError struct {
	RowID     uuid.UUID
	ProductID uuid.UUID
	Reason    string
}

// Error implements the error interface
func (e *MappingIntegrityError) Error() string {
	return fmt.Sprintf("mapping integrity fault for product %s (row %s): %s", e.ProductID, e.RowID, e.Reason)
}

// StorageUnavailableError wraps a failure of the underlying mapping store.
// The engine performs no retries; the wrapped cause is surfaced unchanged.
type StorageUnavailableError struct {
	Err error
}

// Error implements the error interface
func (e *StorageUnavailableError) Error() string {
	return fmt.Sprintf("mapping store unavailable: %v", e.Err)
}

// Unwrap returns the underlying storage error
func (e *StorageUnavailableError) Unwrap() error {
	return e.Err
}

// wrapStorageErr wraps reader failures, leaving already-classified storage
// errors untouched.
func wrapStorageErr(err error) error {
	var unavailable *StorageUnavailableError
	if errors.As(err, &unavailable) {
		return err
	}
	return &StorageUnavailableError{Err: err}
}

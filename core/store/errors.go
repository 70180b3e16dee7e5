package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no record exists for an ID or name.
	ErrNotFound = errors.New("item not found in store")
	// ErrInvalidItem is returned when a record cannot be stored (e.g. non-positive ID).
	ErrInvalidItem = errors.New("invalid item record")
	// ErrInvalidField is returned by SetField for unknown fields or mistyped values.
	ErrInvalidField = errors.New("invalid field")
)

// StorageError reports a persistence failure. The in-memory store keeps the
// last successfully persisted state when it is returned.
type StorageError struct {
	Op  string
	ID  int
	Err error
}

func (e *StorageError) Error() string {
	if e.ID > 0 {
		return fmt.Sprintf("store %s item %d: %v", e.Op, e.ID, e.Err)
	}
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsStorageError reports whether err carries a StorageError.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}

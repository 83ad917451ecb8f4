package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a referenced row does not exist at operation time.
var ErrNotFound = errors.New("not found")

// ValidationError rejects bad input before any write reaches the store.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return e.Field + ": " + e.Msg
}

// ConflictError blocks a mutation that would break a referential guard.
// Products carries the blocking count so callers can render a specific message.
type ConflictError struct {
	Products int64
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("cannot delete brand with %d products", e.Products)
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a schedule, setting or record does not exist
	// or does not belong to the requesting user.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when an identical schedule already exists.
	ErrConflict = errors.New("conflict")
)

// ValidationError describes input rejected before persistence. It is never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// NewValidationError builds a ValidationError for field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err carries a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// DeliveryError is a failed send. Terminal errors are permanent rejections by
// the provider (invalid token, unknown recipient); the rest are transient.
type DeliveryError struct {
	Channel  string
	Terminal bool
	Err      error
}

func (e *DeliveryError) Error() string {
	kind := "transient"
	if e.Terminal {
		kind = "terminal"
	}
	return fmt.Sprintf("%s delivery failed (%s): %v", e.Channel, kind, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// Transient wraps err as a retryable delivery failure.
func Transient(channel string, err error) error {
	return &DeliveryError{Channel: channel, Err: err}
}

// Terminal wraps err as a permanent delivery failure.
func Terminal(channel string, err error) error {
	return &DeliveryError{Channel: channel, Terminal: true, Err: err}
}

// IsTerminal reports whether retrying err is pointless. Validation errors are
// terminal too: the stored config will not become valid on its own.
func IsTerminal(err error) bool {
	var de *DeliveryError
	if errors.As(err, &de) {
		return de.Terminal
	}
	return IsValidation(err)
}

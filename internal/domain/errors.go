package domain

import (
	"errors"
	"fmt"
)

// ErrNoAPIKey indicates the upstream credential is not configured. Fatal for
// any fetch attempt; checked before network I/O.
var ErrNoAPIKey = errors.New("aviationstack API key not configured")

// ValidationError reports missing or malformed caller input. Terminal for the
// request; never triggers an upstream call.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// UpstreamError reports a failed aviationstack call: transport error, non-OK
// status, or a body without the expected data list. Surfaced to the caller
// without retry.
type UpstreamError struct {
	Status int // HTTP status if a response was received, 0 otherwise
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("aviationstack: status %d: %v", e.Status, e.Err)
	}
	return fmt.Sprintf("aviationstack: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

package models

import "errors"

// Error kinds surfaced by the core. Callers match them with errors.Is;
// the HTTP layer maps them onto status codes so configuration errors,
// user-input errors and policy errors stay distinguishable.
var (
	// ErrInvalidFormat marks unparsable time text.
	ErrInvalidFormat = errors.New("invalid time format")

	// ErrInvalidRange marks a range with start >= end, or a pause/split
	// that violates containment.
	ErrInvalidRange = errors.New("invalid time range")

	// ErrUnavailable marks an assignment against a day the employee
	// declared unavailable, absent an explicit override.
	ErrUnavailable = errors.New("employee unavailable")

	// ErrInvalidTransition marks a state-machine transition attempted
	// from a terminal or inapplicable state.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrNotFound marks an unknown employee, request or guard id.
	ErrNotFound = errors.New("not found")
)

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the parser, registries, and session service.
// Callers branch on these with errors.Is; user-facing text comes from
// MapError.
var (
	// ErrInsufficientRows means the paste had no header line or no data
	// lines after it.
	ErrInsufficientRows = errors.New("insufficient rows: need a header line and at least one data line")

	// ErrNoValidRows means every data row was skipped during parsing.
	ErrNoValidRows = errors.New("no valid rows in input")

	// ErrInputTooLarge means the pasted text exceeded the configured limit.
	ErrInputTooLarge = errors.New("input too large")

	// ErrUnknownSchema means the requested input schema is not registered.
	ErrUnknownSchema = errors.New("unknown input schema")

	// ErrUnknownProfile means the requested format profile is not registered.
	ErrUnknownProfile = errors.New("unknown format profile")

	// ErrSessionNotFound means the session id does not exist or has expired.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionFull means adding records would exceed the per-session limit.
	ErrSessionFull = errors.New("session record limit reached")

	// ErrRecordNotFound means the record id does not exist in the session.
	ErrRecordNotFound = errors.New("record not found")

	// ErrInvalidQuantity means a caller supplied a negative label quantity.
	ErrInvalidQuantity = errors.New("quantity must be zero or greater")

	// ErrEmptyField means a required record field was empty after cleaning.
	ErrEmptyField = errors.New("required field is empty")

	// ErrRateLimited means the client exhausted its request budget.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// MissingColumnError reports the first required column header absent from
// the pasted table, checked in code, description, quantity order.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing column %q", e.Column)
}

// ProfileMismatchError means a format profile is internally inconsistent
// and encoding was refused rather than emitting a document the printer
// would misrender.
type ProfileMismatchError struct {
	Profile string
	Reason  string
}

func (e *ProfileMismatchError) Error() string {
	if e.Profile == "" {
		return fmt.Sprintf("profile mismatch: %s", e.Reason)
	}
	return fmt.Sprintf("profile mismatch in %s: %s", e.Profile, e.Reason)
}

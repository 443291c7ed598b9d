// Package common defines shared constants and sentinel errors used across
// veriscan client components. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Store-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Transport errors (no response received from the remote service).
	ErrUnavailable = errors.New("service unavailable")

	// Submission flow errors.
	ErrSubmissionInFlight = errors.New("submission already in flight")
)

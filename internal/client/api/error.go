package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/veriscan/veriscan-go/internal/common"
)

// StatusError is returned when the remote service responds with a non-2xx
// status. Detail carries the server-provided message, when present.
type StatusError struct {
	Status int
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("remote service: %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("remote service: %d", e.Status)
}

// Unwrap maps unauthorized responses onto the shared sentinel so callers can
// match with errors.Is(err, common.ErrorUnauthorized).
func (e *StatusError) Unwrap() error {
	if e.Status == http.StatusUnauthorized {
		return common.ErrorUnauthorized
	}
	return nil
}

// Detail extracts the server-provided message from err, falling back to
// fallback when the error carries none (e.g. a transport failure).
func Detail(err error, fallback string) string {
	var se *StatusError
	if errors.As(err, &se) && se.Detail != "" {
		return se.Detail
	}
	return fallback
}

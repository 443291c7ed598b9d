// Package common contains shared constants and sentinel errors used across
// veriscan components.
package common

// AuthHeaderName is the HTTP header used to carry the bearer credential on
// outbound requests.
const AuthHeaderName = "Authorization"

// RequestIDHeaderName carries a per-request correlation ID, attached by the
// client and echoed in logs.
const RequestIDHeaderName = "X-Request-ID"

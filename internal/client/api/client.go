// Package api contains the client for the remote verification service.
// This file defines the transport-agnostic Client interface; http.go holds
// the REST implementation.
package api

import (
	"context"
	"io"

	"github.com/veriscan/veriscan-go/internal/client/models"
)

// Client defines all operations of the remote verification service.
//
// Contract:
//   - Register: create a new user account (does not establish a session).
//   - Login: exchange credentials for an opaque access token.
//   - Me: fetch the profile of the authenticated user.
//   - UpdateProfile / ValidatePassword / ChangePassword: profile maintenance.
//   - DetectText / DetectImage / DetectVideo: submit a sample for
//     classification; the returned record carries the verdict.
//   - Results: fetch a bounded page of past verification records.
//   - Stats: fetch the aggregate verification counts.
//   - Contact: send a contact-form message (unauthenticated).
//
// All methods must honor context cancellation/timeouts. Failures are
// reported as *StatusError (server responded) or wrap
// common.ErrUnavailable (no response).
type Client interface {
	Register(ctx context.Context, email, password, fullName string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	Me(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, fullName string) (*models.User, error)
	ValidatePassword(ctx context.Context, currentPassword string) error
	ChangePassword(ctx context.Context, currentPassword, newPassword string) error
	DetectText(ctx context.Context, text string) (*models.VerificationRecord, error)
	DetectImage(ctx context.Context, fileName string, data io.Reader) (*models.VerificationRecord, error)
	DetectVideo(ctx context.Context, fileName string, data io.Reader) (*models.VerificationRecord, error)
	Results(ctx context.Context, limit, skip int) ([]models.VerificationRecord, error)
	Stats(ctx context.Context) (*models.Stats, error)
	Contact(ctx context.Context, name, email, message string) error
}

// TokenSource supplies the bearer credential attached to authenticated
// requests. The session store is the only implementation; everything else
// reads the credential through this interface and never writes it.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

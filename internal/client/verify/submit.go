// Package verify orchestrates detection submissions: one in-flight request
// per Submitter, media handling for image/video uploads, and classification
// of failures into the caller-facing outcomes.
package verify

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/veriscan/veriscan-go/internal/client/api"
	"github.com/veriscan/veriscan-go/internal/client/models"
	"github.com/veriscan/veriscan-go/internal/common"
	"github.com/veriscan/veriscan-go/internal/filex"
)

// Upload size limits enforced client-side, matching the remote service.
const (
	MaxImageSize = 10 << 20  // 10MB
	MaxVideoSize = 100 << 20 // 100MB
)

// ErrAuthRequired reports that the submission was rejected as unauthorized.
// Callers must present an actionable "please sign in" message for it, never
// a generic failure.
var ErrAuthRequired = errors.New("please sign in to verify content")

// SubmissionError reports any other submission failure, carrying the
// server-provided detail (or a generic fallback).
type SubmissionError struct {
	Detail string
}

func (e *SubmissionError) Error() string {
	return e.Detail
}

// Submitter issues detection requests. Exactly one submission may be in
// flight per Submitter at a time; a second submission is refused up front
// with common.ErrSubmissionInFlight, before any request is issued.
type Submitter struct {
	client   api.Client
	inFlight atomic.Bool
}

func NewSubmitter(client api.Client) *Submitter {
	return &Submitter{client: client}
}

// Pending reports whether a submission is currently in flight.
func (s *Submitter) Pending() bool {
	return s.inFlight.Load()
}

// SubmitText sends a text sample for classification.
func (s *Submitter) SubmitText(ctx context.Context, text string) (*models.VerificationRecord, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, common.ErrSubmissionInFlight
	}
	defer s.inFlight.Store(false)

	rec, err := s.client.DetectText(ctx, text)
	if err != nil {
		return nil, classify(err)
	}
	return rec, nil
}

// SubmitFile sends the media file at path for classification. kind must be
// KindImage or KindVideo. The file contents are streamed into the request
// and not retained afterwards.
func (s *Submitter) SubmitFile(ctx context.Context, kind models.ContentKind, path string) (*models.VerificationRecord, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, common.ErrSubmissionInFlight
	}
	defer s.inFlight.Store(false)

	var maxSize int64
	switch kind {
	case models.KindImage:
		maxSize = MaxImageSize
	case models.KindVideo:
		maxSize = MaxVideoSize
	case models.KindText:
		return nil, fmt.Errorf("text samples are submitted with SubmitText")
	default:
		return nil, fmt.Errorf("unknown content kind %q", kind)
	}

	if _, err := filex.CheckUploadFile(path, maxSize); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	var rec *models.VerificationRecord
	switch kind {
	case models.KindImage:
		rec, err = s.client.DetectImage(ctx, filepath.Base(path), f)
	case models.KindVideo:
		rec, err = s.client.DetectVideo(ctx, filepath.Base(path), f)
	}
	if err != nil {
		return nil, classify(err)
	}
	return rec, nil
}

// classify maps a transport-level failure onto the submission outcome
// taxonomy: unauthorized becomes ErrAuthRequired, everything else a
// SubmissionError with the server detail or a generic fallback.
func classify(err error) error {
	if errors.Is(err, common.ErrorUnauthorized) {
		return ErrAuthRequired
	}
	return &SubmissionError{Detail: api.Detail(err, "Verification failed. Please try again.")}
}

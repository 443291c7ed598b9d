package models

import "time"

// VerificationRecord is the stored outcome of one detection request.
// Records are immutable once retrieved: the activity cache replaces them
// wholesale on refresh and never mutates them in place.
type VerificationRecord struct {
	ID         string      `json:"id"`
	Type       ContentKind `json:"type"`
	Result     bool        `json:"result"` // true = AI-generated
	Confidence float64     `json:"confidence"`
	Content    string      `json:"content,omitempty"`
	Timestamp  time.Time   `json:"timestamp"`
}

// Label returns the classification label used for search matching and
// display: "ai" for AI-generated content, "human" otherwise.
func (r VerificationRecord) Label() string {
	if r.Result {
		return "ai"
	}
	return "human"
}

// ConfidencePercent returns the confidence as a rounded whole percentage.
func (r VerificationRecord) ConfidencePercent() int {
	return int(r.Confidence*100 + 0.5)
}

// Package models defines the client-side data model: content kinds,
// verification records, user profiles, and aggregate stats. All JSON shapes
// match the remote verification service wire format.
package models

import "fmt"

// ContentKind is the closed set of content types the verification service
// accepts. Consumption sites must handle every value exhaustively; unknown
// strings are rejected at the parsing boundary.
type ContentKind string

const (
	KindText  ContentKind = "text"
	KindImage ContentKind = "image"
	KindVideo ContentKind = "video"
)

// Kinds lists all valid content kinds in display order.
func Kinds() []ContentKind {
	return []ContentKind{KindText, KindImage, KindVideo}
}

// ParseContentKind converts a raw string into a ContentKind.
func ParseContentKind(s string) (ContentKind, error) {
	switch ContentKind(s) {
	case KindText, KindImage, KindVideo:
		return ContentKind(s), nil
	default:
		return "", fmt.Errorf("unknown content kind %q", s)
	}
}

func (k ContentKind) String() string {
	return string(k)
}

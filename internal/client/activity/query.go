// Package activity turns the cached snapshot of verification records into a
// filtered, searched, and paginated view. The view computation is a pure
// function over explicit inputs so it stays deterministic and race-free; the
// Engine around it owns the snapshot cache and the query state.
package activity

import (
	"strings"

	"github.com/veriscan/veriscan-go/internal/client/models"
)

// FilterAll selects every content kind. Any other filter value is one of the
// models.ContentKind names.
const FilterAll = "all"

// PageSizes are the selectable page sizes, smallest first.
var PageSizes = []int{10, 20, 50, 100}

// DefaultPageSize is used until the user picks another size.
const DefaultPageSize = 10

// QueryState addresses one page of the filtered snapshot. It lives for the
// lifetime of the activity view and is never persisted.
type QueryState struct {
	Filter    string // FilterAll or a content kind name
	Search    string
	PageIndex int
	PageSize  int
}

// NewQueryState returns the initial query: all kinds, no search, first page.
func NewQueryState() QueryState {
	return QueryState{Filter: FilterAll, PageSize: DefaultPageSize}
}

// View is the computed result of applying a QueryState to the snapshot.
type View struct {
	Visible    []models.VerificationRecord
	TotalCount int
	TotalPages int
}

// matches reports whether a record passes the filter and search predicates:
// the kind must equal the filter (unless FilterAll), and a non-empty search
// must be a case-insensitive substring of either the kind name or the
// classification label ("ai"/"human").
func matches(r models.VerificationRecord, q QueryState) bool {
	if q.Filter != FilterAll && string(r.Type) != q.Filter {
		return false
	}
	search := strings.ToLower(strings.TrimSpace(q.Search))
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(string(r.Type)), search) ||
		strings.Contains(r.Label(), search)
}

// ComputeView applies q to cache and returns the addressed page along with
// the filtered totals. It is pure: identical inputs always yield identical
// output, and it performs no I/O. A non-positive PageSize is treated as
// DefaultPageSize so a zero-value QueryState stays safe.
func ComputeView(cache []models.VerificationRecord, q QueryState) View {
	if q.PageSize <= 0 {
		q.PageSize = DefaultPageSize
	}
	filtered := make([]models.VerificationRecord, 0, len(cache))
	for _, r := range cache {
		if matches(r, q) {
			filtered = append(filtered, r)
		}
	}

	total := len(filtered)
	pages := (total + q.PageSize - 1) / q.PageSize

	start := q.PageIndex * q.PageSize
	if start > total {
		start = total
	}
	end := start + q.PageSize
	if end > total {
		end = total
	}

	return View{
		Visible:    filtered[start:end],
		TotalCount: total,
		TotalPages: pages,
	}
}

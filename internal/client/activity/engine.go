package activity

import (
	"context"
	"fmt"
	"sync"

	"github.com/veriscan/veriscan-go/internal/client/api"
	"github.com/veriscan/veriscan-go/internal/client/models"
	"github.com/veriscan/veriscan-go/internal/logging"
)

// DefaultSnapshotLimit bounds how many records one refresh retrieves. The
// remote service does not filter or paginate for us, so the engine works on
// a bounded point-in-time snapshot and queries it locally. This is a known
// scalability ceiling of the service, kept deliberately.
const DefaultSnapshotLimit = 1000

// Engine owns the snapshot cache and the current query state.
//
// Concurrency: refreshes may overlap (the user can trigger a new refresh
// while an earlier one is still pending). Each refresh is tagged with a
// monotonically increasing sequence at issue time; a response whose tag is
// no longer the newest is discarded, so a slow early response can never
// overwrite a fresher snapshot.
type Engine struct {
	client api.Client
	log    logging.Logger
	limit  int

	mu       sync.Mutex
	cache    []models.VerificationRecord
	query    QueryState
	fetchSeq uint64 // tag of the most recently issued refresh
}

// NewEngine creates an Engine fetching at most limit records per refresh.
// A non-positive limit falls back to DefaultSnapshotLimit.
func NewEngine(client api.Client, limit int, log logging.Logger) *Engine {
	if limit <= 0 {
		limit = DefaultSnapshotLimit
	}
	return &Engine{client: client, log: log, limit: limit, query: NewQueryState()}
}

// Refresh fetches a fresh snapshot and replaces the cache wholesale. On
// failure the previous cache is left untouched and the error is returned.
// A refresh superseded by a newer one discards its response silently.
func (e *Engine) Refresh(ctx context.Context) error {
	e.mu.Lock()
	e.fetchSeq++
	seq := e.fetchSeq
	e.mu.Unlock()

	records, err := e.client.Results(ctx, e.limit, 0)
	if err != nil {
		return fmt.Errorf("refresh activity: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if seq != e.fetchSeq {
		e.log.Debug(ctx, "stale refresh discarded", "seq", seq, "latest", e.fetchSeq)
		return nil
	}
	e.cache = records
	return nil
}

// SetFilter selects a content kind (or FilterAll) and rewinds to the first
// page, since the addressable page set changes.
func (e *Engine) SetFilter(filter string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.query.Filter = filter
	e.query.PageIndex = 0
}

// SetSearch replaces the search query and rewinds to the first page.
func (e *Engine) SetSearch(search string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.query.Search = search
	e.query.PageIndex = 0
}

// SetPageSize switches to one of PageSizes and rewinds to the first page.
// Other sizes are rejected.
func (e *Engine) SetPageSize(size int) error {
	valid := false
	for _, s := range PageSizes {
		if s == size {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid page size %d (choose one of %v)", size, PageSizes)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.query.PageSize = size
	e.query.PageIndex = 0
	return nil
}

// SetPage moves to the given zero-based page. Only the page index changes.
func (e *Engine) SetPage(index int) error {
	if index < 0 {
		return fmt.Errorf("page index must not be negative")
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.query.PageIndex = index
	return nil
}

// Query returns the current query state.
func (e *Engine) Query() QueryState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.query
}

// View computes the current page over the cached snapshot.
func (e *Engine) View() View {
	e.mu.Lock()
	cache, q := e.cache, e.query
	e.mu.Unlock()
	return ComputeView(cache, q)
}

// HasRecords reports whether the raw snapshot (pre-filter) holds anything,
// letting the view distinguish "nothing retrieved yet" from "filters matched
// nothing".
func (e *Engine) HasRecords() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.cache) > 0
}

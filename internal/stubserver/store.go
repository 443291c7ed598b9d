// Package stubserver is an in-memory implementation of the remote
// verification service API. It backs local development (cmd/stubserver) and
// the client's integration tests; the real service is a separate system.
package stubserver

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/veriscan/veriscan-go/internal/client/models"
)

type user struct {
	ID           string
	Email        string
	FullName     string
	PasswordHash []byte
	CreatedAt    time.Time
}

type storedResult struct {
	models.VerificationRecord
	UserID string
}

// memStore holds all server state behind one mutex. Good enough for a test
// double; durability is a non-goal here.
type memStore struct {
	mu      sync.Mutex
	users   map[string]*user // keyed by ID
	byEmail map[string]*user
	results []storedResult
}

func newMemStore() *memStore {
	return &memStore{
		users:   map[string]*user{},
		byEmail: map[string]*user{},
	}
}

func (m *memStore) createUser(email, fullName string, passwordHash []byte) (*user, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.byEmail[email]; exists {
		return nil, false
	}
	u := &user{
		ID:           uuid.NewString(),
		Email:        email,
		FullName:     fullName,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	m.users[u.ID] = u
	m.byEmail[email] = u
	return u, true
}

func (m *memStore) userByEmail(email string) (*user, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byEmail[email]
	return u, ok
}

func (m *memStore) userByID(id string) (*user, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	return u, ok
}

func (m *memStore) updateUser(id string, mutate func(*user)) (*user, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, false
	}
	mutate(u)
	return u, true
}

func (m *memStore) addResult(userID string, rec models.VerificationRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, storedResult{VerificationRecord: rec, UserID: userID})
}

// resultsFor returns the user's records newest-first, honoring limit/skip.
func (m *memStore) resultsFor(userID string, limit, skip int) []models.VerificationRecord {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.VerificationRecord
	for _, r := range m.results {
		if r.UserID == userID {
			out = append(out, r.VerificationRecord)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })

	if skip >= len(out) {
		return []models.VerificationRecord{}
	}
	out = out[skip:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out
}

func (m *memStore) statsFor(userID string) models.Stats {
	m.mu.Lock()
	defer m.mu.Unlock()

	var s models.Stats
	for _, r := range m.results {
		if r.UserID != userID {
			continue
		}
		s.Total++
		if r.Result {
			s.AIDetected++
		} else {
			s.HumanDetected++
		}
		switch r.Type {
		case models.KindText:
			s.TextCount++
		case models.KindImage:
			s.ImageCount++
		case models.KindVideo:
			s.VideoCount++
		}
	}
	return s
}

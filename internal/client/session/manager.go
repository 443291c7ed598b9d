// Package session implements the session lifecycle: it owns the access
// token, the user profile, and the loading state the route guards observe.
// Every session mutation funnels through Manager; it is the single writer of
// the persisted credential store.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/veriscan/veriscan-go/internal/client/api"
	"github.com/veriscan/veriscan-go/internal/client/models"
	"github.com/veriscan/veriscan-go/internal/client/store"
	"github.com/veriscan/veriscan-go/internal/logging"
)

// Manager owns the authenticated session state.
//
// Invariant: IsAuthenticated() ⇔ a token is held AND a profile is populated.
//
// Concurrency: all state is guarded by mu. Async results (the initial
// profile fetch in particular) are applied only when the session generation
// captured at issue time still matches, so a logout can never be undone by a
// late-arriving response.
type Manager struct {
	client api.Client
	store  store.Store
	log    logging.Logger

	mu         sync.Mutex
	token      string
	user       *models.User
	loading    bool
	generation uint64
}

// NewManager constructs a Manager in the loading state. Call Init to restore
// a persisted session; the loading state resolves when Init returns.
func NewManager(client api.Client, st store.Store, log logging.Logger) *Manager {
	return &Manager{client: client, store: st, log: log, loading: true}
}

// Loading reports whether the initial session restore is still in flight.
func (m *Manager) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

// IsAuthenticated reports whether both a token and a profile are present.
func (m *Manager) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token != "" && m.user != nil
}

// CurrentUser returns a copy of the authenticated user's profile, or nil.
func (m *Manager) CurrentUser() *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

// Init restores the session persisted in the local store. With no stored
// token the session simply resolves unauthenticated. With a token, the
// profile is fetched from the remote service; any failure tears the session
// down completely so an expired token never leaves it half-populated.
// The loading state resolves on return, in every path.
func (m *Manager) Init(ctx context.Context) {
	defer m.resolveLoading()

	value, err := m.store.Get(ctx, store.KeyToken)
	if err != nil {
		m.log.Error(ctx, "session restore: read store", "err", err)
		return
	}
	if len(value) == 0 {
		m.log.Debug(ctx, "session restore: no persisted token")
		return
	}

	gen := m.adoptToken(string(value))

	user, err := m.client.Me(ctx)
	if err != nil {
		m.log.Warn(ctx, "session restore: profile fetch failed, logging out", "err", err)
		m.Logout(ctx)
		return
	}
	if !m.applyUser(ctx, gen, user) {
		m.log.Debug(ctx, "session restore: discarded, session superseded")
		return
	}
	m.log.Info(ctx, "session restored", "user", user.Email)
}

// Login exchanges credentials for a token, persists it, and fetches the
// profile. Success is reported only once the profile is populated; on any
// failure the session is left (or torn back down to) unauthenticated and no
// partial state survives.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	token, err := m.client.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	if err := m.store.Set(ctx, store.KeyToken, []byte(token)); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	gen := m.adoptToken(token)

	user, err := m.client.Me(ctx)
	if err != nil {
		m.Logout(ctx)
		return fmt.Errorf("login: fetch profile: %w", err)
	}
	if !m.applyUser(ctx, gen, user) {
		return fmt.Errorf("login: session superseded")
	}
	return nil
}

// Register creates an account and then logs in with the same credentials;
// registration by itself never establishes a session.
func (m *Manager) Register(ctx context.Context, email, password, fullName string) error {
	if _, err := m.client.Register(ctx, email, password, fullName); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return m.Login(ctx, email, password)
}

// Logout clears the in-memory and persisted session state. It is idempotent
// and bumps the session generation so in-flight fetches cannot resurrect the
// torn-down session.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	m.generation++
	m.token = ""
	m.user = nil
	m.mu.Unlock()

	if err := m.store.Clear(ctx); err != nil {
		m.log.Error(ctx, "logout: clear store", "err", err)
	}
}

// UpdateProfile changes the user's display name and refreshes the cached
// profile.
func (m *Manager) UpdateProfile(ctx context.Context, fullName string) error {
	m.mu.Lock()
	gen := m.generation
	m.mu.Unlock()

	user, err := m.client.UpdateProfile(ctx, fullName)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if !m.applyUser(ctx, gen, user) {
		return fmt.Errorf("update profile: session superseded")
	}
	return nil
}

// ValidatePassword checks the current password against the remote service.
func (m *Manager) ValidatePassword(ctx context.Context, currentPassword string) error {
	return m.client.ValidatePassword(ctx, currentPassword)
}

// ChangePassword sets a new password after the current one is verified
// server-side.
func (m *Manager) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	return m.client.ChangePassword(ctx, currentPassword, newPassword)
}

func (m *Manager) resolveLoading() {
	m.mu.Lock()
	m.loading = false
	m.mu.Unlock()
}

// adoptToken installs the token in memory and returns the generation the
// caller must present when applying the follow-up profile fetch.
func (m *Manager) adoptToken(token string) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return m.generation
}

// applyUser installs the fetched profile and persists it, unless the session
// generation moved on since the fetch was issued.
func (m *Manager) applyUser(ctx context.Context, gen uint64, user *models.User) bool {
	m.mu.Lock()
	if m.generation != gen {
		m.mu.Unlock()
		return false
	}
	m.user = user
	m.mu.Unlock()

	data, err := json.Marshal(user)
	if err != nil {
		m.log.Error(ctx, "cache profile: marshal", "err", err)
		return true
	}
	if err := m.store.Set(ctx, store.KeyProfile, data); err != nil {
		m.log.Error(ctx, "cache profile: persist", "err", err)
	}
	return true
}

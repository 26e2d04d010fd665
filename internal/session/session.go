// Package session holds the authenticated user's identity. The session file
// is the system of record: the in-memory copy is hydrated from it at startup
// and written through on login and logout.
package session

import "sync"

// RoleAdmin gates the administrative surfaces (order watch, catalog CRUD).
// Every other role value is an ordinary customer.
const RoleAdmin = "ADMIN"

// Session is the persisted identity: exactly the token, the role and the
// display name, nothing else.
type Session struct {
	Token    string `toml:"token"`
	Role     string `toml:"role"`
	UserName string `toml:"user_name"`
}

// LoggedIn reports whether a bearer token is present.
func (s Session) LoggedIn() bool {
	return s.Token != ""
}

// IsAdmin reports whether the administrative role is active.
func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// Store persists a session across restarts.
type Store interface {
	Load() (Session, error)
	Save(Session) error
	Clear() error
}

// Manager keeps the hydrated in-memory session in sync with its Store.
// A single Manager is shared for the lifetime of the process.
type Manager struct {
	mu      sync.RWMutex
	store   Store
	current Session
}

// NewManager hydrates the in-memory session from the store.
func NewManager(store Store) (*Manager, error) {
	s, err := store.Load()
	if err != nil {
		return nil, err
	}
	return &Manager{store: store, current: s}, nil
}

// Current returns the in-memory session snapshot.
func (m *Manager) Current() Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Token implements the backend client's token source.
func (m *Manager) Token() string {
	return m.Current().Token
}

// Login replaces the session and writes it through to the store.
func (m *Manager) Login(s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Save(s); err != nil {
		return err
	}
	m.current = s
	return nil
}

// Logout discards the session in memory and in the store.
func (m *Manager) Logout() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Clear(); err != nil {
		return err
	}
	m.current = Session{}
	return nil
}

package session

import (
	"errors"

	"github.com/google/uuid"

	"github.com/ecowatch/envboard/internal/store"
)

// Key is the store key holding the boolean-ish login flag.
const Key = "session"

// ErrBadCredentials is returned when the supplied pair does not match the
// configured dashboard credentials.
var ErrBadCredentials = errors.New("invalid username or password")

// record is the persisted login flag plus the bearer token issued at login.
type record struct {
	LoggedIn bool   `json:"loggedIn"`
	Token    string `json:"token,omitempty"`
}

// Manager gates the dashboard behind a single configured credential pair.
// The login flag is persisted so a restart keeps the session.
type Manager struct {
	local    *store.Local
	username string
	password string
}

func NewManager(local *store.Local, username, password string) *Manager {
	return &Manager{local: local, username: username, password: password}
}

// Login validates the credential pair, persists the login flag, and returns a
// fresh bearer token.
func (m *Manager) Login(username, password string) (string, error) {
	if username != m.username || password != m.password {
		return "", ErrBadCredentials
	}
	rec := record{LoggedIn: true, Token: uuid.NewString()}
	if err := m.local.Put(Key, rec); err != nil {
		return "", err
	}
	return rec.Token, nil
}

// Logout clears the login flag.
func (m *Manager) Logout() error {
	return m.local.Put(Key, record{})
}

// Authenticate reports whether the token matches the active session.
func (m *Manager) Authenticate(token string) bool {
	if token == "" {
		return false
	}
	var rec record
	if err := m.local.Get(Key, &rec); err != nil {
		return false
	}
	return rec.LoggedIn && rec.Token == token
}

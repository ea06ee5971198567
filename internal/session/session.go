// Package session owns the device-local auth state: the bearer token, the
// logged-in user, the last email used, and the cached profile blob. It is the
// Go rendition of the key-value entries the app keeps on the device.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/eventosia/client/internal/api"
	"github.com/eventosia/client/internal/models"
)

// ErrNotLoggedIn means an operation needed an authenticated session.
var ErrNotLoggedIn = errors.New("not logged in")

const stateFile = "session.json"

// State is the persisted session payload.
type State struct {
	Token       string          `json:"token,omitempty"`
	User        *models.User    `json:"user,omitempty"`
	LastEmail   string          `json:"last_email,omitempty"`
	UserProfile json.RawMessage `json:"user_profile,omitempty"` // opaque blob from the profile screen
}

// Manager loads and persists session state under a state directory and
// serves the bearer token to the API client.
type Manager struct {
	path   string
	logger *zap.Logger

	mu    sync.Mutex
	state State
}

// NewManager opens (or initializes) the session under dir.
func NewManager(dir string, logger *zap.Logger) (*Manager, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	m := &Manager{path: filepath.Join(dir, stateFile), logger: logger}

	data, err := os.ReadFile(m.path)
	if errors.Is(err, os.ErrNotExist) {
		return m, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	if err := json.Unmarshal(data, &m.state); err != nil {
		// A corrupt session file is not fatal; the user logs in again.
		logger.Warn("discarding unreadable session state", zap.Error(err))
		m.state = State{}
	}
	return m, nil
}

// Token implements api.TokenSource.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Token
}

// State returns a copy of the current session state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// CurrentUser returns the logged-in user, or ErrNotLoggedIn.
func (m *Manager) CurrentUser() (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state.Token == "" || m.state.User == nil {
		return nil, ErrNotLoggedIn
	}
	u := *m.state.User
	return &u, nil
}

// Login authenticates against the API and persists the resulting session.
// The email is remembered even when authentication fails, so the login
// screen can prefill it next time.
func (m *Manager) Login(ctx context.Context, client *api.Client, email, password string) (*models.User, error) {
	m.mu.Lock()
	m.state.LastEmail = email
	m.mu.Unlock()

	result, err := client.Login(ctx, email, password)
	if err != nil {
		_ = m.save()
		return nil, err
	}

	m.mu.Lock()
	m.state.Token = result.Token
	user := result.User
	m.state.User = &user
	m.mu.Unlock()

	if err := m.save(); err != nil {
		return nil, err
	}
	m.logger.Info("logged in", zap.String("email", email))
	return &user, nil
}

// Logout clears the token and user but keeps the last email.
func (m *Manager) Logout() error {
	m.mu.Lock()
	m.state.Token = ""
	m.state.User = nil
	m.state.UserProfile = nil
	m.mu.Unlock()
	return m.save()
}

// SetUserProfile stores the opaque profile blob.
func (m *Manager) SetUserProfile(raw json.RawMessage) error {
	m.mu.Lock()
	m.state.UserProfile = raw
	m.mu.Unlock()
	return m.save()
}

// TokenExpired reports whether the stored token has an exp claim in the
// past. The client holds no signing key, so the claims are read unverified;
// the server remains the authority and still rejects bad tokens with a 401.
func (m *Manager) TokenExpired() bool {
	token := m.Token()
	if token == "" {
		return true
	}
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return true
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false // no exp claim; let the server decide
	}
	return exp.Before(time.Now())
}

// save writes the state file via a temp file rename.
func (m *Manager) save() error {
	m.mu.Lock()
	data, err := json.MarshalIndent(m.state, "", "  ")
	m.mu.Unlock()
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	tmp := m.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	if err := os.Rename(tmp, m.path); err != nil {
		return fmt.Errorf("replace session: %w", err)
	}
	return nil
}

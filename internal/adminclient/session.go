package adminclient

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// Session is the held credential. It is written only by the
// SessionManager; every other component reads it through Current.
type Session struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// SessionManager owns the credential lifecycle: login, logout, durable
// persistence across restarts, and forced teardown when the backend
// reports the credential invalid.
type SessionManager struct {
	baseURL   string
	statePath string
	http      *http.Client
	current   *Session

	// OnExpired is called after a forced teardown so the surface can
	// return to the login screen.
	OnExpired func()
}

func NewSessionManager(baseURL, statePath string) *SessionManager {
	m := &SessionManager{
		baseURL:   baseURL,
		statePath: statePath,
		http:      &http.Client{Timeout: 10 * time.Second},
	}
	m.restore()
	return m
}

func (m *SessionManager) Current() *Session {
	return m.current
}

func (m *SessionManager) Login(username, password string) (*Session, error) {
	payload, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return nil, err
	}

	resp, err := m.http.Post(m.baseURL+"/api/admin/login", "application/json", bytes.NewReader(payload))
	if err != nil {
		return nil, errors.New("connection error: could not reach server")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrInvalidCredentials
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &apiError{Status: resp.StatusCode, Message: decodeErrorMessage(resp.Body)}
	}

	var sess Session
	if err := json.NewDecoder(resp.Body).Decode(&sess); err != nil {
		return nil, err
	}
	if sess.Token == "" {
		return nil, errors.New("server returned no token")
	}

	m.current = &sess
	m.persist()
	return &sess, nil
}

func (m *SessionManager) Logout() {
	m.current = nil
	os.Remove(m.statePath)
}

// HandleUnauthorized tears the session down after any admin call
// returns 401. The triggering call already failed; nothing is retried.
func (m *SessionManager) HandleUnauthorized() {
	m.current = nil
	os.Remove(m.statePath)
	if m.OnExpired != nil {
		m.OnExpired()
	}
}

func (m *SessionManager) persist() {
	if m.statePath == "" || m.current == nil {
		return
	}
	data, err := json.Marshal(m.current)
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(m.statePath), 0o755); err != nil {
		return
	}
	os.WriteFile(m.statePath, data, 0o600)
}

func (m *SessionManager) restore() {
	if m.statePath == "" {
		return
	}
	data, err := os.ReadFile(m.statePath)
	if err != nil {
		return
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil || sess.Token == "" {
		return
	}
	m.current = &sess
}

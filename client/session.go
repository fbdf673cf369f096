package client

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"local-market/models"
	"local-market/utils"
)

// sessionData is the on-disk shape: the login flag, the serialized account
// and a device id that identifies guests across restarts.
type sessionData struct {
	LoggedIn bool         `json:"logged_in"`
	User     *models.User `json:"user,omitempty"`
	DeviceID string       `json:"device_id"`
}

// SessionStore persists login state and the device id to a JSON file. The
// device id is generated on first use and survives logouts.
type SessionStore struct {
	mu   sync.Mutex
	path string
	data sessionData
}

// OpenSession loads the session file, creating a device id if the file is
// missing or unreadable.
func OpenSession(path string) (*SessionStore, error) {
	s := &SessionStore{path: path}

	raw, err := os.ReadFile(path)
	if err == nil {
		if err := json.Unmarshal(raw, &s.data); err != nil {
			s.data = sessionData{}
		}
	}

	if s.data.DeviceID == "" {
		s.data.DeviceID = utils.GenerateDeviceID()
		if err := s.save(); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (s *SessionStore) save() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o600)
}

// SetUser records a successful login.
func (s *SessionStore) SetUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.LoggedIn = true
	s.data.User = user
	return s.save()
}

// ClearUser logs out but keeps the device id.
func (s *SessionStore) ClearUser() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.LoggedIn = false
	s.data.User = nil
	return s.save()
}

func (s *SessionStore) LoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.LoggedIn && s.data.User != nil
}

func (s *SessionStore) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.data.LoggedIn {
		return nil
	}
	return s.data.User
}

func (s *SessionStore) DeviceID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.DeviceID
}

package portal

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// Session is the client-side state that outlives a single command: the bearer
// token and the username it was issued to.
type Session struct {
	Token    string `json:"authToken"`
	Username string `json:"username"`
}

// Store persists the session between invocations. It is injected into the
// Controller so tests can run against memory while the CLI uses a file.
type Store interface {
	Get() (Session, bool)
	Set(session Session) error
	Clear() error
}

// MemoryStore keeps the session in process memory only.
type MemoryStore struct {
	mu      sync.RWMutex
	session Session
	present bool
}

// NewMemoryStore builds an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get() (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session, s.present
}

func (s *MemoryStore) Set(session Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = session
	s.present = true
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = Session{}
	s.present = false
	return nil
}

// FileStore persists the session as a JSON file so it survives process
// restarts on the same machine, like browser local storage survives a reload.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore builds a session store at the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultSessionPath returns the per-user session file location.
func DefaultSessionPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "crm-portal", "session.json"), nil
}

func (s *FileStore) Get() (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return Session{}, false
	}
	var session Session
	if err := json.Unmarshal(data, &session); err != nil || session.Token == "" {
		return Session{}, false
	}
	return session, true
}

func (s *FileStore) Set(session Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

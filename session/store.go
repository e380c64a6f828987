package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/gahanad/Blogsy-website-front/models"
)

// Session is the persisted auth state: the bearer token plus the last user
// snapshot the backend returned with it.
type Session struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Store keeps the session in memory and mirrors it to a JSON file so it
// survives restarts. An empty path disables persistence: Current and Token
// return zero values and Save/Clear become no-ops on disk. The store never
// fails on a missing or unreadable file, it just reports no session.
type Store struct {
	mu      sync.Mutex
	path    string
	current *Session
	loaded  bool
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Save replaces the session. Called only after an auth response that carried
// a token.
func (s *Store) Save(sess Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &sess
	s.loaded = true
	if s.path == "" {
		return nil
	}
	data, err := json.Marshal(&sess)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Clear drops the session. Called on explicit logout and by the HTTP client
// on any 401.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	s.loaded = true
	if s.path != "" {
		os.Remove(s.path)
	}
}

// Current returns the stored session, or nil when unauthenticated.
func (s *Store) Current() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()
	if s.current == nil {
		return nil
	}
	copied := *s.current
	return &copied
}

// Token returns the stored bearer token, or "" when unauthenticated.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()
	if s.current == nil {
		return ""
	}
	return s.current.Token
}

func (s *Store) load() {
	if s.loaded {
		return
	}
	s.loaded = true
	if s.path == "" {
		return
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil || sess.Token == "" {
		// A corrupt session file counts as no session.
		return
	}
	s.current = &sess
}

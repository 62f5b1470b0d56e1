package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"femee-arena-client/internal/model"
)

const (
	tokenFile   = "token"
	profileFile = "user.json"
)

// Session is the authenticated identity and credential held by the
// client. A non-nil Session always carries a non-empty token.
type Session struct {
	User      model.AuthUser `json:"user"`
	Token     string         `json:"-"`
	ExpiresAt time.Time      `json:"expiresAt,omitempty"`
}

// Store persists the session as a token/profile pair on disk and keeps
// an in-memory copy for fast reads. Both halves must be present for a
// session to exist; a lone token or a lone profile reads as no session.
type Store struct {
	mu  sync.RWMutex
	dir string

	token   string
	profile *storedProfile
}

type storedProfile struct {
	User      model.AuthUser `json:"user"`
	ExpiresAt time.Time      `json:"expiresAt,omitempty"`
}

// New opens a store rooted at dir, creating it if needed, and reads any
// persisted session. Corrupt or partial state degrades to "no session".
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	s := &Store{dir: dir}
	s.token, s.profile = s.read()
	return s, nil
}

// Save persists the session atomically as a pair: the profile is
// written before the token so a crash can never leave a token without
// a profile. A partial leftover (profile only) reads as no session.
func (s *Store) Save(sess Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile := &storedProfile{User: sess.User, ExpiresAt: sess.ExpiresAt}
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	if err := s.writeFile(profileFile, data); err != nil {
		return err
	}
	if err := s.writeFile(tokenFile, []byte(sess.Token)); err != nil {
		// Roll back the profile so reads stay consistent.
		_ = os.Remove(filepath.Join(s.dir, profileFile))
		return err
	}

	s.token = sess.Token
	s.profile = profile
	return nil
}

// Load returns the persisted session, or nil when either half is
// absent or unparsable. It never returns an error for corruption.
func (s *Store) Load() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.token == "" || s.profile == nil {
		return nil
	}
	return &Session{
		User:      s.profile.User,
		Token:     s.token,
		ExpiresAt: s.profile.ExpiresAt,
	}
}

// Clear removes both halves. Idempotent.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	_ = os.Remove(filepath.Join(s.dir, tokenFile))
	_ = os.Remove(filepath.Join(s.dir, profileFile))
	s.token = ""
	s.profile = nil
}

// HasToken reports whether a token is present, without touching the
// profile. O(1) against the in-memory copy.
func (s *Store) HasToken() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// Token returns the raw bearer token, or "" when no session exists.
// Satisfies the API client's TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return ""
	}
	return s.token
}

// read loads both halves from disk, returning zero values unless both
// are present and the profile parses.
func (s *Store) read() (string, *storedProfile) {
	raw, err := os.ReadFile(filepath.Join(s.dir, tokenFile))
	if err != nil {
		return "", nil
	}
	token := strings.TrimSpace(string(raw))
	if token == "" {
		return "", nil
	}

	data, err := os.ReadFile(filepath.Join(s.dir, profileFile))
	if err != nil {
		return "", nil
	}
	var profile storedProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return "", nil
	}
	return token, &profile
}

// writeFile writes via a temp file and rename so readers never observe
// a half-written file.
func (s *Store) writeFile(name string, data []byte) error {
	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, filepath.Join(s.dir, name))
}

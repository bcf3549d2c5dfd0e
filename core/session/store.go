package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/bluejays/schoolsys/core"
)

// Storage keys. These are the session-context values many unrelated screens
// read to scope their requests; their absence is a hard precondition failure
// for the dependent screen, never silently defaulted.
const (
	KeyToken       = "token"
	KeyBranchID    = "branchId"
	KeyClassID     = "classId"
	KeySectionID   = "sectionId"
	KeyAdminSelfID = "adminSelfId"
)

// Store is the durable client-side key-value store backing the session
// context. Values outlive a single process run; the backing file is rewritten
// atomically on every mutation.
type Store struct {
	path string

	mu     sync.Mutex
	values map[string]string
}

// NewStore opens (or creates) the session store. The location defaults to
// <user config dir>/bluejays/session.json unless overridden in conf.
func NewStore(conf *core.Config) (*Store, error) {
	path := conf.SessionFile
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, errors.Wrap(err, "session.NewStore")
		}
		path = filepath.Join(dir, "bluejays", "session.json")
	}
	return Open(path)
}

// Open opens (or creates) the session store at path.
func Open(path string) (*Store, error) {
	s := &Store{path: path, values: make(map[string]string)}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, errors.Wrapf(err, "session.Open(%s)", path)
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &s.values); err != nil {
			return nil, errors.Wrapf(err, "session.Open(%s): corrupt store", path)
		}
	}
	return s, nil
}

// Lookup returns the value for key and whether it is present.
func (s *Store) Lookup(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok && v != ""
}

// Get returns the value for key, or a *core.MissingContextError when absent.
func (s *Store) Get(key string) (string, error) {
	if v, ok := s.Lookup(key); ok {
		return v, nil
	}
	return "", &core.MissingContextError{Key: key}
}

// Set stores key=value and persists the store.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return s.flush()
}

// Delete removes key and persists the store.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return s.flush()
}

// Typed accessors; all fail loudly when the value is absent.

func (s *Store) Token() (string, error)       { return s.Get(KeyToken) }
func (s *Store) BranchID() (string, error)    { return s.Get(KeyBranchID) }
func (s *Store) ClassID() (string, error)     { return s.Get(KeyClassID) }
func (s *Store) SectionID() (string, error)   { return s.Get(KeySectionID) }
func (s *Store) AdminSelfID() (string, error) { return s.Get(KeyAdminSelfID) }

func (s *Store) SetToken(token string) error { return s.Set(KeyToken, token) }

// ClearToken drops the auth token only, leaving the rest of the context
// intact. This is the 401-teardown path.
func (s *Store) ClearToken() error { return s.Delete(KeyToken) }

// Reset wipes the whole session context (logout).
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = make(map[string]string)
	return s.flush()
}

// flush rewrites the backing file atomically. Callers must hold s.mu.
func (s *Store) flush() error {
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return errors.Wrap(err, "session.flush")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(err, "session.flush")
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return errors.Wrap(err, "session.flush")
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return errors.Wrap(err, "session.flush")
	}
	return nil
}

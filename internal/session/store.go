package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	apperrors "github.com/openlearn-labs/lms-console/pkg/errors"
)

// Record is the locally cached session state, the console's stand-in for the
// browser storage the web client used. Token and user fields are duplicated
// under their legacy key names so older tooling keeps working.
type Record struct {
	AccessToken        string          `json:"access_token,omitempty"`
	AuthToken          string          `json:"authToken,omitempty"`
	RefreshToken       string          `json:"refresh_token,omitempty"`
	LegacyRefreshToken string          `json:"refreshToken,omitempty"`
	User               json.RawMessage `json:"user,omitempty"`
	UserData           json.RawMessage `json:"userData,omitempty"`
	RememberedLogin    string          `json:"rememberedEmailOrPhone,omitempty"`
}

// Store persists the session record. Login and logout are the only writers;
// every other component reads.
type Store interface {
	Get() (Record, error)
	Set(Record) error
	Clear() error
}

// FileStore keeps the record in a JSON file under the user config dir.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore builds a store at the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Get reads the record. A missing file is an empty session, not an error.
func (s *FileStore) Get() (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Record{}, nil
		}
		return Record{}, apperrors.Wrap(err, apperrors.ErrSession.Code, 0, "read session file")
	}
	var record Record
	if err := json.Unmarshal(raw, &record); err != nil {
		// A corrupt session file fails closed: treat as logged out.
		return Record{}, nil
	}
	return record, nil
}

// Set writes the record atomically.
func (s *FileStore) Set(record Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrSession.Code, 0, "encode session")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return apperrors.Wrap(err, apperrors.ErrSession.Code, 0, "prepare session directory")
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return apperrors.Wrap(err, apperrors.ErrSession.Code, 0, "write session file")
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return apperrors.Wrap(err, apperrors.ErrSession.Code, 0, "replace session file")
	}
	return nil
}

// Clear removes the persisted record.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return apperrors.Wrap(err, apperrors.ErrSession.Code, 0, "remove session file")
	}
	return nil
}

// MemoryStore is an in-process store for tests and ephemeral runs.
type MemoryStore struct {
	mu     sync.Mutex
	record Record
}

// NewMemoryStore builds an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get() (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record, nil
}

func (s *MemoryStore) Set(record Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record = record
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record = Record{}
	return nil
}

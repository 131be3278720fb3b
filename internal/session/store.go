package session

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// TokenKey is the well-known name under which the session token is
// persisted, mirroring the storage key browser clients use.
const TokenKey = "jobboard_token"

// ErrNoToken is returned by a Store when nothing is persisted.
var ErrNoToken = errors.New("no stored token")

// Store persists the raw session token between process runs.
type Store interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// FileStore keeps the token in a single file inside dir, named after
// TokenKey.  It is the desktop/CLI analogue of browser local storage.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore { return &FileStore{dir: dir} }

func (s *FileStore) path() string { return filepath.Join(s.dir, TokenKey) }

// Load returns the persisted token, or ErrNoToken when the file does not
// exist or is empty.
func (s *FileStore) Load() (string, error) {
	b, err := os.ReadFile(s.path())
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoToken
		}
		return "", err
	}
	tok := strings.TrimSpace(string(b))
	if tok == "" {
		return "", ErrNoToken
	}
	return tok, nil
}

// Save writes the token, creating the directory if needed.  The file is
// user-only: the token is a bearer credential.
func (s *FileStore) Save(token string) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path(), []byte(token), 0o600)
}

// Clear removes the persisted token.  A missing file is not an error;
// logout must be idempotent.
func (s *FileStore) Clear() error {
	err := os.Remove(s.path())
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// MemStore is an in-memory Store for tests.
type MemStore struct {
	token string
	set   bool
}

func (s *MemStore) Load() (string, error) {
	if !s.set || s.token == "" {
		return "", ErrNoToken
	}
	return s.token, nil
}

func (s *MemStore) Save(token string) error {
	s.token = token
	s.set = true
	return nil
}

func (s *MemStore) Clear() error {
	s.token = ""
	s.set = false
	return nil
}

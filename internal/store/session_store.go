package store

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"aoc2023/internal/crypto"
	"aoc2023/internal/domain"
)

const sessionFilename = "session.json.enc"

// SessionFileStore keeps the session token sealed on disk.
type SessionFileStore struct {
	dir string
	kdf kdfParams
	mu  sync.Mutex
}

// NewSessionFileStore returns a SessionFileStore rooted at dir.
func NewSessionFileStore(dir string) *SessionFileStore {
	return &SessionFileStore{dir: dir, kdf: defaultKDF}
}

// SaveSession seals token with passphrase and replaces any stored token.
func (s *SessionFileStore) SaveSession(passphrase string, token domain.SessionToken) error {
	if passphrase == "" {
		return errors.New("passphrase required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	raw := []byte(token)
	defer crypto.Wipe(raw)
	blob, err := seal(passphrase, raw, s.kdf)
	if err != nil {
		return err
	}
	return WriteFileAtomic(filepath.Join(s.dir, sessionFilename), blob, 0o600)
}

// LoadSession opens the stored token. A missing file yields domain.ErrNoSession.
func (s *SessionFileStore) LoadSession(passphrase string) (domain.SessionToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := os.ReadFile(filepath.Join(s.dir, sessionFilename))
	if errors.Is(err, os.ErrNotExist) {
		return "", domain.ErrNoSession
	}
	if err != nil {
		return "", err
	}
	pt, err := open(passphrase, blob)
	if err != nil {
		return "", err
	}
	defer crypto.Wipe(pt)
	return domain.SessionToken(pt), nil
}

// Compile-time assertion that SessionFileStore implements domain.SessionStore.
var _ domain.SessionStore = (*SessionFileStore)(nil)

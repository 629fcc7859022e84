package session

import (
	"os"
	"path/filepath"
	"sync"

	"eiffel-bike-client/internal/pkg/errs"
)

// CredentialStore persists the bearer credential across process restarts.
// The credential is the sole source of truth for identity; the login snapshot
// is kept redundantly as an offline-display fallback only.
type CredentialStore interface {
	Load() (string, error)
	Save(credential string) error
	Purge() error
	SaveSnapshot(data []byte) error
	LoadSnapshot() ([]byte, error)
}

const (
	credentialFile = "credential"
	snapshotFile   = "login-snapshot.json"
)

type FileCredentialStore struct {
	dir string
}

func NewFileCredentialStore(dir string) (*FileCredentialStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, errs.Wrap(err, "failed to create session state dir")
	}
	return &FileCredentialStore{dir: dir}, nil
}

func (s *FileCredentialStore) Load() (string, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, credentialFile))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errs.Wrap(err, "failed to read credential")
	}
	return string(data), nil
}

func (s *FileCredentialStore) Save(credential string) error {
	err := os.WriteFile(filepath.Join(s.dir, credentialFile), []byte(credential), 0o600)
	return errs.Wrap(err, "failed to persist credential")
}

func (s *FileCredentialStore) Purge() error {
	var firstErr error
	for _, name := range []string{credentialFile, snapshotFile} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return errs.Wrap(firstErr, "failed to purge credential state")
}

func (s *FileCredentialStore) SaveSnapshot(data []byte) error {
	err := os.WriteFile(filepath.Join(s.dir, snapshotFile), data, 0o600)
	return errs.Wrap(err, "failed to persist login snapshot")
}

func (s *FileCredentialStore) LoadSnapshot() ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, snapshotFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errs.Wrap(err, "failed to read login snapshot")
	}
	return data, nil
}

// MemoryCredentialStore backs tests and ephemeral sessions.
type MemoryCredentialStore struct {
	mu         sync.Mutex
	credential string
	snapshot   []byte
	saveErr    error
}

func NewMemoryCredentialStore() *MemoryCredentialStore {
	return &MemoryCredentialStore{}
}

// FailSaves makes subsequent Save calls return err, for exercising the
// best-effort persistence path.
func (s *MemoryCredentialStore) FailSaves(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveErr = err
}

func (s *MemoryCredentialStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.credential, nil
}

func (s *MemoryCredentialStore) Save(credential string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.credential = credential
	return nil
}

func (s *MemoryCredentialStore) Purge() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credential = ""
	s.snapshot = nil
	return nil
}

func (s *MemoryCredentialStore) SaveSnapshot(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.snapshot = append([]byte(nil), data...)
	return nil
}

func (s *MemoryCredentialStore) LoadSnapshot() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]byte(nil), s.snapshot...), nil
}

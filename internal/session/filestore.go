package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

const credentialsFile = "credentials.json"

// FileStore keeps credentials in a single mode-0600 JSON file under dir,
// the on-device secure storage analogue for a terminal client.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates dir if needed and returns a store backed by it.
// When dir is empty the credentials live under the user config directory.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(base, "bookcalendar")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &FileStore{path: filepath.Join(dir, credentialsFile)}, nil
}

func (s *FileStore) Get(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items, err := s.load()
	if err != nil {
		return "", err
	}
	return items[key], nil
}

func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	items, err := s.load()
	if err != nil {
		return err
	}
	items[key] = value
	return s.save(items)
}

func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	items, err := s.load()
	if err != nil {
		return err
	}
	delete(items, key)
	return s.save(items)
}

func (s *FileStore) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, err
	}
	items := map[string]string{}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *FileStore) save(items map[string]string) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

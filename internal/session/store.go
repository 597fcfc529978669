package session

import (
	"strings"
	"sync"
)

// Credential store keys. The names match the secure-store entries the
// backend contract was built around.
const (
	KeyAccessToken  = "accessToken"
	KeyRefreshToken = "refreshToken"
)

// Store persists opaque credential strings by key. Implementations must be
// safe for concurrent use; writes are last-write-wins.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}

type memoryStore struct {
	mu    sync.Mutex
	items map[string]string
}

// NewMemoryStore returns an in-memory Store, mainly for tests.
func NewMemoryStore() Store {
	return &memoryStore{items: make(map[string]string)}
}

func (s *memoryStore) Get(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items[key], nil
}

func (s *memoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if strings.TrimSpace(key) == "" {
		return nil
	}
	s.items[key] = value
	return nil
}

func (s *memoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
	return nil
}

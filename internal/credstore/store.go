// Package credstore persists the bearer token between runs. The token is the
// only durable client state; it is an opaque string and no validation is
// performed on it here.
package credstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const tokenFile = "token"

var (
	// ErrNoToken is returned when no token has been stored
	ErrNoToken = errors.New("no stored token")
)

// Store is a file-backed token store rooted at a directory
type Store struct {
	basePath string
	mu       sync.RWMutex
}

// NewStore creates a token store under basePath, creating the directory if
// needed
func NewStore(basePath string) (*Store, error) {
	if err := os.MkdirAll(basePath, 0700); err != nil {
		return nil, fmt.Errorf("create credential directory: %w", err)
	}
	return &Store{basePath: basePath}, nil
}

// Get returns the stored token, or ErrNoToken when none is present
func (s *Store) Get() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path())
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoToken
		}
		return "", fmt.Errorf("read token: %w", err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

// Set durably replaces the stored token. The write goes through a temp file
// and rename so a crash never leaves a truncated token behind.
func (s *Store) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tmp := s.path() + ".tmp"
	if err := os.WriteFile(tmp, []byte(token), 0600); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	if err := os.Rename(tmp, s.path()); err != nil {
		return fmt.Errorf("store token: %w", err)
	}
	return nil
}

// Clear removes the stored token. Clearing an already-empty store succeeds.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove token: %w", err)
	}
	return nil
}

func (s *Store) path() string {
	return filepath.Join(s.basePath, tokenFile)
}

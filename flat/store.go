// Package flat is a baseline key store: a hash set scanned linearly on every lookup.
package flat

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// DefaultWildcard is the trailing marker stripped by Search
const DefaultWildcard = "*"

var ErrEmptyInput = errors.New("flat: empty input")

// Store is safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	keys map[string]struct{}
}

func New(keys ...string) *Store {
	s := &Store{keys: make(map[string]struct{}, len(keys))}
	for _, key := range keys {
		s.Add(key)
	}
	return s
}

// Add stores the key if absent. Returns whether it was added.
func (s *Store) Add(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.keys[key]; ok {
		return false
	}
	s.keys[key] = struct{}{}
	return true
}

func (s *Store) Insert(key string) error {
	if key == "" {
		return fmt.Errorf("insert: %w", ErrEmptyInput)
	}
	s.Add(key)
	return nil
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.keys)
}

// Contains returns every key containing sub, in no particular order.
func (s *Store) Contains(sub string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var found []string
	for key := range s.keys {
		if strings.Contains(key, sub) {
			found = append(found, key)
		}
	}
	return found
}

// Search drops one trailing marker and runs Contains on the rest.
// The marker is never treated as a wildcard anywhere else.
func (s *Store) Search(pattern string) []string {
	return s.Contains(strings.TrimSuffix(pattern, DefaultWildcard))
}

// Package statestore provides an in-memory implementation of the
// client.StateStore collaborator, suitable for tests, demos and single
// process integrations. Production integrations back the store with their
// own per-user session mechanism.
package statestore

import (
	"fmt"
	"sync"

	"github.com/jrsteele09/go-oauth1-client/client"
	"github.com/jrsteele09/go-oauth1-client/token"
)

var _ client.StateStore = (*InMemoryStateStore)(nil)

// InMemoryStateStore is an in-memory implementation of client.StateStore
type InMemoryStateStore struct {
	mu     sync.RWMutex
	tokens map[string]*token.Token
}

// NewInMemoryStateStore creates a new in-memory state store
func NewInMemoryStateStore() *InMemoryStateStore {
	return &InMemoryStateStore{
		tokens: make(map[string]*token.Token),
	}
}

// Get retrieves the token stored under key, nil when absent
func (s *InMemoryStateStore) Get(key string) (*token.Token, error) {
	if key == "" {
		return nil, fmt.Errorf("key is required")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens[key], nil
}

// Set stores a token under key
func (s *InMemoryStateStore) Set(key string, tok *token.Token) error {
	if key == "" {
		return fmt.Errorf("key is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[key] = tok
	return nil
}

// Remove deletes the token stored under key
func (s *InMemoryStateStore) Remove(key string) error {
	if key == "" {
		return fmt.Errorf("key is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, key)
	return nil
}

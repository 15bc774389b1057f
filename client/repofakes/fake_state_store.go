package repofakes

import (
	"sync"

	"github.com/jrsteele09/go-oauth1-client/client"
	"github.com/jrsteele09/go-oauth1-client/token"
)

var _ client.StateStore = (*FakeStateStore)(nil)

type FakeStateStore struct {
	tokens map[string]*token.Token
	lock   sync.RWMutex
}

func NewFakeStateStore() *FakeStateStore {
	return &FakeStateStore{
		tokens: make(map[string]*token.Token),
	}
}

func (ss *FakeStateStore) Get(key string) (*token.Token, error) {
	ss.lock.RLock()
	defer ss.lock.RUnlock()
	return ss.tokens[key], nil
}

func (ss *FakeStateStore) Set(key string, tok *token.Token) error {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	ss.tokens[key] = tok
	return nil
}

func (ss *FakeStateStore) Remove(key string) error {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	delete(ss.tokens, key)
	return nil
}

// Len reports how many tokens are held, for test assertions
func (ss *FakeStateStore) Len() int {
	ss.lock.RLock()
	defer ss.lock.RUnlock()
	return len(ss.tokens)
}

// Package session persists the basket between requests. The basket is an
// opaque JSON blob keyed by session id; nothing here knows about products.
package session

import (
	"context"
	"sync"

	"github.com/webshop-go/storefront-api/basket"
)

type Store interface {
	// Get returns the basket for sid. An unknown sid yields an empty basket.
	Get(ctx context.Context, sid string) (basket.Basket, error)
	Put(ctx context.Context, sid string, b basket.Basket) error
	Delete(ctx context.Context, sid string) error
}

// MemoryStore keeps baskets in process memory. Used by tests and as a
// fallback when Redis is not configured.
type MemoryStore struct {
	mu      sync.Mutex
	baskets map[string]basket.Basket
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{baskets: make(map[string]basket.Basket)}
}

func (s *MemoryStore) Get(_ context.Context, sid string) (basket.Basket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := s.baskets[sid]
	out := make(basket.Basket, len(b))
	copy(out, b)
	return out, nil
}

func (s *MemoryStore) Put(_ context.Context, sid string, b basket.Basket) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make(basket.Basket, len(b))
	copy(stored, b)
	s.baskets[sid] = stored
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.baskets, sid)
	return nil
}

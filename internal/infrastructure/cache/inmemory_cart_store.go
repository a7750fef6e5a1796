package cache

import (
	"context"
	"sync"
	"time"

	"github.com/shopfront/backend/internal/domain/shared"
	"github.com/shopfront/backend/internal/domain/storefront"
)

// cartEntry represents a stored cart with expiration
type cartEntry struct {
	cart      *storefront.Cart
	expiresAt time.Time
}

// InMemoryCartStore implements storefront.CartStore using an in-memory map
// This is suitable for single-instance deployments and testing
type InMemoryCartStore struct {
	mu        sync.RWMutex
	entries   map[string]cartEntry
	stopChan  chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewInMemoryCartStore creates a new in-memory cart store
// It starts a background goroutine to clean up expired sessions
func NewInMemoryCartStore() *InMemoryCartStore {
	store := &InMemoryCartStore{
		entries:  make(map[string]cartEntry),
		stopChan: make(chan struct{}),
	}

	store.wg.Add(1)
	go store.cleanupLoop()

	return store
}

// Get returns the cart stored under the key, or shared.ErrNotFound when
// the session is unknown or has expired
func (s *InMemoryCartStore) Get(ctx context.Context, key string) (*storefront.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, exists := s.entries[key]
	if !exists {
		return nil, shared.ErrNotFound
	}
	if time.Now().After(e.expiresAt) {
		// Expired, treat as absent; the cleanup loop will remove it
		return nil, shared.ErrNotFound
	}

	// Hand out a copy so concurrent sessions never mutate shared state;
	// changes only land in the store through Put
	return e.cart.Clone(), nil
}

// Put stores the cart under the key, refreshing its expiration
func (s *InMemoryCartStore) Put(ctx context.Context, key string, cart *storefront.Cart, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = cartEntry{
		cart:      cart.Clone(),
		expiresAt: time.Now().Add(ttl),
	}

	return nil
}

// Delete removes the cart stored under the key
func (s *InMemoryCartStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	return nil
}

// Close stops the cleanup goroutine and releases resources
// Safe to call multiple times
func (s *InMemoryCartStore) Close() error {
	s.closeOnce.Do(func() {
		close(s.stopChan)
		s.wg.Wait()
	})
	return nil
}

// cleanupLoop periodically removes expired sessions
func (s *InMemoryCartStore) cleanupLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.cleanup()
		}
	}
}

// cleanup removes expired sessions from the store
func (s *InMemoryCartStore) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for key, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, key)
		}
	}
}

// Size returns the number of sessions in the store (for testing/monitoring)
func (s *InMemoryCartStore) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Ensure InMemoryCartStore implements storefront.CartStore
var _ storefront.CartStore = (*InMemoryCartStore)(nil)

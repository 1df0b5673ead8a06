// Package cache provides the in-memory TTL stores that sit in front of
// expensive derived lookups. Entries live for a fixed duration after being
// stored and are recomputed on the first read past expiry; stale entries
// are only reclaimed when touched, which is acceptable for the small
// working sets (teams, players) cached here.
package cache

import (
	"context"
	"sync"
	"time"

	crerr "github.com/cockroachdb/errors"

	"github.com/kickmate/manager-api/internal/platform/resilience"
)

type entry struct {
	value    any
	storedAt time.Time
}

// Store is a mutex-guarded TTL cache with singleflight read-through, so
// concurrent callers missing the same key trigger a single recompute.
// The clock is injected for tests.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
	flight  resilience.SingleFlight
}

func NewStore(ttl time.Duration) *Store {
	return NewStoreWithClock(ttl, time.Now)
}

func NewStoreWithClock(ttl time.Duration, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     now,
	}
}

// Get returns the cached value when a fresh entry exists. Expired entries
// are treated as absent and dropped.
func (s *Store) Get(_ context.Context, key string) (any, bool) {
	if key == "" {
		return nil, false
	}

	now := s.now()
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if s.ttl > 0 && now.Sub(e.storedAt) >= s.ttl {
		s.mu.Lock()
		if stale, still := s.entries[key]; still && stale.storedAt.Equal(e.storedAt) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return nil, false
	}

	return e.value, true
}

// Set stores value under key, replacing any previous entry wholesale.
func (s *Store) Set(_ context.Context, key string, value any) {
	if key == "" {
		return
	}

	s.mu.Lock()
	s.entries[key] = entry{value: value, storedAt: s.now()}
	s.mu.Unlock()
}

// Delete drops the entry for key, if any.
func (s *Store) Delete(_ context.Context, key string) {
	if key == "" {
		return
	}

	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

// GetOrLoad returns the fresh cached value for key or recomputes it via
// loader. A failed load is never cached; the next read retries.
func (s *Store) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (any, error)) (any, error) {
	if loader == nil {
		return nil, crerr.New("loader is required")
	}
	if key == "" {
		return loader(ctx)
	}

	if value, ok := s.Get(ctx, key); ok {
		return value, nil
	}

	value, err, _ := s.flight.Do(key, func() (any, error) {
		if cached, ok := s.Get(ctx, key); ok {
			return cached, nil
		}

		loaded, loadErr := loader(ctx)
		if loadErr != nil {
			return nil, loadErr
		}
		s.Set(ctx, key, loaded)
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}

// Key builds the composite cache key used by the derived-lookup caches.
func Key(id, leagueID string) string {
	return id + "|" + leagueID
}

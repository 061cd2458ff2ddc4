package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const (
	defaultExpiration = 5 * time.Minute
	cleanupInterval   = 10 * time.Minute
)

// Store is a read-through cache keyed by entity collection. Mutating
// operations call Invalidate and the next read refetches from the backing
// repository; between the two, readers may briefly see stale rows.
type Store struct {
	c *gocache.Cache
}

func NewStore() *Store {
	return &Store{c: gocache.New(defaultExpiration, cleanupInterval)}
}

// Invalidate drops a collection from the cache.
func (s *Store) Invalidate(key string) {
	s.c.Delete(key)
}

// Fetch returns the cached value for key, falling back to fetch and caching
// the result. A fetch error is returned without poisoning the cache.
func Fetch[T any](ctx context.Context, s *Store, key string, fetch func(context.Context) (T, error)) (T, error) {
	if cached, found := s.c.Get(key); found {
		if value, ok := cached.(T); ok {
			return value, nil
		}
	}

	value, err := fetch(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	s.c.SetDefault(key, value)
	return value, nil
}

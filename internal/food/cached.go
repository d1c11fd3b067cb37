package food

import (
	"context"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/aleksmelnikov/fitness-helper/internal/domain"
)

type cacheEntry struct {
	info  domain.FoodInfo
	found bool
}

// CachedProvider wraps a FoodProvider with a bounded LRU cache keyed by the
// normalized query. Both matches and no-match outcomes are cached; failures
// are not.
type CachedProvider struct {
	inner domain.FoodProvider
	cache *lru.Cache[string, cacheEntry]
}

// NewCachedProvider creates a caching wrapper holding at most size entries.
func NewCachedProvider(inner domain.FoodProvider, size int) (*CachedProvider, error) {
	cache, err := lru.New[string, cacheEntry](size)
	if err != nil {
		return nil, err
	}
	return &CachedProvider{inner: inner, cache: cache}, nil
}

// Lookup returns a cached result when present, otherwise asks the inner
// provider and remembers the outcome.
func (p *CachedProvider) Lookup(ctx context.Context, name string) (domain.FoodInfo, bool, error) {
	key := strings.ToLower(strings.TrimSpace(name))

	if entry, ok := p.cache.Get(key); ok {
		return entry.info, entry.found, nil
	}

	info, found, err := p.inner.Lookup(ctx, name)
	if err != nil {
		return domain.FoodInfo{}, false, err
	}

	p.cache.Add(key, cacheEntry{info: info, found: found})
	return info, found, nil
}

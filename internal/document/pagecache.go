package document

import (
	"strings"

	"github.com/bradfitz/gomemcache/memcache"
)

// PageCache stores rendered print pages in memcached keyed by the view
// fingerprint. A nil client disables caching; every call degrades to a miss.
type PageCache struct {
	mc *memcache.Client
}

func NewPageCache(mc *memcache.Client) *PageCache {
	return &PageCache{mc: mc}
}

func (p *PageCache) Get(fingerprint string) ([]byte, bool) {
	if p == nil || p.mc == nil {
		return nil, false
	}
	item, err := p.mc.Get(cacheKey(fingerprint))
	if err != nil {
		return nil, false
	}
	return item.Value, true
}

func (p *PageCache) Set(fingerprint string, page []byte) {
	if p == nil || p.mc == nil {
		return
	}
	// best effort; a failed write just means a re-render next time
	_ = p.mc.Set(&memcache.Item{Key: cacheKey(fingerprint), Value: page})
}

func cacheKey(fingerprint string) string {
	return "print:" + strings.Trim(fingerprint, `"`)
}

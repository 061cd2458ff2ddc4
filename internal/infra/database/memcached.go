package database

import (
	"github.com/bradfitz/gomemcache/memcache"
)

// NewMemcached builds the client backing the rendered print-page cache.
func NewMemcached(server string) *memcache.Client {
	return memcache.New(server)
}

package handler

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// cachedResponse is a rendered response body tagged with the schema version
// it was rendered under.
type cachedResponse struct {
	Version  string
	Status   int
	Body     []byte
	CachedAt time.Time
}

// responseCache holds rendered lookup responses. The catalog is read-only
// once the server starts, so entries only age out by TTL and size.
type responseCache struct {
	lru *expirable.LRU[string, *cachedResponse]
}

func newResponseCache(size int, ttl time.Duration) *responseCache {
	return &responseCache{
		lru: expirable.NewLRU[string, *cachedResponse](size, nil, ttl),
	}
}

// Get returns the cached response for key. Entries from another schema
// version are dropped.
func (c *responseCache) Get(key string) (*cachedResponse, bool) {
	entry, found := c.lru.Get(key)
	if !found {
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(key)
		return nil, false
	}
	return entry, true
}

// Set stores a rendered response under key.
func (c *responseCache) Set(key string, status int, body []byte) {
	c.lru.Add(key, &cachedResponse{
		Version:  CacheSchemaVersion,
		Status:   status,
		Body:     body,
		CachedAt: time.Now(),
	})
}

// Len returns the number of live entries.
func (c *responseCache) Len() int {
	return c.lru.Len()
}

// Clear removes all entries.
func (c *responseCache) Clear() {
	c.lru.Purge()
}

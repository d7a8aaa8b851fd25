package siteshell

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// PageCache holds rendered page bodies keyed by request path. Pages are
// composed from static data only, so a rendered body stays valid until the
// process restarts; the TTL bounds memory held for rarely requested pages.
type PageCache struct {
	c *gocache.Cache
}

// NewPageCache creates a PageCache with the given TTL. A negative TTL
// disables caching.
func NewPageCache(ttl time.Duration) *PageCache {
	if ttl < 0 {
		return &PageCache{}
	}
	return &PageCache{c: gocache.New(ttl, 2*ttl)}
}

// Get returns the cached body for key.
func (p *PageCache) Get(key string) ([]byte, bool) {
	if p == nil || p.c == nil {
		return nil, false
	}
	v, ok := p.c.Get(key)
	if !ok {
		return nil, false
	}
	b, ok := v.([]byte)
	return b, ok
}

// Set stores body under key with the default TTL.
func (p *PageCache) Set(key string, body []byte) {
	if p == nil || p.c == nil {
		return
	}
	p.c.SetDefault(key, body)
}

// Invalidate drops every cached page.
func (p *PageCache) Invalidate() {
	if p == nil || p.c == nil {
		return
	}
	p.c.Flush()
}

// Len returns the number of cached pages, expired entries included.
func (p *PageCache) Len() int {
	if p == nil || p.c == nil {
		return 0
	}
	return p.c.ItemCount()
}

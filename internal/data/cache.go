package data

import (
	"sync"
	"time"

	"household-energy-sim/internal/dispatch"

	"github.com/google/uuid"
)

// CacheEntry is one stored dispatch run.
type CacheEntry struct {
	Result    *dispatch.Result
	ExpiresAt time.Time
}

// ResultCache keeps recent dispatch runs in memory so their step ledgers can
// be fetched after the summary has been returned.
type ResultCache struct {
	mu    sync.RWMutex
	store map[string]*CacheEntry
	ttl   time.Duration
	now   func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

// NewResultCache starts a cache whose entries live for ttl.
// Call Close to stop the background sweeper.
func NewResultCache(ttl time.Duration) *ResultCache {
	c := newResultCache(ttl, time.Now)
	go c.cleanup(5 * time.Minute)
	return c
}

func newResultCache(ttl time.Duration, now func() time.Time) *ResultCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &ResultCache{
		store: make(map[string]*CacheEntry),
		ttl:   ttl,
		now:   now,
		stop:  make(chan struct{}),
	}
}

// Put stores a result and returns its id.
func (c *ResultCache) Put(res *dispatch.Result) string {
	id := uuid.NewString()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store[id] = &CacheEntry{
		Result:    res,
		ExpiresAt: c.now().Add(c.ttl),
	}
	return id
}

// Get retrieves a cached result if available and not expired
func (c *ResultCache) Get(id string) (*dispatch.Result, bool) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.store[id]
	if !exists || c.now().After(entry.ExpiresAt) {
		return nil, false
	}
	return entry.Result, true
}

func (c *ResultCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

// Clear removes all entries from the cache
func (c *ResultCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.store = make(map[string]*CacheEntry)
}

func (c *ResultCache) Close() {
	c.stopOnce.Do(func() { close(c.stop) })
}

func (c *ResultCache) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, entry := range c.store {
		if now.After(entry.ExpiresAt) {
			delete(c.store, key)
		}
	}
}

// cleanup periodically removes expired entries
func (c *ResultCache) cleanup(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.sweep()
		case <-c.stop:
			return
		}
	}
}

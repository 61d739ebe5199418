package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ponsiv/backend/internal/domain/identity"
)

const cleanupInterval = time.Minute

// InMemorySessionCache caches session lookups in process memory. Used when
// Redis is disabled; entries do not survive restarts and are not shared
// across instances.
type InMemorySessionCache struct {
	mu      sync.RWMutex
	entries map[string]sessionEntry
	stopCh  chan struct{}
	stopped int32
}

type sessionEntry struct {
	user      identity.User
	expiresAt time.Time
}

// NewInMemorySessionCache creates an in-memory session cache
func NewInMemorySessionCache() *InMemorySessionCache {
	c := &InMemorySessionCache{
		entries: make(map[string]sessionEntry),
		stopCh:  make(chan struct{}),
	}
	go c.cleanupExpired()
	return c
}

// Get retrieves the cached user for a session token
func (c *InMemorySessionCache) Get(_ context.Context, token string) (*identity.User, bool) {
	c.mu.RLock()
	entry, ok := c.entries[token]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, token)
		c.mu.Unlock()
		return nil, false
	}
	user := entry.user
	return &user, true
}

// Set stores the user for a session token
func (c *InMemorySessionCache) Set(_ context.Context, token string, user *identity.User, ttl time.Duration) {
	if user == nil {
		return
	}
	c.mu.Lock()
	c.entries[token] = sessionEntry{user: *user, expiresAt: time.Now().Add(ttl)}
	c.mu.Unlock()
}

// Delete drops the cache entry for a session token
func (c *InMemorySessionCache) Delete(_ context.Context, token string) {
	c.mu.Lock()
	delete(c.entries, token)
	c.mu.Unlock()
}

// Close stops the background cleanup goroutine
func (c *InMemorySessionCache) Close() error {
	if atomic.CompareAndSwapInt32(&c.stopped, 0, 1) {
		close(c.stopCh)
	}
	return nil
}

func (c *InMemorySessionCache) cleanupExpired() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			now := time.Now()
			c.mu.Lock()
			for token, entry := range c.entries {
				if now.After(entry.expiresAt) {
					delete(c.entries, token)
				}
			}
			c.mu.Unlock()
		}
	}
}

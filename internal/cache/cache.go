// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cache is an in-process TTL store for resolved protein
// identities. Entries expire lazily on read; nothing survives the
// process. Keys are the upper-cased raw identifier, not the canonical
// symbol, so callers may intentionally cache the same protein under
// different aliases.
package cache

import (
	"strings"
	"sync"
	"time"

	"github.com/pdiddy/interactome-engine/pkg/types"
)

// DefaultTTL is how long a resolved identity stays valid.
const DefaultTTL = 24 * time.Hour

// Entry is one cached resolution with its timestamp.
type Entry struct {
	Key        string
	Identity   types.ProteinIdentity
	ResolvedAt time.Time
}

// Cache is a mutex-guarded TTL map. Concurrent writers to the same key
// race on last-write-wins, which is acceptable: payloads for the same
// key converge to equivalent values.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]Entry
}

// New builds a cache with the given TTL; ttl <= 0 uses DefaultTTL.
func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]Entry),
	}
}

// Key normalizes a raw identifier into its cache key.
func Key(identifier string) string {
	return strings.ToUpper(identifier)
}

// Get returns the cached identity for an identifier. An expired entry is
// deleted and reported as absent.
func (c *Cache) Get(identifier string) (types.ProteinIdentity, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := Key(identifier)
	entry, ok := c.entries[key]
	if !ok {
		return types.ProteinIdentity{}, false
	}
	if c.now().Sub(entry.ResolvedAt) > c.ttl {
		delete(c.entries, key)
		return types.ProteinIdentity{}, false
	}
	return entry.Identity, true
}

// Set stores an identity under the identifier's key, stamping the
// resolution time and overwriting any existing entry.
func (c *Cache) Set(identifier string, identity types.ProteinIdentity) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := Key(identifier)
	c.entries[key] = Entry{Key: key, Identity: identity, ResolvedAt: c.now()}
}

// Invalidate removes an entry explicitly.
func (c *Cache) Invalidate(identifier string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, Key(identifier))
}

// Len reports the number of entries, counting expired ones that have
// not been read yet.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// SetClock replaces the time source. Tests use it to drive expiry
// without sleeping.
func (c *Cache) SetClock(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

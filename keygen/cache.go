/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package keygen

import (
	"sort"
	"sync"
)

// Cache holds one Generator per entity type name.
type Cache struct {
	mu         sync.RWMutex
	generators map[string]*Generator
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{
		generators: make(map[string]*Generator),
	}
}

// GetOrAdd returns the generator for entityType, creating it on first use.
func (c *Cache) GetOrAdd(entityType string) *Generator {
	c.mu.RLock()
	gen, ok := c.generators[entityType]
	c.mu.RUnlock()
	if ok {
		return gen
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// another caller may have won the race between the two locks
	if gen, ok := c.generators[entityType]; ok {
		return gen
	}
	gen = New()
	c.generators[entityType] = gen
	return gen
}

// Lookup returns the generator for entityType without creating one.
func (c *Cache) Lookup(entityType string) (*Generator, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	gen, ok := c.generators[entityType]
	return gen, ok
}

// Types returns the entity type names that have a generator, sorted.
func (c *Cache) Types() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	types := make([]string, 0, len(c.generators))
	for t := range c.generators {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// ResetAll resets every generator in the cache.
func (c *Cache) ResetAll() {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, gen := range c.generators {
		gen.Reset()
	}
}

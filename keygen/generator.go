/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package keygen

import "sync/atomic"

// Generator issues strictly increasing int64 keys for a single entity type.
// The zero value is ready to use.
type Generator struct {
	current atomic.Int64
}

// New returns a Generator whose first issued key is 1.
func New() *Generator {
	return &Generator{}
}

// Next atomically advances the counter and returns the new value.
func (g *Generator) Next() int64 {
	return g.current.Add(1)
}

// Current returns the last issued key, or 0 if none was issued since the last Reset.
func (g *Generator) Current() int64 {
	return g.current.Load()
}

// Reset puts the counter back to 0 so the next key issued is 1.
func (g *Generator) Reset() {
	g.current.Store(0)
}

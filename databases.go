/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package inmemstore

import (
	"sort"
	"sync"

	"github.com/suparena/inmemstore/errors"
)

// Databases is a thread-safe registry of named stores. Opening the same name
// twice yields the same Store, so every opener shares its records and its key
// generators.
type Databases struct {
	mu     sync.RWMutex
	stores map[string]*Store
}

// NewDatabases creates an empty registry.
func NewDatabases() *Databases {
	return &Databases{
		stores: make(map[string]*Store),
	}
}

// Open returns the store registered under name, creating it with opts if it
// does not exist yet. Options are ignored for an existing store.
func (d *Databases) Open(name string, opts ...Option) *Store {
	d.mu.RLock()
	store, exists := d.stores[name]
	d.mu.RUnlock()
	if exists {
		return store
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if store, exists := d.stores[name]; exists {
		return store
	}
	store = New(append(opts[:len(opts):len(opts)], WithName(name))...)
	d.stores[name] = store
	return store
}

// Lookup retrieves the store registered under name.
func (d *Databases) Lookup(name string) (*Store, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	store, exists := d.stores[name]
	return store, exists
}

// Drop removes the store registered under name. Callers still holding the
// store can keep using it; a later Open creates a fresh one.
func (d *Databases) Drop(name string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.stores[name]; !exists {
		return errors.NewNotFoundError("database", name)
	}
	delete(d.stores, name)
	return nil
}

// Names returns all registered store names, sorted.
func (d *Databases) Names() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	names := make([]string, 0, len(d.stores))
	for name := range d.stores {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

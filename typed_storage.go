/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package inmemstore

import (
	"reflect"

	"github.com/suparena/inmemstore/registry"
)

// Entity is a committed payload of type T together with its key.
type Entity[T any] struct {
	Key   int64
	Value T
}

// EntitySet provides type-safe access to the records of one entity type.
// Records whose payload is not a T are invisible to the set.
type EntitySet[T any] struct {
	store    *Store
	typeName string
}

// Set returns the EntitySet for T on s, creating it if necessary. The entity
// type name comes from registry.EntityTypeName[T].
func Set[T any](s *Store) *EntitySet[T] {
	s.setsMu.Lock()
	defer s.setsMu.Unlock()

	typ := reflect.TypeOf((*T)(nil)).Elem()
	if set, exists := s.sets[typ]; exists {
		return set.(*EntitySet[T])
	}

	set := &EntitySet[T]{
		store:    s,
		typeName: registry.EntityTypeName[T](),
	}
	s.sets[typ] = set
	return set
}

// TypeName returns the entity type name the set stores records under.
func (es *EntitySet[T]) TypeName() string {
	return es.typeName
}

// Store returns the underlying store.
func (es *EntitySet[T]) Store() *Store {
	return es.store
}

// Add stages v. The returned record receives its key on Commit.
func (es *EntitySet[T]) Add(v T) (*Record, error) {
	rec := &Record{Type: es.typeName, Payload: v}
	if err := es.store.Add(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Find returns the payload tracked under key.
func (es *EntitySet[T]) Find(key int64) (T, bool) {
	var zero T
	rec, ok := es.store.FindByKey(es.typeName, key)
	if !ok {
		return zero, false
	}
	v, ok := rec.Payload.(T)
	if !ok {
		return zero, false
	}
	return v, true
}

// All returns a snapshot of the tracked entities ordered by key.
func (es *EntitySet[T]) All() []Entity[T] {
	return es.Where(nil)
}

// Where returns the tracked entities matching pred, ordered by key.
// A nil pred matches everything.
func (es *EntitySet[T]) Where(pred func(Entity[T]) bool) []Entity[T] {
	records := es.store.AllOf(es.typeName)
	entities := make([]Entity[T], 0, len(records))
	for _, rec := range records {
		v, ok := rec.Payload.(T)
		if !ok {
			continue
		}
		e := Entity[T]{Key: rec.Key, Value: v}
		if pred == nil || pred(e) {
			entities = append(entities, e)
		}
	}
	return entities
}

// First returns the lowest-keyed entity matching pred.
func (es *EntitySet[T]) First(pred func(Entity[T]) bool) (Entity[T], bool) {
	matches := es.Where(pred)
	if len(matches) == 0 {
		return Entity[T]{}, false
	}
	return matches[0], true
}

// Any reports whether any record of the set's type is tracked.
func (es *EntitySet[T]) Any() bool {
	return es.store.Any(es.typeName)
}

// Count returns the number of tracked records of the set's type.
func (es *EntitySet[T]) Count() int {
	return es.store.Count(es.typeName)
}

// ResetKeys is Store.ResetGenerator for the set's type.
func (es *EntitySet[T]) ResetKeys() error {
	return es.store.ResetGenerator(es.typeName)
}

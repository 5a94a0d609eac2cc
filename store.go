/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package inmemstore

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/suparena/inmemstore/errors"
	"github.com/suparena/inmemstore/keygen"
)

// Record is a single entity tracked by a Store. A zero Key means the record
// has not been committed yet. Payload is never inspected by the store.
//
// The store keeps the *Record it was given and indexes it by Type and Key, so
// callers must not modify either field after Add. A record belongs to at most
// one store; Commit refuses a staged record that already carries a key.
type Record struct {
	Type    string
	Key     int64
	Payload any
}

type identityKey struct {
	entityType string
	key        int64
}

// Store stages, keys, and tracks entity records in memory.
//
// Keys come from one keygen.Generator per entity type. Clearing the store
// drops every tracked record but leaves the generators where they are unless
// the store was configured with ResetGeneratorsOnClear.
type Store struct {
	name       string
	config     Config
	logger     *zap.Logger
	generators *keygen.Cache

	mu       sync.RWMutex
	staged   []*Record
	identity map[identityKey]*Record
	tables   map[string][]*Record

	setsMu sync.Mutex
	sets   map[reflect.Type]any
}

// New creates an isolated Store. Unless WithName is given the store is named
// by a fresh UUID.
func New(opts ...Option) *Store {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.name == "" {
		o.name = uuid.NewString()
	}
	if o.logger == nil {
		o.logger = zap.L()
	}
	if o.generators == nil {
		o.generators = keygen.NewCache()
	}

	return &Store{
		name:       o.name,
		config:     o.config,
		logger:     o.logger.With(zap.String("database", o.name)),
		generators: o.generators,
		identity:   make(map[identityKey]*Record),
		tables:     make(map[string][]*Record),
		sets:       make(map[reflect.Type]any),
	}
}

// Name returns the store name.
func (s *Store) Name() string {
	return s.name
}

// Config returns the store configuration.
func (s *Store) Config() Config {
	return s.config
}

// Add stages an unkeyed record for the next Commit.
func (s *Store) Add(rec *Record) error {
	if rec == nil {
		return errors.NewValidationError("", "nil record")
	}
	if rec.Type == "" {
		return errors.NewValidationError("type", "entity type is required")
	}
	if rec.Key != 0 {
		return errors.NewValidationError("key", "record already has a key")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, staged := range s.staged {
		if staged == rec {
			return errors.NewValidationError("", "record is already staged")
		}
	}
	s.staged = append(s.staged, rec)
	return nil
}

// Commit assigns a key to every staged record and starts tracking it.
//
// Records are processed in the order they were added. If a newly issued key
// is already tracked for the record's type, Commit stops and returns a
// *errors.DuplicateKeyError. Records committed before the failure stay
// committed; the failing record keeps a zero key and, with every record after
// it, stays staged.
//
// A staged record that acquired a key since Add, typically because another
// store committed it, stops Commit with an *errors.ValidationError. No key is
// drawn for it and it is dropped from staging; the records after it stay
// staged.
func (s *Store) Commit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	logger := s.logger.With(zap.String("operation", "Commit"))
	for i, rec := range s.staged {
		// keyed since Add, by another store's Commit or by the caller
		if rec.Key != 0 {
			logger.Error("staged record already has a key",
				zap.String("type", rec.Type),
				zap.Int64("key", rec.Key),
				zap.Int("committed", i),
				zap.Int("pending", len(s.staged)-i),
			)
			s.staged = append([]*Record(nil), s.staged[i+1:]...)
			return errors.NewValidationError("key", fmt.Sprintf("staged %s record was keyed %d outside this commit", rec.Type, rec.Key))
		}

		key := s.generators.GetOrAdd(rec.Type).Next()
		id := identityKey{entityType: rec.Type, key: key}

		if _, tracked := s.identity[id]; tracked {
			logger.Error("key already tracked",
				zap.String("type", rec.Type),
				zap.Int64("key", key),
				zap.Int("committed", i),
				zap.Int("pending", len(s.staged)-i),
			)
			s.staged = append([]*Record(nil), s.staged[i:]...)
			return errors.NewDuplicateKeyError(rec.Type, key)
		}

		rec.Key = key
		s.identity[id] = rec
		s.tables[rec.Type] = append(s.tables[rec.Type], rec)
		logger.Debug("key assigned", zap.String("type", rec.Type), zap.Int64("key", key))
	}
	s.staged = nil
	return nil
}

// Clear stops tracking every record of every type. Key generators keep their
// position unless the store was configured with ResetGeneratorsOnClear.
// Staged records are left staged.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := len(s.identity)
	s.identity = make(map[identityKey]*Record)
	s.tables = make(map[string][]*Record)

	// safe only because the identity map is empty for every type at this point
	if s.config.ResetGeneratorsOnClear {
		s.generators.ResetAll()
	}

	s.logger.Info("store cleared",
		zap.Int("removed", removed),
		zap.Bool("generatorsReset", s.config.ResetGeneratorsOnClear),
	)
}

// FindByKey returns the tracked record of entityType with the given key.
func (s *Store) FindByKey(entityType string, key int64) (*Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.identity[identityKey{entityType: entityType, key: key}]
	return rec, ok
}

// AllOf returns a snapshot of the tracked records of entityType ordered by key.
func (s *Store) AllOf(entityType string) []*Record {
	s.mu.RLock()
	records := append([]*Record(nil), s.tables[entityType]...)
	s.mu.RUnlock()

	sort.Slice(records, func(i, j int) bool {
		return records[i].Key < records[j].Key
	})
	return records
}

// Count returns the number of tracked records of entityType.
func (s *Store) Count(entityType string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tables[entityType])
}

// Any reports whether any record of entityType is tracked.
func (s *Store) Any(entityType string) bool {
	return s.Count(entityType) > 0
}

// Staged returns the number of records waiting for Commit.
func (s *Store) Staged() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.staged)
}

// Types returns the entity types that currently have tracked records, sorted.
func (s *Store) Types() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	types := make([]string, 0, len(s.tables))
	for t, records := range s.tables {
		if len(records) > 0 {
			types = append(types, t)
		}
	}
	sort.Strings(types)
	return types
}

// Generator returns the key generator for entityType. Calling Reset on it
// directly skips the tracked-record check done by ResetGenerator.
func (s *Store) Generator(entityType string) *keygen.Generator {
	return s.generators.GetOrAdd(entityType)
}

// ResetGenerator restarts key numbering for entityType. It refuses with a
// *errors.UnsafeResetError while records of that type are still tracked,
// since the reissued keys would collide with them.
func (s *Store) ResetGenerator(entityType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkResetLocked(entityType); err != nil {
		return err
	}
	if gen, ok := s.generators.Lookup(entityType); ok {
		gen.Reset()
	}
	return nil
}

// ResetGenerators restarts key numbering for every entity type. No generator
// is reset unless all of them can be.
func (s *Store) ResetGenerators() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, entityType := range s.generators.Types() {
		if err := s.checkResetLocked(entityType); err != nil {
			return err
		}
	}
	s.generators.ResetAll()
	return nil
}

func (s *Store) checkResetLocked(entityType string) error {
	if tracked := len(s.tables[entityType]); tracked > 0 {
		s.logger.Error("refusing key generator reset",
			zap.String("operation", "ResetGenerator"),
			zap.String("type", entityType),
			zap.Int("tracked", tracked),
		)
		return errors.NewUnsafeResetError(entityType, tracked)
	}
	return nil
}

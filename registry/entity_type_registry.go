/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"reflect"
	"sync"
)

// entityTypeRegistry maps Go types to the entity type names the store keys them by.
var (
	entityTypeRegistry = make(map[reflect.Type]string)
	mu                 sync.RWMutex
)

// RegisterEntityType associates a Go type T with the entity type name used by the store.
func RegisterEntityType[T any](name string) {
	t := reflect.TypeOf((*T)(nil)).Elem()

	mu.Lock()
	defer mu.Unlock()
	entityTypeRegistry[t] = name
}

// EntityTypeName returns the registered name for T, or the Go type name when
// T was never registered. Pointer types resolve to their element type.
func EntityTypeName[T any]() string {
	t := reflect.TypeOf((*T)(nil)).Elem()

	mu.RLock()
	name, ok := entityTypeRegistry[t]
	mu.RUnlock()
	if ok {
		return name
	}

	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}

package registry

import (
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/suparena/inmemstore/errors"
)

// UnmarshalFunc builds a payload for an entity type from its attribute map.
type UnmarshalFunc func(item map[string]types.AttributeValue) (interface{}, error)

// typeRegistry holds the mapping from an entity type name to its unmarshal function.
var (
	typeRegistry = make(map[string]UnmarshalFunc)
	typeMu       sync.RWMutex
)

// RegisterType registers an unmarshal function for a given entity type name.
// If a type is already registered under the name, it panics to prevent accidental overrides.
func RegisterType(name string, fn UnmarshalFunc) {
	typeMu.Lock()
	defer typeMu.Unlock()

	if _, exists := typeRegistry[name]; exists {
		panic(fmt.Sprintf("type registry: type %q already registered", name))
	}
	typeRegistry[name] = fn
}

// GetUnmarshalFunc returns the registered unmarshal function for the given entity type name.
// If no function is registered, it returns an error matching errors.ErrUnknownEntityType.
func GetUnmarshalFunc(name string) (UnmarshalFunc, error) {
	typeMu.RLock()
	defer typeMu.RUnlock()

	fn, ok := typeRegistry[name]
	if !ok {
		return nil, fmt.Errorf("type registry: no type registered for %q: %w", name, errors.ErrUnknownEntityType)
	}
	return fn, nil
}

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/inmemstore/errors"
)

type registryWidget struct {
	Name string
}

type registryGadget struct{}

type renamedGadget struct{}

func TestEntityTypeName(t *testing.T) {
	t.Run("DefaultsToGoTypeName", func(t *testing.T) {
		assert.Equal(t, "registryGadget", EntityTypeName[registryGadget]())
	})

	t.Run("PointerResolvesToElement", func(t *testing.T) {
		assert.Equal(t, "registryGadget", EntityTypeName[*registryGadget]())
	})

	t.Run("RegisteredNameWins", func(t *testing.T) {
		RegisterEntityType[renamedGadget]("Gadgets")
		assert.Equal(t, "Gadgets", EntityTypeName[renamedGadget]())
	})

	t.Run("UnnamedType", func(t *testing.T) {
		assert.Equal(t, "map[string]interface {}", EntityTypeName[map[string]any]())
	})
}

func TestTypeRegistry(t *testing.T) {
	RegisterType("registryWidget", func(item map[string]types.AttributeValue) (interface{}, error) {
		var w registryWidget
		if err := attributevalue.UnmarshalMap(item, &w); err != nil {
			return nil, err
		}
		return w, nil
	})

	t.Run("Lookup", func(t *testing.T) {
		fn, err := GetUnmarshalFunc("registryWidget")
		require.NoError(t, err)

		item, err := attributevalue.MarshalMap(map[string]any{"Name": "Zach"})
		require.NoError(t, err)

		obj, err := fn(item)
		require.NoError(t, err)
		assert.Equal(t, registryWidget{Name: "Zach"}, obj)
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := GetUnmarshalFunc("nope")
		require.Error(t, err)
		assert.True(t, errors.IsUnknownEntityType(err))
	})

	t.Run("DuplicatePanics", func(t *testing.T) {
		assert.Panics(t, func() {
			RegisterType("registryWidget", func(map[string]types.AttributeValue) (interface{}, error) {
				return nil, nil
			})
		})
	})
}

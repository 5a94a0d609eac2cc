/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package inmemstore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		cfg, err := LoadConfig(strings.NewReader(""))
		require.NoError(t, err)
		assert.False(t, cfg.ResetGeneratorsOnClear)
	})

	t.Run("ResetOnClear", func(t *testing.T) {
		cfg, err := LoadConfig(strings.NewReader("resetGeneratorsOnClear: true\n"))
		require.NoError(t, err)
		assert.True(t, cfg.ResetGeneratorsOnClear)
	})

	t.Run("UnknownFieldRejected", func(t *testing.T) {
		_, err := LoadConfig(strings.NewReader("resetOnClear: true\n"))
		require.Error(t, err)
	})

	t.Run("File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "store.yaml")
		require.NoError(t, os.WriteFile(path, []byte("resetGeneratorsOnClear: true\n"), 0o600))

		cfg, err := LoadConfigFile(path)
		require.NoError(t, err)
		assert.True(t, cfg.ResetGeneratorsOnClear)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})
}

func TestConfigOverrides(t *testing.T) {
	t.Run("EmptyLeavesConfig", func(t *testing.T) {
		o, err := LoadConfigOverrides(strings.NewReader(""))
		require.NoError(t, err)
		assert.Nil(t, o.ResetGeneratorsOnClear)

		store := New(WithResetGeneratorsOnClear(true), WithConfigOverrides(o))
		assert.True(t, store.Config().ResetGeneratorsOnClear)
	})

	t.Run("ExplicitFalseApplied", func(t *testing.T) {
		o, err := LoadConfigOverrides(strings.NewReader("resetGeneratorsOnClear: false\n"))
		require.NoError(t, err)
		require.NotNil(t, o.ResetGeneratorsOnClear)

		store := New(WithResetGeneratorsOnClear(true), WithConfigOverrides(o))
		assert.False(t, store.Config().ResetGeneratorsOnClear)
	})

	t.Run("UnknownFieldRejected", func(t *testing.T) {
		_, err := LoadConfigOverrides(strings.NewReader("resetOnClear: true\n"))
		require.Error(t, err)
	})

	t.Run("File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "store.yaml")
		require.NoError(t, os.WriteFile(path, []byte("resetGeneratorsOnClear: true\n"), 0o600))

		o, err := LoadConfigOverridesFile(path)
		require.NoError(t, err)
		require.NotNil(t, o.ResetGeneratorsOnClear)
		assert.True(t, *o.ResetGeneratorsOnClear)
	})
}

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package keygen

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator(t *testing.T) {
	t.Run("StartsAtOne", func(t *testing.T) {
		gen := New()
		assert.Equal(t, int64(0), gen.Current())
		assert.Equal(t, int64(1), gen.Next())
		assert.Equal(t, int64(2), gen.Next())
		assert.Equal(t, int64(2), gen.Current())
	})

	t.Run("ZeroValueUsable", func(t *testing.T) {
		var gen Generator
		assert.Equal(t, int64(1), gen.Next())
	})

	t.Run("Monotonic", func(t *testing.T) {
		gen := New()
		prev := int64(0)
		for i := 0; i < 100; i++ {
			next := gen.Next()
			require.Greater(t, next, prev)
			prev = next
		}
	})

	t.Run("ResetRestartsSequence", func(t *testing.T) {
		gen := New()
		gen.Next()
		gen.Next()
		gen.Next()

		gen.Reset()
		assert.Equal(t, int64(0), gen.Current())
		assert.Equal(t, int64(1), gen.Next())
	})
}

func TestGeneratorConcurrentNext(t *testing.T) {
	const workers = 16
	const perWorker = 500

	gen := New()
	results := make(chan int64, workers*perWorker)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				results <- gen.Next()
			}
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[int64]bool, workers*perWorker)
	for key := range results {
		require.False(t, seen[key], "key %d issued twice", key)
		seen[key] = true
	}
	assert.Len(t, seen, workers*perWorker)
	assert.Equal(t, int64(workers*perWorker), gen.Current())
}

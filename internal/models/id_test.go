package models

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextIDStrictlyIncreasing(t *testing.T) {
	prev := NextID()
	for i := 0; i < 10000; i++ {
		id := NextID()
		require.Greater(t, id, prev)
		prev = id
	}
}

func TestNextIDUniqueUnderConcurrency(t *testing.T) {
	const workers = 8
	const perWorker = 2000

	var wg sync.WaitGroup
	results := make([][]int64, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			ids := make([]int64, 0, perWorker)
			for i := 0; i < perWorker; i++ {
				ids = append(ids, NextID())
			}
			results[w] = ids
		}(w)
	}
	wg.Wait()

	seen := make(map[int64]bool, workers*perWorker)
	for _, ids := range results {
		for _, id := range ids {
			assert.False(t, seen[id], "id %d issued twice", id)
			seen[id] = true
		}
	}
	require.Len(t, seen, workers*perWorker)
}

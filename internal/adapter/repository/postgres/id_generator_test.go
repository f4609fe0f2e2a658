package postgres

import (
	"sort"
	"sync"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestULIDGeneratorProducesValidIDs(t *testing.T) {
	gen := NewULIDGenerator()

	id := gen.Generate()
	require.Len(t, id, 26)

	_, err := ulid.Parse(id)
	require.NoError(t, err)
}

func TestULIDGeneratorIDsAreUnique(t *testing.T) {
	gen := NewULIDGenerator()

	const n = 1000
	seen := make(map[string]struct{}, n)
	for range n {
		id := gen.Generate()
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestULIDGeneratorIDsSortChronologically(t *testing.T) {
	gen := NewULIDGenerator()

	ids := make([]string, 100)
	for i := range ids {
		ids[i] = gen.Generate()
	}

	sorted := make([]string, len(ids))
	copy(sorted, ids)
	sort.Strings(sorted)

	assert.Equal(t, sorted, ids, "ids generated in sequence should already be sorted")
}

func TestULIDGeneratorConcurrentUse(t *testing.T) {
	gen := NewULIDGenerator()

	const workers = 8
	const perWorker = 200

	var (
		mu  sync.Mutex
		all = make(map[string]struct{}, workers*perWorker)
		wg  sync.WaitGroup
	)

	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			local := make([]string, 0, perWorker)
			for range perWorker {
				local = append(local, gen.Generate())
			}
			mu.Lock()
			for _, id := range local {
				all[id] = struct{}{}
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, all, workers*perWorker)
}

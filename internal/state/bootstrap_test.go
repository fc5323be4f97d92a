package state

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryFlagStore struct {
	flags map[string]bool
}

func newMemoryFlagStore() *memoryFlagStore {
	return &memoryFlagStore{flags: map[string]bool{}}
}

func (m *memoryFlagStore) IsSet(_ context.Context, key string) (bool, error) {
	return m.flags[key], nil
}

func (m *memoryFlagStore) Set(_ context.Context, key string) error {
	m.flags[key] = true
	return nil
}

func TestLoadSampleDataSeedsOnce(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	flags := newMemoryFlagStore()

	seeded, err := LoadSampleData(ctx, s, flags)
	require.NoError(t, err)
	assert.True(t, seeded)

	snap := s.Snapshot()
	assert.Len(t, snap.Categories, 4)
	assert.Len(t, snap.Products, 10)
	assert.Len(t, snap.Tables, 12)
	assert.Len(t, snap.Users, 3)
	assert.True(t, flags.flags[SampleDataFlag])

	// Second run is a no-op, even against a store that was wiped.
	s.SetProducts(nil)
	seeded, err = LoadSampleData(ctx, s, flags)
	require.NoError(t, err)
	assert.False(t, seeded)
	assert.Empty(t, s.Snapshot().Products)
}

func TestSampleDataIsConsistent(t *testing.T) {
	categories := map[string]bool{}
	for _, c := range SampleCategories() {
		categories[c.ID] = true
	}
	for _, p := range SampleProducts() {
		assert.True(t, categories[p.CategoryID], "product %s references unknown category %s", p.ID, p.CategoryID)
	}
}

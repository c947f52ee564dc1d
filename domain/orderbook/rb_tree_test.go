package orderbook

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRBTreeUpsertFindDelete(t *testing.T) {
	tr := NewRBTree()

	lvl := tr.UpsertLevel(100)
	require.NotNil(t, lvl)
	assert.Equal(t, int64(100), lvl.Price)
	assert.Same(t, lvl, tr.UpsertLevel(100), "upsert must not duplicate a level")
	assert.Same(t, lvl, tr.FindLevel(100))
	assert.Equal(t, 1, tr.Size())

	assert.True(t, tr.DeleteLevel(100))
	assert.False(t, tr.DeleteLevel(100))
	assert.Nil(t, tr.FindLevel(100))
	assert.Zero(t, tr.Size())
}

func TestRBTreeOrderingUnderChurn(t *testing.T) {
	tr := NewRBTree()
	rng := rand.New(rand.NewSource(1))

	prices := rng.Perm(1000)
	for _, p := range prices {
		tr.UpsertLevel(int64(p))
	}
	require.Equal(t, 1000, tr.Size())

	assert.Equal(t, int64(0), tr.MinLevel().Price)
	assert.Equal(t, int64(999), tr.MaxLevel().Price)

	// Delete a random half, then verify full sorted traversal.
	deleted := map[int64]bool{}
	for _, p := range prices[:500] {
		require.True(t, tr.DeleteLevel(int64(p)))
		deleted[int64(p)] = true
	}
	require.Equal(t, 500, tr.Size())

	var want []int64
	for p := int64(0); p < 1000; p++ {
		if !deleted[p] {
			want = append(want, p)
		}
	}

	var got []int64
	tr.ForEachAscending(func(lvl *PriceLevel) bool {
		got = append(got, lvl.Price)
		return true
	})
	require.True(t, sort.SliceIsSorted(got, func(i, j int) bool { return got[i] < got[j] }))
	assert.Equal(t, want, got)

	var desc []int64
	tr.ForEachDescending(func(lvl *PriceLevel) bool {
		desc = append(desc, lvl.Price)
		return true
	})
	require.Len(t, desc, len(got))
	assert.Equal(t, got[len(got)-1], desc[0])
}

func TestRBTreeWalkEarlyStop(t *testing.T) {
	tr := NewRBTree()
	for p := int64(1); p <= 10; p++ {
		tr.UpsertLevel(p)
	}

	var seen int
	tr.ForEachAscending(func(*PriceLevel) bool {
		seen++
		return seen < 3
	})
	assert.Equal(t, 3, seen)
}

func TestRBTreeEmpty(t *testing.T) {
	tr := NewRBTree()
	assert.Nil(t, tr.MinLevel())
	assert.Nil(t, tr.MaxLevel())
	assert.Nil(t, tr.FindLevel(1))
	tr.ForEachAscending(func(*PriceLevel) bool {
		t.Fatal("walk on empty tree must not visit")
		return false
	})
}

package vindex_test

import (
	"testing"

	"github.com/geomodel/brep/vindex"
	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindOrCreateDedups(t *testing.T) {
	t.Parallel()
	ix := vindex.New(1e-6)
	a := ix.FindOrCreate(r3.Vector{X: 1, Y: 1, Z: 1})
	b := ix.FindOrCreate(r3.Vector{X: 1, Y: 1, Z: 1 + 1e-9})
	c := ix.FindOrCreate(r3.Vector{X: 5, Y: 5, Z: 5})
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, 2, ix.NbPoints())
}

func TestAttachAndDetachOccurrence(t *testing.T) {
	t.Parallel()
	ix := vindex.New(1e-6)
	c := ix.AddPoint(r3.Vector{X: 0, Y: 0, Z: 0})
	occ := vindex.Occurrence{LocalIndex: 3}
	require.NoError(t, ix.AttachOccurrence(c, occ))

	got, err := ix.Occurrences(c)
	require.NoError(t, err)
	assert.Equal(t, []vindex.Occurrence{occ}, got)

	require.NoError(t, ix.Detach(c, occ))
	got, _ = ix.Occurrences(c)
	assert.Empty(t, got)

	err = ix.Detach(c, occ)
	assert.ErrorIs(t, err, vindex.ErrOccurrenceNotFound)
}

func TestMergeColocated(t *testing.T) {
	t.Parallel()
	ix := vindex.New(1e-3)
	a := ix.AddPoint(r3.Vector{X: 0, Y: 0, Z: 0})
	b := ix.AddPoint(r3.Vector{X: 0, Y: 0, Z: 1e-6})
	require.NoError(t, ix.AttachOccurrence(a, vindex.Occurrence{LocalIndex: 1}))
	require.NoError(t, ix.AttachOccurrence(b, vindex.Occurrence{LocalIndex: 2}))

	n := ix.MergeColocated()
	assert.Equal(t, 1, n)

	occA, _ := ix.Occurrences(a)
	assert.Len(t, occA, 2)
}

// TestLookupSkipsTombstonesAfterMerge guards against a kd-tree built over
// raw ix.points including mergeInto's NaN tombstones: a NaN split node
// makes the tree's near/far pruning undefined (every comparison against
// NaN is false), which can wrongly discard the branch holding a real
// point. Lookup must still find every live point after a merge leaves a
// tombstone behind.
func TestLookupSkipsTombstonesAfterMerge(t *testing.T) {
	t.Parallel()
	ix := vindex.New(1e-3)
	ix.AddPoint(r3.Vector{X: 0, Y: 0, Z: 0})
	ix.AddPoint(r3.Vector{X: 0, Y: 0, Z: 1e-6}) // merges into point 0, tombstoned
	ix.AddPoint(r3.Vector{X: 5, Y: 5, Z: 5})
	ix.AddPoint(r3.Vector{X: 10, Y: 10, Z: 10})

	n := ix.MergeColocated()
	require.Equal(t, 1, n)

	for _, p := range []r3.Vector{{X: 0, Y: 0, Z: 0}, {X: 5, Y: 5, Z: 5}, {X: 10, Y: 10, Z: 10}} {
		_, ok := ix.Lookup(p)
		assert.True(t, ok, "Lookup(%v) should find a live point after a merge left a tombstone", p)
	}
}

func TestEraseVertices(t *testing.T) {
	t.Parallel()
	ix := vindex.New(1e-6)
	ix.AddPoint(r3.Vector{X: 0, Y: 0, Z: 0})
	ix.AddPoint(r3.Vector{X: 1, Y: 0, Z: 0})
	ix.AddPoint(r3.Vector{X: 2, Y: 0, Z: 0})

	remap, err := ix.EraseVertices([]bool{false, true, false})
	require.NoError(t, err)
	assert.Equal(t, 2, ix.NbPoints())
	assert.Equal(t, uint32(0), remap[0])
	assert.Equal(t, uint32(1), remap[2])
	_, ok := remap[1]
	assert.False(t, ok)

	_, err = ix.EraseVertices([]bool{true})
	assert.ErrorIs(t, err, vindex.ErrNonMonotoneMask)
}

package kdtree_test

import (
	"testing"

	"github.com/geomodel/brep/internal/kdtree"
	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearestWithin(t *testing.T) {
	t.Parallel()
	pts := []r3.Vector{
		{X: 0, Y: 0, Z: 0},
		{X: 10, Y: 0, Z: 0},
		{X: 5, Y: 5, Z: 0},
		{X: 1, Y: 1, Z: 1},
	}
	ids := []uint32{0, 1, 2, 3}
	tree := kdtree.Build(pts, ids)

	id, pt, ok := tree.NearestWithin(r3.Vector{X: 0.1, Y: 0.1, Z: 0.1}, 0.5)
	require.True(t, ok)
	assert.Equal(t, uint32(0), id)
	assert.InDelta(t, 0, pt.X, 1e-9)

	_, _, ok = tree.NearestWithin(r3.Vector{X: 3, Y: 3, Z: 3}, 0.1)
	assert.False(t, ok)
}

func TestRangeWithin(t *testing.T) {
	t.Parallel()
	pts := []r3.Vector{
		{X: 0, Y: 0, Z: 0},
		{X: 0.5, Y: 0, Z: 0},
		{X: 10, Y: 0, Z: 0},
	}
	ids := []uint32{0, 1, 2}
	tree := kdtree.Build(pts, ids)

	got := tree.RangeWithin(r3.Vector{X: 0, Y: 0, Z: 0}, 1.0)
	assert.ElementsMatch(t, []uint32{0, 1}, got)

	assert.Empty(t, tree.RangeWithin(r3.Vector{X: 20, Y: 0, Z: 0}, 1.0))
}

func TestBuildEmpty(t *testing.T) {
	t.Parallel()
	tree := kdtree.Build(nil, nil)
	_, _, ok := tree.NearestWithin(r3.Vector{}, 1.0)
	assert.False(t, ok)
}

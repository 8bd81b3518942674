package closure_test

import (
	"testing"

	"github.com/geomodel/brep/builder"
	"github.com/geomodel/brep/closure"
	"github.com/geomodel/brep/entity"
	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSingleTriangle(t *testing.T) *builder.Builder {
	t.Helper()
	b := builder.NewModel("closure-test", 1e-6)
	c0, err := b.FindOrCreateCorner(r3.Vector{X: 0, Y: 0, Z: 0})
	require.NoError(t, err)
	c1, err := b.FindOrCreateCorner(r3.Vector{X: 1, Y: 0, Z: 0})
	require.NoError(t, err)
	c2, err := b.FindOrCreateCorner(r3.Vector{X: 0, Y: 1, Z: 0})
	require.NoError(t, err)

	l0, err := b.FindOrCreateLine(c0, c1)
	require.NoError(t, err)
	l1, err := b.FindOrCreateLine(c1, c2)
	require.NoError(t, err)
	l2, err := b.FindOrCreateLine(c2, c0)
	require.NoError(t, err)

	surf := b.Model.CreateEntity(entity.Surface)
	for _, l := range []entity.ID{l0, l1, l2} {
		require.NoError(t, b.Model.AddBoundary(surf, l))
	}
	return b
}

func TestComputeGrowsLineClosureWhenOnlySurfaceRemoved(t *testing.T) {
	t.Parallel()
	b := buildSingleTriangle(t)
	surf := entity.ID{Kind: entity.Surface, Index: 0}

	mesh, _, grew := closure.Compute(b.Model, []entity.ID{surf}, nil)
	assert.True(t, grew)

	byID := map[entity.ID]bool{}
	for _, id := range mesh {
		byID[id] = true
	}
	assert.True(t, byID[surf])
	// All three Lines lose their only incident Surface, and then all three
	// Corners lose their only incident Lines: the whole triangle is swept in.
	assert.Equal(t, 7, len(mesh)) // surface + 3 lines + 3 corners
}

func TestComputeIsNoopWhenSurfaceSurvives(t *testing.T) {
	t.Parallel()
	b := buildSingleTriangle(t)
	l0 := entity.ID{Kind: entity.Line, Index: 0}

	mesh, geo, grew := closure.Compute(b.Model, []entity.ID{l0}, nil)
	assert.False(t, grew)
	assert.Equal(t, []entity.ID{l0}, mesh)
	assert.Empty(t, geo)
}

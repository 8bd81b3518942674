package builder_test

import (
	"testing"

	"github.com/geomodel/brep/builder"
	"github.com/geomodel/brep/entity"
	"github.com/geomodel/brep/mesh"
	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildUnitSquare(t *testing.T) *builder.Builder {
	t.Helper()
	b := builder.NewModel("unit-square", 1e-6)

	c00, err := b.FindOrCreateCorner(r3.Vector{X: 0, Y: 0, Z: 0})
	require.NoError(t, err)
	c10, err := b.FindOrCreateCorner(r3.Vector{X: 1, Y: 0, Z: 0})
	require.NoError(t, err)
	c11, err := b.FindOrCreateCorner(r3.Vector{X: 1, Y: 1, Z: 0})
	require.NoError(t, err)
	c01, err := b.FindOrCreateCorner(r3.Vector{X: 0, Y: 1, Z: 0})
	require.NoError(t, err)

	// Reusing a corner through FindOrCreateCorner must not duplicate it.
	dup, err := b.FindOrCreateCorner(r3.Vector{X: 0, Y: 0, Z: 1e-9})
	require.NoError(t, err)
	assert.Equal(t, c00, dup)

	l0, err := b.FindOrCreateLine(c00, c10)
	require.NoError(t, err)
	l1, err := b.FindOrCreateLine(c10, c11)
	require.NoError(t, err)
	l2, err := b.FindOrCreateLine(c11, c01)
	require.NoError(t, err)
	l3, err := b.FindOrCreateLine(c01, c00)
	require.NoError(t, err)

	// Re-requesting an existing line in reverse order must return the same id.
	dupLine, err := b.FindOrCreateLine(c10, c00)
	require.NoError(t, err)
	assert.Equal(t, l0, dupLine)

	surf := b.Model.CreateEntity(entity.Surface)
	require.NoError(t, b.Model.SetGeologicalFeature(surf, "fault"))
	for _, l := range []entity.ID{l0, l1, l2, l3} {
		require.NoError(t, b.Model.AddBoundary(surf, l))
	}
	require.NoError(t, b.AppendSurfacePolygon(surf, []r3.Vector{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
	}))

	return b
}

func TestFindOrCreateCornerDedups(t *testing.T) {
	t.Parallel()
	b := buildUnitSquare(t)
	assert.Equal(t, 4, b.Model.NbEntities(entity.Corner))
}

func TestFindOrCreateLineDedups(t *testing.T) {
	t.Parallel()
	b := buildUnitSquare(t)
	assert.Equal(t, 4, b.Model.NbEntities(entity.Line))
}

func TestAppendSurfacePolygonCreatesGeometry(t *testing.T) {
	t.Parallel()
	b := buildUnitSquare(t)
	n := b.Model.NbEntities(entity.Surface)
	require.Equal(t, 1, n)
	surf, err := b.Model.Surface(entity.ID{Kind: entity.Surface, Index: 0})
	require.NoError(t, err)
	require.NotNil(t, surf.Geometry)
	assert.Equal(t, 1, surf.Geometry.NbPolygons())
	assert.InDelta(t, 1.0, surf.Geometry.Area(0), 1e-9)
}

func TestEndModelBuildsInterfacesAndContacts(t *testing.T) {
	t.Parallel()
	b := buildUnitSquare(t)
	require.NoError(t, b.EndModel())

	assert.Equal(t, 1, b.Model.NbEntities(entity.Interface))
	// All four Lines border the same (single) Interface, so they share one Contact.
	assert.Equal(t, 1, b.Model.NbEntities(entity.Contact))

	err := b.EndModel()
	assert.Error(t, err)
}

func TestSetRegionCellsLazyInitsGeometry(t *testing.T) {
	t.Parallel()
	b := builder.NewModel("cell-test", 1e-6)
	region := b.Model.CreateEntity(entity.Region)
	require.NoError(t, b.SetRegionCells(region, mesh.Tetrahedron, []r3.Vector{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 0, Y: 0, Z: 1},
	}))
	r, err := b.Model.Region(region)
	require.NoError(t, err)
	require.NotNil(t, r.Geometry)
	assert.Equal(t, 1, r.Geometry.NbCells())
}

// TestCanonicalIDMatchesVertexIndex asserts the C4 "mapping consistency"
// contract: every vertex's VertexArray.CanonicalID matches the canonical
// id vindex itself holds for that same point.
func TestCanonicalIDMatchesVertexIndex(t *testing.T) {
	t.Parallel()
	b := buildUnitSquare(t)

	corner0, err := b.FindOrCreateCorner(r3.Vector{X: 0, Y: 0, Z: 0})
	require.NoError(t, err)
	c, err := b.Model.Corner(corner0)
	require.NoError(t, err)
	canon, ok := b.Index.Lookup(r3.Vector{X: 0, Y: 0, Z: 0})
	require.True(t, ok)
	assert.Equal(t, canon, c.Vertex.CanonicalID(0))

	surf, err := b.Model.Surface(entity.ID{Kind: entity.Surface, Index: 0})
	require.NoError(t, err)
	for i := 0; i < surf.Geometry.NbVertices(); i++ {
		p := surf.Geometry.VertexCoords(i)
		canon, ok := b.Index.Lookup(p)
		require.True(t, ok)
		assert.Equal(t, canon, surf.Geometry.CanonicalID(i))
	}
}

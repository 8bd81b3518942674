package mesh_test

import (
	"testing"

	"github.com/geomodel/brep/mesh"
	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertexArrayAppendAndAttributes(t *testing.T) {
	t.Parallel()
	va := mesh.NewVertexArray()
	i0 := va.AppendVertex(r3.Vector{X: 0, Y: 0, Z: 0})
	i1 := va.AppendVertex(r3.Vector{X: 1, Y: 0, Z: 0})
	require.Equal(t, 0, i0)
	require.Equal(t, 1, i1)
	assert.Equal(t, 2, va.NbVertices())

	col, err := mesh.Bind[float64](va.Attrs, "weight")
	require.NoError(t, err)
	col.Set(0, 3.5)
	col.Set(1, 7.0)

	got, ok := mesh.Get[float64](va.Attrs, "weight")
	require.True(t, ok)
	assert.Equal(t, 3.5, got.Get(0))

	_, err = mesh.Bind[int](va.Attrs, "weight")
	assert.ErrorIs(t, err, mesh.ErrAttributeTypeMismatch)

	va.RemoveAt(0)
	assert.Equal(t, 1, va.NbVertices())
	assert.Equal(t, 7.0, col.Get(0))
}

func TestPolylineLengthAndClosed(t *testing.T) {
	t.Parallel()
	pl := mesh.NewPolyline()
	pl.AppendVertex(r3.Vector{X: 0, Y: 0, Z: 0})
	pl.AppendVertex(r3.Vector{X: 3, Y: 0, Z: 0})
	pl.AppendVertex(r3.Vector{X: 3, Y: 4, Z: 0})
	assert.Equal(t, 2, pl.NbEdges())
	assert.InDelta(t, 7.0, pl.Length(), 1e-9)
	assert.False(t, pl.IsClosed(1e-6))

	pl.AppendVertex(r3.Vector{X: 0, Y: 0, Z: 0})
	assert.True(t, pl.IsClosed(1e-6))
}

func TestPolygonMeshAdjacency(t *testing.T) {
	t.Parallel()
	pm := mesh.NewPolygonMesh()
	// Two triangles sharing edge (0,2): a square split along a diagonal.
	pm.AppendVertex(r3.Vector{X: 0, Y: 0, Z: 0}) // 0
	pm.AppendVertex(r3.Vector{X: 1, Y: 0, Z: 0}) // 1
	pm.AppendVertex(r3.Vector{X: 1, Y: 1, Z: 0}) // 2
	pm.AppendVertex(r3.Vector{X: 0, Y: 1, Z: 0}) // 3

	pm.AppendPolygon([]uint32{0, 1, 2})
	pm.AppendPolygon([]uint32{0, 2, 3})
	pm.ComputeAdjacency()

	require.Equal(t, 2, pm.NbPolygons())
	// Corner at polygon0 local 2 (vertex2->vertex0) matches polygon1's
	// corner 0 (vertex0->vertex2): the shared edge is (0,2)/(2,0).
	c := pm.CornerGlobalIndex(0, 2) // edge (vertex2 -> vertex0)
	adj := pm.AdjacentCorner(c)
	assert.NotEqual(t, int32(-1), adj)

	area0 := pm.Area(0)
	assert.InDelta(t, 0.5, area0, 1e-9)
}

func TestCellMeshTetrahedronVolume(t *testing.T) {
	t.Parallel()
	cm := mesh.NewCellMesh()
	cm.AppendVertex(r3.Vector{X: 0, Y: 0, Z: 0})
	cm.AppendVertex(r3.Vector{X: 1, Y: 0, Z: 0})
	cm.AppendVertex(r3.Vector{X: 0, Y: 1, Z: 0})
	cm.AppendVertex(r3.Vector{X: 0, Y: 0, Z: 1})

	idx, err := cm.AppendCell(mesh.Tetrahedron, []uint32{0, 1, 2, 3})
	require.NoError(t, err)
	assert.InDelta(t, 1.0/6.0, cm.CellVolume(idx), 1e-9)

	_, err = cm.AppendCell(mesh.Tetrahedron, []uint32{0, 1, 2})
	assert.ErrorIs(t, err, mesh.ErrDegenerateCell)
}

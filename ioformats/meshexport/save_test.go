package meshexport_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/geomodel/brep/builder"
	"github.com/geomodel/brep/entity"
	"github.com/geomodel/brep/ioformats/meshexport"
	"github.com/geomodel/brep/mesh"
	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveSurfaceWritesTriangles(t *testing.T) {
	b := builder.NewModel("mesh-test", 1e-6)
	surf := b.Model.CreateEntity(entity.Surface)
	require.NoError(t, b.AppendSurfacePolygon(surf, []r3.Vector{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0},
	}))
	s, err := b.Model.Surface(surf)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, meshexport.SaveSurface(context.Background(), s, &buf))
	out := buf.String()
	assert.Contains(t, out, "MeshVersionFormatted 2")
	assert.Contains(t, out, "Triangles")
	assert.Contains(t, out, "1 2 3 0")
}

func TestSaveRegionWritesTetrahedra(t *testing.T) {
	b := builder.NewModel("mesh-region-test", 1e-6)
	region := b.Model.CreateEntity(entity.Region)
	require.NoError(t, b.SetRegionCells(region, mesh.Tetrahedron, []r3.Vector{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 0, Y: 0, Z: 1},
	}))
	r, err := b.Model.Region(region)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, meshexport.SaveRegion(context.Background(), r, 1, &buf))
	out := buf.String()
	assert.Contains(t, out, "Tetrahedra")
	assert.Contains(t, out, "1 2 3 4 1")
}

func TestSaveEmptyProducesValidMinimalFile(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, meshexport.SaveEmpty(&buf))
	out := buf.String()
	assert.Contains(t, out, "MeshVersionFormatted 2")
	assert.Contains(t, out, "End")
}

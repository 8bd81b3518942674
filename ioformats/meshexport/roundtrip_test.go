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

func TestSaveModelLoadIntoRoundTrip(t *testing.T) {
	b := builder.NewModel("volume-test", 1e-6)
	region := b.Model.CreateEntity(entity.Region)
	require.NoError(t, b.SetRegionCells(region, mesh.Tetrahedron, []r3.Vector{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 0, Y: 0, Z: 1},
	}))

	var buf bytes.Buffer
	require.NoError(t, meshexport.SaveModel(context.Background(), b.Model, &buf))

	b2 := builder.NewModel("volume-test", 1e-6)
	b2.Model.CreateEntity(entity.Region) // pre-existing Region matching ref=1, as in:model would have built
	require.NoError(t, meshexport.LoadInto(context.Background(), bytes.NewReader(buf.Bytes()), b2))

	r, err := b2.Model.Region(entity.ID{Kind: entity.Region, Index: 1})
	require.NoError(t, err)
	require.NotNil(t, r.Geometry)
	assert.Equal(t, 1, r.Geometry.NbCells())
}

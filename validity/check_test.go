package validity_test

import (
	"testing"

	"github.com/geomodel/brep/builder"
	"github.com/geomodel/brep/entity"
	"github.com/geomodel/brep/validity"
	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckConnectivityCleanModel(t *testing.T) {
	t.Parallel()
	b := builder.NewModel("validity-test", 1e-6)
	c0, err := b.FindOrCreateCorner(r3.Vector{X: 0, Y: 0, Z: 0})
	require.NoError(t, err)
	c1, err := b.FindOrCreateCorner(r3.Vector{X: 1, Y: 0, Z: 0})
	require.NoError(t, err)
	_, err = b.FindOrCreateLine(c0, c1)
	require.NoError(t, err)

	report := validity.Check(b.Model, validity.Connectivity, validity.Config{})
	assert.True(t, report.Valid())
	assert.Equal(t, 0, report.Total())
}

func TestCheckGeologicalFlagsEmptyContact(t *testing.T) {
	t.Parallel()
	b := builder.NewModel("validity-test", 1e-6)
	b.Model.CreateEntity(entity.Contact)

	report := validity.Check(b.Model, validity.Geological, validity.Config{})
	assert.False(t, report.Valid())
	assert.Equal(t, 1, report.Counts[validity.Geological])
}

func TestCheckMeshEntitiesFlagsDegenerateEdge(t *testing.T) {
	t.Parallel()
	b := builder.NewModel("validity-test", 1e-6)
	c0, err := b.FindOrCreateCorner(r3.Vector{X: 0, Y: 0, Z: 0})
	require.NoError(t, err)
	c1, err := b.FindOrCreateCorner(r3.Vector{X: 0, Y: 0, Z: 0})
	require.NoError(t, err)
	assert.Equal(t, c0, c1) // dedup'd by FindOrCreateCorner

	lineID := b.Model.CreateEntity(entity.Line)
	require.NoError(t, b.Model.AddBoundary(lineID, c0))
	require.NoError(t, b.Model.AddBoundary(lineID, c1))
	line, err := b.Model.Line(lineID)
	require.NoError(t, err)
	line.Geometry = newDegeneratePolyline(t)

	report := validity.Check(b.Model, validity.MeshEntities, validity.Config{})
	assert.Equal(t, 1, report.Counts[validity.MeshEntities])
}

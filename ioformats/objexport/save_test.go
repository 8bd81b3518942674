package objexport_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/geomodel/brep/builder"
	"github.com/geomodel/brep/entity"
	"github.com/geomodel/brep/ioformats/objexport"
	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveWritesVerticesAndFaces(t *testing.T) {
	b := builder.NewModel("obj-test", 1e-6)
	surf := b.Model.CreateEntity(entity.Surface)
	require.NoError(t, b.Model.SetName(surf, "top"))
	require.NoError(t, b.AppendSurfacePolygon(surf, []r3.Vector{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0},
	}))

	var buf bytes.Buffer
	require.NoError(t, objexport.Save(context.Background(), b.Model, &buf))

	out := buf.String()
	assert.Contains(t, out, "g top")
	assert.Equal(t, 3, strings.Count(out, "\nv "))
	assert.Contains(t, out, "f 1 2 3")
}

func TestSaveSkipsSurfacesWithoutGeometry(t *testing.T) {
	b := builder.NewModel("empty-test", 1e-6)
	b.Model.CreateEntity(entity.Surface)

	var buf bytes.Buffer
	require.NoError(t, objexport.Save(context.Background(), b.Model, &buf))
	assert.NotContains(t, buf.String(), "\nv ")
}

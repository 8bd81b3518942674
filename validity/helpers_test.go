package validity_test

import (
	"testing"

	"github.com/geomodel/brep/mesh"
	"github.com/golang/geo/r3"
)

func newDegeneratePolyline(t *testing.T) *mesh.Polyline {
	t.Helper()
	pl := mesh.NewPolyline()
	pl.AppendVertex(r3.Vector{X: 0, Y: 0, Z: 0})
	pl.AppendVertex(r3.Vector{X: 0, Y: 0, Z: 0})
	return pl
}

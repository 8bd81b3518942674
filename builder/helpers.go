package builder

import (
	"github.com/geomodel/brep/geomodel"
	"github.com/geomodel/brep/mesh"
	"github.com/golang/geo/r3"
)

// newSingleVertex returns a VertexArray holding exactly the one point a
// Corner owns.
func newSingleVertex(p r3.Vector) *mesh.VertexArray {
	va := mesh.NewVertexArray()
	va.AppendVertex(p)
	return va
}

// newPolylineAt returns an empty Polyline whose first vertex is corner's
// own point, so a freshly created Line is never geometrically empty even
// before AppendLineVertex is called for its interior.
func newPolylineAt(corner *geomodel.Corner) *mesh.Polyline {
	pl := mesh.NewPolyline()
	if corner.Vertex != nil && corner.Vertex.NbVertices() > 0 {
		pl.AppendVertex(corner.Vertex.VertexCoords(0))
	}
	return pl
}

package mesh

import "github.com/geomodel/brep/internal/geomath"

// Polyline is the geometry of a Line entity: a sequence of vertices with
// implied sequential edges (v0-v1, v1-v2, ..., v(n-2)-v(n-1)). A closed
// Line has its first and last vertex equal (within epsilon); this package
// does not enforce that invariant.
type Polyline struct {
	*VertexArray
	EdgeAttrs *AttributeManager
}

// NewPolyline returns an empty polyline.
func NewPolyline() *Polyline {
	return &Polyline{VertexArray: NewVertexArray(), EdgeAttrs: NewAttributeManager(0)}
}

// NbEdges returns the number of implied sequential edges.
func (p *Polyline) NbEdges() int {
	if p.NbVertices() == 0 {
		return 0
	}
	return p.NbVertices() - 1
}

// EdgeVertices returns the two local vertex indices of edge i.
func (p *Polyline) EdgeVertices(i int) (a, b int) { return i, i + 1 }

// IsClosed reports whether the first and last vertex coincide within eps
// (a zero-length or single-vertex polyline is not considered closed).
func (p *Polyline) IsClosed(eps float64) bool {
	n := p.NbVertices()
	if n < 2 {
		return false
	}
	return geomath.Within(p.VertexCoords(0), p.VertexCoords(n-1), eps)
}

// Length returns the sum of all edge lengths.
func (p *Polyline) Length() float64 {
	return geomath.PolylineLength(p.AllCoords())
}

// AppendEdgeSlot keeps EdgeAttrs sized to NbEdges after AppendVertex grows
// the vertex count; AppendVertex does not call it, so a caller that binds
// edge attributes calls it after each new vertex beyond the first.
func (p *Polyline) AppendEdgeSlot() {
	if p.NbVertices() > 1 {
		p.EdgeAttrs.growTo(p.NbEdges())
	}
}

package repair

import (
	"github.com/geomodel/brep/builder"
	"github.com/geomodel/brep/entity"
	"github.com/geomodel/brep/internal/geomath"
	"github.com/geomodel/brep/vindex"
)

// Run applies every pass selected by mode to b's model and vertex index,
// in a fixed dependency order (colocation merge before degenerate-element
// detection before isolated-vertex erasure before contact rebuild) so that
// e.g. requesting only Contacts still sees a model whose vertex index is
// whatever state the caller left it in, without silently running the
// other passes.
func Run(b *builder.Builder, mode Mode) Summary {
	var s Summary

	if mode.Has(ColocatedVertices) {
		s.MergedVertices = b.Index.MergeColocated()
		if s.MergedVertices > 0 {
			vindex.ResyncCanonicalIDs(b.Index, b.Model)
		}
	}
	if mode.Has(DegenerateEdgesAndPolygons) {
		s.DegenerateEdges, s.DegeneratePolygons = countDegenerate(b)
	}
	if mode.Has(LineBoundaryOrder) {
		s.ReorderedLines = fixLineBoundaryOrder(b)
	}
	if mode.Has(IsolatedVertices) {
		s.ErasedVertices = eraseIsolatedVertices(b)
	}
	if mode.Has(Contacts) {
		s.RebuiltContacts = rebuildContacts(b)
	}
	return s
}

// countDegenerate scans every Line and Surface for zero-length edges and
// zero-area polygons. Detection only: removing a degenerate polygon
// without breaking its neighbors' CSR offsets and adjacency needs a
// dedicated PolygonMesh compaction routine mesh does not yet expose, so
// this pass reports the defect for validity.Check / a human editor rather
// than silently rewriting connectivity (TODO: add PolygonMesh.RemovePolygon
// once a concrete caller needs in-place repair rather than reporting).
func countDegenerate(b *builder.Builder) (edges, polygons int) {
	eps := b.Index.Epsilon()

	n := b.Model.NbEntities(entity.Line)
	for i := 0; i < n; i++ {
		line, err := b.Model.Line(entity.ID{Kind: entity.Line, Index: uint32(i)})
		if err != nil || line.Geometry == nil {
			continue
		}
		for e := 0; e < line.Geometry.NbEdges(); e++ {
			a, bb := line.Geometry.EdgeVertices(e)
			if geomath.Within(line.Geometry.VertexCoords(int(a)), line.Geometry.VertexCoords(int(bb)), eps) {
				edges++
			}
		}
	}

	m := b.Model.NbEntities(entity.Surface)
	for i := 0; i < m; i++ {
		surf, err := b.Model.Surface(entity.ID{Kind: entity.Surface, Index: uint32(i)})
		if err != nil || surf.Geometry == nil {
			continue
		}
		for p := 0; p < surf.Geometry.NbPolygons(); p++ {
			if surf.Geometry.Area(p) <= eps*eps {
				polygons++
			}
		}
	}
	return edges, polygons
}

// fixLineBoundaryOrder swaps each Line's two Corner boundaries so the
// first matches the Line's geometric start vertex and the second its end
// vertex, so boundary order matches geometry again after an import or
// edit that appended Corners out of order.
func fixLineBoundaryOrder(b *builder.Builder) int {
	fixed := 0
	eps := b.Index.Epsilon()
	n := b.Model.NbEntities(entity.Line)
	for i := 0; i < n; i++ {
		id := entity.ID{Kind: entity.Line, Index: uint32(i)}
		line, err := b.Model.Line(id)
		if err != nil || line.Geometry == nil || line.Geometry.NbVertices() == 0 {
			continue
		}
		bounds := line.Boundaries()
		if len(bounds) != 2 {
			continue
		}
		start := line.Geometry.VertexCoords(0)
		end := line.Geometry.VertexCoords(line.Geometry.NbVertices() - 1)

		c0, err0 := b.Model.Corner(bounds[0])
		c1, err1 := b.Model.Corner(bounds[1])
		if err0 != nil || err1 != nil || c0.Vertex == nil || c1.Vertex == nil {
			continue
		}
		p0 := c0.Vertex.VertexCoords(0)
		p1 := c1.Vertex.VertexCoords(0)

		if geomath.Within(p0, start, eps) && geomath.Within(p1, end, eps) {
			continue // already in order
		}
		if geomath.Within(p1, start, eps) && geomath.Within(p0, end, eps) {
			_ = b.Model.RemoveBoundary(id, bounds[0])
			_ = b.Model.RemoveBoundary(id, bounds[1])
			_ = b.Model.AddBoundary(id, bounds[1])
			_ = b.Model.AddBoundary(id, bounds[0])
			fixed++
		}
	}
	return fixed
}

// eraseIsolatedVertices removes every canonical shared-vertex-index point
// with zero recorded occurrences, which arise when an entity referencing a
// point is deleted (closure.Compute) without its vertex ever being erased.
func eraseIsolatedVertices(b *builder.Builder) int {
	n := b.Index.NbPoints()
	mask := make([]bool, n)
	erased := 0
	for i := 0; i < n; i++ {
		occ, err := b.Index.Occurrences(uint32(i))
		if err == nil && len(occ) == 0 {
			mask[i] = true
			erased++
		}
	}
	if erased > 0 {
		if _, err := b.Index.EraseVertices(mask); err == nil {
			vindex.ResyncCanonicalIDs(b.Index, b.Model)
		}
	}
	return erased
}

// rebuildContacts re-derives every Contact from the current
// Surface-to-Interface parentage (builder.BuildContacts) and deletes any
// pre-existing Contact left with no children by the rebuild.
func rebuildContacts(b *builder.Builder) int {
	if err := b.BuildContacts(); err != nil {
		return 0
	}

	rebuilt := 0
	n := b.Model.NbEntities(entity.Contact)
	for i := 0; i < n; i++ {
		id := entity.ID{Kind: entity.Contact, Index: uint32(i)}
		ct, err := b.Model.Contact(id)
		if err != nil {
			continue
		}
		if len(ct.Children()) == 0 {
			_ = b.Model.DeleteEntity(id)
			rebuilt++
		}
	}
	return rebuilt
}

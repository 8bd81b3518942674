package mesh

import (
	"github.com/geomodel/brep/internal/geomath"
	"github.com/golang/geo/r3"
)

// PolygonMesh is the geometry of a Surface entity: a 2-manifold polygonal
// mesh (triangles, quads or general polygons) stored as CSR corner/offset
// arrays plus a per-corner adjacency array pointing at the matching
// half-edge corner in a neighboring polygon (or -1 if none, i.e. the edge
// lies on a Line boundary or the mesh has a hole there).
type PolygonMesh struct {
	*VertexArray
	corners      []uint32 // flattened local vertex indices, one per polygon corner
	offsets      []uint32 // len == NbPolygons()+1, CSR offsets into corners
	adjacent     []int32  // len(corners); matching corner index in another polygon, or -1
	adjacentOK   bool     // false once corners/offsets mutate without a recompute
	PolygonAttrs *AttributeManager
}

// NewPolygonMesh returns an empty polygon mesh with offsets = [0].
func NewPolygonMesh() *PolygonMesh {
	return &PolygonMesh{
		VertexArray:  NewVertexArray(),
		offsets:      []uint32{0},
		PolygonAttrs: NewAttributeManager(0),
	}
}

// NbPolygons returns the number of polygons.
func (pm *PolygonMesh) NbPolygons() int { return len(pm.offsets) - 1 }

// PolygonSize returns the number of corners (vertices) of polygon p.
func (pm *PolygonMesh) PolygonSize(p int) int {
	return int(pm.offsets[p+1] - pm.offsets[p])
}

// PolygonVertex returns the local vertex index at corner localCorner of
// polygon p.
func (pm *PolygonMesh) PolygonVertex(p, localCorner int) uint32 {
	return pm.corners[int(pm.offsets[p])+localCorner]
}

// PolygonVertices returns the local vertex indices of every corner of
// polygon p, in winding order.
func (pm *PolygonMesh) PolygonVertices(p int) []uint32 {
	start, end := pm.offsets[p], pm.offsets[p+1]
	out := make([]uint32, end-start)
	copy(out, pm.corners[start:end])
	return out
}

// CornerGlobalIndex returns the absolute index into the corners/adjacent
// arrays for corner localCorner of polygon p — the unit adjacency is
// expressed in terms of.
func (pm *PolygonMesh) CornerGlobalIndex(p, localCorner int) int {
	return int(pm.offsets[p]) + localCorner
}

// PolygonOfCorner returns which polygon owns global corner index c, and its
// local corner offset within that polygon.
func (pm *PolygonMesh) PolygonOfCorner(c int) (polygon, localCorner int) {
	for p := 0; p < pm.NbPolygons(); p++ {
		start, end := int(pm.offsets[p]), int(pm.offsets[p+1])
		if c >= start && c < end {
			return p, c - start
		}
	}
	return -1, -1
}

// AdjacentCorner returns the matching half-edge corner for global corner c
// (as returned by CornerGlobalIndex), or -1 if c borders a Line or a hole.
// Adjacency is recomputed first if a structural mutation has marked it
// stale since the last ComputeAdjacency.
func (pm *PolygonMesh) AdjacentCorner(c int) int32 {
	if !pm.adjacentOK {
		pm.ComputeAdjacency()
	}
	return pm.adjacent[c]
}

// AppendPolygon appends a new polygon with the given local vertex indices
// (at least 3) and returns its index. Adjacency is marked stale and is
// recomputed by the next ComputeAdjacency or AdjacentCorner call.
func (pm *PolygonMesh) AppendPolygon(vertexIndices []uint32) int {
	pm.corners = append(pm.corners, vertexIndices...)
	pm.offsets = append(pm.offsets, uint32(len(pm.corners)))
	pm.PolygonAttrs.growTo(pm.NbPolygons())
	pm.adjacentOK = false
	return pm.NbPolygons() - 1
}

// halfEdgeKey canonicalizes an undirected edge (a,b) so that the two
// opposite half-edges of a shared edge hash identically regardless of
// which polygon walks it which direction.
type halfEdgeKey struct{ lo, hi uint32 }

func makeHalfEdgeKey(a, b uint32) halfEdgeKey {
	if a < b {
		return halfEdgeKey{a, b}
	}
	return halfEdgeKey{b, a}
}

// ComputeAdjacency rebuilds the per-corner adjacency array from the current
// corners/offsets, matching each directed half-edge (v_i, v_{i+1}) of a
// polygon against the reverse half-edge (v_{i+1}, v_i) of another polygon.
// An edge shared by more than two polygon half-edges in the same direction
// (i.e. inconsistent orientation) is left unmatched on the extra
// occurrences; validity.Check's NonManifoldEdges mode reports those.
func (pm *PolygonMesh) ComputeAdjacency() {
	n := len(pm.corners)
	pm.adjacent = make([]int32, n)
	for i := range pm.adjacent {
		pm.adjacent[i] = -1
	}

	type halfEdge struct {
		corner int
		from   uint32
	}
	byKey := make(map[halfEdgeKey][]halfEdge, n)

	for p := 0; p < pm.NbPolygons(); p++ {
		size := pm.PolygonSize(p)
		for lc := 0; lc < size; lc++ {
			a := pm.PolygonVertex(p, lc)
			b := pm.PolygonVertex(p, (lc+1)%size)
			key := makeHalfEdgeKey(a, b)
			global := pm.CornerGlobalIndex(p, lc)
			byKey[key] = append(byKey[key], halfEdge{corner: global, from: a})
		}
	}

	for _, edges := range byKey {
		// Match each half-edge against the first unmatched opposite-direction
		// occurrence (from != this edge's from for a simple edge; same corner
		// list element at index 0 vs 1 when exactly two occur).
		used := make([]bool, len(edges))
		for i := range edges {
			if used[i] {
				continue
			}
			for j := i + 1; j < len(edges); j++ {
				if used[j] || edges[j].from == edges[i].from {
					continue
				}
				pm.adjacent[edges[i].corner] = int32(edges[j].corner)
				pm.adjacent[edges[j].corner] = int32(edges[i].corner)
				used[i], used[j] = true, true
				break
			}
		}
	}

	pm.adjacentOK = true
}

// PolygonCoords returns the vertex coordinates of polygon p, in winding
// order.
func (pm *PolygonMesh) PolygonCoords(p int) []r3.Vector {
	return pm.polygonPoints(p)
}

// Area returns the planar area of polygon p via fan triangulation about its
// barycenter (geomath.PolygonArea).
func (pm *PolygonMesh) Area(p int) float64 {
	return geomath.PolygonArea(pm.polygonPoints(p))
}

// Barycenter returns the arithmetic-mean barycenter of polygon p's corners.
func (pm *PolygonMesh) Barycenter(p int) r3.Vector {
	return geomath.Barycenter(pm.polygonPoints(p))
}

func (pm *PolygonMesh) polygonPoints(p int) []r3.Vector {
	verts := pm.PolygonVertices(p)
	pts := make([]r3.Vector, len(verts))
	for i, v := range verts {
		pts[i] = pm.VertexCoords(int(v))
	}
	return pts
}

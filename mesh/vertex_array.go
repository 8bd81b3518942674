package mesh

import "github.com/golang/geo/r3"

// VertexArray is the vertex storage shared by every mesh entity kind
// (Corner, Line, Surface, Region). Each vertex carries a canonical_id
// attribute identifying its row in the shared vertex index (C4); builder
// and vindex.BuildFromModel set it right after registering the vertex
// with the index, so it is never computed independently here.
type VertexArray struct {
	points      []r3.Vector
	canonicalID []uint32
	Attrs       *AttributeManager
}

// NewVertexArray returns an empty vertex array with its attribute manager
// initialized.
func NewVertexArray() *VertexArray {
	return &VertexArray{Attrs: NewAttributeManager(0)}
}

// NbVertices returns the number of vertices currently stored.
func (v *VertexArray) NbVertices() int { return len(v.points) }

// VertexCoords returns the coordinates of local vertex i.
func (v *VertexArray) VertexCoords(i int) r3.Vector { return v.points[i] }

// SetVertexCoords overwrites the coordinates of local vertex i.
func (v *VertexArray) SetVertexCoords(i int, p r3.Vector) { v.points[i] = p }

// CanonicalID returns the shared-vertex-index canonical id bound to local
// vertex i, or entity.NoIndex-compatible math.MaxUint32 if never set.
func (v *VertexArray) CanonicalID(i int) uint32 { return v.canonicalID[i] }

// SetCanonicalID overwrites the canonical id bound to local vertex i. This
// is the "mapping consistency" contract of C4: every call site that hands
// a vertex to vindex.Index.AttachOccurrence calls this immediately
// afterward with the same canonical id, so CanonicalID(i) always reflects
// what vindex itself has on file for that vertex.
func (v *VertexArray) SetCanonicalID(i int, c uint32) { v.canonicalID[i] = c }

// AppendVertex adds a new vertex at the end and returns its local index.
// The canonical id starts unset (noCanonical) until the caller looks it up
// in vindex and calls SetCanonicalID.
func (v *VertexArray) AppendVertex(p r3.Vector) int {
	v.points = append(v.points, p)
	v.canonicalID = append(v.canonicalID, noCanonical)
	v.Attrs.growTo(len(v.points))
	return len(v.points) - 1
}

// noCanonical is the "unset" sentinel for canonicalID entries, mirroring
// entity.NoIndex without importing the entity package (mesh has no
// knowledge of entity ids, only of the shared vertex index's integer
// space).
const noCanonical uint32 = 1<<32 - 1

// RemoveAt deletes local vertex i, shifting subsequent vertices down by one
// local index. Callers (repair, vindex) are responsible for rewriting any
// connectivity (polygon corner indices, edge endpoints) that referenced
// shifted indices before calling this.
func (v *VertexArray) RemoveAt(i int) {
	v.points = append(v.points[:i], v.points[i+1:]...)
	v.canonicalID = append(v.canonicalID[:i], v.canonicalID[i+1:]...)
	v.Attrs.removeAt(i)
}

// AllCoords returns a copy of every vertex's coordinates, in local-index
// order — used by Polyline.Length and by the validity checks.
func (v *VertexArray) AllCoords() []r3.Vector {
	out := make([]r3.Vector, len(v.points))
	copy(out, v.points)
	return out
}

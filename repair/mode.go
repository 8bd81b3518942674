package repair

// Mode is a bitmask selecting which repair passes Run performs.
type Mode uint8

const (
	// ColocatedVertices merges shared-vertex-index points within epsilon
	// of each other (vindex.Index.MergeColocated).
	ColocatedVertices Mode = 1 << iota
	// DegenerateEdgesAndPolygons counts zero-length Polyline edges and
	// zero-area PolygonMesh polygons; it does not remove them or change
	// any mesh.
	DegenerateEdgesAndPolygons
	// LineBoundaryOrder reorders each Line's two Corner boundaries so the
	// first matches the polyline's first vertex and the second its last.
	LineBoundaryOrder
	// IsolatedVertices erases shared-vertex-index points with zero
	// occurrences (left behind by merges or manual deletion).
	IsolatedVertices
	// Contacts recomputes every Contact's grouping from the current
	// Surface/Interface parentage (builder.BuildContacts), discarding
	// any Contact left with zero children.
	Contacts

	// All runs every pass above, in the dependency order Run already
	// applies regardless of Mode (colocation before degenerate-element
	// detection before isolated-vertex cleanup).
	All = ColocatedVertices | DegenerateEdgesAndPolygons | LineBoundaryOrder | IsolatedVertices | Contacts
)

// Has reports whether m includes pass p.
func (m Mode) Has(p Mode) bool { return m&p != 0 }

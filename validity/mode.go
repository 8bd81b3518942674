package validity

// CheckMode is a bitmask selecting which invariant classes Check
// examines, mirroring ValidityCheckMode's exact flag values.
type CheckMode uint8

const (
	FiniteExtension        CheckMode = 1 << 0
	Connectivity           CheckMode = 1 << 1
	Geological             CheckMode = 1 << 2
	SurfaceLineConformity  CheckMode = 1 << 3
	RegionSurfaceConformity CheckMode = 1 << 4
	MeshEntities           CheckMode = 1 << 5
	NonManifoldEdges       CheckMode = 1 << 6
	PolygonIntersections   CheckMode = 1 << 7

	Topology = FiniteExtension | Connectivity | Geological
	Geometry = SurfaceLineConformity | RegionSurfaceConformity | MeshEntities | NonManifoldEdges | PolygonIntersections
	All      = Topology | Geometry
)

// Has reports whether m includes check c.
func (m CheckMode) Has(c CheckMode) bool { return m&c != 0 }

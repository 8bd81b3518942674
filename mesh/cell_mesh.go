package mesh

import (
	"github.com/geomodel/brep/internal/geomath"
	"github.com/golang/geo/r3"
)

// CellType tags the shape of a volume cell in a Region's optional mesh.
type CellType uint8

const (
	Tetrahedron CellType = iota
	Hexahedron
	Prism
	Pyramid
)

// cellCornerCount is the expected corner count per CellType, used to
// validate AppendCell inputs.
var cellCornerCount = map[CellType]int{
	Tetrahedron: 4,
	Hexahedron:  8,
	Prism:       6,
	Pyramid:     5,
}

// CellMesh is the optional volume mesh of a Region entity: a 3-cell complex
// of tetrahedra, hexahedra, prisms and/or pyramids, stored CSR-style like
// PolygonMesh.
type CellMesh struct {
	*VertexArray
	corners    []uint32
	offsets    []uint32
	types      []CellType
	CellAttrs  *AttributeManager
}

// NewCellMesh returns an empty cell mesh with offsets = [0].
func NewCellMesh() *CellMesh {
	return &CellMesh{
		VertexArray: NewVertexArray(),
		offsets:     []uint32{0},
		CellAttrs:   NewAttributeManager(0),
	}
}

// NbCells returns the number of cells.
func (cm *CellMesh) NbCells() int { return len(cm.offsets) - 1 }

// CellType returns the shape tag of cell c.
func (cm *CellMesh) CellType(c int) CellType { return cm.types[c] }

// CellVertices returns the local vertex indices of cell c's corners.
func (cm *CellMesh) CellVertices(c int) []uint32 {
	start, end := cm.offsets[c], cm.offsets[c+1]
	out := make([]uint32, end-start)
	copy(out, cm.corners[start:end])
	return out
}

// AppendCell appends a new cell of the given type and corner list (in the
// canonical corner order for that type) and returns its index.
// ErrDegenerateCell is returned if vertexIndices does not match the
// expected corner count for typ.
func (cm *CellMesh) AppendCell(typ CellType, vertexIndices []uint32) (int, error) {
	if want, ok := cellCornerCount[typ]; !ok || len(vertexIndices) != want {
		return 0, ErrDegenerateCell
	}
	cm.corners = append(cm.corners, vertexIndices...)
	cm.offsets = append(cm.offsets, uint32(len(cm.corners)))
	cm.types = append(cm.types, typ)
	cm.CellAttrs.growTo(cm.NbCells())
	return cm.NbCells() - 1, nil
}

func (cm *CellMesh) cellPoints(c int) []r3.Vector {
	verts := cm.CellVertices(c)
	pts := make([]r3.Vector, len(verts))
	for i, v := range verts {
		pts[i] = cm.VertexCoords(int(v))
	}
	return pts
}

// CellBarycenter returns the arithmetic-mean barycenter of cell c's
// corners.
func (cm *CellMesh) CellBarycenter(c int) r3.Vector {
	return geomath.Barycenter(cm.cellPoints(c))
}

// CellVolume returns the volume of cell c. Tetrahedra compute directly;
// hexahedra, prisms and pyramids are decomposed into tetrahedra fanned from
// the cell's own barycenter, which is exact for convex cells and a stable
// approximation otherwise (mirrors the "measure cell size" contract of
// mesh §4.2 without requiring a dedicated decomposition per cell shape).
func (cm *CellMesh) CellVolume(c int) float64 {
	verts := cm.CellVertices(c)
	if cm.types[c] == Tetrahedron && len(verts) == 4 {
		pts := cm.cellPoints(c)
		return geomath.TetrahedronVolume(pts[0], pts[1], pts[2], pts[3])
	}
	pts := cm.cellPoints(c)
	center := geomath.Barycenter(pts)
	faces := cellFaces[cm.types[c]]
	var total float64
	for _, face := range faces {
		// Fan-triangulate each quad/triangular face from its own first
		// vertex, then form a tet with the cell barycenter.
		for i := 1; i < len(face)-1; i++ {
			total += geomath.TetrahedronVolume(center, pts[face[0]], pts[face[i]], pts[face[i+1]])
		}
	}
	return total
}

// cellFaces lists, for each non-tetrahedral CellType, the local corner
// indices of each bounding face (in winding order), used to decompose the
// cell into tetrahedra for CellVolume.
var cellFaces = map[CellType][][]int{
	Hexahedron: {
		{0, 1, 2, 3}, {4, 7, 6, 5},
		{0, 4, 5, 1}, {1, 5, 6, 2},
		{2, 6, 7, 3}, {3, 7, 4, 0},
	},
	Prism: {
		{0, 1, 2}, {3, 5, 4},
		{0, 3, 4, 1}, {1, 4, 5, 2}, {2, 5, 3, 0},
	},
	Pyramid: {
		{0, 1, 2, 3}, {0, 4, 1}, {1, 4, 2}, {2, 4, 3}, {3, 4, 0},
	},
}

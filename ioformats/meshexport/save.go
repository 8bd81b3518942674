package meshexport

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/geomodel/brep/entity"
	"github.com/geomodel/brep/geomodel"
	"github.com/geomodel/brep/mesh"
	"github.com/golang/geo/r3"
)

// SaveSurface writes surf's triangulated polygon mesh as a Medit .mesh
// file. Non-triangle polygons are skipped (Medit's Triangles section is
// fixed-arity); callers that need full polygon fidelity should use
// objexport instead.
func SaveSurface(ctx context.Context, surf *geomodel.Surface, w io.Writer) error {
	bw := bufio.NewWriter(w)
	writeHeader(bw)

	if surf.Geometry == nil {
		writeEmptySections(bw, "Triangles")
		return finish(bw)
	}

	nv := surf.Geometry.NbVertices()
	fmt.Fprintln(bw, "Vertices")
	fmt.Fprintln(bw, nv)
	for v := 0; v < nv; v++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		p := surf.Geometry.VertexCoords(v)
		fmt.Fprintf(bw, "%.17g %.17g %.17g 0\n", p.X, p.Y, p.Z)
	}

	var tris [][3]uint32
	for p := 0; p < surf.Geometry.NbPolygons(); p++ {
		verts := surf.Geometry.PolygonVertices(p)
		if len(verts) == 3 {
			tris = append(tris, [3]uint32{verts[0], verts[1], verts[2]})
		}
	}
	fmt.Fprintln(bw, "Triangles")
	fmt.Fprintln(bw, len(tris))
	for _, t := range tris {
		fmt.Fprintf(bw, "%d %d %d 0\n", t[0]+1, t[1]+1, t[2]+1)
	}

	return finish(bw)
}

// SaveRegion writes region's tetrahedral cells as a Medit .mesh file, with
// every vertex and tetrahedron tagged with ref in its trailing reference
// field. Non-tetrahedral cells (hexahedra, prisms, pyramids) are skipped
// for the same fixed-arity reason as SaveSurface's non-triangle polygons.
func SaveRegion(ctx context.Context, region *geomodel.Region, ref int, w io.Writer) error {
	bw := bufio.NewWriter(w)
	writeHeader(bw)

	if region.Geometry == nil {
		writeEmptySections(bw, "Tetrahedra")
		return finish(bw)
	}

	nv := region.Geometry.NbVertices()
	fmt.Fprintln(bw, "Vertices")
	fmt.Fprintln(bw, nv)
	for v := 0; v < nv; v++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		p := region.Geometry.VertexCoords(v)
		fmt.Fprintf(bw, "%.17g %.17g %.17g %d\n", p.X, p.Y, p.Z, ref)
	}

	var tets [][4]uint32
	for c := 0; c < region.Geometry.NbCells(); c++ {
		if region.Geometry.CellType(c) != mesh.Tetrahedron {
			continue
		}
		verts := region.Geometry.CellVertices(c)
		tets = append(tets, [4]uint32{verts[0], verts[1], verts[2], verts[3]})
	}
	fmt.Fprintln(bw, "Tetrahedra")
	fmt.Fprintln(bw, len(tets))
	for _, t := range tets {
		fmt.Fprintf(bw, "%d %d %d %d %d\n", t[0]+1, t[1]+1, t[2]+1, t[3]+1, ref)
	}

	return finish(bw)
}

// SaveModel writes every Region's tetrahedral mesh in model into a single
// Medit .mesh file, ref-tagged by Region index, mirroring the original
// tool's geomodel_volume_save (one combined volume file per model rather
// than one per Region).
func SaveModel(ctx context.Context, model *geomodel.GeoModel, w io.Writer) error {
	bw := bufio.NewWriter(w)
	writeHeader(bw)

	type tet struct {
		v   [4]uint32
		ref int
	}
	var allVerts []vertexRef
	var allTets []tet
	offset := uint32(0)

	n := model.NbEntities(entity.Region)
	for i := 1; i < n; i++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		id := entity.ID{Kind: entity.Region, Index: uint32(i)}
		region, err := model.Region(id)
		if err != nil || region.Geometry == nil {
			continue
		}
		nv := region.Geometry.NbVertices()
		for v := 0; v < nv; v++ {
			allVerts = append(allVerts, vertexRef{p: region.Geometry.VertexCoords(v), ref: i})
		}
		for c := 0; c < region.Geometry.NbCells(); c++ {
			if region.Geometry.CellType(c) != mesh.Tetrahedron {
				continue
			}
			verts := region.Geometry.CellVertices(c)
			allTets = append(allTets, tet{v: [4]uint32{
				offset + verts[0], offset + verts[1], offset + verts[2], offset + verts[3],
			}, ref: i})
		}
		offset += uint32(nv)
	}

	fmt.Fprintln(bw, "Vertices")
	fmt.Fprintln(bw, len(allVerts))
	for _, vr := range allVerts {
		fmt.Fprintf(bw, "%.17g %.17g %.17g %d\n", vr.p.X, vr.p.Y, vr.p.Z, vr.ref)
	}
	fmt.Fprintln(bw, "Tetrahedra")
	fmt.Fprintln(bw, len(allTets))
	for _, t := range allTets {
		fmt.Fprintf(bw, "%d %d %d %d %d\n", t.v[0]+1, t.v[1]+1, t.v[2]+1, t.v[3]+1, t.ref)
	}

	return finish(bw)
}

type vertexRef struct {
	p   r3.Vector
	ref int
}

// SaveEmpty writes a minimal, valid .mesh file with no vertices or cells,
// for entity kinds (Corner, Line, Contact, Interface, Layer) that carry no
// mesh.PolygonMesh/mesh.CellMesh geometry of their own.
func SaveEmpty(w io.Writer) error {
	bw := bufio.NewWriter(w)
	writeHeader(bw)
	writeEmptySections(bw, "Triangles")
	return finish(bw)
}

func writeHeader(bw *bufio.Writer) {
	fmt.Fprintln(bw, "MeshVersionFormatted 2")
	fmt.Fprintln(bw, "Dimension 3")
}

func writeEmptySections(bw *bufio.Writer, section string) {
	fmt.Fprintln(bw, "Vertices")
	fmt.Fprintln(bw, 0)
	fmt.Fprintln(bw, section)
	fmt.Fprintln(bw, 0)
}

func finish(bw *bufio.Writer) error {
	fmt.Fprintln(bw, "End")
	return bw.Flush()
}

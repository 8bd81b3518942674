package objexport

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/geomodel/brep/entity"
	"github.com/geomodel/brep/geomodel"
)

// Save writes every Surface in model as a single Wavefront .obj file, one
// "g" group per Surface, named after the Surface's name (falling back to
// its index if unnamed). Vertex indices are renumbered globally since .obj
// has a single flat vertex namespace shared by all groups.
func Save(ctx context.Context, model *geomodel.GeoModel, w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %s\n", model.Name())

	nSurf := model.NbEntities(entity.Surface)
	base := 1
	for i := 0; i < nSurf; i++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		id := entity.ID{Kind: entity.Surface, Index: uint32(i)}
		surf, err := model.Surface(id)
		if err != nil || surf.Geometry == nil {
			continue
		}

		name := surf.Name()
		if name == "" {
			name = fmt.Sprintf("surface_%d", i)
		}
		fmt.Fprintf(bw, "g %s\n", name)

		nv := surf.Geometry.NbVertices()
		for v := 0; v < nv; v++ {
			p := surf.Geometry.VertexCoords(v)
			fmt.Fprintf(bw, "v %.17g %.17g %.17g\n", p.X, p.Y, p.Z)
		}
		for p := 0; p < surf.Geometry.NbPolygons(); p++ {
			verts := surf.Geometry.PolygonVertices(p)
			fmt.Fprint(bw, "f")
			for _, v := range verts {
				fmt.Fprintf(bw, " %d", base+int(v))
			}
			fmt.Fprintln(bw)
		}
		base += nv
	}

	return bw.Flush()
}

package gocad

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"

	"github.com/geomodel/brep/entity"
	"github.com/geomodel/brep/geomodel"
	"github.com/geomodel/brep/internal/geomath"
	"github.com/golang/geo/r3"
)

// Save writes model in Gocad .ml format to w. model is never mutated.
func Save(ctx context.Context, model *geomodel.GeoModel, w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "GOCAD Model3d 1")
	fmt.Fprintln(bw, "HEADER {")
	fmt.Fprintf(bw, "name:%s\n", model.Name())
	fmt.Fprintln(bw, "}")
	fmt.Fprintln(bw, "GOCAD_ORIGINAL_COORDINATE_SYSTEM")
	fmt.Fprintln(bw, "NAME Default")
	fmt.Fprintln(bw, `AXIS_NAME "X" "Y" "Z"`)
	fmt.Fprintln(bw, `AXIS_UNIT "m" "m" "m"`)
	fmt.Fprintln(bw, "ZPOSITIVE Elevation")
	fmt.Fprintln(bw, "END_ORIGINAL_COORDINATE_SYSTEM")

	nIfc := model.NbEntities(entity.Interface)
	for i := 0; i < nIfc; i++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		ifc, err := model.Interface(entity.ID{Kind: entity.Interface, Index: uint32(i)})
		if err != nil {
			continue
		}
		fmt.Fprintf(bw, "TSURF %s\n", ifc.Name())
	}

	nSurf := model.NbEntities(entity.Surface)
	for i := 0; i < nSurf; i++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		id := entity.ID{Kind: entity.Surface, Index: uint32(i)}
		surf, err := model.Surface(id)
		if err != nil {
			continue
		}
		parentName := ""
		if p := surf.Parent(); p != entity.NoID {
			if ifc, err := model.Interface(p); err == nil {
				parentName = ifc.Name()
			}
		}
		fmt.Fprintf(bw, "TFACE %d %s %s\n", i+1, surf.GeologicalFeature(), parentName)
		if surf.Geometry != nil && surf.Geometry.NbPolygons() > 0 {
			coords := surf.Geometry.PolygonCoords(0)
			for k := 0; k < len(coords) && k < 3; k++ {
				fmt.Fprintf(bw, "%.17g %.17g %.17g\n", coords[k].X, coords[k].Y, coords[k].Z)
			}
		}
	}

	nRegion := model.NbEntities(entity.Region)
	for i := 1; i < nRegion; i++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		id := entity.ID{Kind: entity.Region, Index: uint32(i)}
		region, err := model.Region(id)
		if err != nil {
			continue
		}
		fmt.Fprintf(bw, "REGION %d %s\n", i, region.Name())
		bounds := region.Boundaries()
		for j, surfID := range bounds {
			sign := 1
			if j < len(region.BoundarySides) && !region.BoundarySides[j] {
				sign = -1
			}
			fmt.Fprintf(bw, "%d ", sign*(int(surfID.Index)+1))
		}
		fmt.Fprintln(bw, "0")
	}

	nLayer := model.NbEntities(entity.Layer)
	for i := 0; i < nLayer; i++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		id := entity.ID{Kind: entity.Layer, Index: uint32(i)}
		layer, err := model.Layer(id)
		if err != nil {
			continue
		}
		fmt.Fprintf(bw, "LAYER %s\n", layer.Name())
		for _, r := range layer.Children() {
			fmt.Fprintf(bw, "%d ", r.Index)
		}
		fmt.Fprintln(bw, "0")
	}

	fmt.Fprintln(bw, "END")

	for i := 0; i < nSurf; i++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := writeSurfaceMesh(bw, model, uint32(i)); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func writeSurfaceMesh(bw *bufio.Writer, model *geomodel.GeoModel, surfIndex uint32) error {
	id := entity.ID{Kind: entity.Surface, Index: surfIndex}
	surf, err := model.Surface(id)
	if err != nil || surf.Geometry == nil {
		return nil
	}

	fmt.Fprintln(bw, "GOCAD TSurf 1")
	fmt.Fprintln(bw, "HEADER {")
	fmt.Fprintf(bw, "name:%s\n", surf.Name())
	fmt.Fprintln(bw, "}")
	fmt.Fprintf(bw, "GEOLOGICAL_FEATURE %s\n", surf.GeologicalFeature())
	fmt.Fprintln(bw, "TFACE")

	nv := surf.Geometry.NbVertices()
	for v := 0; v < nv; v++ {
		p := surf.Geometry.VertexCoords(v)
		fmt.Fprintf(bw, "VRTX %d %.17g %.17g %.17g\n", v+1, p.X, p.Y, p.Z)
	}
	for p := 0; p < surf.Geometry.NbPolygons(); p++ {
		verts := surf.Geometry.PolygonVertices(p)
		if len(verts) == 3 {
			fmt.Fprintf(bw, "TRGL %d %d %d\n", verts[0]+1, verts[1]+1, verts[2]+1)
		}
	}

	for _, lineID := range surf.Boundaries() {
		line, err := model.Line(lineID)
		if err != nil || line.Geometry == nil || line.Geometry.NbVertices() < 2 {
			continue
		}
		start := line.Geometry.VertexCoords(0)
		end := line.Geometry.VertexCoords(line.Geometry.NbVertices() - 1)
		v0 := nearestSurfaceVertex(surf, start)
		v1 := nearestSurfaceVertex(surf, end)
		if v0 >= 0 {
			fmt.Fprintf(bw, "BSTONE %d\n", v0+1)
		}
		if v1 >= 0 && v1 != v0 {
			fmt.Fprintf(bw, "BSTONE %d\n", v1+1)
		}
		if v0 >= 0 && v1 >= 0 {
			fmt.Fprintf(bw, "BORDER %d %d %d\n", int(lineID.Index)+1, v0+1, v1+1)
		}
	}

	fmt.Fprintln(bw, "END")
	return nil
}

func nearestSurfaceVertex(surf *geomodel.Surface, p r3.Vector) int {
	best := -1
	bestDist := math.Inf(1)
	for v := 0; v < surf.Geometry.NbVertices(); v++ {
		d := geomath.Distance(surf.Geometry.VertexCoords(v), p)
		if d < bestDist {
			bestDist, best = d, v
		}
	}
	return best
}

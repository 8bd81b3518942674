package meshexport

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/geomodel/brep/builder"
	"github.com/geomodel/brep/entity"
	"github.com/geomodel/brep/mesh"
	"github.com/golang/geo/r3"
)

// ErrMalformedMesh indicates a .mesh file section could not be parsed.
var ErrMalformedMesh = fmt.Errorf("meshexport: malformed mesh file")

// LoadInto reads a Medit .mesh file's Vertices and Tetrahedra sections and
// attaches each tetrahedron to the Region whose index equals the
// tetrahedron's trailing reference field (SaveModel's ref tag), via b.
// A tetrahedron whose reference is 0 or names no existing Region gets a
// newly created Region of its own.
// It mirrors the original tool's geomodel_volume_load, which layers a raw
// volume mesh onto a GeoModel whose surface topology (Regions included)
// was already built from a prior in:model load.
func LoadInto(ctx context.Context, r io.Reader, b *builder.Builder) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var vertices []r3.Vector
	var section string
	var remaining int

	for sc.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		switch line {
		case "MeshVersionFormatted 2", "Dimension 3", "End":
			continue
		case "Vertices", "Tetrahedra":
			section = line
			remaining = -1
			continue
		}
		if remaining == -1 {
			n, err := strconv.Atoi(line)
			if err != nil {
				return fmt.Errorf("%w: count %q", ErrMalformedMesh, line)
			}
			remaining = n
			continue
		}
		if remaining <= 0 {
			continue
		}
		fields := strings.Fields(line)
		switch section {
		case "Vertices":
			if len(fields) < 3 {
				return fmt.Errorf("%w: vertex %q", ErrMalformedMesh, line)
			}
			x, e1 := strconv.ParseFloat(fields[0], 64)
			y, e2 := strconv.ParseFloat(fields[1], 64)
			z, e3 := strconv.ParseFloat(fields[2], 64)
			if e1 != nil || e2 != nil || e3 != nil {
				return fmt.Errorf("%w: vertex %q", ErrMalformedMesh, line)
			}
			vertices = append(vertices, r3.Vector{X: x, Y: y, Z: z})
		case "Tetrahedra":
			if len(fields) < 5 {
				return fmt.Errorf("%w: tetrahedron %q", ErrMalformedMesh, line)
			}
			idx := make([]int, 4)
			for k := 0; k < 4; k++ {
				v, err := strconv.Atoi(fields[k])
				if err != nil {
					return fmt.Errorf("%w: tetrahedron %q", ErrMalformedMesh, line)
				}
				idx[k] = v
			}
			ref, err := strconv.Atoi(fields[4])
			if err != nil {
				return fmt.Errorf("%w: tetrahedron %q", ErrMalformedMesh, line)
			}
			positions := make([]r3.Vector, 4)
			for k, v := range idx {
				if v-1 < 0 || v-1 >= len(vertices) {
					return fmt.Errorf("%w: vertex index %d out of range", ErrMalformedMesh, v)
				}
				positions[k] = vertices[v-1]
			}
			regionID := entity.ID{Kind: entity.Region, Index: uint32(ref)}
			if ref <= 0 || ref >= b.Model.NbEntities(entity.Region) {
				regionID = b.CreateEntity(entity.Region)
			}
			if err := b.SetRegionCells(regionID, mesh.Tetrahedron, positions); err != nil {
				return err
			}
		}
		remaining--
	}
	return nil
}

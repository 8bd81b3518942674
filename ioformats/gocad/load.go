package gocad

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/geomodel/brep/builder"
	"github.com/geomodel/brep/entity"
	"github.com/geomodel/brep/geomodel"
	"github.com/golang/geo/r3"
)

// Load parses a Gocad .ml file from r and returns the resulting model,
// constructed entirely through the builder API.
func Load(ctx context.Context, r io.Reader) (*geomodel.GeoModel, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var modelName string
	if !sc.Scan() {
		return nil, ErrMalformedHeader
	}
	if !strings.HasPrefix(sc.Text(), "GOCAD Model3d") {
		return nil, ErrMalformedHeader
	}
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, "name:") {
			modelName = strings.TrimPrefix(line, "name:")
		}
		if line == "}" {
			break
		}
	}

	b := builder.NewModel(modelName, 1e-6)

	interfacesByName := map[string]entity.ID{}
	var surfacesInOrder []entity.ID
	var regionsInOrder []entity.ID
	pendingParent := map[entity.ID]string{}

	for sc.Scan() {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "" || line == "GOCAD_ORIGINAL_COORDINATE_SYSTEM":
			continue
		case line == "END_ORIGINAL_COORDINATE_SYSTEM":
			continue
		case strings.HasPrefix(line, "NAME ") || strings.HasPrefix(line, "AXIS_") || strings.HasPrefix(line, "ZPOSITIVE"):
			continue
		case strings.HasPrefix(line, "TSURF "):
			name := strings.TrimPrefix(line, "TSURF ")
			id := b.CreateEntity(entity.Interface)
			_ = b.SetName(id, name)
			interfacesByName[name] = id
		case strings.HasPrefix(line, "TFACE "):
			fields := strings.Fields(line)
			if len(fields) < 2 {
				return nil, fmt.Errorf("%w: %q", ErrMalformedLine, line)
			}
			feature := ""
			parent := ""
			if len(fields) > 2 {
				feature = fields[2]
			}
			if len(fields) > 3 {
				parent = fields[3]
			}
			id := b.CreateEntity(entity.Surface)
			_ = b.SetGeologicalFeature(id, feature)
			if parent != "" {
				pendingParent[id] = parent
			}
			surfacesInOrder = append(surfacesInOrder, id)
			// Consume up to 3 key-vertex coordinate lines.
			for k := 0; k < 3 && sc.Scan(); k++ {
				next := strings.TrimSpace(sc.Text())
				if !looksNumeric(next) {
					line = next
					goto reprocess
				}
			}
			continue
		case strings.HasPrefix(line, "REGION "):
			fields := strings.Fields(line)
			if len(fields) < 2 {
				return nil, fmt.Errorf("%w: %q", ErrMalformedLine, line)
			}
			name := strings.Join(fields[2:], " ")
			regionID := b.CreateEntity(entity.Region)
			_ = b.SetName(regionID, name)
			regionsInOrder = append(regionsInOrder, regionID)
			for sc.Scan() {
				tok := strings.Fields(strings.TrimSpace(sc.Text()))
				done := false
				for _, t := range tok {
					v, err := strconv.Atoi(t)
					if err != nil {
						return nil, fmt.Errorf("%w: %q", ErrMalformedLine, t)
					}
					if v == 0 {
						done = true
						break
					}
					side := v > 0
					idx := v
					if idx < 0 {
						idx = -idx
					}
					if idx-1 < len(surfacesInOrder) {
						_ = b.AddBoundary(regionID, surfacesInOrder[idx-1], side)
					}
				}
				if done {
					break
				}
			}
		case strings.HasPrefix(line, "LAYER "):
			name := strings.TrimPrefix(line, "LAYER ")
			layerID := b.CreateEntity(entity.Layer)
			_ = b.SetName(layerID, name)
			for sc.Scan() {
				tok := strings.Fields(strings.TrimSpace(sc.Text()))
				done := false
				for _, t := range tok {
					v, err := strconv.Atoi(t)
					if err != nil {
						return nil, fmt.Errorf("%w: %q", ErrMalformedLine, t)
					}
					if v == 0 {
						done = true
						break
					}
					if v-1 < len(regionsInOrder) {
						_ = b.AddChild(layerID, regionsInOrder[v-1])
					}
				}
				if done {
					break
				}
			}
		case line == "END":
			goto topologyDone
		}
		continue
	reprocess:
		if line == "END" {
			goto topologyDone
		}
	}
topologyDone:

	for surfID, parentName := range pendingParent {
		if ifcID, ok := interfacesByName[parentName]; ok {
			_ = b.SetParent(surfID, ifcID)
		}
	}

	surfIdx := 0
	for sc.Scan() {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		line := strings.TrimSpace(sc.Text())
		if line != "GOCAD TSurf 1" {
			continue
		}
		if surfIdx >= len(surfacesInOrder) {
			break
		}
		if err := loadSurfaceMesh(ctx, sc, b, surfacesInOrder[surfIdx]); err != nil {
			return nil, err
		}
		surfIdx++
	}

	return b.Model, nil
}

func looksNumeric(s string) bool {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return false
	}
	for _, f := range fields {
		if _, err := strconv.ParseFloat(f, 64); err != nil {
			return false
		}
	}
	return true
}

func loadSurfaceMesh(ctx context.Context, sc *bufio.Scanner, b *builder.Builder, surfID entity.ID) error {
	vertices := map[int]r3.Vector{}
	for sc.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "END":
			return nil
		case line == "{" || line == "}" || line == "TFACE" || strings.HasPrefix(line, "HEADER") || strings.HasPrefix(line, "name:"):
			continue
		case strings.HasPrefix(line, "GEOLOGICAL_FEATURE"):
			continue
		case strings.HasPrefix(line, "VRTX "):
			f := strings.Fields(line)
			if len(f) != 5 {
				return fmt.Errorf("%w: %q", ErrMalformedLine, line)
			}
			idx, err := strconv.Atoi(f[1])
			if err != nil {
				return fmt.Errorf("%w: %q", ErrMalformedLine, line)
			}
			x, err1 := strconv.ParseFloat(f[2], 64)
			y, err2 := strconv.ParseFloat(f[3], 64)
			z, err3 := strconv.ParseFloat(f[4], 64)
			if err1 != nil || err2 != nil || err3 != nil {
				return fmt.Errorf("%w: %q", ErrMalformedLine, line)
			}
			vertices[idx] = r3.Vector{X: x, Y: y, Z: z}
		case strings.HasPrefix(line, "TRGL "):
			f := strings.Fields(line)
			if len(f) != 4 {
				return fmt.Errorf("%w: %q", ErrMalformedLine, line)
			}
			i, _ := strconv.Atoi(f[1])
			j, _ := strconv.Atoi(f[2])
			k, _ := strconv.Atoi(f[3])
			if err := b.AppendSurfacePolygon(surfID, []r3.Vector{vertices[i], vertices[j], vertices[k]}); err != nil {
				return err
			}
		case strings.HasPrefix(line, "BSTONE "):
			f := strings.Fields(line)
			if len(f) != 2 {
				continue
			}
			idx, err := strconv.Atoi(f[1])
			if err != nil {
				continue
			}
			if p, ok := vertices[idx]; ok {
				if _, err := b.FindOrCreateCorner(p); err != nil {
					return err
				}
			}
		case strings.HasPrefix(line, "BORDER "):
			f := strings.Fields(line)
			if len(f) != 4 {
				continue
			}
			v0, err0 := strconv.Atoi(f[2])
			v1, err1 := strconv.Atoi(f[3])
			if err0 != nil || err1 != nil {
				continue
			}
			p0, ok0 := vertices[v0]
			p1, ok1 := vertices[v1]
			if !ok0 || !ok1 {
				continue
			}
			c0, err := b.FindOrCreateCorner(p0)
			if err != nil {
				return err
			}
			c1, err := b.FindOrCreateCorner(p1)
			if err != nil {
				return err
			}
			lineID, err := b.FindOrCreateLine(c0, c1)
			if err != nil {
				return err
			}
			_ = b.AddBoundary(surfID, lineID)
		}
	}
	return nil
}

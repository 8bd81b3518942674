package validity

import (
	"github.com/geomodel/brep/entity"
	"github.com/geomodel/brep/geomodel"
	"github.com/geomodel/brep/internal/geomath"
	"github.com/golang/geo/r3"
	"go.uber.org/zap"
)

var allEntityKinds = []entity.Kind{
	entity.Corner, entity.Line, entity.Surface, entity.Region,
	entity.Contact, entity.Interface, entity.Layer,
}

// Check runs every check selected by mode against model and returns a
// Report. Check never mutates model; it is the pure-observer counterpart
// to package repair.
func Check(model *geomodel.GeoModel, mode CheckMode, cfg Config) *Report {
	r := newReport(cfg.ExampleLimit)
	log := cfg.logger()

	if mode.Has(FiniteExtension) {
		checkFiniteExtension(model, r, cfg)
		log.Info("validity: finite extension checked", zap.Int("violations", r.Counts[FiniteExtension]))
	}
	if mode.Has(Connectivity) {
		checkConnectivity(model, r, cfg)
		log.Info("validity: connectivity checked", zap.Int("violations", r.Counts[Connectivity]))
	}
	if mode.Has(Geological) {
		checkGeological(model, r, cfg)
		log.Info("validity: geological grouping checked", zap.Int("violations", r.Counts[Geological]))
	}
	if mode.Has(SurfaceLineConformity) {
		checkSurfaceLineConformity(model, r, cfg)
		log.Info("validity: surface-line conformity checked", zap.Int("violations", r.Counts[SurfaceLineConformity]))
	}
	if mode.Has(RegionSurfaceConformity) {
		checkRegionSurfaceConformity(model, r, cfg)
		log.Info("validity: region-surface conformity checked", zap.Int("violations", r.Counts[RegionSurfaceConformity]))
	}
	if mode.Has(MeshEntities) {
		checkMeshEntities(model, r, cfg)
		log.Info("validity: mesh entities checked", zap.Int("violations", r.Counts[MeshEntities]))
	}
	if mode.Has(NonManifoldEdges) {
		checkNonManifoldEdges(model, r, cfg)
		log.Info("validity: non-manifold edges checked", zap.Int("violations", r.Counts[NonManifoldEdges]))
	}
	if mode.Has(PolygonIntersections) {
		checkPolygonIntersections(model, r, cfg)
		log.Info("validity: polygon intersections checked", zap.Int("violations", r.Counts[PolygonIntersections]))
	}
	return r
}

func report(model *geomodel.GeoModel, r *Report, cfg Config, check CheckMode, id entity.ID, msg string) {
	v := Violation{Check: check, Entity: id, Message: msg}
	r.record(v)
	writeDebugArtifact(model, cfg, checkName(check), v)
}

func checkName(c CheckMode) string {
	switch c {
	case FiniteExtension:
		return "finite-extension"
	case Connectivity:
		return "connectivity"
	case Geological:
		return "geological"
	case SurfaceLineConformity:
		return "surface-line-conformity"
	case RegionSurfaceConformity:
		return "region-surface-conformity"
	case MeshEntities:
		return "mesh-entities"
	case NonManifoldEdges:
		return "non-manifold-edges"
	case PolygonIntersections:
		return "polygon-intersections"
	default:
		return "unknown"
	}
}

// checkFiniteExtension verifies that every Region's recorded boundary
// side is consistent with model.FindRegion: the model's "outside" is
// always exactly the Universe, never an unassigned gap.
func checkFiniteExtension(model *geomodel.GeoModel, r *Report, cfg Config) {
	n := model.NbEntities(entity.Region)
	for i := 1; i < n; i++ { // skip the Universe itself
		id := entity.ID{Kind: entity.Region, Index: uint32(i)}
		region, err := model.Region(id)
		if err != nil {
			continue
		}
		bounds := region.Boundaries()
		for j, surf := range bounds {
			if j >= len(region.BoundarySides) {
				report(model, r, cfg, FiniteExtension, id, "boundary side missing for a recorded Surface boundary")
				continue
			}
			got, err := model.FindRegion(surf, region.BoundarySides[j])
			if err != nil || got != id {
				report(model, r, cfg, FiniteExtension, id, "FindRegion disagrees with the Region's own recorded boundary side")
			}
		}
	}
}

// checkConnectivity verifies invariant 1: every Boundaries/InBoundaries
// and Parent/Children link is reciprocal.
func checkConnectivity(model *geomodel.GeoModel, r *Report, cfg Config) {
	for _, k := range allEntityKinds {
		n := model.NbEntities(k)
		for i := 0; i < n; i++ {
			id := entity.ID{Kind: k, Index: uint32(i)}
			e, err := model.Entity(id)
			if err != nil {
				continue
			}
			for _, b := range e.Boundaries() {
				other, err := model.Entity(b)
				if err != nil || !contains(other.InBoundaries(), id) {
					report(model, r, cfg, Connectivity, id, "boundary link is not reciprocated")
				}
			}
			if p := e.Parent(); p != entity.NoID {
				parent, err := model.Entity(p)
				if err != nil || !contains(parent.Children(), id) {
					report(model, r, cfg, Connectivity, id, "parent link is not reciprocated by parent's children")
				}
			}
		}
	}
}

// checkGeological verifies every Contact/Interface/Layer has at least one
// child.
func checkGeological(model *geomodel.GeoModel, r *Report, cfg Config) {
	for _, k := range []entity.Kind{entity.Contact, entity.Interface, entity.Layer} {
		n := model.NbEntities(k)
		for i := 0; i < n; i++ {
			id := entity.ID{Kind: k, Index: uint32(i)}
			e, err := model.Entity(id)
			if err != nil {
				continue
			}
			if len(e.Children()) == 0 {
				report(model, r, cfg, Geological, id, "geological entity has no children")
			}
		}
	}
}

// checkSurfaceLineConformity verifies each Surface boundary Line's two
// endpoints coincide (within the model's epsilon) with some vertex of the
// Surface's own mesh.
func checkSurfaceLineConformity(model *geomodel.GeoModel, r *Report, cfg Config) {
	eps := model.Epsilon()
	n := model.NbEntities(entity.Surface)
	for i := 0; i < n; i++ {
		id := entity.ID{Kind: entity.Surface, Index: uint32(i)}
		surf, err := model.Surface(id)
		if err != nil || surf.Geometry == nil {
			continue
		}
		surfPoints := surf.Geometry.AllCoords()
		for _, lineID := range surf.Boundaries() {
			line, err := model.Line(lineID)
			if err != nil || line.Geometry == nil || line.Geometry.NbVertices() == 0 {
				continue
			}
			start := line.Geometry.VertexCoords(0)
			end := line.Geometry.VertexCoords(line.Geometry.NbVertices() - 1)
			if !anyWithin(surfPoints, start, eps) || !anyWithin(surfPoints, end, eps) {
				report(model, r, cfg, SurfaceLineConformity, id, "Line endpoint does not coincide with any Surface vertex")
			}
		}
	}
}

// checkRegionSurfaceConformity is SurfaceLineConformity's counterpart:
// every Region's boundary Surface must have every one of its own vertices
// present (within epsilon) among the Region's mesh vertices, when the
// Region carries a mesh at all.
func checkRegionSurfaceConformity(model *geomodel.GeoModel, r *Report, cfg Config) {
	eps := model.Epsilon()
	n := model.NbEntities(entity.Region)
	for i := 1; i < n; i++ {
		id := entity.ID{Kind: entity.Region, Index: uint32(i)}
		region, err := model.Region(id)
		if err != nil || region.Geometry == nil {
			continue
		}
		regionPoints := region.Geometry.AllCoords()
		for _, surfID := range region.Boundaries() {
			surf, err := model.Surface(surfID)
			if err != nil || surf.Geometry == nil {
				continue
			}
			for _, p := range surf.Geometry.AllCoords() {
				if !anyWithin(regionPoints, p, eps) {
					report(model, r, cfg, RegionSurfaceConformity, id, "Surface vertex has no matching Region mesh vertex")
					break
				}
			}
		}
	}
}

// checkMeshEntities flags zero-length Line edges and zero-area Surface
// polygons — the same defects repair.DegenerateEdgesAndPolygons counts,
// reported here as Violations.
func checkMeshEntities(model *geomodel.GeoModel, r *Report, cfg Config) {
	eps := model.Epsilon()
	n := model.NbEntities(entity.Line)
	for i := 0; i < n; i++ {
		id := entity.ID{Kind: entity.Line, Index: uint32(i)}
		line, err := model.Line(id)
		if err != nil || line.Geometry == nil {
			continue
		}
		for e := 0; e < line.Geometry.NbEdges(); e++ {
			a, b := line.Geometry.EdgeVertices(e)
			if geomath.Within(line.Geometry.VertexCoords(a), line.Geometry.VertexCoords(b), eps) {
				report(model, r, cfg, MeshEntities, id, "degenerate (zero-length) edge")
			}
		}
	}
	m := model.NbEntities(entity.Surface)
	for i := 0; i < m; i++ {
		id := entity.ID{Kind: entity.Surface, Index: uint32(i)}
		surf, err := model.Surface(id)
		if err != nil || surf.Geometry == nil {
			continue
		}
		for p := 0; p < surf.Geometry.NbPolygons(); p++ {
			if surf.Geometry.Area(p) <= eps*eps {
				report(model, r, cfg, MeshEntities, id, "degenerate (zero-area) polygon")
			}
		}
	}
}

// checkNonManifoldEdges flags any undirected edge shared by more than two
// polygon half-edges, which ComputeAdjacency cannot resolve to a single
// neighbor.
func checkNonManifoldEdges(model *geomodel.GeoModel, r *Report, cfg Config) {
	n := model.NbEntities(entity.Surface)
	for i := 0; i < n; i++ {
		id := entity.ID{Kind: entity.Surface, Index: uint32(i)}
		surf, err := model.Surface(id)
		if err != nil || surf.Geometry == nil {
			continue
		}
		counts := map[[2]uint32]int{}
		for p := 0; p < surf.Geometry.NbPolygons(); p++ {
			verts := surf.Geometry.PolygonVertices(p)
			for lc := range verts {
				a, b := verts[lc], verts[(lc+1)%len(verts)]
				key := [2]uint32{a, b}
				if a > b {
					key = [2]uint32{b, a}
				}
				counts[key]++
			}
		}
		for _, c := range counts {
			if c > 2 {
				report(model, r, cfg, NonManifoldEdges, id, "edge shared by more than two polygon half-edges")
				break
			}
		}
	}
}

// checkPolygonIntersections is a coarse approximation of exact
// polygon-polygon intersection testing (out of scope for a repo-level
// check without a computational-geometry kernel): it flags only the
// degenerate case of two distinct polygons in the same Surface sharing
// every one of their vertices, which a real intersection test would
// always classify as intersecting.
func checkPolygonIntersections(model *geomodel.GeoModel, r *Report, cfg Config) {
	n := model.NbEntities(entity.Surface)
	for i := 0; i < n; i++ {
		id := entity.ID{Kind: entity.Surface, Index: uint32(i)}
		surf, err := model.Surface(id)
		if err != nil || surf.Geometry == nil {
			continue
		}
		seen := map[string]bool{}
		for p := 0; p < surf.Geometry.NbPolygons(); p++ {
			key := polygonKey(surf.Geometry.PolygonVertices(p))
			if seen[key] {
				report(model, r, cfg, PolygonIntersections, id, "two polygons share an identical vertex set")
				continue
			}
			seen[key] = true
		}
	}
}

func polygonKey(verts []uint32) string {
	sorted := append([]uint32(nil), verts...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j-1] > sorted[j]; j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}
	key := make([]byte, 0, len(sorted)*5)
	for _, v := range sorted {
		key = append(key, byte(v), byte(v>>8), byte(v>>16), byte(v>>24), ',')
	}
	return string(key)
}

func contains(ids []entity.ID, target entity.ID) bool {
	for _, id := range ids {
		if id == target {
			return true
		}
	}
	return false
}

func anyWithin(points []r3.Vector, p r3.Vector, eps float64) bool {
	for _, q := range points {
		if geomath.Within(q, p, eps) {
			return true
		}
	}
	return false
}

package vindex

import (
	"github.com/geomodel/brep/entity"
	"github.com/geomodel/brep/geomodel"
)

// VertexSource is the subset of geomodel.GeoModel's accessors BuildFromModel
// needs; the real dependency is geomodel.GeoModel, kept narrow here so the
// closure/repair packages can pass a model through this same seam.
type VertexSource interface {
	NbEntities(k entity.Kind) int
	Corner(id entity.ID) (*geomodel.Corner, error)
	Line(id entity.ID) (*geomodel.Line, error)
	Surface(id entity.ID) (*geomodel.Surface, error)
	Region(id entity.ID) (*geomodel.Region, error)
}

// BuildFromModel scans every mesh entity's VertexArray in src and rebuilds
// a fresh Index from scratch: each entity-local point is looked up (within
// epsilon) against the points seen so far and either merged into an
// existing canonical point or added as a new one, with an Occurrence
// recorded either way. This is the bulk counterpart to incrementally
// calling FindOrCreate/AttachOccurrence while a builder constructs a model
// (e.g. after Gocad import, where every TSurf/TFACE section hands over its
// own disjoint vertex array).
func BuildFromModel(src VertexSource, epsilon float64) *Index {
	ix := New(epsilon)

	for i := 0; i < src.NbEntities(entity.Corner); i++ {
		id := entity.ID{Kind: entity.Corner, Index: uint32(i)}
		c, err := src.Corner(id)
		if err != nil || c.Vertex == nil {
			continue
		}
		for v := 0; v < c.Vertex.NbVertices(); v++ {
			p := c.Vertex.VertexCoords(v)
			canon := ix.FindOrCreate(p)
			_ = ix.AttachOccurrence(canon, Occurrence{Entity: id, LocalIndex: v})
			c.Vertex.SetCanonicalID(v, canon)
		}
	}
	for i := 0; i < src.NbEntities(entity.Line); i++ {
		id := entity.ID{Kind: entity.Line, Index: uint32(i)}
		l, err := src.Line(id)
		if err != nil || l.Geometry == nil {
			continue
		}
		for v := 0; v < l.Geometry.NbVertices(); v++ {
			p := l.Geometry.VertexCoords(v)
			canon := ix.FindOrCreate(p)
			_ = ix.AttachOccurrence(canon, Occurrence{Entity: id, LocalIndex: v})
			l.Geometry.SetCanonicalID(v, canon)
		}
	}
	for i := 0; i < src.NbEntities(entity.Surface); i++ {
		id := entity.ID{Kind: entity.Surface, Index: uint32(i)}
		s, err := src.Surface(id)
		if err != nil || s.Geometry == nil {
			continue
		}
		for v := 0; v < s.Geometry.NbVertices(); v++ {
			p := s.Geometry.VertexCoords(v)
			canon := ix.FindOrCreate(p)
			_ = ix.AttachOccurrence(canon, Occurrence{Entity: id, LocalIndex: v})
			s.Geometry.SetCanonicalID(v, canon)
		}
	}
	for i := 0; i < src.NbEntities(entity.Region); i++ {
		id := entity.ID{Kind: entity.Region, Index: uint32(i)}
		r, err := src.Region(id)
		if err != nil || r.Geometry == nil {
			continue
		}
		for v := 0; v < r.Geometry.NbVertices(); v++ {
			p := r.Geometry.VertexCoords(v)
			canon := ix.FindOrCreate(p)
			_ = ix.AttachOccurrence(canon, Occurrence{Entity: id, LocalIndex: v})
			r.Geometry.SetCanonicalID(v, canon)
		}
	}
	return ix
}

// ResyncCanonicalIDs rewrites every mesh entity's canonical_id attribute in
// src to match ix's current occurrence lists. MergeColocated, UpdatePoint,
// and EraseVertices all renumber or retarget canonical ids without touching
// the entities that reference them (vindex has no write access to src on
// its own); callers that run those operations against a live model must
// follow up with this to re-establish C4's mapping-consistency contract.
func ResyncCanonicalIDs(ix *Index, src VertexSource) {
	n := ix.NbPoints()
	for c := 0; c < n; c++ {
		occs, err := ix.Occurrences(uint32(c))
		if err != nil {
			continue
		}
		for _, occ := range occs {
			switch occ.Entity.Kind {
			case entity.Corner:
				if e, err := src.Corner(occ.Entity); err == nil && e.Vertex != nil {
					e.Vertex.SetCanonicalID(occ.LocalIndex, uint32(c))
				}
			case entity.Line:
				if e, err := src.Line(occ.Entity); err == nil && e.Geometry != nil {
					e.Geometry.SetCanonicalID(occ.LocalIndex, uint32(c))
				}
			case entity.Surface:
				if e, err := src.Surface(occ.Entity); err == nil && e.Geometry != nil {
					e.Geometry.SetCanonicalID(occ.LocalIndex, uint32(c))
				}
			case entity.Region:
				if e, err := src.Region(occ.Entity); err == nil && e.Geometry != nil {
					e.Geometry.SetCanonicalID(occ.LocalIndex, uint32(c))
				}
			}
		}
	}
}

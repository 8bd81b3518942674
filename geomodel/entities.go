package geomodel

import (
	"github.com/geomodel/brep/entity"
	"github.com/geomodel/brep/mesh"
)

// Entity is the capability interface common to all seven kinds (Design
// Notes, spec §9: polymorphism over kinds is recast as a tagged variant for
// ids plus a shared capability interface, rather than a class hierarchy).
type Entity interface {
	ID() entity.ID
	Name() string
	GeologicalFeature() string
	Boundaries() []entity.ID
	InBoundaries() []entity.ID
	Parent() entity.ID
	Children() []entity.ID
}

// base holds the fields common to every entity kind. Embedding it gives a
// concrete type the Entity interface for free.
type base struct {
	id                entity.ID
	name              string
	geologicalFeature string
	boundaries        []entity.ID
	inBoundaries      []entity.ID
	parent            entity.ID
	children          []entity.ID
}

func newBase(id entity.ID) base {
	return base{id: id, parent: entity.NoID}
}

func (b *base) ID() entity.ID                { return b.id }
func (b *base) Name() string                 { return b.name }
func (b *base) GeologicalFeature() string    { return b.geologicalFeature }
func (b *base) Boundaries() []entity.ID      { return append([]entity.ID(nil), b.boundaries...) }
func (b *base) InBoundaries() []entity.ID    { return append([]entity.ID(nil), b.inBoundaries...) }
func (b *base) Parent() entity.ID            { return b.parent }
func (b *base) Children() []entity.ID        { return append([]entity.ID(nil), b.children...) }

// Corner is a single point; its sole geometry is one vertex in Vertex.
type Corner struct {
	base
	Vertex *mesh.VertexArray
}

// Line is a polyline whose first and last vertex equal the positions of
// its (exactly two) Corner boundaries.
type Line struct {
	base
	Geometry *mesh.Polyline
}

// Surface is a 2-manifold polygonal mesh bounded by Lines.
type Surface struct {
	base
	Geometry *mesh.PolygonMesh
}

// Region is a 3-cell complex, optionally meshed, bounded by an oriented set
// of Surfaces. BoundarySides[i] is the side bit for base.boundaries[i].
type Region struct {
	base
	Geometry      *mesh.CellMesh // nil until SetRegionCells is called
	BoundarySides []bool
}

// Contact groups Lines sharing the same set of incident Interfaces.
// Children() holds the grouped Lines (set via GeoModel.SetParent, one call
// per Line); InBoundaries() holds that defining Interface set, populated
// one-sidedly via GeoModel.AddInBoundary — no kind lists Contact among its
// own Boundaries(), so there is no reciprocal write on the Interface side.
type Contact struct{ base }

// Interface groups Surfaces constituting one geological feature.
// Children() holds the grouped Surfaces (set via GeoModel.SetParent, one
// call per Surface, see Builder.BuildInterfaces). Boundaries() is the
// same kind slot (entity.BoundaryType(Interface) == Surface) for callers
// that wire an Interface's Surfaces through AddBoundary instead.
type Interface struct{ base }

// Layer groups Regions forming a stratigraphic unit.
type Layer struct{ base }

var (
	_ Entity = (*Corner)(nil)
	_ Entity = (*Line)(nil)
	_ Entity = (*Surface)(nil)
	_ Entity = (*Region)(nil)
	_ Entity = (*Contact)(nil)
	_ Entity = (*Interface)(nil)
	_ Entity = (*Layer)(nil)
)

package builder

import "github.com/geomodel/brep/entity"

// layer1.go exposes the generic construction primitives of spec §4.5's
// layer 1 directly on Builder: CreateEntity/DeleteEntity, SetName/
// SetGeologicalFeature, and the relation wirings AddBoundary/SetParent/
// AddChild. Layer 2 (FindOrCreateCorner, AppendSurfacePolygon, ...) calls
// the same geomodel primitives through b.Model; file-format loaders that don't yet know the
// domain-specific idempotent constructors (e.g. a generic geological
// topology import) drive layer 1 directly instead of reaching past
// Builder into geomodel, keeping Builder the sole mutation gateway no
// matter which layer a caller enters at.

// CreateEntity creates a new, empty entity of kind k and returns its id.
func (b *Builder) CreateEntity(k entity.Kind) entity.ID {
	return b.Model.CreateEntity(k)
}

// DeleteEntity removes id. Callers are responsible for having already
// computed a safe-to-delete closure (package closure) beforehand.
func (b *Builder) DeleteEntity(id entity.ID) error {
	if err := b.Model.DeleteEntity(id); err != nil {
		return buildErrorf(MethodDeleteEntity, err)
	}
	return nil
}

// SetName sets id's display name.
func (b *Builder) SetName(id entity.ID, name string) error {
	if err := b.Model.SetName(id, name); err != nil {
		return buildErrorf(MethodSetName, err)
	}
	return nil
}

// SetGeologicalFeature sets id's geological-feature tag.
func (b *Builder) SetGeologicalFeature(id entity.ID, feature string) error {
	if err := b.Model.SetGeologicalFeature(id, feature); err != nil {
		return buildErrorf(MethodSetGeologicalFeature, err)
	}
	return nil
}

// AddBoundary wires owner/boundary (invariant 1: bidirectionality),
// rejecting a type-incompatible pair per invariant 2 — see
// geomodel.GeoModel.AddBoundary.
func (b *Builder) AddBoundary(owner, boundary entity.ID, side ...bool) error {
	if err := b.Model.AddBoundary(owner, boundary, side...); err != nil {
		return buildErrorf(MethodAddBoundary, err)
	}
	return nil
}

// AddInBoundary wires member into owner's in-boundary list only (no
// reciprocal boundaries() write) — see geomodel.GeoModel.AddInBoundary.
func (b *Builder) AddInBoundary(owner, member entity.ID) error {
	if err := b.Model.AddInBoundary(owner, member); err != nil {
		return buildErrorf(MethodAddInBoundary, err)
	}
	return nil
}

// SetParent wires child/parent, rejecting a type-incompatible pair per
// invariant 2 — see geomodel.GeoModel.SetParent.
func (b *Builder) SetParent(child, parent entity.ID) error {
	if err := b.Model.SetParent(child, parent); err != nil {
		return buildErrorf(MethodSetParent, err)
	}
	return nil
}

// AddChild is SetParent's inverse entry point — see geomodel.GeoModel.AddChild.
func (b *Builder) AddChild(parent, child entity.ID) error {
	if err := b.Model.AddChild(parent, child); err != nil {
		return buildErrorf(MethodAddChild, err)
	}
	return nil
}

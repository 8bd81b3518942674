package geomodel

import (
	"fmt"

	"github.com/geomodel/brep/entity"
)

// CreateEntity appends a new, empty entity of kind k and returns its id.
// Callers are responsible for attaching geometry and relations afterward;
// package builder is the only intended caller (doc.go).
func (m *GeoModel) CreateEntity(k entity.Kind) entity.ID {
	if m.isMeshKind(k) {
		m.meshMu.Lock()
		defer m.meshMu.Unlock()
		switch k {
		case entity.Corner:
			id := entity.ID{Kind: entity.Corner, Index: uint32(len(m.corners))}
			m.corners = append(m.corners, &Corner{base: newBase(id)})
			return id
		case entity.Line:
			id := entity.ID{Kind: entity.Line, Index: uint32(len(m.lines))}
			m.lines = append(m.lines, &Line{base: newBase(id)})
			return id
		case entity.Surface:
			id := entity.ID{Kind: entity.Surface, Index: uint32(len(m.surfaces))}
			m.surfaces = append(m.surfaces, &Surface{base: newBase(id)})
			return id
		case entity.Region:
			id := entity.ID{Kind: entity.Region, Index: uint32(len(m.regions))}
			m.regions = append(m.regions, &Region{base: newBase(id)})
			return id
		}
	}
	m.geoMu.Lock()
	defer m.geoMu.Unlock()
	switch k {
	case entity.Contact:
		id := entity.ID{Kind: entity.Contact, Index: uint32(len(m.contacts))}
		m.contacts = append(m.contacts, &Contact{base: newBase(id)})
		return id
	case entity.Interface:
		id := entity.ID{Kind: entity.Interface, Index: uint32(len(m.interfaces))}
		m.interfaces = append(m.interfaces, &Interface{base: newBase(id)})
		return id
	case entity.Layer:
		id := entity.ID{Kind: entity.Layer, Index: uint32(len(m.layers))}
		m.layers = append(m.layers, &Layer{base: newBase(id)})
		return id
	}
	return entity.NoID
}

// DeleteEntity nils out the slot for id, leaving a tombstone (indices are
// stable identifiers elsewhere in the model, so slots are never
// compacted). It does not touch any entity that still references id;
// package closure (C8) computes the full set of entities that must be
// deleted together before this is called.
func (m *GeoModel) DeleteEntity(id entity.ID) error {
	if m.isMeshKind(id.Kind) {
		m.meshMu.Lock()
		defer m.meshMu.Unlock()
		switch id.Kind {
		case entity.Corner:
			if int(id.Index) >= len(m.corners) || m.corners[id.Index] == nil {
				return ErrEntityNotFound
			}
			m.corners[id.Index] = nil
		case entity.Line:
			if int(id.Index) >= len(m.lines) || m.lines[id.Index] == nil {
				return ErrEntityNotFound
			}
			m.lines[id.Index] = nil
		case entity.Surface:
			if int(id.Index) >= len(m.surfaces) || m.surfaces[id.Index] == nil {
				return ErrEntityNotFound
			}
			m.surfaces[id.Index] = nil
		case entity.Region:
			if id.Index == 0 {
				return ErrInvalidKind // universe is never deleted
			}
			if int(id.Index) >= len(m.regions) || m.regions[id.Index] == nil {
				return ErrEntityNotFound
			}
			m.regions[id.Index] = nil
		default:
			return ErrInvalidKind
		}
		return nil
	}
	m.geoMu.Lock()
	defer m.geoMu.Unlock()
	switch id.Kind {
	case entity.Contact:
		if int(id.Index) >= len(m.contacts) || m.contacts[id.Index] == nil {
			return ErrEntityNotFound
		}
		m.contacts[id.Index] = nil
	case entity.Interface:
		if int(id.Index) >= len(m.interfaces) || m.interfaces[id.Index] == nil {
			return ErrEntityNotFound
		}
		m.interfaces[id.Index] = nil
	case entity.Layer:
		if int(id.Index) >= len(m.layers) || m.layers[id.Index] == nil {
			return ErrEntityNotFound
		}
		m.layers[id.Index] = nil
	default:
		return ErrInvalidKind
	}
	return nil
}

// SetName sets id's display name.
func (m *GeoModel) SetName(id entity.ID, name string) error {
	e, err := m.mutableBase(id)
	if err != nil {
		return err
	}
	e.name = name
	return nil
}

// SetGeologicalFeature sets id's geological-feature tag.
func (m *GeoModel) SetGeologicalFeature(id entity.ID, feature string) error {
	e, err := m.mutableBase(id)
	if err != nil {
		return err
	}
	e.geologicalFeature = feature
	return nil
}

// AddBoundary appends boundary to owner's boundary list and, symmetrically,
// appends owner to boundary's in-boundary list (invariant 1:
// bidirectionality). For owner of kind Region, side records which face of
// boundary (a Surface) borders this region and must be supplied; it is
// ignored for every other owner kind.
//
// Invariant 2 (type compatibility, spec §4.5's typing discipline): boundary
// must be of the kind entity.BoundaryType(owner.Kind) names, or this
// returns entity.ErrIncompatibleKind rather than silently wiring an
// ill-typed relation (e.g. a Region bounded by a Corner).
func (m *GeoModel) AddBoundary(owner, boundary entity.ID, side ...bool) error {
	if want := entity.BoundaryType(owner.Kind); want == entity.NoKind || boundary.Kind != want {
		return fmt.Errorf("geomodel: AddBoundary(%s, %s): %w", owner, boundary, entity.ErrIncompatibleKind)
	}
	o, err := m.mutableBase(owner)
	if err != nil {
		return err
	}
	b, err := m.mutableBase(boundary)
	if err != nil {
		return err
	}
	o.boundaries = append(o.boundaries, boundary)
	b.inBoundaries = append(b.inBoundaries, owner)

	if owner.Kind == entity.Region {
		region, rerr := m.Region(owner)
		if rerr != nil {
			return rerr
		}
		var s bool
		if len(side) > 0 {
			s = side[0]
		}
		region.BoundarySides = append(region.BoundarySides, s)
	}
	return nil
}

// RemoveBoundary removes the first occurrence of boundary from owner's
// boundary list and the matching occurrence of owner from boundary's
// in-boundary list.
func (m *GeoModel) RemoveBoundary(owner, boundary entity.ID) error {
	o, err := m.mutableBase(owner)
	if err != nil {
		return err
	}
	b, err := m.mutableBase(boundary)
	if err != nil {
		return err
	}
	idx := indexOf(o.boundaries, boundary)
	if idx < 0 {
		return ErrEntityNotFound
	}
	o.boundaries = removeAt(o.boundaries, idx)
	if owner.Kind == entity.Region {
		region, rerr := m.Region(owner)
		if rerr != nil {
			return rerr
		}
		if idx < len(region.BoundarySides) {
			region.BoundarySides = append(region.BoundarySides[:idx], region.BoundarySides[idx+1:]...)
		}
	}
	if j := indexOf(b.inBoundaries, owner); j >= 0 {
		b.inBoundaries = removeAt(b.inBoundaries, j)
	}
	return nil
}

// AddInBoundary appends member to owner's in-boundary list only. It is the
// one-sided counterpart to AddBoundary, for the relations in spec data model
// §3 whose in_boundaries column has no mirror entry in the boundaries
// column — currently just in_boundaries(Contact) = Interfaces, where no kind
// lists Contact among its own boundaries, so there is no reciprocal
// boundaries() write to perform.
//
// Invariant 2: member must be of the kind entity.InBoundaryType(owner.Kind)
// names, or this returns entity.ErrIncompatibleKind.
func (m *GeoModel) AddInBoundary(owner, member entity.ID) error {
	if want := entity.InBoundaryType(owner.Kind); want == entity.NoKind || member.Kind != want {
		return fmt.Errorf("geomodel: AddInBoundary(%s, %s): %w", owner, member, entity.ErrIncompatibleKind)
	}
	o, err := m.mutableBase(owner)
	if err != nil {
		return err
	}
	if _, err := m.mutableBase(member); err != nil {
		return err
	}
	o.inBoundaries = append(o.inBoundaries, member)
	return nil
}

// SetParent sets child's parent to parent and, symmetrically, appends
// child to parent's child list (invariant 1). A prior parent link, if
// any, is not removed; callers must RemoveChild it first.
//
// Invariant 2: parent must be of the kind entity.ParentType(child.Kind)
// names, or this returns entity.ErrIncompatibleKind.
func (m *GeoModel) SetParent(child, parent entity.ID) error {
	if want := entity.ParentType(child.Kind); want == entity.NoKind || parent.Kind != want {
		return fmt.Errorf("geomodel: SetParent(%s, %s): %w", child, parent, entity.ErrIncompatibleKind)
	}
	c, err := m.mutableBase(child)
	if err != nil {
		return err
	}
	p, err := m.mutableBase(parent)
	if err != nil {
		return err
	}
	c.parent = parent
	p.children = append(p.children, child)
	return nil
}

// AddChild is the inverse entry point of SetParent: it appends child to
// parent's child list and sets child's parent, in one call.
func (m *GeoModel) AddChild(parent, child entity.ID) error {
	return m.SetParent(child, parent)
}

// RemoveChild removes child from parent's child list and clears child's
// parent link if it pointed at parent.
func (m *GeoModel) RemoveChild(parent, child entity.ID) error {
	p, err := m.mutableBase(parent)
	if err != nil {
		return err
	}
	c, err := m.mutableBase(child)
	if err != nil {
		return err
	}
	idx := indexOf(p.children, child)
	if idx < 0 {
		return ErrEntityNotFound
	}
	p.children = removeAt(p.children, idx)
	if c.parent == parent {
		c.parent = entity.NoID
	}
	return nil
}

// mutableBase returns the *base embedded in id's concrete entity.
// Mutation methods call this without holding any lock themselves and rely
// on the fact that Go slices of pointers let us mutate the pointee
// in-place; the slice-level lock only protects append/nil-out operations
// on the GeoModel's own arenas, matching the split-lock discipline of
// doc.go. Concurrent field mutation of two different entities of the same
// kind-group is safe; concurrent mutation of the SAME entity is the
// caller's (builder's) responsibility to serialize, exactly as it is in
// lvlath/core for per-vertex attribute writes.
func (m *GeoModel) mutableBase(id entity.ID) (*base, error) {
	switch id.Kind {
	case entity.Corner:
		e, err := m.Corner(id)
		if err != nil {
			return nil, err
		}
		return &e.base, nil
	case entity.Line:
		e, err := m.Line(id)
		if err != nil {
			return nil, err
		}
		return &e.base, nil
	case entity.Surface:
		e, err := m.Surface(id)
		if err != nil {
			return nil, err
		}
		return &e.base, nil
	case entity.Region:
		e, err := m.Region(id)
		if err != nil {
			return nil, err
		}
		return &e.base, nil
	case entity.Contact:
		e, err := m.Contact(id)
		if err != nil {
			return nil, err
		}
		return &e.base, nil
	case entity.Interface:
		e, err := m.Interface(id)
		if err != nil {
			return nil, err
		}
		return &e.base, nil
	case entity.Layer:
		e, err := m.Layer(id)
		if err != nil {
			return nil, err
		}
		return &e.base, nil
	default:
		return nil, ErrInvalidKind
	}
}

func indexOf(ids []entity.ID, target entity.ID) int {
	for i, v := range ids {
		if v == target {
			return i
		}
	}
	return -1
}

func removeAt(ids []entity.ID, idx int) []entity.ID {
	return append(ids[:idx], ids[idx+1:]...)
}

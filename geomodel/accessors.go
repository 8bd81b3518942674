package geomodel

import "github.com/geomodel/brep/entity"

// NbEntities returns the number of live entities of the given kind. It
// panics-free returns 0 for NoKind/AllKinds/out-of-range kinds.
func (m *GeoModel) NbEntities(k entity.Kind) int {
	if m.isMeshKind(k) {
		m.meshMu.RLock()
		defer m.meshMu.RUnlock()
		switch k {
		case entity.Corner:
			return len(m.corners)
		case entity.Line:
			return len(m.lines)
		case entity.Surface:
			return len(m.surfaces)
		case entity.Region:
			return len(m.regions)
		}
	}
	m.geoMu.RLock()
	defer m.geoMu.RUnlock()
	switch k {
	case entity.Contact:
		return len(m.contacts)
	case entity.Interface:
		return len(m.interfaces)
	case entity.Layer:
		return len(m.layers)
	}
	return 0
}

// Entity returns the base capability view of id, or ErrEntityNotFound /
// ErrInvalidKind.
func (m *GeoModel) Entity(id entity.ID) (Entity, error) {
	switch id.Kind {
	case entity.Corner:
		return m.Corner(id)
	case entity.Line:
		return m.Line(id)
	case entity.Surface:
		return m.Surface(id)
	case entity.Region:
		return m.Region(id)
	case entity.Contact:
		return m.Contact(id)
	case entity.Interface:
		return m.Interface(id)
	case entity.Layer:
		return m.Layer(id)
	default:
		return nil, ErrInvalidKind
	}
}

// Valid reports whether id names a live entity in this model.
func (m *GeoModel) Valid(id entity.ID) bool {
	_, err := m.Entity(id)
	return err == nil
}

// Corner returns the Corner named by id.
func (m *GeoModel) Corner(id entity.ID) (*Corner, error) {
	if id.Kind != entity.Corner {
		return nil, ErrWrongKind
	}
	m.meshMu.RLock()
	defer m.meshMu.RUnlock()
	if int(id.Index) >= len(m.corners) || m.corners[id.Index] == nil {
		return nil, ErrEntityNotFound
	}
	return m.corners[id.Index], nil
}

// Line returns the Line named by id.
func (m *GeoModel) Line(id entity.ID) (*Line, error) {
	if id.Kind != entity.Line {
		return nil, ErrWrongKind
	}
	m.meshMu.RLock()
	defer m.meshMu.RUnlock()
	if int(id.Index) >= len(m.lines) || m.lines[id.Index] == nil {
		return nil, ErrEntityNotFound
	}
	return m.lines[id.Index], nil
}

// Surface returns the Surface named by id.
func (m *GeoModel) Surface(id entity.ID) (*Surface, error) {
	if id.Kind != entity.Surface {
		return nil, ErrWrongKind
	}
	m.meshMu.RLock()
	defer m.meshMu.RUnlock()
	if int(id.Index) >= len(m.surfaces) || m.surfaces[id.Index] == nil {
		return nil, ErrEntityNotFound
	}
	return m.surfaces[id.Index], nil
}

// Region returns the Region named by id (this includes the universe,
// always at index 0).
func (m *GeoModel) Region(id entity.ID) (*Region, error) {
	if id.Kind != entity.Region {
		return nil, ErrWrongKind
	}
	m.meshMu.RLock()
	defer m.meshMu.RUnlock()
	if int(id.Index) >= len(m.regions) || m.regions[id.Index] == nil {
		return nil, ErrEntityNotFound
	}
	return m.regions[id.Index], nil
}

// Contact returns the Contact named by id.
func (m *GeoModel) Contact(id entity.ID) (*Contact, error) {
	if id.Kind != entity.Contact {
		return nil, ErrWrongKind
	}
	m.geoMu.RLock()
	defer m.geoMu.RUnlock()
	if int(id.Index) >= len(m.contacts) || m.contacts[id.Index] == nil {
		return nil, ErrEntityNotFound
	}
	return m.contacts[id.Index], nil
}

// Interface returns the Interface named by id.
func (m *GeoModel) Interface(id entity.ID) (*Interface, error) {
	if id.Kind != entity.Interface {
		return nil, ErrWrongKind
	}
	m.geoMu.RLock()
	defer m.geoMu.RUnlock()
	if int(id.Index) >= len(m.interfaces) || m.interfaces[id.Index] == nil {
		return nil, ErrEntityNotFound
	}
	return m.interfaces[id.Index], nil
}

// Layer returns the Layer named by id.
func (m *GeoModel) Layer(id entity.ID) (*Layer, error) {
	if id.Kind != entity.Layer {
		return nil, ErrWrongKind
	}
	m.geoMu.RLock()
	defer m.geoMu.RUnlock()
	if int(id.Index) >= len(m.layers) || m.layers[id.Index] == nil {
		return nil, ErrEntityNotFound
	}
	return m.layers[id.Index], nil
}

// Universe returns the distinguished universe Region: the
// "outside" that borders every Surface with no real Region on one side.
func (m *GeoModel) Universe() *Region {
	m.meshMu.RLock()
	defer m.meshMu.RUnlock()
	return m.universe
}

// FindRegion returns the Region bordering surfaceID on the given side
// (true = positive/"+" side, matching Region.BoundarySides), or the
// universe if that side has no concrete Region. It returns ErrEntityNotFound
// if surfaceID is not a live Surface.
func (m *GeoModel) FindRegion(surfaceID entity.ID, side bool) (entity.ID, error) {
	surf, err := m.Surface(surfaceID)
	if err != nil {
		return entity.NoID, err
	}
	m.meshMu.RLock()
	defer m.meshMu.RUnlock()
	for _, r := range m.regions {
		if r == nil {
			continue
		}
		for i, b := range r.boundaries {
			if b == surfaceID && i < len(r.BoundarySides) && r.BoundarySides[i] == side {
				return r.id, nil
			}
		}
	}
	return m.universe.id, nil
}

// EntitiesOnVOI returns the ids of every mesh entity touching the volume
// of interest boundary: every Surface bordering the universe on either
// side, plus their bounding Lines and Corners (spec §4.1, "VOI" surfaces
// are exactly those with the universe as a FindRegion result).
func (m *GeoModel) EntitiesOnVOI() []entity.ID {
	m.meshMu.RLock()
	defer m.meshMu.RUnlock()

	seen := map[entity.ID]bool{}
	var out []entity.ID
	add := func(id entity.ID) {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}

	for _, b := range m.universe.boundaries {
		if b.Kind != entity.Surface || int(b.Index) >= len(m.surfaces) || m.surfaces[b.Index] == nil {
			continue // stale reference: DeleteEntity tombstones slots without cleaning up referrers
		}
		add(b)
		surf := m.surfaces[b.Index]
		for _, l := range surf.boundaries {
			add(l)
			if l.Kind == entity.Line && int(l.Index) < len(m.lines) && m.lines[l.Index] != nil {
				for _, c := range m.lines[l.Index].boundaries {
					add(c)
				}
			}
		}
	}
	return out
}

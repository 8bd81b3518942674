package closure

import (
	"github.com/geomodel/brep/entity"
	"github.com/geomodel/brep/geomodel"
)

// Compute grows meshIDs and geoIDs to a removal-closed superset per
// spec.md §4.8's five fixpoint rules, and returns the grown sets plus
// whether the closure actually grew beyond the input.
func Compute(model *geomodel.GeoModel, meshIDs, geoIDs []entity.ID) (mesh, geo []entity.ID, grew bool) {
	m := entity.NewSet(meshIDs...)
	g := entity.NewSet(geoIDs...)
	inputLen := m.Len() + g.Len()

	var queue []entity.ID
	enqueue := func(ids []entity.ID) {
		queue = append(queue, ids...)
	}

	seed := func(id entity.ID) {
		e, err := model.Entity(id)
		if err != nil {
			return
		}
		enqueue(e.Boundaries())
		if p := e.Parent(); p != entity.NoID {
			enqueue([]entity.ID{p})
		}
	}
	for _, id := range meshIDs {
		seed(id)
	}
	for _, id := range geoIDs {
		seed(id)
	}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		if m.Has(id) || g.Has(id) {
			continue
		}
		e, err := model.Entity(id)
		if err != nil {
			continue
		}

		added := false
		if isMeshKind(id.Kind) {
			if allIncidentInSet(e.InBoundaries(), m) {
				m.Add(id)
				added = true
			}
		} else {
			if allIncidentInSet(e.Children(), m) {
				g.Add(id)
				added = true
			}
		}

		if added {
			queue = append(queue, e.Boundaries()...)
			if p := e.Parent(); p != entity.NoID {
				queue = append(queue, p)
			}
		}
	}

	grew = (m.Len() + g.Len()) > inputLen
	return m.Sorted(), g.Sorted(), grew
}

// allIncidentInSet reports whether incident is non-empty and every member
// is already present in set — the shared shape of rules 1–4 of §4.8
// ("loses its last incident X", "every child ... is in M").
func allIncidentInSet(incident []entity.ID, set *entity.Set) bool {
	if len(incident) == 0 {
		return false
	}
	for _, id := range incident {
		if !set.Has(id) {
			return false
		}
	}
	return true
}

func isMeshKind(k entity.Kind) bool {
	switch k {
	case entity.Corner, entity.Line, entity.Surface, entity.Region:
		return true
	default:
		return false
	}
}

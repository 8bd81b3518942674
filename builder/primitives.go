package builder

import (
	"github.com/geomodel/brep/entity"
	"github.com/geomodel/brep/vindex"
	"github.com/golang/geo/r3"
)

// FindOrCreateCorner returns the Corner at point p, creating a new one (and
// its single vertex) if no Corner already owns a vertex within the index's
// epsilon of p. This is the standard idempotent entry point Gocad import
// and hand-written tests use to avoid duplicate Corners at shared points.
func (b *Builder) FindOrCreateCorner(p r3.Vector) (entity.ID, error) {
	canon, ok := b.Index.Lookup(p)
	if ok {
		for _, occ := range b.mustOccurrences(canon) {
			if occ.Entity.Kind == entity.Corner {
				return occ.Entity, nil
			}
		}
	}

	id := b.Model.CreateEntity(entity.Corner)
	corner, err := b.Model.Corner(id)
	if err != nil {
		return entity.NoID, buildErrorf(MethodFindOrCreateCorner, err)
	}
	corner.Vertex = newSingleVertex(p)
	canon = b.Index.FindOrCreate(p)
	if err := b.Index.AttachOccurrence(canon, vindex.Occurrence{Entity: id, LocalIndex: 0}); err != nil {
		return entity.NoID, buildErrorf(MethodFindOrCreateCorner, err)
	}
	corner.Vertex.SetCanonicalID(0, canon)
	return id, nil
}

// FindOrCreateLine returns the Line bounded by exactly the two given
// Corners (in either order), creating a new empty Line (with those two
// Corners already attached as boundaries) if none exists yet. Geometry
// (interior vertices) is filled in afterward via AppendLineVertex.
func (b *Builder) FindOrCreateLine(c0, c1 entity.ID) (entity.ID, error) {
	if err := b.requireKind(c0, entity.Corner); err != nil {
		return entity.NoID, buildErrorf(MethodFindOrCreateLine, err)
	}
	if err := b.requireKind(c1, entity.Corner); err != nil {
		return entity.NoID, buildErrorf(MethodFindOrCreateLine, err)
	}

	corner0, err := b.Model.Corner(c0)
	if err != nil {
		return entity.NoID, buildErrorf(MethodFindOrCreateLine, err)
	}
	for _, inb := range corner0.InBoundaries() {
		if inb.Kind != entity.Line {
			continue
		}
		line, err := b.Model.Line(inb)
		if err != nil {
			continue
		}
		bs := line.Boundaries()
		if len(bs) == 2 && sameUnordered(bs[0], bs[1], c0, c1) {
			return inb, nil
		}
	}

	id := b.Model.CreateEntity(entity.Line)
	line, err := b.Model.Line(id)
	if err != nil {
		return entity.NoID, buildErrorf(MethodFindOrCreateLine, err)
	}
	line.Geometry = newPolylineAt(corner0)
	if err := b.Model.AddBoundary(id, c0); err != nil {
		return entity.NoID, buildErrorf(MethodFindOrCreateLine, err)
	}
	if err := b.Model.AddBoundary(id, c1); err != nil {
		return entity.NoID, buildErrorf(MethodFindOrCreateLine, err)
	}
	return id, nil
}

// FindOrCreateContact returns the Contact whose InBoundaries set exactly
// matches interfaces (the Interfaces incident on the Lines it groups),
// creating a new, empty Contact if none matches yet.
func (b *Builder) FindOrCreateContact(interfaces []entity.ID) (entity.ID, error) {
	for _, id := range interfaces {
		if err := b.requireKind(id, entity.Interface); err != nil {
			return entity.NoID, buildErrorf(MethodFindOrCreateContact, err)
		}
	}

	n := b.Model.NbEntities(entity.Contact)
	for i := 0; i < n; i++ {
		id := entity.ID{Kind: entity.Contact, Index: uint32(i)}
		ct, err := b.Model.Contact(id)
		if err != nil {
			continue
		}
		if sameSet(ct.InBoundaries(), interfaces) {
			return id, nil
		}
	}

	id := b.Model.CreateEntity(entity.Contact)
	for _, ifc := range interfaces {
		if err := b.Model.AddInBoundary(id, ifc); err != nil {
			return entity.NoID, buildErrorf(MethodFindOrCreateContact, err)
		}
	}
	return id, nil
}

func sameUnordered(a, b, x, y entity.ID) bool {
	return (a == x && b == y) || (a == y && b == x)
}

func sameSet(a, b []entity.ID) bool {
	if len(a) != len(b) {
		return false
	}
	seen := map[entity.ID]bool{}
	for _, id := range a {
		seen[id] = true
	}
	for _, id := range b {
		if !seen[id] {
			return false
		}
	}
	return true
}

func (b *Builder) mustOccurrences(canon uint32) []vindex.Occurrence {
	occ, err := b.Index.Occurrences(canon)
	if err != nil {
		return nil
	}
	return occ
}

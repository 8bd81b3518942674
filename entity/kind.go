package entity

import "fmt"

// Kind tags one of the seven B-Rep entity kinds, plus the two sentinels
// NoKind and AllKinds used by the validity checker and iteration helpers.
type Kind uint8

const (
	// NoKind is returned by the typing tables when a relation is not legal
	// for the queried kind (e.g. ParentType(Corner) == NoKind).
	NoKind Kind = iota

	// Mesh entities (carry geometry).
	Corner
	Line
	Surface
	Region

	// Geological entities (pure aggregation, no geometry).
	Contact
	Interface
	Layer

	// AllKinds is a sentinel meaning "every kind", used by iteration helpers
	// and the validity checker's report filters. It is never a legal value
	// for a concrete entity's own Kind field.
	AllKinds
)

// kindNames mirrors the Kind enumeration order for String().
var kindNames = [...]string{
	NoKind:    "NoKind",
	Corner:    "Corner",
	Line:      "Line",
	Surface:   "Surface",
	Region:    "Region",
	Contact:   "Contact",
	Interface: "Interface",
	Layer:     "Layer",
	AllKinds:  "AllKinds",
}

// String implements fmt.Stringer for Kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// IsMeshEntity reports whether k is one of the four geometry-carrying kinds.
func (k Kind) IsMeshEntity() bool {
	return k == Corner || k == Line || k == Surface || k == Region
}

// IsGeologicalEntity reports whether k is one of the three pure-aggregation
// kinds.
func (k Kind) IsGeologicalEntity() bool {
	return k == Contact || k == Interface || k == Layer
}

// Valid reports whether k is one of the seven concrete entity kinds (i.e.
// excludes NoKind and AllKinds).
func (k Kind) Valid() bool {
	return k >= Corner && k <= Layer
}

// parentTable, childTable, boundaryTable and inBoundaryTable realize the
// relation matrix of the data model (spec data model §3): for each kind,
// which kind its parent/children/boundaries/in_boundaries may be.
var (
	parentTable = [...]Kind{
		Corner:    NoKind,
		Line:      Contact,
		Surface:   Interface,
		Region:    Layer,
		Contact:   NoKind,
		Interface: NoKind,
		Layer:     NoKind,
	}
	childTable = [...]Kind{
		Corner:    NoKind,
		Line:      NoKind,
		Surface:   NoKind,
		Region:    NoKind,
		Contact:   Line,
		Interface: Surface,
		Layer:     Region,
	}
	// boundaryTable's geological entries coincide with childTable's: a
	// Contact's boundaries (like its children) are Lines, an Interface's
	// are Surfaces, a Layer's are Regions — spec data model §3 lists the
	// same target kind in both rows for these three. in_boundaries(Contact)
	// = Interfaces has no mirror entry in the boundaries row (no kind lists
	// Contact among its boundaries), so it is populated one-sidedly via
	// AddInBoundary rather than through AddBoundary's reciprocal write.
	boundaryTable = [...]Kind{
		Corner:    NoKind,
		Line:      Corner,
		Surface:   Line,
		Region:    Surface,
		Contact:   Line,
		Interface: Surface,
		Layer:     Region,
	}
	inBoundaryTable = [...]Kind{
		Corner:    Line,
		Line:      Surface,
		Surface:   Region,
		Region:    NoKind,
		Contact:   Interface,
		Interface: NoKind,
		Layer:     NoKind,
	}
)

// ParentType returns the kind that may legally be the parent of k, or
// NoKind if k has no parent slot.
func ParentType(k Kind) Kind { return lookup(parentTable[:], k) }

// ChildType returns the kind that may legally be a child of k, or NoKind.
func ChildType(k Kind) Kind { return lookup(childTable[:], k) }

// BoundaryType returns the kind that may legally bound k, or NoKind.
func BoundaryType(k Kind) Kind { return lookup(boundaryTable[:], k) }

// InBoundaryType returns the kind that may legally appear in k's own
// InBoundaries() list, or NoKind. For most kinds this mirrors BoundaryType
// on the bounded side (e.g. InBoundaryType(Corner) == Line, matching
// BoundaryType(Line) == Corner), but InBoundaryType(Contact) == Interface
// has no such mirror: no kind lists Contact among its Boundaries(), so that
// entry is only ever populated one-sidedly, via AddInBoundary.
func InBoundaryType(k Kind) Kind { return lookup(inBoundaryTable[:], k) }

func lookup(table []Kind, k Kind) Kind {
	if int(k) < len(table) {
		return table[k]
	}
	return NoKind
}

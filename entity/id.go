package entity

import (
	"fmt"
	"math"
)

// NoIndex is the sentinel index value (u32::MAX) used by NoID and by
// Index-returning lookups that fail.
const NoIndex uint32 = math.MaxUint32

// ID is a strongly typed (kind, index) handle. The zero value is NOT a
// valid sentinel — use NoID for "absent".
type ID struct {
	Kind  Kind
	Index uint32
}

// NoID is the sentinel identifier: no kind, no index. Any ID equal to NoID
// is considered absent by every package in this module.
var NoID = ID{Kind: NoKind, Index: NoIndex}

// New constructs an ID for the given kind and index. It does not validate
// that index is in range for any particular model; range validation is a
// geomodel.GeoModel concern (it alone knows how many entities of each kind
// exist).
func New(k Kind, index uint32) ID { return ID{Kind: k, Index: index} }

// IsNone reports whether id is the NoID sentinel.
func (id ID) IsNone() bool { return id.Kind == NoKind && id.Index == NoIndex }

// Valid reports whether id has a concrete kind and a non-sentinel index.
// It does NOT check the index against any particular model's entity count;
// callers needing that must use geomodel.GeoModel.Valid(id).
func (id ID) Valid() bool { return id.Kind.Valid() && id.Index != NoIndex }

// String renders "Kind#index", or "NoID" for the sentinel.
func (id ID) String() string {
	if id.IsNone() {
		return "NoID"
	}
	return fmt.Sprintf("%s#%d", id.Kind, id.Index)
}

// Less orders ids first by Kind then by Index, enabling ordered sets used
// by the repair and dependency-closure passes for deterministic iteration.
func Less(a, b ID) bool {
	if a.Kind != b.Kind {
		return a.Kind < b.Kind
	}
	return a.Index < b.Index
}

// Compare returns -1, 0 or 1 for a<b, a==b, a>b under the Less ordering.
func Compare(a, b ID) int {
	switch {
	case a == b:
		return 0
	case Less(a, b):
		return -1
	default:
		return 1
	}
}

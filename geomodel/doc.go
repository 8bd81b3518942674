// Package geomodel implements the entity graph (component C3): it owns
// every Corner, Line, Surface, Region, Contact, Interface and Layer in the
// model, plus the distinguished Universe region, and stores the
// parent/child and boundary/in-boundary relations between them.
//
// GeoModel is read-mostly from the outside: every exported accessor is
// O(1) or a typed iteration. The handful of exported mutation methods
// (CreateEntity, AddBoundary, SetParent, ...) update both directions of a
// relation pointwise, matching the bidirectionality invariant, and the
// relation wirings (AddBoundary, AddInBoundary, SetParent) reject kind
// pairs the entity relation tables forbid with entity.ErrIncompatibleKind.
// The higher-level topology/geometry/closure operations built on top of
// these primitives belong to package builder, the only component meant to
// call them (spec §4.5: "The Builder is the only component permitted to
// mutate C3 and C4"). This mirrors how lvlath/core.Graph exposes public
// AddVertex/AddEdge primitives that higher packages (lvlath/builder)
// compose into named constructors, rather than hiding them behind an
// unexported, cross-package "friend" boundary Go has no syntax for.
//
// Concurrency follows lvlath/core's split-lock discipline: GeoModel guards
// its entity arenas and relations with one sync.RWMutex per kind-group
// (mesh entities vs geological entities), so a reader iterating Corners
// never blocks a writer mutating Layers.
package geomodel

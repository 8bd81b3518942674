// Package entity defines the strongly typed (kind, index) identifier algebra
// that distinguishes the seven B-Rep entity kinds — Corner, Line, Surface,
// Region (mesh entities) and Contact, Interface, Layer (geological
// entities) — and declares which kind may bound, be-bounded-by, parent, or
// child which, per the relation table of the data model.
//
// Nothing in this package owns geometry or storage; it is pure typing and
// ordering, analogous to how lvlath/core keeps its sentinel errors and
// option types free of storage concerns.
package entity

// errors.go — sentinel errors for the geomodel package.
package geomodel

import "errors"

// ErrEntityNotFound indicates an id with an in-range kind but an
// out-of-range (or deleted) index.
var ErrEntityNotFound = errors.New("geomodel: entity not found")

// ErrInvalidKind indicates an id whose Kind is NoKind, AllKinds, or out of
// the seven concrete kinds.
var ErrInvalidKind = errors.New("geomodel: invalid kind")

// ErrWrongKind indicates a typed accessor (e.g. Corner(id)) was called with
// an id of a different kind.
var ErrWrongKind = errors.New("geomodel: wrong kind for typed accessor")

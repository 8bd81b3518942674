// errors.go — sentinel errors for the mesh package.
package mesh

import "errors"

// ErrOutOfRange indicates a vertex/polygon/cell local index outside the
// entity's current storage.
var ErrOutOfRange = errors.New("mesh: index out of range")

// ErrAttributeTypeMismatch indicates Bind[T] was called against an existing
// column of a different element type.
var ErrAttributeTypeMismatch = errors.New("mesh: attribute type mismatch")

// ErrDegenerateCell indicates a cell whose number of corners does not
// match its CellType (4 for a tetrahedron, 8 for a hexahedron, ...).
var ErrDegenerateCell = errors.New("mesh: degenerate cell")

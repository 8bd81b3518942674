// errors.go — sentinel errors for the entity package.
//
// Error policy (explicit and strict, matching the rest of this module):
//   - Only sentinel variables are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - These sentinels classify as ProgrammerError in the error taxonomy:
//     a type-incompatible relation or an out-of-range id is a caller bug,
//     not a recoverable condition, so callers that see one should treat it
//     as fatal.
package entity

import "errors"

// ErrIncompatibleKind indicates a boundary/parent/child relation was
// requested between two kinds that the relation table forbids.
var ErrIncompatibleKind = errors.New("entity: incompatible kind relation")

// ErrInvalidID indicates an id with an out-of-range kind or the NoIndex
// sentinel was used where a concrete id was required.
var ErrInvalidID = errors.New("entity: invalid id")

package vindex

import "errors"

// ErrCanonicalNotFound indicates a canonical vertex id outside [0, NbPoints).
var ErrCanonicalNotFound = errors.New("vindex: canonical vertex not found")

// ErrOccurrenceNotFound indicates a (entity, local index) pair that was
// never attached to the given canonical vertex.
var ErrOccurrenceNotFound = errors.New("vindex: occurrence not found")

// ErrNonMonotoneMask indicates EraseVertices was called with a mask whose
// length does not match NbPoints.
var ErrNonMonotoneMask = errors.New("vindex: erase mask length mismatch")

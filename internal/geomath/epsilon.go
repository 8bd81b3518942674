package geomath

import (
	"math"

	"github.com/golang/geo/r3"
)

// DefaultEpsilon is used when a model has not yet derived one from its
// bounding box (e.g. an empty model under construction).
const DefaultEpsilon = 1e-6

// Within reports whether a and b are within eps of each other. This is the
// sole colocation predicate used across the module; no package compares
// r3.Vector values with "==" for geometric purposes (Design Notes, spec §9).
func Within(a, b r3.Vector, eps float64) bool {
	return Distance(a, b) <= eps
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b r3.Vector) float64 {
	return a.Sub(b).Norm()
}

// BoundingBoxDiagonal returns the Euclidean length of the diagonal of the
// axis-aligned bounding box of pts, or 0 for fewer than two points.
func BoundingBoxDiagonal(pts []r3.Vector) float64 {
	if len(pts) == 0 {
		return 0
	}
	lo, hi := pts[0], pts[0]
	for _, p := range pts[1:] {
		lo = r3.Vector{X: min(lo.X, p.X), Y: min(lo.Y, p.Y), Z: min(lo.Z, p.Z)}
		hi = r3.Vector{X: max(hi.X, p.X), Y: max(hi.Y, p.Y), Z: max(hi.Z, p.Z)}
	}
	return Distance(lo, hi)
}

// EpsilonFromDiagonal derives a model-wide colocation tolerance from a
// bounding-box diagonal, per the GLOSSARY's definition of ε. A factor of
// 1e-8 keeps the tolerance well below typical survey/import noise while
// scaling with model size.
func EpsilonFromDiagonal(diagonal float64) float64 {
	if diagonal <= 0 {
		return DefaultEpsilon
	}
	return diagonal * 1e-8
}

// NaN returns a quiet NaN, used to tombstone a merged-away vertex
// coordinate without shrinking its backing slice (vindex.mergeInto).
func NaN() float64 { return math.NaN() }

// IsNaNVector reports whether any component of v is NaN.
func IsNaNVector(v r3.Vector) bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z)
}

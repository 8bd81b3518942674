// Package geomath collects the small set of epsilon-aware geometric
// predicates shared by mesh, vindex, repair and validity: colocation
// ("within(ε)"), a model-wide epsilon derived from the bounding-box
// diagonal, and a few cell-measure helpers (length/area/volume/barycenter)
// over github.com/golang/geo/r3 points.
//
// Design Notes (spec §9): operator-based colocation tests ("==" on vec3)
// are replaced everywhere in this module by the explicit Within predicate
// defined here.
package geomath

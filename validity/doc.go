// Package validity implements the validity checker (component C7): a pure
// observer over a geomodel.GeoModel that produces a structured Report of
// invariant violations, never mutating the model itself.
//
// CheckMode's flag values are carried over one-for-one from
// ValidityCheckMode in original_source/include/ringmesh/geomodel/geomodel_validity.h
// (FiniteExtension = 1, Connectivity = 2, ... PolygonIntersections = 128,
// with Topology/Geometry/All as the same derived bitwise-OR combinations),
// so a debug dump produced by this package lines up bit-for-bit with the
// original tool's mode numbering.
package validity

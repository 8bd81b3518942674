// Package mesh implements the per-entity mesh storage of the data model
// (component C2): the vertex/edge/polygon/cell arrays owned by Lines,
// Surfaces and Regions, plus a generic attribute system that can bind an
// arbitrary typed column to any subelement (vertex, edge, polygon, cell) of
// any entity, with attribute lifetime tied to the owning entity.
//
// Every type here is a plain, lock-free value owned by exactly one entity in
// geomodel.GeoModel; concurrency control lives one layer up, in geomodel and
// vindex, matching how lvlath/core keeps Vertex/Edge simple and puts its
// RWMutex on the owning Graph instead.
//
// All point coordinates use github.com/golang/geo/r3.Vector.
package mesh

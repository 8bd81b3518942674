// Package closure implements the dependency closure (component C8): given
// a candidate set of mesh- and geological-entity ids to delete, it grows
// that set to the smallest removal-closed superset that keeps invariant 1
// (bidirectional relations, no dangling references) intact after deletion.
//
// Compute is a queue-driven fixpoint, grounded on the teacher's bfs
// package's walker/queue idiom (bfs.go: a worklist of items, each dequeued
// once and its consequences re-enqueued) rather than a recursive
// formulation, since the termination argument — the queue only ever grows
// by entities not yet in the accumulated set — is the same argument that
// makes a graph BFS terminate on a finite vertex set.
//
// One edge case is worth stating explicitly (grounded on
// GeoModelBuilderTopologyBase::get_dependent_entities in
// original_source/include/ringmesh/geomodel/geomodel_builder_topology.h):
// deleting an entity does not by itself delete entities that still have
// other, surviving incident boundaries — "if you remove something else,
// the incident boundaries may still exist" in the original's own words.
// Compute only ever adds an entity once ALL of its relevant incident
// references fall inside the growing set, never on a partial match.
package closure

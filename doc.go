// Package brep is a library for representing and manipulating a
// Boundary-Representation (B-Rep) geological model: a 3D volumetric domain
// whose interior is defined implicitly by its bounding surfaces.
//
// The model is a strongly typed, bidirectionally-linked cell complex of
// Corners, Lines, Surfaces and Regions, aggregated into geological
// Contacts, Interfaces and Layers. A shared vertex index unifies the
// duplicated vertices scattered across the mesh-carrying entities, and a
// builder/repair pipeline constructs, mutates and heals the graph from
// noisy input such as Gocad `.ml` files.
//
// Package layout (leaves first):
//
//	entity/    — C1: the (kind, index) id algebra and type-compatibility tables
//	mesh/      — C2: per-entity vertex/polygon/cell storage and attributes
//	geomodel/  — C3: the entity graph (owns all entities, parent/child/boundary links)
//	vindex/    — C4: the shared vertex index (canonical point set)
//	builder/   — C5: the only component permitted to mutate geomodel+vindex
//	repair/    — C6: idempotent healing passes
//	validity/  — C7: the read-only invariant checker
//	closure/   — C8: dependency-closure computation for safe deletion
//	ioformats/ — Gocad .ml load/save, plus .obj and .mesh exporters
//	cmd/geomconvert — the command-line converter
//
// This package is not a mesh generator, not a renderer, and does not compute
// implicit surfaces or conforming volume meshes; those are external
// collaborators that drive the Builder API.
package brep

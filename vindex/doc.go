// Package vindex implements the shared vertex index (component C4): the
// canonical, deduplicated list of 3-d points referenced by every mesh
// entity's VertexArray, plus the list of (entity, local-vertex-index)
// occurrences that map back to each canonical point.
//
// The index is built lazily: mutation methods mark it dirty and the next
// query rebuilds the internal kd-tree (internal/kdtree) from scratch. This
// mirrors how the teacher's core.Graph treats its adjacency caches -
// cheap, correct-by-reconstruction invalidation over fine-grained
// incremental update, appropriate because vertex merges are batch
// operations (repair passes, mesh import) rather than a steady trickle of
// single-point inserts.
package vindex

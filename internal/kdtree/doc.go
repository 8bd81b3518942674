// Package kdtree is a small balanced k-d tree over r3.Vector points, used
// by vindex to answer "nearest point within epsilon" queries in
// O(log n) rather than the O(n) linear scan a naive shared-vertex index
// would need. No third-party k-d tree library appears anywhere in the
// example corpus (see DESIGN.md), so this is a from-scratch, dependency-free
// implementation kept intentionally small: build-once-then-query, matching
// how vindex rebuilds it lazily on its dirty flag rather than supporting
// fine-grained incremental insertion/removal.
package kdtree

// Package builder is the sole mutation gateway onto geomodel.GeoModel and
// vindex.Index (component C5). It is layered the way the spec describes:
//
//   - Topology primitives (primitives.go): FindOrCreateCorner,
//     FindOrCreateLine, FindOrCreateContact and friends — idempotent
//     find-or-create constructors over the entity graph, the level at
//     which a Gocad importer or a hand-written test operates.
//   - Geometry setters (geometry.go): AppendLineVertex, AppendSurfacePolygon,
//     SetRegionCells — thin, validated wrappers over mesh.* construction
//     that also keep the shared vertex index (vindex.Index) in sync.
//   - Closure operations (closure_ops.go): BuildContacts, BuildInterfaces,
//     BuildLayers, EndModel, CopyMacroTopology — compound operations that
//     derive or copy whole swaths of the graph at once.
//
// Every exported method here takes and returns the same *geomodel.GeoModel
// (with its companion *vindex.Index); nothing here synthesizes its own
// deletion-closure logic, as that belongs to package closure (C8).
//
// Error policy follows the teacher's builder package: sentinel errors only,
// never stringified parameters in a sentinel's own message; context is
// attached at the call site via buildErrorf, which wraps a method token
// (MethodX) around the sentinel so callers can still errors.Is against it.
package builder

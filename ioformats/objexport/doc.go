// Package objexport writes Wavefront .obj files for the Surface meshes of
// a geomodel.GeoModel (SPEC_FULL.md §6.2). Export is read-only: it walks
// frozen mesh.PolygonMesh accessors and never drives the builder API,
// matching gocad.Save's ctx/io.Writer shape but without any mutation
// path, since .obj carries no topology or geological metadata to import
// back.
package objexport

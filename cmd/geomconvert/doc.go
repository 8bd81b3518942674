// Command geomconvert converts between the geomodel package's Gocad .ml
// and Medit .mesh file formats and optionally
// runs the repair and validity pipelines on the loaded model before
// writing it back out (SPEC_FULL.md §6.5).
//
// Usage:
//
//	geomconvert --in:model model.ml --out:mesh model.mesh
//	geomconvert --config geomconvert.yaml --in:model model.ml --out:model repaired.ml
package main

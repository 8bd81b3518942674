// Package meshexport writes Medit .mesh files (INRIA's tetrahedral/surface
// mesh interchange format) and, with LoadInto, reads a volume mesh back
// onto an existing model. Its writers back two consumers: ad hoc
// Region/Surface export (SPEC_FULL.md §6.2) and the validity package's per-violation
// debug artifacts (SPEC_FULL.md §6.4), which each render a single flagged
// entity's mesh as "<invariant>_<id>.mesh" for inspection in a Medit-
// compatible viewer.
package meshexport

// Package gocad implements Load and Save for the Gocad .ml structural
// model format (spec.md §6): the primary import/export format for a
// geomodel.GeoModel. Load builds the model only through the builder API;
// Save only reads the model through geomodel's accessors and never
// mutates it (see SPEC_FULL.md §6.2).
//
// The section grammar, in order: a header block, a coordinate-system
// block, one TSURF line per Interface, one TFACE declaration per Surface
// (geological feature, parent Interface name, three key vertex
// coordinates), REGION blocks (signed, one-based Surface indices
// terminated by 0), LAYER blocks (Region indices terminated by 0), an END
// marker, then one mesh block per Surface: GEOLOGICAL_FEATURE, one-based
// VRTX lines, TRGL triangles, BSTONE corner markers, and BORDER lines
// delimiting the Surface's bounding Lines.
package gocad

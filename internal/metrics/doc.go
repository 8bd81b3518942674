// Package metrics exposes Prometheus counters and histograms for the
// operations SPEC_FULL.md identifies as worth observing in a long-running
// conversion/validation service: conversions, repair passes, and validity
// checks. cmd/geomconvert creates and registers a Collector per run with
// New; library callers that embed this module directly may ignore the
// package entirely, since every method on a nil *Collector is a no-op.
package metrics

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector holds every metric this module records. A nil *Collector is
// safe to call methods on (all become no-ops), so packages that accept
// one as an optional dependency don't need a separate disabled flag.
type Collector struct {
	conversions      *prometheus.CounterVec
	repairActions    *prometheus.CounterVec
	validityRuns     *prometheus.CounterVec
	validityDuration prometheus.Histogram
}

// New builds a Collector and registers its metrics against reg.
func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "geomconvert",
			Name:      "conversions_total",
			Help:      "Count of format conversions, labeled by source and destination format and outcome.",
		}, []string{"from", "to", "outcome"}),
		repairActions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "geomconvert",
			Name:      "repair_actions_total",
			Help:      "Count of individual repairs applied, labeled by kind.",
		}, []string{"kind"}),
		validityRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "geomconvert",
			Name:      "validity_violations_total",
			Help:      "Count of validity violations found, labeled by check.",
		}, []string{"check"}),
		validityDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "geomconvert",
			Name:      "validity_check_duration_seconds",
			Help:      "Wall-clock duration of a single validity.Check call.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(c.conversions, c.repairActions, c.validityRuns, c.validityDuration)
	return c
}

// ObserveConversion records one format conversion attempt.
func (c *Collector) ObserveConversion(from, to, outcome string) {
	if c == nil {
		return
	}
	c.conversions.WithLabelValues(from, to, outcome).Inc()
}

// ObserveRepair records n repairs of the given kind having been applied.
func (c *Collector) ObserveRepair(kind string, n int) {
	if c == nil || n <= 0 {
		return
	}
	c.repairActions.WithLabelValues(kind).Add(float64(n))
}

// ObserveViolations records n violations found for the given check name.
func (c *Collector) ObserveViolations(check string, n int) {
	if c == nil || n <= 0 {
		return
	}
	c.validityRuns.WithLabelValues(check).Add(float64(n))
}

// ValidityDuration returns the histogram observer for timing Check calls,
// or nil if c is nil.
func (c *Collector) ValidityDuration() prometheus.Observer {
	if c == nil {
		return nil
	}
	return c.validityDuration
}

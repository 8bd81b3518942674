package validity

import "github.com/geomodel/brep/entity"

// Violation is one invariant failure found by Check.
type Violation struct {
	Check   CheckMode
	Entity  entity.ID
	Message string
}

// Report is the structured output of Check: per-check counters plus up to
// Config.ExampleLimit example ids per check, so a caller can report
// "37 non-manifold edges, e.g. Surface#12, Surface#40, ..." without
// materializing every single violation.
type Report struct {
	Counts   map[CheckMode]int
	Examples map[CheckMode][]Violation
	limit    int
}

func newReport(limit int) *Report {
	if limit <= 0 {
		limit = 5
	}
	return &Report{
		Counts:   make(map[CheckMode]int),
		Examples: make(map[CheckMode][]Violation),
		limit:    limit,
	}
}

func (r *Report) record(v Violation) {
	r.Counts[v.Check]++
	if len(r.Examples[v.Check]) < r.limit {
		r.Examples[v.Check] = append(r.Examples[v.Check], v)
	}
}

// Valid reports whether no violations were recorded for any check that
// ran.
func (r *Report) Valid() bool {
	for _, n := range r.Counts {
		if n > 0 {
			return false
		}
	}
	return true
}

// Total returns the sum of every check's violation count.
func (r *Report) Total() int {
	total := 0
	for _, n := range r.Counts {
		total += n
	}
	return total
}

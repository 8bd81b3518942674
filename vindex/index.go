package vindex

import (
	"sync"

	"github.com/geomodel/brep/internal/geomath"
	"github.com/geomodel/brep/internal/kdtree"
	"github.com/golang/geo/r3"
)

// Index is the shared vertex index for one GeoModel: the canonical point
// list plus, per canonical point, the list of entity-local occurrences
// that reference it.
type Index struct {
	mu          sync.RWMutex
	points      []r3.Vector
	occurrences [][]Occurrence
	epsilon     float64

	tree  *kdtree.Tree
	dirty bool
}

// New returns an empty index with the given vertex-merge tolerance.
func New(epsilon float64) *Index {
	return &Index{epsilon: epsilon, dirty: true}
}

// Epsilon returns the merge tolerance.
func (ix *Index) Epsilon() float64 { return ix.epsilon }

// NbPoints returns the number of canonical points.
func (ix *Index) NbPoints() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.points)
}

// PointCoords returns the coordinates of canonical point c.
func (ix *Index) PointCoords(c uint32) (r3.Vector, error) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	if int(c) >= len(ix.points) {
		return r3.Vector{}, ErrCanonicalNotFound
	}
	return ix.points[c], nil
}

// Occurrences returns the occurrences attached to canonical point c.
func (ix *Index) Occurrences(c uint32) ([]Occurrence, error) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	if int(c) >= len(ix.points) {
		return nil, ErrCanonicalNotFound
	}
	out := make([]Occurrence, len(ix.occurrences[c]))
	copy(out, ix.occurrences[c])
	return out, nil
}

// ensureTree rebuilds the kd-tree if the dirty flag is set. Caller must
// hold ix.mu for writing (rebuild mutates ix.tree/ix.dirty).
//
// Tombstoned points (mergeInto's NaN coordinates) are excluded from the
// tree entirely rather than merely left for NearestWithin to reject on
// distance: a NaN split point makes kdtree's near/far pruning undefined
// (every comparison against NaN is false), which can discard the subtree
// holding the real nearest neighbor instead of just the tombstone itself.
func (ix *Index) ensureTree() {
	if !ix.dirty {
		return
	}
	live := make([]r3.Vector, 0, len(ix.points))
	liveIDs := make([]uint32, 0, len(ix.points))
	for i, p := range ix.points {
		if !geomath.IsNaNVector(p) {
			live = append(live, p)
			liveIDs = append(liveIDs, uint32(i))
		}
	}
	ix.tree = kdtree.Build(live, liveIDs)
	ix.dirty = false
}

// Lookup returns the canonical id of the point nearest p within the
// index's epsilon, if any.
func (ix *Index) Lookup(p r3.Vector) (uint32, bool) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.ensureTree()
	id, _, ok := ix.tree.NearestWithin(p, ix.epsilon)
	return id, ok
}

// AddPoint inserts p as a brand-new canonical point (no dedup check
// against existing points — callers that want dedup must call Lookup
// first, matching the explicit "find-or-create" two-step used throughout
// builder) and returns its canonical id.
func (ix *Index) AddPoint(p r3.Vector) uint32 {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	id := uint32(len(ix.points))
	ix.points = append(ix.points, p)
	ix.occurrences = append(ix.occurrences, nil)
	ix.dirty = true
	return id
}

// FindOrCreate returns the canonical id of the existing point within
// epsilon of p, or creates a new one.
func (ix *Index) FindOrCreate(p r3.Vector) uint32 {
	if id, ok := ix.Lookup(p); ok {
		return id
	}
	return ix.AddPoint(p)
}

// AttachOccurrence records that occ references canonical point c.
func (ix *Index) AttachOccurrence(c uint32, occ Occurrence) error {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	if int(c) >= len(ix.points) {
		return ErrCanonicalNotFound
	}
	ix.occurrences[c] = append(ix.occurrences[c], occ)
	return nil
}

// Detach removes occ from canonical point c's occurrence list.
func (ix *Index) Detach(c uint32, occ Occurrence) error {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	if int(c) >= len(ix.points) {
		return ErrCanonicalNotFound
	}
	list := ix.occurrences[c]
	for i, o := range list {
		if o == occ {
			ix.occurrences[c] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return ErrOccurrenceNotFound
}

// UpdatePoint moves canonical point c to newCoord. If newCoord now falls
// within epsilon of a different canonical point, the two are merged (c's
// occurrences move onto the surviving point and c becomes a tombstone,
// see mergeInto) and the survivor's id is returned; otherwise c's own id
// is returned unchanged.
func (ix *Index) UpdatePoint(c uint32, newCoord r3.Vector) (uint32, error) {
	ix.mu.Lock()
	if int(c) >= len(ix.points) {
		ix.mu.Unlock()
		return 0, ErrCanonicalNotFound
	}
	ix.points[c] = newCoord
	ix.dirty = true
	ix.ensureTree()
	target, found := c, false
	for _, j := range ix.tree.RangeWithin(newCoord, ix.epsilon) {
		if j != c {
			target, found = j, true
			break
		}
	}
	ix.mu.Unlock()

	if !found {
		return c, nil
	}
	return ix.mergeInto(c, target)
}

// mergeInto moves all of src's occurrences onto dst and marks src's point
// a tombstone (NaN coordinates, empty occurrence list) so its canonical id
// stays stable for anyone still holding it, but it is skipped by
// MergeColocated and left out of the kd-tree that lookups search (see
// ensureTree).
func (ix *Index) mergeInto(src, dst uint32) (uint32, error) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	if int(src) >= len(ix.points) || int(dst) >= len(ix.points) {
		return 0, ErrCanonicalNotFound
	}
	ix.occurrences[dst] = append(ix.occurrences[dst], ix.occurrences[src]...)
	ix.occurrences[src] = nil
	ix.points[src] = r3.Vector{X: geomath.NaN(), Y: geomath.NaN(), Z: geomath.NaN()}
	ix.dirty = true
	return dst, nil
}

// MergeColocated finds every pair of canonical points within epsilon of
// each other and merges them. It returns the number of merges performed.
// This is the batch counterpart of UpdatePoint's incremental
// merge-on-move, used by repair.Run(ColocatedVertices).
//
// Candidate pairs are found via a throwaway kd-tree range query per point
// (RangeWithin) rather than an all-pairs scan, but the resulting edge set —
// and therefore the union-find components it produces — is identical to
// scanning every (i, j) pair and testing geomath.Within: RangeWithin(pts[i],
// eps) returns exactly the points within eps of pts[i], the same predicate
// geomath.Within tests, just answered with tree pruning instead of a linear
// scan.
func (ix *Index) MergeColocated() int {
	ix.mu.Lock()
	n := len(ix.points)
	pts := make([]r3.Vector, n)
	copy(pts, ix.points)
	eps := ix.epsilon
	ix.mu.Unlock()

	live := make([]r3.Vector, 0, n)
	liveIDs := make([]uint32, 0, n)
	for i, p := range pts {
		if !geomath.IsNaNVector(p) {
			live = append(live, p)
			liveIDs = append(liveIDs, uint32(i))
		}
	}
	tree := kdtree.Build(live, liveIDs)

	merged := 0
	parent := make([]uint32, n)
	for i := range parent {
		parent[i] = uint32(i)
	}
	var find func(uint32) uint32
	find = func(x uint32) uint32 {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}

	for _, i := range liveIDs {
		for _, j := range tree.RangeWithin(pts[i], eps) {
			if j == i || find(i) == find(j) {
				continue
			}
			parent[find(j)] = find(i)
		}
	}

	for i := 0; i < n; i++ {
		root := find(uint32(i))
		if root != uint32(i) {
			if _, err := ix.mergeInto(uint32(i), root); err == nil {
				merged++
			}
		}
	}
	return merged
}

// EraseVertices removes every canonical point i for which mask[i] is
// true, compacting the remaining points and occurrence lists and
// returning an old-id -> new-id map (erased points are absent from the
// map). len(mask) must equal NbPoints.
func (ix *Index) EraseVertices(mask []bool) (map[uint32]uint32, error) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	if len(mask) != len(ix.points) {
		return nil, ErrNonMonotoneMask
	}

	remap := make(map[uint32]uint32, len(ix.points))
	var newPoints []r3.Vector
	var newOcc [][]Occurrence
	for i, erase := range mask {
		if erase {
			continue
		}
		remap[uint32(i)] = uint32(len(newPoints))
		newPoints = append(newPoints, ix.points[i])
		newOcc = append(newOcc, ix.occurrences[i])
	}
	ix.points = newPoints
	ix.occurrences = newOcc
	ix.dirty = true
	return remap, nil
}

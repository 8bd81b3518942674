package kdtree

import (
	"sort"

	"github.com/golang/geo/r3"
)

// Tree is an immutable, balanced 3-d k-d tree over a fixed point set.
// Build it once from the current point set; mutate the source and call
// Build again to refresh it.
type Tree struct {
	nodes []node
	root  int
}

type node struct {
	point       r3.Vector
	id          uint32
	axis        int
	left, right int // -1 if absent
}

type indexedPoint struct {
	point r3.Vector
	id    uint32
}

// Build constructs a balanced tree from points, tagging each with its
// caller-supplied id (typically a vertex array index) so queries can
// report which point matched without a separate lookup table.
func Build(points []r3.Vector, ids []uint32) *Tree {
	items := make([]indexedPoint, len(points))
	for i, p := range points {
		items[i] = indexedPoint{point: p, id: ids[i]}
	}
	t := &Tree{nodes: make([]node, 0, len(items))}
	t.root = t.build(items, 0)
	return t
}

func (t *Tree) build(items []indexedPoint, depth int) int {
	if len(items) == 0 {
		return -1
	}
	axis := depth % 3
	sort.Slice(items, func(i, j int) bool {
		return coord(items[i].point, axis) < coord(items[j].point, axis)
	})
	mid := len(items) / 2
	idx := len(t.nodes)
	t.nodes = append(t.nodes, node{point: items[mid].point, id: items[mid].id, axis: axis, left: -1, right: -1})
	left := t.build(items[:mid], depth+1)
	right := t.build(items[mid+1:], depth+1)
	t.nodes[idx].left = left
	t.nodes[idx].right = right
	return idx
}

func coord(p r3.Vector, axis int) float64 {
	switch axis {
	case 0:
		return p.X
	case 1:
		return p.Y
	default:
		return p.Z
	}
}

// NearestWithin returns the id and point of the nearest neighbour to
// query within radius eps, and whether one was found. Ties are broken in
// favour of whichever candidate the traversal visits last.
func (t *Tree) NearestWithin(query r3.Vector, eps float64) (id uint32, point r3.Vector, ok bool) {
	if t.root < 0 {
		return 0, r3.Vector{}, false
	}
	bestDist := eps
	bestIdx := -1
	t.search(t.root, query, &bestDist, &bestIdx)
	if bestIdx < 0 {
		return 0, r3.Vector{}, false
	}
	n := t.nodes[bestIdx]
	return n.id, n.point, true
}

func (t *Tree) search(idx int, query r3.Vector, bestDist *float64, bestIdx *int) {
	if idx < 0 {
		return
	}
	n := &t.nodes[idx]
	d := query.Sub(n.point).Norm()
	if d <= *bestDist {
		*bestDist = d
		*bestIdx = idx
	}
	diff := coord(query, n.axis) - coord(n.point, n.axis)
	near, far := n.left, n.right
	if diff > 0 {
		near, far = n.right, n.left
	}
	t.search(near, query, bestDist, bestIdx)
	if abs(diff) <= *bestDist {
		t.search(far, query, bestDist, bestIdx)
	}
}

// RangeWithin returns the ids of every point within radius eps of query
// (query's own point included, if it is in the tree). Used by batch
// colocation merges that need every neighbor, not just the closest one.
func (t *Tree) RangeWithin(query r3.Vector, eps float64) []uint32 {
	var out []uint32
	t.rangeSearch(t.root, query, eps, &out)
	return out
}

func (t *Tree) rangeSearch(idx int, query r3.Vector, eps float64, out *[]uint32) {
	if idx < 0 {
		return
	}
	n := &t.nodes[idx]
	if query.Sub(n.point).Norm() <= eps {
		*out = append(*out, n.id)
	}
	diff := coord(query, n.axis) - coord(n.point, n.axis)
	near, far := n.left, n.right
	if diff > 0 {
		near, far = n.right, n.left
	}
	t.rangeSearch(near, query, eps, out)
	if abs(diff) <= eps {
		t.rangeSearch(far, query, eps, out)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

package entity

import "sort"

// Set is an insertion-idempotent, deterministically-orderable collection of
// ids, used by the repair pass (C6) and the dependency-closure pass (C8) to
// keep their working sets free of duplicates while still supporting stable,
// reproducible iteration — the two testable properties of §8 (monotone
// closure, idempotent repair) depend on that determinism.
type Set struct {
	members map[ID]struct{}
}

// NewSet builds a Set from zero or more seed ids.
func NewSet(ids ...ID) *Set {
	s := &Set{members: make(map[ID]struct{}, len(ids))}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add inserts id, returning true if it was not already present.
func (s *Set) Add(id ID) bool {
	if _, ok := s.members[id]; ok {
		return false
	}
	s.members[id] = struct{}{}
	return true
}

// Has reports whether id is a member.
func (s *Set) Has(id ID) bool {
	_, ok := s.members[id]
	return ok
}

// Remove deletes id, returning true if it was present.
func (s *Set) Remove(id ID) bool {
	if _, ok := s.members[id]; !ok {
		return false
	}
	delete(s.members, id)
	return true
}

// Len returns the number of members.
func (s *Set) Len() int { return len(s.members) }

// Sorted returns the members in (Kind, Index) order.
func (s *Set) Sorted() []ID {
	out := make([]ID, 0, len(s.members))
	for id := range s.members {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return Less(out[i], out[j]) })
	return out
}

// Union adds every member of other into s and reports whether s grew.
func (s *Set) Union(other *Set) bool {
	grew := false
	for id := range other.members {
		if s.Add(id) {
			grew = true
		}
	}
	return grew
}

// OfKind returns the sorted subset of members with the given kind.
func (s *Set) OfKind(k Kind) []ID {
	out := make([]ID, 0)
	for id := range s.members {
		if id.Kind == k {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return Less(out[i], out[j]) })
	return out
}

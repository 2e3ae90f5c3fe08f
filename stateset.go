package nfa

import "slices"

// StateSet is a mutable set of state identifiers. It backs the
// destination sets of the transition table and the adjacency views.
type StateSet map[int]struct{}

// NewStateSet returns a set containing the given members.
func NewStateSet(members ...int) StateSet {
	s := make(StateSet, len(members))
	for _, m := range members {
		s[m] = struct{}{}
	}
	return s
}

func (s StateSet) Add(state int) {
	s[state] = struct{}{}
}

func (s StateSet) Contains(state int) bool {
	_, ok := s[state]
	return ok
}

// Discard removes state from the set; removing an absent state is a no-op.
func (s StateSet) Discard(state int) {
	delete(s, state)
}

func (s StateSet) Len() int {
	return len(s)
}

// Union inserts every member of other into s.
func (s StateSet) Union(other StateSet) {
	for state := range other {
		s[state] = struct{}{}
	}
}

// Sorted returns the members in ascending order.
func (s StateSet) Sorted() []int {
	keys := make([]int, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Clone returns an independent copy of the set.
func (s StateSet) Clone() StateSet {
	out := make(StateSet, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}

func sortInts(s []int) {
	slices.Sort(s)
}

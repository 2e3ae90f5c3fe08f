package nfa

import "github.com/bits-and-blooms/bitset"

// The adjacency views below are snapshots computed from the transition
// table at call time. They hold no reference back into the automaton;
// after any mutation a fresh view must be taken.

// Successors returns, for every state, the union over all symbols of its
// destination sets.
func (a *Nfa) Successors() map[int]StateSet {
	succ := make(map[int]StateSet, len(a.transitions))
	for s := range a.transitions {
		succ[s] = NewStateSet()
	}
	for p, rules := range a.transitions {
		for _, dests := range rules {
			succ[p].Union(dests)
		}
	}
	return succ
}

// Predecessors returns the inverse relation: for every state, the set of
// states with a one-step rule into it under any symbol.
func (a *Nfa) Predecessors() map[int]StateSet {
	pred := make(map[int]StateSet, len(a.transitions))
	for s := range a.transitions {
		pred[s] = NewStateSet()
	}
	for p, rules := range a.transitions {
		for _, dests := range rules {
			for q := range dests {
				pred[q].Add(p)
			}
		}
	}
	return pred
}

// StateDepth returns the BFS depth of every state reachable from the
// initial state: depth 0 is the initial state, depth k+1 the states first
// reached one step beyond depth k. States unreachable from the initial
// state have no entry. A state reachable along paths of several lengths
// gets the shortest one, since the frontier expands layer by layer and
// visited states are excluded from further expansion.
func (a *Nfa) StateDepth() map[int]int {
	depths := make(map[int]int, len(a.transitions))
	if !a.HasState(a.initial) {
		return depths
	}
	succ := a.Successors()
	visited := bitset.New(uint(len(a.transitions)))

	frontier := NewStateSet(a.initial)
	visited.Set(uint(a.initial))
	depth := 0
	for frontier.Len() > 0 {
		next := NewStateSet()
		for s := range frontier {
			depths[s] = depth
			for q := range succ[s] {
				if !visited.Test(uint(q)) {
					visited.Set(uint(q))
					next.Add(q)
				}
			}
		}
		frontier = next
		depth++
	}
	return depths
}

// reachable returns the states reachable from the initial state in BFS
// discovery order, expanding each frontier in ascending state order so
// the result is deterministic.
func (a *Nfa) reachable() []int {
	if !a.HasState(a.initial) {
		return nil
	}
	succ := a.Successors()
	order := make([]int, 0, len(a.transitions))
	visited := bitset.New(uint(len(a.transitions)))

	queue := []int{a.initial}
	visited.Set(uint(a.initial))
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		order = append(order, s)
		for _, q := range succ[s].Sorted() {
			if !visited.Test(uint(q)) {
				visited.Set(uint(q))
				queue = append(queue, q)
			}
		}
	}
	return order
}

package nfa

// ForwardLanguageEquivalence is a bounded bisimulation check between two
// states. At depth 0 every pair is equivalent (nothing is distinguished
// beyond the horizon). Otherwise the states must have rules on exactly
// the same symbols, and for every shared symbol each destination of p
// must have some destination of q that is equivalent at depth-1. A single
// call checks destinations of p against destinations of q only; use
// ForwardLanguageEquivalenceGroups for the symmetric relation.
//
// Each call unrolls up to depth levels of the transition table with no
// memoization, so cost grows with the branching factor; choose a depth
// appropriate to the automaton size.
func (a *Nfa) ForwardLanguageEquivalence(p, q, depth int) bool {
	if depth == 0 {
		return true
	}

	prules := a.transitions[p]
	qrules := a.transitions[q]
	if len(prules) != len(qrules) {
		return false
	}

	for symbol, pdests := range prules {
		qdests, ok := qrules[symbol]
		if !ok {
			return false
		}
		for p1 := range pdests {
			matched := false
			for q1 := range qdests {
				if a.ForwardLanguageEquivalence(p1, q1, depth-1) {
					matched = true
					break
				}
			}
			if !matched {
				return false
			}
		}
	}
	return true
}

// ForwardLanguageEquivalenceGroups returns, for every state in the dense
// range [0, StateCount()), the set of states equivalent to it at the
// given depth, itself included. Pairs are checked in both directions and
// only kept when both hold, so the resulting relation is symmetric. The
// automaton must have been densely renumbered (RemoveUnreachable) first.
// O(n²) pairwise checks, each bounded by depth; meant for small automata.
func (a *Nfa) ForwardLanguageEquivalenceGroups(depth int) map[int]StateSet {
	n := a.StateCount()
	groups := make(map[int]StateSet, n)
	for p := 0; p < n; p++ {
		groups[p] = NewStateSet(p)
	}
	for p := 0; p < n; p++ {
		for q := p + 1; q < n; q++ {
			if a.ForwardLanguageEquivalence(p, q, depth) &&
				a.ForwardLanguageEquivalence(q, p, depth) {
				groups[p].Add(q)
				groups[q].Add(p)
			}
		}
	}
	return groups
}

// ReduceEquivalent quotients the automaton by its depth-bounded
// equivalence groups: within each group every state is merged into the
// smallest member, then the automaton is renumbered. This is a heuristic
// approximation of minimization; bounded equivalence may merge states a
// full language check would keep apart, so callers trade precision for
// cost through the depth parameter. Starts with a RemoveUnreachable pass,
// since the grouping requires dense state numbering.
func (a *Nfa) ReduceEquivalent(depth int) {
	a.RemoveUnreachable()

	n := a.StateCount()
	groups := a.ForwardLanguageEquivalenceGroups(depth)

	merged := NewStateSet()
	for p := 0; p < n; p++ {
		if merged.Contains(p) {
			continue
		}
		for _, q := range groups[p].Sorted() {
			if q <= p || merged.Contains(q) {
				continue
			}
			a.MergeStates(p, q)
			merged.Add(q)
		}
	}

	a.RemoveUnreachable()
}

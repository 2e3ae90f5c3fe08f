package nfa

import "github.com/bits-and-blooms/bitset"

// RemoveUnreachable drops every state not reachable from the initial
// state, together with all rules naming a dropped state, and renumbers
// the survivors to the dense range [0, n) in BFS discovery order. The
// renumbered table replaces the old one in place. Idempotent up to the
// renumbering: a second run rebuilds an isomorphic automaton.
func (a *Nfa) RemoveUnreachable() {
	order := a.reachable()

	stateMap := make(map[int]int, len(order))
	for i, s := range order {
		stateMap[s] = i
	}

	transitions := make(map[int]map[int]StateSet, len(order))
	for old, rules := range a.transitions {
		p, ok := stateMap[old]
		if !ok {
			continue
		}
		newRules := make(map[int]StateSet, len(rules))
		for symbol, dests := range rules {
			newDests := NewStateSet()
			for q := range dests {
				if nq, ok := stateMap[q]; ok {
					newDests.Add(nq)
				}
			}
			if newDests.Len() > 0 {
				newRules[symbol] = newDests
			}
		}
		transitions[p] = newRules
	}

	finals := bitset.New(uint(len(order)))
	for s, ok := a.finals.NextSet(0); ok; s, ok = a.finals.NextSet(s + 1) {
		if nf, ok := stateMap[int(s)]; ok {
			finals.Set(uint(nf))
		}
	}

	a.build(stateMap[a.initial], transitions, finals)
}

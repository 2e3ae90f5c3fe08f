package nfa

import "github.com/bits-and-blooms/bitset"

// MergeStates folds q into p: q's outgoing rules are unioned into p's,
// every rule pointing at q is redirected to p, q's finality transfers to
// p, and q is deleted from the table. This is a mechanical quotient step;
// the caller is responsible for only merging states it knows to be
// language-equivalent.
func (a *Nfa) MergeStates(p, q int) {
	if p == q || !a.HasState(q) {
		return
	}
	a.AddState(p)

	// Union q's outgoing rules into p first, so a self-loop on q becomes
	// a rule from p back to q and gets redirected below like any other.
	for symbol, dests := range a.transitions[q] {
		into, ok := a.transitions[p][symbol]
		if !ok {
			into = NewStateSet()
			a.transitions[p][symbol] = into
		}
		into.Union(dests)
	}

	pred := a.Predecessors()
	for r := range pred[q] {
		for _, dests := range a.transitions[r] {
			if dests.Contains(q) {
				dests.Discard(q)
				dests.Add(p)
			}
		}
	}

	if a.finals.Test(uint(q)) {
		a.finals.Clear(uint(q))
		a.finals.Set(uint(p))
	}

	delete(a.transitions, q)
}

// HasPathOverAlphabet reports whether p behaves as a deterministic total
// transition to q: on every one of the 256 symbols, p has a rule to q and
// no other destination.
func (a *Nfa) HasPathOverAlphabet(p, q int) bool {
	covered := bitset.New(AlphabetSize)
	for symbol, dests := range a.transitions[p] {
		if !dests.Contains(q) || dests.Len() != 1 {
			return false
		}
		covered.Set(uint(symbol))
	}
	return covered.Count() == AlphabetSize
}

// RemoveSameStates collapses redundant accepting-sink-like states: direct
// successors s of the initial state where the initial state steps to s on
// every symbol with no other destination, and s carries an identical
// total self-loop. All such states are behaviorally interchangeable, so
// they are folded into one representative. Rules from other predecessors
// into a collapsed state are discarded rather than redirected; the
// collapsed states are only entered through the initial state's total
// transition, which the representative already covers. Ends with a
// RemoveUnreachable pass, so the result is densely renumbered even when
// no candidates were found.
func (a *Nfa) RemoveSameStates() {
	succ := a.Successors()
	pred := a.Predecessors()

	same := NewStateSet()
	for s := range succ[a.initial] {
		if a.HasPathOverAlphabet(a.initial, s) && a.HasPathOverAlphabet(s, s) {
			same.Add(s)
		}
	}

	if same.Len() > 1 {
		candidates := same.Sorted()
		keep := candidates[0]
		for _, s := range candidates[1:] {
			for r := range pred[s] {
				for _, dests := range a.transitions[r] {
					dests.Discard(s)
				}
			}
			for symbol, dests := range a.transitions[s] {
				for q := range dests {
					// Self-loop rules move onto the representative.
					if q == s {
						q = keep
					}
					// Symbols already in the table are valid.
					_ = a.AddRule(keep, q, symbol)
				}
			}
		}
	}

	a.RemoveUnreachable()
}

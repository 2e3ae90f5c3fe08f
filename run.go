package nfa

// Accepts reports whether the automaton accepts the given byte string,
// simulating the frontier of states reachable from the initial state.
func (a *Nfa) Accepts(input []byte) bool {
	if !a.HasState(a.initial) {
		return false
	}

	frontier := NewStateSet(a.initial)
	for _, b := range input {
		next := NewStateSet()
		for s := range frontier {
			if dests, ok := a.transitions[s][int(b)]; ok {
				next.Union(dests)
			}
		}
		if next.Len() == 0 {
			return false
		}
		frontier = next
	}

	for s := range frontier {
		if a.finals.Test(uint(s)) {
			return true
		}
	}
	return false
}

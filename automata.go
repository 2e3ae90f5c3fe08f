package nfa

// Construction helpers for common automata.

// MakeEmpty returns an automaton with a single non-final initial state:
// it accepts no byte string.
func MakeEmpty() *Nfa {
	a := New()
	a.SetInitial(0)
	return a
}

// MakeEmptyString returns an automaton accepting only the empty string.
func MakeEmptyString() *Nfa {
	a := MakeEmpty()
	a.AddFinal(0)
	return a
}

// MakeAnyString returns an automaton accepting every byte string: a final
// initial state with a total self-loop.
func MakeAnyString() *Nfa {
	a := MakeEmptyString()
	a.AddSelfLoop(0)
	return a
}

// MakeString returns a chain automaton accepting exactly the given word.
func MakeString(word []byte) *Nfa {
	a := MakeEmpty()
	for i, b := range word {
		// Symbols are bytes, so AddRule cannot fail here.
		_ = a.AddRule(i, i+1, int(b))
	}
	a.AddFinal(len(word))
	return a
}

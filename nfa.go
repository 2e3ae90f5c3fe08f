// Package nfa manipulates nondeterministic finite automata over the
// 256-symbol byte alphabet. An Nfa is built incrementally with AddRule,
// SetInitial and AddFinal (states spring into existence when first
// referenced), queried through transient graph views (Successors,
// Predecessors, StateDepth) and shrunk in place by the reduction passes
// (RemoveUnreachable, MergeStates, RemoveSameStates, ReduceEquivalent).
// Views are snapshots of the table at the moment they are taken; after
// any mutation they must be recomputed.
package nfa

import (
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// MaxSymbol is the largest valid transition label. Rules are labeled by
// single bytes, so the alphabet is always [0, MaxSymbol].
const MaxSymbol = 0xff

// AlphabetSize is the number of distinct transition labels.
const AlphabetSize = MaxSymbol + 1

// ErrInvalidSymbol is returned by AddRule for a label outside [0, MaxSymbol].
var ErrInvalidSymbol = errors.New("symbol outside byte range")

// Nfa is a nondeterministic finite automaton: a transition table mapping
// state → symbol → set of destination states, one initial state and a set
// of final states. States are dense non-negative integers after
// RemoveUnreachable; before that they are whatever identifiers the caller
// (or the FA parser) used. Each Nfa is exclusively owned by its caller;
// nothing in this package shares state between instances.
type Nfa struct {
	// transitions holds the outgoing rules of every state. A state with no
	// outgoing rules is present with an empty inner map; absence of a
	// symbol key means no transition on that symbol.
	transitions map[int]map[int]StateSet

	initial int

	// finals tracks final states by id: bit s set means state s is final.
	finals *bitset.BitSet
}

// New returns an empty automaton with no states. The initial state is
// unset until SetInitial is called; callers that skip SetInitial get
// state 0 as the default initial state.
func New() *Nfa {
	return &Nfa{
		transitions: make(map[int]map[int]StateSet),
		finals:      bitset.New(2),
	}
}

// AddState inserts state s with no outgoing rules. Idempotent: adding a
// state that already exists leaves its rules untouched.
func (a *Nfa) AddState(s int) {
	if _, ok := a.transitions[s]; !ok {
		a.transitions[s] = make(map[int]StateSet)
	}
}

// HasState reports whether s is present in the transition table.
func (a *Nfa) HasState(s int) bool {
	_, ok := a.transitions[s]
	return ok
}

// AddRule adds the transition p --symbol--> q, creating p and q if they
// do not exist yet. For a symbol outside [0, MaxSymbol] it returns
// ErrInvalidSymbol and records no destination.
func (a *Nfa) AddRule(p, q, symbol int) error {
	a.AddState(p)
	a.AddState(q)
	if symbol < 0 || symbol > MaxSymbol {
		return fmt.Errorf("rule %d -> %d: %w: %d", p, q, ErrInvalidSymbol, symbol)
	}
	dests, ok := a.transitions[p][symbol]
	if !ok {
		dests = NewStateSet()
		a.transitions[p][symbol] = dests
	}
	dests.Add(q)
	return nil
}

// SetInitial records s as the sole initial state, creating it if needed.
// Last write wins.
func (a *Nfa) SetInitial(s int) {
	a.AddState(s)
	a.initial = s
}

// Initial returns the current initial state.
func (a *Nfa) Initial() int {
	return a.initial
}

// AddFinal marks s as a final state, creating it if needed.
func (a *Nfa) AddFinal(s int) {
	a.AddState(s)
	a.finals.Set(uint(s))
}

// IsFinal reports whether s is a final state.
func (a *Nfa) IsFinal(s int) bool {
	return a.finals.Test(uint(s))
}

// Finals returns the final states in ascending order.
func (a *Nfa) Finals() []int {
	out := make([]int, 0, a.finals.Count())
	for s, ok := a.finals.NextSet(0); ok; s, ok = a.finals.NextSet(s + 1) {
		out = append(out, int(s))
	}
	return out
}

// StateCount returns the number of states in the table.
func (a *Nfa) StateCount() int {
	return len(a.transitions)
}

// RuleCount returns the number of (source, destination, symbol) triples.
func (a *Nfa) RuleCount() int {
	count := 0
	for _, rules := range a.transitions {
		for _, dests := range rules {
			count += dests.Len()
		}
	}
	return count
}

// States returns all state identifiers in ascending order.
func (a *Nfa) States() []int {
	out := make([]int, 0, len(a.transitions))
	for s := range a.transitions {
		out = append(out, s)
	}
	sortInts(out)
	return out
}

// Rules calls fn for every (source, destination, symbol) triple, sources
// ascending, then symbols, then destinations.
func (a *Nfa) Rules(fn func(p, q, symbol int)) {
	for _, p := range a.States() {
		rules := a.transitions[p]
		symbols := make([]int, 0, len(rules))
		for symbol := range rules {
			symbols = append(symbols, symbol)
		}
		sortInts(symbols)
		for _, symbol := range symbols {
			for _, q := range rules[symbol].Sorted() {
				fn(p, q, symbol)
			}
		}
	}
}

// AddSelfLoop installs a total self-loop on s: for every symbol the only
// destination from s becomes s itself. Existing rules of s are replaced.
func (a *Nfa) AddSelfLoop(s int) {
	a.AddState(s)
	rules := make(map[int]StateSet, AlphabetSize)
	for symbol := 0; symbol <= MaxSymbol; symbol++ {
		rules[symbol] = NewStateSet(s)
	}
	a.transitions[s] = rules
}

// SelfLoopFinals installs a total self-loop on every final state, turning
// each into an accepting sink.
func (a *Nfa) SelfLoopFinals() {
	for s, ok := a.finals.NextSet(0); ok; s, ok = a.finals.NextSet(s + 1) {
		a.AddSelfLoop(int(s))
	}
}

// build replaces the automaton's whole internal state in one step. Trusted
// internal operation used by the reduction passes to install a renumbered
// result; callers must hand over a consistent table.
func (a *Nfa) build(initial int, transitions map[int]map[int]StateSet, finals *bitset.BitSet) {
	a.initial = initial
	a.transitions = transitions
	a.finals = finals
}

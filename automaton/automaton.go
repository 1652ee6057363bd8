// Package automaton models finite automata over a rune alphabet and
// decides acceptance of input strings.
//
// An Automaton is built incrementally (alphabet, transitions, start and
// final states) and can be queried at any point. Queries always reflect
// the current contents. There is no locking: callers sharing an automaton
// across goroutines must serialize access themselves.
package automaton

import (
	"fmt"

	"github.com/amp-labs/automaat/hashing"
	"github.com/amp-labs/automaat/set"
	"github.com/amp-labs/automaat/sortable"
)

// Automaton is a finite automaton with states of type S. It may be
// deterministic or not; Accept picks the matching simulation.
type Automaton[S sortable.Sortable[S]] struct {
	alphabet    *set.SortedSet[sortable.Rune]
	states      *set.SortedSet[S]
	startStates *set.SortedSet[S]
	finalStates *set.SortedSet[S]
	transitions set.Set[Transition[S]]

	// outgoing indexes transitions by the hash of their (From, Symbol).
	outgoing map[string][]Transition[S]
}

// New creates an automaton over the given symbols. With no symbols the
// alphabet is empty.
func New[S sortable.Sortable[S]](symbols ...rune) *Automaton[S] {
	a := &Automaton[S]{
		states:      set.NewSortedSet[S](),
		startStates: set.NewSortedSet[S](),
		finalStates: set.NewSortedSet[S](),
		transitions: set.NewSet[Transition[S]](hashing.Xxh3),
		outgoing:    make(map[string][]Transition[S]),
	}

	a.SetAlphabet(symbols...)

	return a
}

// SetAlphabet replaces the whole alphabet. Existing transitions are kept,
// even those using symbols that are no longer part of it.
func (a *Automaton[S]) SetAlphabet(symbols ...rune) {
	alphabet := set.NewSortedSet[sortable.Rune]()
	for _, symbol := range symbols {
		alphabet.Add(sortable.Rune(symbol))
	}

	a.alphabet = alphabet
}

// GetAlphabet returns the alphabet in ascending order.
func (a *Automaton[S]) GetAlphabet() []rune {
	return sortable.Runes(a.alphabet.Entries())
}

// AddTransition adds t to the transition relation and both of its
// endpoints to the states. Adding the same triple twice is a no-op.
// The symbol is not checked against the alphabet.
func (a *Automaton[S]) AddTransition(t Transition[S]) {
	a.states.Add(t.From)
	a.states.Add(t.To)

	exists, err := a.transitions.Contains(t)
	must(err)

	if exists {
		return
	}

	must(a.transitions.Add(t))

	key := originKey(t.From, t.Symbol)
	a.outgoing[key] = append(a.outgoing[key], t)
}

// AddTransitionOf is AddTransition(NewTransition(from, symbol, to)).
func (a *Automaton[S]) AddTransitionOf(from S, symbol rune, to S) {
	a.AddTransition(NewTransition(from, symbol, to))
}

// DefineAsStartState adds s to the states and marks it as a start state.
func (a *Automaton[S]) DefineAsStartState(s S) {
	a.states.Add(s)
	a.startStates.Add(s)
}

// DefineAsFinalState adds s to the states and marks it as final.
func (a *Automaton[S]) DefineAsFinalState(s S) {
	a.states.Add(s)
	a.finalStates.Add(s)
}

// GetToStates returns the targets of every transition leaving from on
// symbol, in ascending order. More than one target means the automaton
// is nondeterministic for that pair.
func (a *Automaton[S]) GetToStates(from S, symbol rune) []S {
	targets := set.NewSortedSet[S]()

	for _, t := range a.outgoing[originKey(from, symbol)] {
		if t.Symbol == symbol && t.From.Equals(from) {
			targets.Add(t.To)
		}
	}

	return targets.Entries()
}

// IsDfa reports whether every state has exactly one transition for every
// symbol of the alphabet.
//
// This is stricter than the textbook definition of determinism: missing
// transitions also make IsDfa false, so a partial but unambiguous
// automaton is treated as nondeterministic. Accept still answers
// correctly for such automata through the nondeterministic simulation.
func (a *Automaton[S]) IsDfa() bool {
	for state := range a.states.Seq() {
		for symbol := range a.alphabet.Seq() {
			if len(a.GetToStates(state, rune(symbol))) != 1 {
				return false
			}
		}
	}

	return true
}

// States returns every known state in ascending order.
func (a *Automaton[S]) States() []S {
	return a.states.Entries()
}

// StartStates returns the start states in ascending order.
func (a *Automaton[S]) StartStates() []S {
	return a.startStates.Entries()
}

// FinalStates returns the final states in ascending order.
func (a *Automaton[S]) FinalStates() []S {
	return a.finalStates.Entries()
}

func (a *Automaton[S]) IsStartState(s S) bool {
	return a.startStates.Contains(s)
}

func (a *Automaton[S]) IsFinalState(s S) bool {
	return a.finalStates.Contains(s)
}

// Transitions returns the transition relation ordered by From, Symbol, To.
func (a *Automaton[S]) Transitions() []Transition[S] {
	return set.NewSortedSet(a.transitions.Entries()...).Entries()
}

func originKey[S sortable.Sortable[S]](from S, symbol rune) string {
	key, err := hashing.Xxh3(origin[S]{from: from, symbol: symbol})
	must(err)

	return key
}

// must panics on hashing errors. Xxh3 never fails to absorb a write, so
// reaching the panic means a state type broke fmt.
func must(err error) {
	if err != nil {
		panic(fmt.Sprintf("automaton: hashing transition: %v", err))
	}
}

package automaton

import (
	"context"

	"github.com/amp-labs/automaat/logger"
	"github.com/amp-labs/automaat/set"
	"github.com/amp-labs/automaat/sortable"
)

// Accept reports whether the automaton accepts input, one rune per symbol.
func (a *Automaton[S]) Accept(input string) bool {
	return a.AcceptContext(context.Background(), input)
}

// AcceptContext is Accept with a context used for logging.
//
// Input containing a rune outside the alphabet is rejected without
// simulating anything. Otherwise automata passing IsDfa are walked
// deterministically and all others through subset simulation.
func (a *Automaton[S]) AcceptContext(ctx context.Context, input string) bool {
	symbols := []rune(input)
	log := logger.Get(ctx)

	for pos, symbol := range symbols {
		if !a.alphabet.Contains(sortable.Rune(symbol)) {
			log.Debug("input rejected, symbol outside alphabet",
				"symbol", string(symbol), "position", pos)
			recordAccept(modeAlphabet, false)

			return false
		}
	}

	if a.IsDfa() {
		accepted := a.acceptDfa(symbols)
		log.Debug("deterministic simulation finished", "input", input, "accepted", accepted)
		recordAccept(modeDfa, accepted)

		return accepted
	}

	accepted := a.acceptNfa(symbols)
	log.Debug("nondeterministic simulation finished", "input", input, "accepted", accepted)
	recordAccept(modeNfa, accepted)

	return accepted
}

// acceptDfa walks the input once from every start state and accepts if
// any walk ends in a final state.
func (a *Automaton[S]) acceptDfa(symbols []rune) bool {
	for start := range a.startStates.Seq() {
		if a.finalStates.Contains(a.walk(start, symbols)) {
			return true
		}
	}

	return false
}

// walk follows the unique transition for each symbol. A missing transition
// consumes the symbol and stays put; IsDfa rules that case out, but the
// walk does not rely on it.
func (a *Automaton[S]) walk(current S, symbols []rune) S {
	for _, symbol := range symbols {
		targets := a.GetToStates(current, symbol)
		if len(targets) == 0 {
			continue
		}

		current = targets[0]
	}

	return current
}

// acceptNfa tracks the set of reachable states symbol by symbol. States
// without a transition for the symbol drop out.
func (a *Automaton[S]) acceptNfa(symbols []rune) bool {
	current := a.startStates.Clone()

	for _, symbol := range symbols {
		next := set.NewSortedSet[S]()

		for state := range current.Seq() {
			next.AddAll(a.GetToStates(state, symbol)...)
		}

		if next.IsEmpty() {
			return false
		}

		current = next
	}

	return current.Intersects(a.finalStates)
}

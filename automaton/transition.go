package automaton

import (
	"fmt"
	"hash"

	"github.com/amp-labs/automaat/sortable"
)

// Transition is one (From, Symbol, To) triple of the transition relation.
type Transition[S sortable.Sortable[S]] struct {
	From   S
	Symbol rune
	To     S
}

// NewTransition creates a transition from -> to on symbol.
func NewTransition[S sortable.Sortable[S]](from S, symbol rune, to S) Transition[S] {
	return Transition[S]{From: from, Symbol: symbol, To: to}
}

// Equals is true when all three components match.
func (t Transition[S]) Equals(other Transition[S]) bool {
	return t.From.Equals(other.From) && t.Symbol == other.Symbol && t.To.Equals(other.To)
}

// LessThan orders by From, then Symbol, then To.
func (t Transition[S]) LessThan(other Transition[S]) bool {
	if !t.From.Equals(other.From) {
		return t.From.LessThan(other.From)
	}

	if t.Symbol != other.Symbol {
		return t.Symbol < other.Symbol
	}

	return t.To.LessThan(other.To)
}

// UpdateHash writes the %v rendering of the triple, separated by unit
// separators so that ("a", "bc") and ("ab", "c") hash differently.
func (t Transition[S]) UpdateHash(h hash.Hash) error {
	_, err := fmt.Fprintf(h, "%v\x1f%d\x1f%v", t.From, t.Symbol, t.To)

	return err
}

func (t Transition[S]) String() string {
	return fmt.Sprintf("(%v, %q) --> %v", t.From, t.Symbol, t.To)
}

// origin is the (From, Symbol) half of a transition, the key of the
// outgoing index.
type origin[S sortable.Sortable[S]] struct {
	from   S
	symbol rune
}

func (o origin[S]) UpdateHash(h hash.Hash) error {
	_, err := fmt.Fprintf(h, "%v\x1f%d", o.from, o.symbol)

	return err
}

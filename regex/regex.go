// Package regex models regular expressions as persistent expression trees
// and enumerates a bounded sample of the language they denote.
//
// Trees are built only through combinators:
//
//	ab := regex.Literal("a").Or(regex.Literal("b"))
//	e := ab.Star().Dot(regex.Literal("c"))
//	e.Language(4) // "c", "ac", "bc", ...
//
// Every combinator returns a new node and leaves its operands untouched,
// so subtrees can be shared freely and read from several goroutines.
package regex

import (
	"context"
	"fmt"

	"github.com/amp-labs/automaat/logger"
	"github.com/amp-labs/automaat/set"
	"github.com/amp-labs/automaat/sortable"
)

// Operator is the kind of an expression node.
type Operator int

const (
	// One is a leaf matching its terminal string exactly once.
	One Operator = iota
	// Plus is one or more repetitions of the left operand.
	Plus
	// Star is zero or more repetitions of the left operand.
	Star
	// Or is the union of both operands.
	Or
	// Dot is the concatenation of both operands.
	Dot
)

func (o Operator) String() string {
	switch o {
	case One:
		return "ONE"
	case Plus:
		return "PLUS"
	case Star:
		return "STAR"
	case Or:
		return "OR"
	case Dot:
		return "DOT"
	default:
		return fmt.Sprintf("Operator(%d)", int(o))
	}
}

// Expression is an immutable node of a regular expression tree.
type Expression struct {
	operator  Operator
	terminals string
	left      *Expression
	right     *Expression
}

// Literal creates a leaf matching exactly s.
func Literal(s string) *Expression {
	return &Expression{operator: One, terminals: s}
}

// Empty creates a leaf matching only the empty string.
func Empty() *Expression {
	return Literal("")
}

// Plus returns e+.
func (e *Expression) Plus() *Expression {
	return &Expression{operator: Plus, left: e}
}

// Star returns e*.
func (e *Expression) Star() *Expression {
	return &Expression{operator: Star, left: e}
}

// Or returns e|other.
func (e *Expression) Or(other *Expression) *Expression {
	return &Expression{operator: Or, left: e, right: other}
}

// Dot returns the concatenation of e and other.
func (e *Expression) Dot(other *Expression) *Expression {
	return &Expression{operator: Dot, left: e, right: other}
}

func (e *Expression) Operator() Operator {
	return e.operator
}

// Terminals returns the literal string of a One node, "" otherwise.
func (e *Expression) Terminals() string {
	return e.terminals
}

// Left returns the first operand, nil for leaves.
func (e *Expression) Left() *Expression {
	return e.left
}

// Right returns the second operand of Or and Dot, nil otherwise.
func (e *Expression) Right() *Expression {
	return e.right
}

// String renders the tree fully parenthesized, e.g. ((a|b))*. It is meant
// for diagnostics; there is no parser for it.
func (e *Expression) String() string {
	if e == nil {
		return "∅"
	}

	switch e.operator {
	case One:
		if e.terminals == "" {
			return "ε"
		}

		return e.terminals
	case Plus:
		return "(" + e.left.String() + ")+"
	case Star:
		return "(" + e.left.String() + ")*"
	case Or:
		return "(" + e.left.String() + "|" + e.right.String() + ")"
	case Dot:
		return "(" + e.left.String() + "." + e.right.String() + ")"
	default:
		return e.operator.String()
	}
}

// Language returns the words of e reachable within maxSteps, shortest
// first and lexicographically within a length.
//
// maxSteps is decremented on every level of the tree and also caps the
// number of repetition rounds of Star and Plus, so it bounds the depth
// of the derivation rather than the word length. maxSteps < 1 yields an
// empty language.
func (e *Expression) Language(maxSteps int) []string {
	return e.LanguageContext(context.Background(), maxSteps)
}

// LanguageContext is Language with a context used for logging.
func (e *Expression) LanguageContext(ctx context.Context, maxSteps int) []string {
	words := e.language(ctx, maxSteps)
	languageSize.Observe(float64(words.Size()))

	out := make([]string, 0, words.Size())
	for word := range words.Seq() {
		out = append(out, string(word))
	}

	return out
}

func (e *Expression) language(ctx context.Context, maxSteps int) *set.SortedSet[sortable.ShortLex] {
	result := set.NewSortedSet[sortable.ShortLex]()

	if e == nil || maxSteps < 1 {
		return result
	}

	switch e.operator {
	case One:
		result.Add(sortable.ShortLex(e.terminals))

	case Or:
		result = e.left.language(ctx, maxSteps-1).Union(e.right.language(ctx, maxSteps-1))

	case Dot:
		left := e.left.language(ctx, maxSteps-1)
		right := e.right.language(ctx, maxSteps-1)

		for s1 := range left.Seq() {
			for s2 := range right.Seq() {
				result.Add(s1 + s2)
			}
		}

	case Star, Plus:
		base := e.left.language(ctx, maxSteps-1)
		result = base.Clone()

		for range maxSteps - 1 {
			snapshot := result.Entries()

			for s1 := range base.Seq() {
				for _, s2 := range snapshot {
					result.Add(s1 + s2)
				}
			}
		}

		if e.operator == Star {
			result.Add("")
		}

	default:
		logger.Get(ctx).Error("language is not defined for operator", "operator", e.operator.String())
	}

	return result
}

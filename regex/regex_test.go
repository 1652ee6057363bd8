package regex

import (
	"testing"

	"github.com/amp-labs/automaat/logger"
	"github.com/amp-labs/automaat/set"
	"github.com/amp-labs/automaat/sortable"
	"github.com/google/go-cmp/cmp"
	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
)

// union and product rebuild the expected languages independently of the
// tree code.
func union(a, b []string) []string {
	s := set.NewSortedSet[sortable.ShortLex]()
	for _, w := range append(a, b...) {
		s.Add(sortable.ShortLex(w))
	}

	return words(s)
}

func product(a, b []string) []string {
	s := set.NewSortedSet[sortable.ShortLex]()

	for _, x := range a {
		for _, y := range b {
			s.Add(sortable.ShortLex(x + y))
		}
	}

	return words(s)
}

func words(s *set.SortedSet[sortable.ShortLex]) []string {
	out := []string{}
	for w := range s.Seq() {
		out = append(out, string(w))
	}

	return out
}

func TestLanguage(t *testing.T) {
	t.Parallel()

	a, b, c := Literal("a"), Literal("b"), Literal("c")

	tests := []struct {
		name     string
		expr     *Expression
		maxSteps int
		want     []string
	}{
		{name: "zero steps", expr: a, maxSteps: 0, want: []string{}},
		{name: "negative steps", expr: a.Star(), maxSteps: -3, want: []string{}},
		{name: "literal", expr: Literal("abc"), maxSteps: 1, want: []string{"abc"}},
		{name: "empty literal", expr: Empty(), maxSteps: 1, want: []string{""}},
		{name: "star of a", expr: a.Star(), maxSteps: 3, want: []string{"", "a", "aa", "aaa"}},
		{name: "star with one step", expr: a.Star(), maxSteps: 1, want: []string{""}},
		{name: "plus with one step", expr: a.Plus(), maxSteps: 1, want: []string{}},
		{name: "plus of a", expr: a.Plus(), maxSteps: 3, want: []string{"a", "aa", "aaa"}},
		{name: "star of empty", expr: Empty().Star(), maxSteps: 3, want: []string{""}},
		{name: "or", expr: a.Or(b.Dot(c)), maxSteps: 3, want: []string{"a", "bc"}},
		{name: "depth cuts dot", expr: a.Or(b.Dot(c)), maxSteps: 2, want: []string{"a"}},
		{name: "nested dot", expr: a.Dot(b).Dot(c), maxSteps: 3, want: []string{"abc"}},
		{name: "nested dot too shallow", expr: a.Dot(b).Dot(c), maxSteps: 2, want: []string{}},
		{name: "short lex order", expr: b.Or(a).Or(Literal("aa")), maxSteps: 5, want: []string{"a", "b", "aa"}},
		{name: "or with missing operand", expr: a.Or(nil), maxSteps: 2, want: []string{"a"}},
		{name: "dot with missing operand", expr: a.Dot(nil), maxSteps: 2, want: []string{}},
		{
			name:     "plus of alternation",
			expr:     a.Or(b).Plus(),
			maxSteps: 3,
			want: []string{
				"a", "b",
				"aa", "ab", "ba", "bb",
				"aaa", "aab", "aba", "abb", "baa", "bab", "bba", "bbb",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(tt.want, tt.expr.Language(tt.maxSteps)); diff != "" {
				t.Errorf("Language(%d) mismatch (-want +got):\n%s", tt.maxSteps, diff)
			}
		})
	}
}

func TestLanguage_UnionLaw(t *testing.T) {
	t.Parallel()

	x := Literal("a").Star()
	y := Literal("b").Dot(Literal("c").Plus())

	for n := 1; n <= 5; n++ {
		want := union(x.Language(n-1), y.Language(n-1))

		if diff := cmp.Diff(want, x.Or(y).Language(n)); diff != "" {
			t.Errorf("n=%d (-want +got):\n%s", n, diff)
		}
	}
}

func TestLanguage_ConcatenationLaw(t *testing.T) {
	t.Parallel()

	x := Literal("a").Or(Literal("b"))
	y := Literal("c").Star()

	for n := 1; n <= 5; n++ {
		want := product(x.Language(n-1), y.Language(n-1))

		if diff := cmp.Diff(want, x.Dot(y).Language(n)); diff != "" {
			t.Errorf("n=%d (-want +got):\n%s", n, diff)
		}
	}
}

func TestLanguage_StarContainsEmptyWord(t *testing.T) {
	t.Parallel()

	exprs := []*Expression{
		Literal("a"),
		Literal("ab").Or(Literal("c")),
		Literal("x").Dot(Literal("y")).Plus(),
		Empty(),
	}

	for _, e := range exprs {
		for n := 1; n <= 4; n++ {
			assert.Contains(t, e.Star().Language(n), "", "%s at %d", e, n)
		}
	}
}

func TestLanguage_StarOnlyUsesItsSymbols(t *testing.T) {
	t.Parallel()

	got := Literal("a").Star().Language(3)

	assert.Subset(t, got, []string{"", "a", "aa"})

	for _, w := range got {
		for _, r := range w {
			assert.Equal(t, 'a', r, "unexpected symbol in %q", w)
		}
	}
}

func TestLanguage_Idempotent(t *testing.T) {
	t.Parallel()

	e := Literal("a").Or(Literal("b")).Star().Dot(Literal("c"))

	first := e.Language(4)
	second := e.Language(4)

	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}

func TestLanguage_UnknownOperator(t *testing.T) {
	t.Parallel()

	ctx := logger.WithLogger(t.Context(), slogt.New(t))
	e := &Expression{operator: Operator(42)}

	assert.Empty(t, e.LanguageContext(ctx, 3))
}

func TestCombinators_DoNotMutate(t *testing.T) {
	t.Parallel()

	a := Literal("a")
	b := Literal("b")

	star := a.Star()
	plus := a.Plus()
	or := a.Or(b)
	dot := a.Dot(b)

	assert.Equal(t, One, a.Operator())
	assert.Equal(t, "a", a.Terminals())
	assert.Nil(t, a.Left())
	assert.Nil(t, a.Right())

	assert.Equal(t, Star, star.Operator())
	assert.Equal(t, Plus, plus.Operator())
	assert.Equal(t, Or, or.Operator())
	assert.Equal(t, Dot, dot.Operator())

	assert.Same(t, a, star.Left())
	assert.Same(t, a, or.Left())
	assert.Same(t, b, dot.Right())
	assert.Equal(t, []string{"a"}, a.Language(1))
}

func TestSharedSubtree(t *testing.T) {
	t.Parallel()

	x := Literal("x")

	assert.Equal(t, []string{"xx"}, x.Dot(x).Language(2))
	assert.Equal(t, []string{"x"}, x.Or(x).Language(2))
}

func TestString(t *testing.T) {
	t.Parallel()

	e := Literal("a").Or(Literal("b")).Star().Dot(Empty())

	assert.Equal(t, "(((a|b))*.ε)", e.String())
	assert.Equal(t, "(a)+", Literal("a").Plus().String())
	assert.Equal(t, "(a|∅)", Literal("a").Or(nil).String())
}

func TestOperator_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ONE", One.String())
	assert.Equal(t, "PLUS", Plus.String())
	assert.Equal(t, "STAR", Star.String())
	assert.Equal(t, "OR", Or.String())
	assert.Equal(t, "DOT", Dot.String())
	assert.Equal(t, "Operator(9)", Operator(9).String())
}

package automaton

import (
	"testing"

	"github.com/amp-labs/automaat/sortable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type state = sortable.String

// abLoop is the complete DFA over {a, b} accepting (ab)*.
func abLoop() *Automaton[state] {
	a := New[state]('a', 'b')

	a.AddTransitionOf("q0", 'a', "q1")
	a.AddTransitionOf("q0", 'b', "q2")
	a.AddTransitionOf("q1", 'a', "q2")
	a.AddTransitionOf("q1", 'b', "q0")
	a.AddTransitionOf("q2", 'a', "q2")
	a.AddTransitionOf("q2", 'b', "q2")

	a.DefineAsStartState("q0")
	a.DefineAsFinalState("q0")

	return a
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("empty alphabet", func(t *testing.T) {
		t.Parallel()

		a := New[state]()
		assert.Empty(t, a.GetAlphabet())
		assert.Empty(t, a.States())
		assert.Empty(t, a.Transitions())
	})

	t.Run("alphabet is sorted and deduplicated", func(t *testing.T) {
		t.Parallel()

		a := New[state]('c', 'a', 'b', 'a')
		assert.Equal(t, []rune{'a', 'b', 'c'}, a.GetAlphabet())
	})
}

func TestSetAlphabet(t *testing.T) {
	t.Parallel()

	a := New[state]('a')
	a.AddTransitionOf("q0", 'a', "q1")

	a.SetAlphabet('x', 'y')

	assert.Equal(t, []rune{'x', 'y'}, a.GetAlphabet())
	assert.Len(t, a.Transitions(), 1, "transitions survive alphabet replacement")
}

func TestAddTransition(t *testing.T) {
	t.Parallel()

	t.Run("grows states", func(t *testing.T) {
		t.Parallel()

		a := New[state]('a')
		a.AddTransition(NewTransition[state]("q0", 'a', "q1"))

		assert.Equal(t, []state{"q0", "q1"}, a.States())
		assert.Empty(t, a.StartStates())
		assert.Empty(t, a.FinalStates())
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		t.Parallel()

		a := New[state]('a')
		a.AddTransitionOf("q0", 'a', "q1")
		a.AddTransitionOf("q0", 'a', "q1")

		assert.Len(t, a.Transitions(), 1)
		assert.Equal(t, []state{"q1"}, a.GetToStates("q0", 'a'))
	})

	t.Run("same origin different targets are kept", func(t *testing.T) {
		t.Parallel()

		a := New[state]('a')
		a.AddTransitionOf("q0", 'a', "q2")
		a.AddTransitionOf("q0", 'a', "q1")

		assert.Len(t, a.Transitions(), 2)
		assert.Equal(t, []state{"q1", "q2"}, a.GetToStates("q0", 'a'))
	})

	t.Run("symbols outside the alphabet are stored", func(t *testing.T) {
		t.Parallel()

		a := New[state]('a')
		a.AddTransitionOf("q0", 'z', "q1")

		assert.Equal(t, []state{"q1"}, a.GetToStates("q0", 'z'))
	})

	t.Run("separator prevents ambiguous hashing", func(t *testing.T) {
		t.Parallel()

		a := New[state]('a')
		a.AddTransitionOf("q", 'a', "q0")
		a.AddTransitionOf("q0", 'a', "q")

		assert.Equal(t, []state{"q0"}, a.GetToStates("q", 'a'))
		assert.Equal(t, []state{"q"}, a.GetToStates("q0", 'a'))
	})
}

func TestDefineStates(t *testing.T) {
	t.Parallel()

	a := New[sortable.Int]('a')

	a.DefineAsStartState(3)
	a.DefineAsStartState(3)
	a.DefineAsFinalState(1)

	assert.Equal(t, []sortable.Int{1, 3}, a.States())
	assert.Equal(t, []sortable.Int{3}, a.StartStates())
	assert.Equal(t, []sortable.Int{1}, a.FinalStates())
	assert.True(t, a.IsStartState(3))
	assert.False(t, a.IsStartState(1))
	assert.True(t, a.IsFinalState(1))
}

func TestGetToStates(t *testing.T) {
	t.Parallel()

	a := abLoop()

	assert.Equal(t, []state{"q1"}, a.GetToStates("q0", 'a'))
	assert.Empty(t, a.GetToStates("q0", 'c'))
	assert.Empty(t, a.GetToStates("missing", 'a'))
}

func TestIsDfa(t *testing.T) {
	t.Parallel()

	t.Run("complete and unambiguous", func(t *testing.T) {
		t.Parallel()

		a := abLoop()
		require.True(t, a.IsDfa())

		for _, q := range a.States() {
			for _, symbol := range a.GetAlphabet() {
				assert.Len(t, a.GetToStates(q, symbol), 1)
			}
		}
	})

	t.Run("ambiguous pair", func(t *testing.T) {
		t.Parallel()

		a := abLoop()
		a.AddTransitionOf("q0", 'a', "q0")

		assert.False(t, a.IsDfa())
	})

	t.Run("missing transition", func(t *testing.T) {
		t.Parallel()

		a := New[state]('a', 'b')
		a.AddTransitionOf("q0", 'a', "q1")
		a.AddTransitionOf("q1", 'b', "q0")

		assert.False(t, a.IsDfa(), "partial automata are not classified as DFA")
	})

	t.Run("state without transitions", func(t *testing.T) {
		t.Parallel()

		a := New[sortable.Int]('a')
		a.AddTransitionOf(0, 'a', 0)
		a.DefineAsFinalState(1)

		assert.False(t, a.IsDfa())
	})

	t.Run("empty alphabet is vacuously deterministic", func(t *testing.T) {
		t.Parallel()

		a := New[state]()
		a.DefineAsStartState("q0")

		assert.True(t, a.IsDfa())
	})

	t.Run("alphabet growth breaks completeness", func(t *testing.T) {
		t.Parallel()

		a := abLoop()
		a.SetAlphabet('a', 'b', 'c')

		assert.False(t, a.IsDfa())
	})
}

func TestTransitions(t *testing.T) {
	t.Parallel()

	a := New[state]('a', 'b')
	a.AddTransitionOf("q1", 'a', "q0")
	a.AddTransitionOf("q0", 'b', "q1")
	a.AddTransitionOf("q0", 'a', "q1")
	a.AddTransitionOf("q0", 'a', "q0")

	assert.Equal(t, []Transition[state]{
		{From: "q0", Symbol: 'a', To: "q0"},
		{From: "q0", Symbol: 'a', To: "q1"},
		{From: "q0", Symbol: 'b', To: "q1"},
		{From: "q1", Symbol: 'a', To: "q0"},
	}, a.Transitions())
}

func TestTransition_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "(q0, 'a') --> q1", NewTransition[state]("q0", 'a', "q1").String())
}

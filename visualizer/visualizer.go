// Package visualizer renders automata as Graphviz DOT or Mermaid state
// diagrams and turns DOT into images through the Graphviz dot binary.
//
//nolint:varnamelen // short names idiomatic
package visualizer

import (
	"errors"
	"fmt"
	"strings"

	"facette.io/natsort"
	"github.com/amp-labs/automaat/automaton"
	"github.com/amp-labs/automaat/sortable"
)

// ErrAutomatonNil is returned when there is nothing to draw.
var ErrAutomatonNil = errors.New("automaton cannot be nil")

const highlightColor = "#fff9c4"

// edge is every symbol that moves between one pair of states.
type edge struct {
	from, to string
	symbols  []rune
}

func (e edge) label() string {
	parts := make([]string, len(e.symbols))
	for i, r := range e.symbols {
		parts[i] = string(r)
	}

	return strings.Join(parts, ",")
}

// edges groups transitions by their endpoints, keeping the symbols in
// alphabet order. Transitions arrive sorted, so the groups do too.
func edges[S sortable.Sortable[S]](a *automaton.Automaton[S]) []edge {
	var (
		out   []edge
		index = make(map[[2]string]int)
	)

	for _, t := range a.Transitions() {
		key := [2]string{fmt.Sprint(t.From), fmt.Sprint(t.To)}

		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i
			out = append(out, edge{from: key[0], to: key[1]})
		}

		out[i].symbols = append(out[i].symbols, t.Symbol)
	}

	return out
}

func labels[S any](states []S) []string {
	out := make([]string, len(states))
	for i, s := range states {
		out[i] = fmt.Sprint(s)
	}

	natsort.Sort(out)

	return out
}

// GenerateDOT converts an automaton to a Graphviz digraph.
func GenerateDOT[S sortable.Sortable[S]](a *automaton.Automaton[S]) (string, error) {
	return GenerateDOTWithOptions(a, DefaultOptions())
}

// GenerateDOTWithOptions converts an automaton to a Graphviz digraph.
// Final states are double circles and every start state gets an arrow
// from an invisible point node.
func GenerateDOTWithOptions[S sortable.Sortable[S]](a *automaton.Automaton[S], opts Options) (string, error) {
	if a == nil {
		return "", ErrAutomatonNil
	}

	var sb strings.Builder

	if opts.Name != "" {
		fmt.Fprintf(&sb, "digraph %s {\n", quote(opts.Name))
	} else {
		sb.WriteString("digraph {\n")
	}

	if opts.Direction != "" {
		fmt.Fprintf(&sb, "    rankdir=%s;\n", opts.Direction)
	}

	finals := labels(a.FinalStates())
	isFinal := labelSet(finals)

	if len(finals) > 0 {
		sb.WriteString("    node [shape=doublecircle];")

		for _, s := range finals {
			sb.WriteString(" " + quote(s))
		}

		sb.WriteString(";\n")
	}

	sb.WriteString("    node [shape=circle];\n")

	for _, s := range labels(a.States()) {
		if !isFinal[s] {
			fmt.Fprintf(&sb, "    %s;\n", quote(s))
		}
	}

	hl := opts.highlighted()
	for _, s := range labels(a.States()) {
		if hl[s] {
			fmt.Fprintf(&sb, "    %s [style=filled, fillcolor=%q];\n", quote(s), highlightColor)
		}
	}

	starts := labels(a.StartStates())
	for i, s := range starts {
		fmt.Fprintf(&sb, "    __start%d [shape=point];\n", i)
		fmt.Fprintf(&sb, "    __start%d -> %s;\n", i, quote(s))
	}

	lines := make([]string, 0)
	for _, e := range edges(a) {
		lines = append(lines, fmt.Sprintf("    %s -> %s [label=%s];", quote(e.from), quote(e.to), quote(e.label())))
	}

	natsort.Sort(lines)

	for _, line := range lines {
		sb.WriteString(line + "\n")
	}

	sb.WriteString("}\n")

	return sb.String(), nil
}

// GenerateMermaid converts an automaton to a Mermaid state diagram.
func GenerateMermaid[S sortable.Sortable[S]](a *automaton.Automaton[S]) (string, error) {
	return GenerateMermaidWithOptions(a, DefaultOptions())
}

// GenerateMermaidWithOptions converts an automaton to a Mermaid state diagram.
// States get synthetic ids (s0, s1, ...) so that any label is usable.
func GenerateMermaidWithOptions[S sortable.Sortable[S]](a *automaton.Automaton[S], opts Options) (string, error) {
	if a == nil {
		return "", ErrAutomatonNil
	}

	var sb strings.Builder

	sb.WriteString("```mermaid\n")

	direction := opts.Direction
	if direction == "" {
		direction = "LR"
	}

	// stateDiagram-v2 takes the direction as a statement.
	sb.WriteString("stateDiagram-v2\n")
	fmt.Fprintf(&sb, "    direction %s\n", direction)

	ids := make(map[string]string)

	for i, s := range labels(a.States()) {
		ids[s] = fmt.Sprintf("s%d", i)
		fmt.Fprintf(&sb, "    state %s as %s\n", quote(s), ids[s])
	}

	for _, s := range labels(a.StartStates()) {
		fmt.Fprintf(&sb, "    [*] --> %s\n", ids[s])
	}

	for _, e := range edges(a) {
		fmt.Fprintf(&sb, "    %s --> %s: %s\n", ids[e.from], ids[e.to], e.label())
	}

	finals := labels(a.FinalStates())
	isFinal := labelSet(finals)

	for _, s := range finals {
		fmt.Fprintf(&sb, "    %s --> [*]\n", ids[s])
	}

	hl := opts.highlighted()

	for _, s := range labels(a.States()) {
		switch {
		case hl[s]:
			fmt.Fprintf(&sb, "    class %s highlighted\n", ids[s])
		case isFinal[s]:
			fmt.Fprintf(&sb, "    class %s finalState\n", ids[s])
		}
	}

	sb.WriteString("\n")
	sb.WriteString("    classDef finalState fill:#c8e6c9,stroke:#2e7d32,stroke-width:2px\n")
	sb.WriteString("    classDef highlighted fill:" + highlightColor + ",stroke:#f57f17,stroke-width:3px\n")
	sb.WriteString("```\n")

	return sb.String(), nil
}

func labelSet(labels []string) map[string]bool {
	m := make(map[string]bool, len(labels))
	for _, s := range labels {
		m[s] = true
	}

	return m
}

func quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)

	return `"` + r.Replace(s) + `"`
}

package automaton

import (
	"fmt"
	"io"

	"facette.io/natsort"
)

// PrintTransitions writes one transition per line, in natural order of
// their rendering so that q2 comes before q10.
func (a *Automaton[S]) PrintTransitions(w io.Writer) error {
	transitions := a.Transitions()

	lines := make([]string, 0, len(transitions))
	for _, t := range transitions {
		lines = append(lines, t.String())
	}

	natsort.Sort(lines)

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to print transitions: %w", err)
		}
	}

	return nil
}

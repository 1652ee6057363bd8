package visualizer

// Options configures the generated diagram.
type Options struct {
	// Name is the graph name in DOT output. Empty means an anonymous graph.
	Name string

	// Direction controls diagram flow: "LR" (left-right) or "TD" (top-down)
	Direction string

	// Highlight lists state labels to emphasize, e.g. the path of a run
	Highlight []string
}

// DefaultOptions returns left-to-right, unnamed, unhighlighted output.
func DefaultOptions() Options {
	return Options{
		Direction: "LR",
	}
}

func (o Options) WithName(name string) Options {
	o.Name = name

	return o
}

// WithDirection sets the diagram direction.
func (o Options) WithDirection(direction string) Options {
	o.Direction = direction

	return o
}

// WithHighlight sets the states to emphasize.
func (o Options) WithHighlight(states ...string) Options {
	o.Highlight = states

	return o
}

func (o Options) highlighted() map[string]bool {
	return labelSet(o.Highlight)
}

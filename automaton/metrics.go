package automaton

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Simulation modes reported in the mode label.
const (
	modeAlphabet = "alphabet" // rejected before simulating
	modeDfa      = "dfa"
	modeNfa      = "nfa"
)

// acceptTotal counts Accept calls by how they were decided.
var acceptTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
	Name: "automaat_accept_total",
	Help: "Total number of acceptance checks by simulation mode and outcome (accepted or rejected)",
}, []string{"mode", "outcome"})

func recordAccept(mode string, accepted bool) {
	outcome := "rejected"
	if accepted {
		outcome = "accepted"
	}

	acceptTotal.WithLabelValues(mode, outcome).Inc()
}

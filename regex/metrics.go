package regex

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// languageSize tracks how many words each top-level enumeration produced.
var languageSize = promauto.NewHistogram(prometheus.HistogramOpts{ //nolint:gochecknoglobals
	Name:    "automaat_language_size",
	Help:    "Number of words returned by a bounded language enumeration",
	Buckets: prometheus.ExponentialBuckets(1, 4, 8),
})

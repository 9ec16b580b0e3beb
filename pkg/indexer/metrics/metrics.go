package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// BoundsComputeTotal is used to indicate the number of window bounds computations
var BoundsComputeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Subsystem: "indexer",
	Name:      "bounds_compute_total",
	Help:      "Total number of window bounds computations",
}, []string{"strategy"})

// BoundsComputeErrors is used to indicate the number of rejected configurations
var BoundsComputeErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Subsystem: "indexer",
	Name:      "bounds_compute_errors_total",
	Help:      "Total number of window bounds computations rejected as invalid configurations",
}, []string{"strategy"})

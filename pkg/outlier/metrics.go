package outlier

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	modeDirect    = "direct"
	modePredicate = "predicate"
)

var computationsMetric = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "outliers_computations_total",
		Help: "Number of successful fence computations",
	},
	[]string{"mode"},
)

var computationErrorsMetric = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "outliers_computation_errors_total",
		Help: "Number of fence computations rejected because of invalid input or arguments",
	},
	[]string{"mode"},
)

var outliersMetric = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "outliers_detected_total",
		Help: "Number of values classified as outliers",
	},
	[]string{"mode"},
)

var sequenceSizeMetric = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Name:    "outliers_sequence_size",
		Help:    "Length of the sequences fences are computed on",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	},
)

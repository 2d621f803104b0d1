// Package metrics exposes workflow counters for Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "herbtrace"

var (
	FarmersRegistered = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "farmers_registered_total",
		Help:      "Farmers registered.",
	})

	TicketsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tickets_created_total",
		Help:      "Lab tickets minted at herb intake.",
	})

	LabReviews = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lab_reviews_total",
		Help:      "Lab report submissions, including overwrites.",
	})

	Finalizations = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "finalizations_total",
		Help:      "Manufacturer finalizations, including re-finalizations.",
	})

	Exports = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exports_total",
		Help:      "Provenance exports by kind.",
	}, []string{"kind"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route and status.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

const (
	ExportPDF  = "pdf"
	ExportText = "text"
)

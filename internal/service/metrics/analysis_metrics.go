package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	AnalysisLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "stockpulse",
			Subsystem: "analysis",
			Name:      "latency_seconds",
			Help:      "Latency of analysis endpoints",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	AnalysisErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stockpulse",
			Subsystem: "analysis",
			Name:      "errors_total",
			Help:      "Errors by analysis endpoint",
		},
		[]string{"endpoint"},
	)

	NewsFetchErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "stockpulse",
			Subsystem: "news",
			Name:      "fetch_errors_total",
			Help:      "Headline fetch failures (degraded to empty feed)",
		},
	)

	HeadlinesFetched = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "stockpulse",
			Subsystem: "news",
			Name:      "headlines_fetched_total",
			Help:      "Headlines retrieved from the news source",
		},
	)
)

func Register() {
	once.Do(func() {
		prometheus.MustRegister(AnalysisLatency, AnalysisErrors, NewsFetchErrors, HeadlinesFetched)
	})
}

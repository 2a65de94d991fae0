package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Analysis outcomes.
const (
	OutcomeParsed   = "parsed"
	OutcomeDefault  = "default"
	OutcomeFailed   = "failed"
	OutcomeRejected = "rejected"
)

// Call statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

var (
	AnalysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "worklife_analyses_total",
		Help: "Total number of analysis runs, labelled by outcome.",
	}, []string{"outcome"})

	EventsAnalyzed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "worklife_events_analyzed_total",
		Help: "Total number of calendar events fed into analysis runs.",
	})

	ModelCallDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "worklife_model_call_duration_seconds",
		Help:    "Latency of a single model invocation, labelled by provider and status.",
		Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60},
	}, []string{"provider", "status"})

	CalendarFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "worklife_calendar_fetches_total",
		Help: "Total number of calendar fetches, labelled by source and status.",
	}, []string{"source", "status"})

	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "worklife_active_sessions",
		Help: "Number of sessions currently held in the session store.",
	})

	RateLimited = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "worklife_rate_limited_total",
		Help: "Total number of requests rejected by the rate limiter, labelled by route.",
	}, []string{"route"})
)

package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var screeningDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name: "hazardwatch_screening_duration_sec",
	Help: "Total duration of submission screening",
})

var screeningDecisionCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "hazardwatch_screening_decisions",
	Help: "Number of screening decisions, by action",
}, []string{"action"})

var screeningErrorCount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "hazardwatch_screening_errors",
	Help: "Number of submissions which failed screening",
})

var signalFailureCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "hazardwatch_screening_signal_failures",
	Help: "Number of signal executions degraded to an unknown outcome",
}, []string{"signal"})

var trustLookupCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "hazardwatch_screening_trust_lookups",
	Help: "Number of trust score reads, by source",
}, []string{"source"})

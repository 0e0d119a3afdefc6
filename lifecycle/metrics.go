package lifecycle

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var transitionCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "hazardwatch_lifecycle_transitions",
	Help: "Number of hazard state transitions, by kind",
}, []string{"kind"})

var lazyExpireCount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "hazardwatch_lifecycle_lazy_expirations",
	Help: "Number of hazards lazily resolved after their expiry passed",
})

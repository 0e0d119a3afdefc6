package modqueue

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var queueEnqueueCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "hazardwatch_modqueue_enqueued",
	Help: "Number of moderation items created, by priority",
}, []string{"priority"})

var queueAssignCount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "hazardwatch_modqueue_assigned",
	Help: "Number of moderation item assignments",
})

var queueResolveCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "hazardwatch_modqueue_resolved",
	Help: "Number of moderation items resolved, by terminal status",
}, []string{"status"})

var queueEscalateCount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "hazardwatch_modqueue_escalated",
	Help: "Number of moderation items escalated to urgent",
})

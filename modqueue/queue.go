// The moderation queue: review items created from flag/review screening
// decisions, worked through by moderators one assignment at a time.
package modqueue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hazardwatch/hazardwatch/screening/countstore"
)

// Stats is the aggregate queue view for the moderation dashboard.
type Stats struct {
	Pending       int
	ApprovedToday int
	RejectedToday int
	PerPriority   map[Priority]int
}

// Queue wraps a QueueStore with identity assignment, outcome counters, and
// logging. Safe for concurrent use if its store is.
type Queue struct {
	Logger   *slog.Logger
	Store    QueueStore
	Counters countstore.CountStore
	// Injectable clock; defaults to time.Now
	Now func() time.Time
}

func NewQueue(logger *slog.Logger, store QueueStore, counters countstore.CountStore) *Queue {
	return &Queue{
		Logger:   logger,
		Store:    store,
		Counters: counters,
	}
}

func (q *Queue) now() time.Time {
	if q.Now != nil {
		return q.Now()
	}
	return time.Now()
}

// Enqueue creates a pending review item for a hazard, deriving priority from
// the declared severity.
func (q *Queue) Enqueue(ctx context.Context, hazardID, submitterID string, reasons []string, severity int) (*ModerationItem, error) {
	return q.EnqueueWithPriority(ctx, hazardID, submitterID, reasons, PriorityForSeverity(severity))
}

// EnqueueWithPriority creates a pending review item with an explicit
// priority. Urgent is rejected here: it is reachable only via Escalate.
func (q *Queue) EnqueueWithPriority(ctx context.Context, hazardID, submitterID string, reasons []string, priority Priority) (*ModerationItem, error) {
	if priority == PriorityUrgent {
		return nil, fmt.Errorf("urgent priority is reserved for escalations")
	}
	item := &ModerationItem{
		ID:          uuid.NewString(),
		HazardID:    hazardID,
		SubmitterID: submitterID,
		Reasons:     reasons,
		Priority:    priority,
		Status:      StatusPending,
		CreatedAt:   q.now(),
	}
	if err := q.Store.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("enqueueing moderation item: %w", err)
	}
	queueEnqueueCount.WithLabelValues(string(priority)).Inc()
	q.Logger.Info("enqueued moderation item", "item", item.ID, "hazard", hazardID, "priority", priority)
	return item, nil
}

// AssignNext hands the moderator the highest-priority unassigned item, or
// (nil, nil) when the queue is drained.
func (q *Queue) AssignNext(ctx context.Context, moderatorID string) (*ModerationItem, error) {
	item, err := q.Store.AssignNext(ctx, moderatorID)
	if err != nil {
		return nil, fmt.Errorf("assigning next moderation item: %w", err)
	}
	if item == nil {
		return nil, nil
	}
	queueAssignCount.Inc()
	q.Logger.Info("assigned moderation item", "item", item.ID, "moderator", moderatorID)
	return item, nil
}

// ApplyDecision applies a moderator action to an item. Approve and reject
// are terminal and irreversible; re-review of a resolved hazard requires a
// fresh item. Escalate returns the item to the pool at urgent priority.
func (q *Queue) ApplyDecision(ctx context.Context, itemID, moderatorID string, action ModAction, notes string) (*ModerationItem, error) {
	if action == ActionEscalate {
		item, err := q.Store.Escalate(ctx, itemID, notes)
		if err != nil {
			return nil, err
		}
		queueEscalateCount.Inc()
		q.Logger.Info("escalated moderation item", "item", itemID, "moderator", moderatorID)
		return item, nil
	}
	item, err := q.Store.Resolve(ctx, itemID, moderatorID, action, notes, q.now())
	if err != nil {
		return nil, err
	}
	queueResolveCount.WithLabelValues(string(item.Status)).Inc()
	if q.Counters != nil {
		if err := q.Counters.Increment(ctx, "mod-outcome", string(item.Status)); err != nil {
			q.Logger.Warn("failed to increment outcome counter", "err", err)
		}
	}
	q.Logger.Info("resolved moderation item", "item", itemID, "moderator", moderatorID, "status", item.Status)
	return item, nil
}

// List returns queue items matching the filter, highest priority first.
func (q *Queue) List(ctx context.Context, filter ListFilter) ([]*ModerationItem, error) {
	return q.Store.List(ctx, filter)
}

// GetStats merges store-derived pending counts with today's outcome
// counters.
func (q *Queue) GetStats(ctx context.Context) (*Stats, error) {
	ss, err := q.Store.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("computing queue stats: %w", err)
	}
	out := &Stats{
		Pending:     ss.Pending,
		PerPriority: ss.PerPriority,
	}
	if q.Counters != nil {
		if n, err := q.Counters.GetCount(ctx, "mod-outcome", string(StatusApproved), countstore.PeriodDay); err == nil {
			out.ApprovedToday = n
		}
		if n, err := q.Counters.GetCount(ctx, "mod-outcome", string(StatusRejected), countstore.PeriodDay); err == nil {
			out.RejectedToday = n
		}
	}
	return out, nil
}

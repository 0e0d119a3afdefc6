package modqueue

import (
	"context"
	"fmt"
	"time"
)

// ListFilter narrows a queue listing. Nil fields match everything.
type ListFilter struct {
	Status   *Status
	Priority *Priority
	// Limit caps the result size; zero means no cap.
	Limit int
}

// StoreStats are the counts derivable from the queue store itself; "today"
// outcome counts come from the countstore (see Queue.GetStats).
type StoreStats struct {
	Pending     int
	PerPriority map[Priority]int
}

// QueueStore persists moderation items. Implementations must make AssignNext
// and Resolve atomic with respect to concurrent callers: an item is handed
// to at most one moderator, and resolved at most once.
type QueueStore interface {
	Create(ctx context.Context, item *ModerationItem) error
	Get(ctx context.Context, id string) (*ModerationItem, error)
	List(ctx context.Context, filter ListFilter) ([]*ModerationItem, error)
	// AssignNext atomically assigns the highest-priority, oldest unassigned
	// item to the moderator. Returns (nil, nil) when no item is available.
	AssignNext(ctx context.Context, moderatorID string) (*ModerationItem, error)
	// Resolve applies a terminal approve/reject decision. Fails with
	// ErrAlreadyResolved or ErrNotAssignee on state violations.
	Resolve(ctx context.Context, id, moderatorID string, action ModAction, notes string, resolvedAt time.Time) (*ModerationItem, error)
	// Escalate bumps a non-terminal item to urgent priority and returns it
	// to the unassigned pool for senior review.
	Escalate(ctx context.Context, id, notes string) (*ModerationItem, error)
	Stats(ctx context.Context) (*StoreStats, error)
}

// applyResolution enforces the terminal-transition invariants on an item and
// mutates it in place. Callers must hold whatever lock makes the
// read-validate-write atomic for their store.
func applyResolution(item *ModerationItem, moderatorID string, action ModAction, notes string, resolvedAt time.Time) error {
	if item.Status.Terminal() {
		return fmt.Errorf("%w: %s is %s", ErrAlreadyResolved, item.ID, item.Status)
	}
	// escalated items may be resolved by any moderator; otherwise the
	// requester must hold the assignment
	if item.Status != StatusNeedsReview {
		if item.AssignedModerator == nil || *item.AssignedModerator != moderatorID {
			return fmt.Errorf("%w: %s", ErrNotAssignee, item.ID)
		}
	}
	switch action {
	case ActionApprove:
		item.Status = StatusApproved
	case ActionReject:
		item.Status = StatusRejected
	default:
		return fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}
	item.AssignedModerator = &moderatorID
	if notes != "" {
		item.Notes = &notes
	}
	item.ResolvedAt = &resolvedAt
	return nil
}

// applyEscalation marks a non-terminal item for urgent senior review and
// releases any assignment.
func applyEscalation(item *ModerationItem, notes string) error {
	if item.Status.Terminal() {
		return fmt.Errorf("%w: %s is %s", ErrAlreadyResolved, item.ID, item.Status)
	}
	item.Priority = PriorityUrgent
	item.Status = StatusNeedsReview
	item.AssignedModerator = nil
	if notes != "" {
		item.Notes = &notes
	}
	return nil
}

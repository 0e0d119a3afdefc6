// End-to-end moderation flow: screen a submission, open the hazard record,
// and route it straight to a lifecycle transition or into the review queue.
package moderation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hazardwatch/hazardwatch/lifecycle"
	"github.com/hazardwatch/hazardwatch/modqueue"
	"github.com/hazardwatch/hazardwatch/screening/engine"
)

// DefaultAutoExpireTTL is how long an auto_expire hazard stays live.
var DefaultAutoExpireTTL = 30 * 24 * time.Hour

// SubmissionOutcome is what a submitter gets back: the created hazard, the
// screening decision, and the queue item when one was opened.
type SubmissionOutcome struct {
	Hazard    *lifecycle.Hazard
	Screening *engine.ScreeningResult
	// QueueItem is set when the decision was flag or review.
	QueueItem *modqueue.ModerationItem
}

// Service glues the screening engine, moderation queue, and hazard lifecycle
// together behind the API the HTTP layer consumes.
type Service struct {
	Logger  *slog.Logger
	Engine  *engine.Engine
	Queue   *modqueue.Queue
	Hazards *lifecycle.Lifecycle
	// AutoExpireTTL overrides DefaultAutoExpireTTL when positive.
	AutoExpireTTL time.Duration
}

func (s *Service) now() time.Time {
	if s.Engine != nil && s.Engine.Now != nil {
		return s.Engine.Now()
	}
	return time.Now()
}

// SubmitReport screens a submission and opens the hazard record. Approve and
// reject apply immediately; flag and review enqueue a moderation item and
// leave the hazard pending.
func (s *Service) SubmitReport(ctx context.Context, sub *engine.Submission, submitterID string, trustScore int64) (*SubmissionOutcome, error) {
	res, err := s.Engine.ScreenSubmission(ctx, sub, trustScore)
	if err != nil {
		return nil, err
	}

	now := s.now()
	h := &lifecycle.Hazard{
		ID:          uuid.NewString(),
		SubmitterID: submitterID,
		Category:    sub.Category,
		Title:       sub.Title,
		Description: sub.Description,
		Severity:    sub.Severity,
		Status:      lifecycle.HazardPending,
		Expiration:  lifecycle.ExpirationPolicyForCategory(sub.Category),
		Lat:         &sub.Location.Lat,
		Lon:         &sub.Location.Lon,
		CreatedAt:   now,
	}
	if h.Expiration == lifecycle.ExpireAuto {
		ttl := s.AutoExpireTTL
		if ttl <= 0 {
			ttl = DefaultAutoExpireTTL
		}
		expires := now.Add(ttl)
		h.ExpiresAt = &expires
	}
	if err := s.Hazards.Store.Create(ctx, h); err != nil {
		return nil, fmt.Errorf("creating hazard record: %w", err)
	}

	out := &SubmissionOutcome{Hazard: h, Screening: res}
	switch res.Action {
	case engine.ActionApprove:
		out.Hazard, err = s.Hazards.Approve(ctx, h.ID)
	case engine.ActionReject:
		out.Hazard, err = s.Hazards.Reject(ctx, h.ID)
	case engine.ActionFlag, engine.ActionReview:
		out.QueueItem, err = s.Queue.Enqueue(ctx, h.ID, submitterID, res.Reasons, sub.Severity)
	default:
		err = fmt.Errorf("unhandled screening action: %s", res.Action)
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ApplyDecision applies a moderator decision to a queue item and carries the
// outcome through to the hazard record. Escalation touches only the item.
//
// The hazard transition is checked up front: resolving the item is
// irreversible, so the carry-through must be known-legal before it happens.
func (s *Service) ApplyDecision(ctx context.Context, itemID, moderatorID string, action modqueue.ModAction, notes string) (*modqueue.ModerationItem, *lifecycle.Hazard, error) {
	if action == modqueue.ActionApprove || action == modqueue.ActionReject {
		item, err := s.Queue.Store.Get(ctx, itemID)
		if err != nil {
			return nil, nil, err
		}
		h, err := s.Hazards.Store.Get(ctx, item.HazardID)
		if err != nil {
			return nil, nil, err
		}
		if h.Status != lifecycle.HazardPending {
			return nil, nil, fmt.Errorf("%w: %s on %s hazard %s", lifecycle.ErrInvalidTransition, action, h.Status, h.ID)
		}
	}
	item, err := s.Queue.ApplyDecision(ctx, itemID, moderatorID, action, notes)
	if err != nil {
		return nil, nil, err
	}
	switch item.Status {
	case modqueue.StatusApproved:
		h, err := s.Hazards.Approve(ctx, item.HazardID)
		return item, h, err
	case modqueue.StatusRejected:
		h, err := s.Hazards.Reject(ctx, item.HazardID)
		return item, h, err
	default:
		return item, nil, nil
	}
}

// ReopenReview creates a fresh moderation item for an already-reviewed
// hazard; resolved items are never mutated. The hazard itself is returned to
// pending so the eventual decision can carry through; resolved hazards
// cannot be reopened.
func (s *Service) ReopenReview(ctx context.Context, hazardID, submitterID string, reasons []string) (*modqueue.ModerationItem, error) {
	h, err := s.Hazards.Reopen(ctx, hazardID)
	if err != nil {
		return nil, err
	}
	return s.Queue.Enqueue(ctx, h.ID, submitterID, reasons, h.Severity)
}

// GetStats exposes the moderation dashboard counts.
func (s *Service) GetStats(ctx context.Context) (*modqueue.Stats, error) {
	return s.Queue.GetStats(ctx)
}

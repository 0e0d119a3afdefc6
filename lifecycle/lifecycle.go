package lifecycle

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// ContributionRecorder is the external collaborator credited when a
// submitter's hazard is approved.
type ContributionRecorder interface {
	RecordApprovedContribution(ctx context.Context, userID string) error
}

// Lifecycle owns hazard state transitions from creation through moderation
// outcome to resolution. There is deliberately no background expiry job:
// expiration is applied lazily on the read and write paths.
type Lifecycle struct {
	Logger *slog.Logger
	Store  HazardStore
	// Contributions is optional; approval proceeds even if crediting fails.
	Contributions ContributionRecorder
	// Injectable clock; defaults to time.Now
	Now func() time.Time
}

func NewLifecycle(logger *slog.Logger, store HazardStore) *Lifecycle {
	return &Lifecycle{
		Logger: logger,
		Store:  store,
	}
}

func (l *Lifecycle) now() time.Time {
	if l.Now != nil {
		return l.Now()
	}
	return time.Now()
}

// Approve moves a pending hazard to approved and credits the submitter.
func (l *Lifecycle) Approve(ctx context.Context, hazardID string) (*Hazard, error) {
	h, err := l.Store.Get(ctx, hazardID)
	if err != nil {
		return nil, err
	}
	if h.Status != HazardPending {
		return nil, fmt.Errorf("%w: approve on %s hazard %s", ErrInvalidTransition, h.Status, h.ID)
	}
	h.Status = HazardApproved
	if err := l.Store.Update(ctx, h); err != nil {
		return nil, fmt.Errorf("approving hazard: %w", err)
	}
	transitionCount.WithLabelValues("approve").Inc()
	l.Logger.Info("approved hazard", "hazard", h.ID)
	if l.Contributions != nil {
		if err := l.Contributions.RecordApprovedContribution(ctx, h.SubmitterID); err != nil {
			l.Logger.Warn("failed to credit contribution", "err", err, "user", h.SubmitterID)
		}
	}
	return h, nil
}

// Reject moves a pending hazard to rejected. Rejected is terminal.
func (l *Lifecycle) Reject(ctx context.Context, hazardID string) (*Hazard, error) {
	h, err := l.Store.Get(ctx, hazardID)
	if err != nil {
		return nil, err
	}
	if h.Status != HazardPending {
		return nil, fmt.Errorf("%w: reject on %s hazard %s", ErrInvalidTransition, h.Status, h.ID)
	}
	h.Status = HazardRejected
	if err := l.Store.Update(ctx, h); err != nil {
		return nil, fmt.Errorf("rejecting hazard: %w", err)
	}
	transitionCount.WithLabelValues("reject").Inc()
	l.Logger.Info("rejected hazard", "hazard", h.ID)
	return h, nil
}

// Reopen returns a moderated hazard to pending so it can be reviewed again,
// e.g. on a submitter appeal. Resolved hazards stay closed; reopening an
// already-pending hazard is a no-op.
func (l *Lifecycle) Reopen(ctx context.Context, hazardID string) (*Hazard, error) {
	h, err := l.Store.Get(ctx, hazardID)
	if err != nil {
		return nil, err
	}
	if h.ResolvedAt != nil {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyResolved, h.ID)
	}
	if h.Status == HazardPending {
		return h, nil
	}
	h.Status = HazardPending
	if err := l.Store.Update(ctx, h); err != nil {
		return nil, fmt.Errorf("reopening hazard: %w", err)
	}
	transitionCount.WithLabelValues("reopen").Inc()
	l.Logger.Info("reopened hazard", "hazard", h.ID)
	return h, nil
}

// Resolve explicitly resolves an approved hazard: a user closing out their
// own user_resolvable report, or a moderator/admin action. A second explicit
// resolution fails loudly.
func (l *Lifecycle) Resolve(ctx context.Context, hazardID string) (*Hazard, error) {
	h, err := l.Store.Get(ctx, hazardID)
	if err != nil {
		return nil, err
	}
	if h.Status != HazardApproved {
		return nil, fmt.Errorf("%w: resolve on %s hazard %s", ErrInvalidTransition, h.Status, h.ID)
	}
	if h.ResolvedAt != nil {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyResolved, h.ID)
	}
	now := l.now()
	h.ResolvedAt = &now
	if err := l.Store.Update(ctx, h); err != nil {
		return nil, fmt.Errorf("resolving hazard: %w", err)
	}
	transitionCount.WithLabelValues("resolve").Inc()
	l.Logger.Info("resolved hazard", "hazard", h.ID)
	return h, nil
}

// ResolveIfExpired opportunistically marks an expired auto_expire hazard
// resolved. It is commutative and idempotent: concurrent readers may race to
// perform the same write, and calling it on an already-resolved or
// not-yet-expired hazard is a no-op.
func (l *Lifecycle) ResolveIfExpired(ctx context.Context, h *Hazard) error {
	if h.ResolvedAt != nil || !IsExpired(h, l.now()) {
		return nil
	}
	expiredAt := *h.ExpiresAt
	h.ResolvedAt = &expiredAt
	if err := l.Store.Update(ctx, h); err != nil {
		return fmt.Errorf("marking hazard expired: %w", err)
	}
	lazyExpireCount.Inc()
	l.Logger.Debug("lazily resolved expired hazard", "hazard", h.ID)
	return nil
}

// VisibleHazards is the public read path: approved hazards currently
// visible, with lazy expiration applied along the way. Reads stay correct
// even when the opportunistic write loses a race, because visibility is
// recomputed from the pure predicate.
func (l *Lifecycle) VisibleHazards(ctx context.Context, limit int) ([]*Hazard, error) {
	candidates, err := l.Store.ListByStatus(ctx, HazardApproved, limit)
	if err != nil {
		return nil, fmt.Errorf("listing approved hazards: %w", err)
	}
	now := l.now()
	var out []*Hazard
	for _, h := range candidates {
		if err := l.ResolveIfExpired(ctx, h); err != nil {
			l.Logger.Warn("lazy expiration write failed", "err", err, "hazard", h.ID)
		}
		if IsVisible(h, now) {
			out = append(out, h)
		}
	}
	return out, nil
}

package moderation

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hazardwatch/hazardwatch/lifecycle"
	"github.com/hazardwatch/hazardwatch/modqueue"
	"github.com/hazardwatch/hazardwatch/screening/countstore"
	"github.com/hazardwatch/hazardwatch/screening/engine"
	"github.com/hazardwatch/hazardwatch/screening/signals"
)

func testService() (*Service, *lifecycle.MemHazardStore) {
	logger := slog.Default()
	counters := countstore.NewMemCountStore()
	hazardStore := lifecycle.NewMemHazardStore()
	now := time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC)
	eng := &engine.Engine{
		Logger:   logger,
		Config:   engine.DefaultConfig(),
		Signals:  signals.DefaultSignals(),
		Dupes:    &lifecycle.StoreDupeChecker{Store: hazardStore, Now: func() time.Time { return now }},
		Counters: counters,
		Now:      func() time.Time { return now },
	}
	return &Service{
		Logger:  logger,
		Engine:  eng,
		Queue:   modqueue.NewQueue(logger, modqueue.NewMemQueueStore(), counters),
		Hazards: lifecycle.NewLifecycle(logger, hazardStore),
	}, hazardStore
}

func TestSubmitReportQueuesForReview(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	svc, _ := testService()
	sub := engine.TestSubmission()

	out, err := svc.SubmitReport(ctx, &sub, "user1", 100)
	assert.NoError(err)
	assert.Equal(engine.ActionReview, out.Screening.Action)
	assert.NotNil(out.QueueItem)
	assert.Equal(lifecycle.HazardPending, out.Hazard.Status)
	assert.Equal(modqueue.PriorityMedium, out.QueueItem.Priority)
}

// solicitation text from a brand-new account never gets approved
func TestSubmitReportSpam(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	svc, _ := testService()
	sub := engine.TestSubmission()
	sub.Title = "Amazing offer"
	sub.Description = "buy now!!! click here http://x.com"

	out, err := svc.SubmitReport(ctx, &sub, "user1", 0)
	assert.NoError(err)
	assert.NotEqual(engine.ActionApprove, out.Screening.Action)
	assert.GreaterOrEqual(out.Screening.Confidence, 0.8)
	assert.Equal("new submitter, no history", out.Screening.TrustNote)
}

// a missing photo keeps even highly trusted submitters out of auto-approve:
// 0.8 media risk times the 0.3 trust multiplier still clears the 0.2 bound
func TestSubmitReportTrustedNoMedia(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	svc, _ := testService()
	sub := engine.TestSubmission()
	sub.Media = nil

	out, err := svc.SubmitReport(ctx, &sub, "user1", 600)
	assert.NoError(err)
	assert.Equal(engine.ActionReview, out.Screening.Action)
	assert.InDelta(0.24, out.Screening.RiskScore, 0.01)
}

// the null-island check is a rejection signal regardless of trust
func TestSubmitReportNullIsland(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	svc, _ := testService()
	sub := engine.TestSubmission()
	sub.Location = engine.GeoPoint{Lat: 0, Lon: 0}

	out, err := svc.SubmitReport(ctx, &sub, "user1", 1000)
	assert.NoError(err)
	assert.Equal(engine.ActionReject, out.Screening.Action)
	assert.Equal(1.0, out.Screening.Confidence)
	assert.Equal(lifecycle.HazardRejected, out.Hazard.Status)
}

func TestSubmitReportAutoApprove(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	svc, _ := testService()
	sub := engine.TestSubmission()

	out, err := svc.SubmitReport(ctx, &sub, "user1", 600)
	assert.NoError(err)
	assert.Equal(engine.ActionApprove, out.Screening.Action)
	assert.False(out.Screening.RequiresHumanReview)
	assert.Equal(lifecycle.HazardApproved, out.Hazard.Status)
	assert.Nil(out.QueueItem)
}

func TestModeratorFlow(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	svc, _ := testService()
	sub := engine.TestSubmission()

	out, err := svc.SubmitReport(ctx, &sub, "user1", 100)
	assert.NoError(err)
	assert.NotNil(out.QueueItem)

	assigned, err := svc.Queue.AssignNext(ctx, "mod1")
	assert.NoError(err)
	assert.Equal(out.QueueItem.ID, assigned.ID)

	item, hazard, err := svc.ApplyDecision(ctx, assigned.ID, "mod1", modqueue.ActionApprove, "verified on street view")
	assert.NoError(err)
	assert.Equal(modqueue.StatusApproved, item.Status)
	assert.Equal(lifecycle.HazardApproved, hazard.Status)

	// hazard is now publicly visible
	visible, err := svc.Hazards.VisibleHazards(ctx, 0)
	assert.NoError(err)
	assert.Len(visible, 1)
}

func TestReopenReview(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	svc, _ := testService()
	sub := engine.TestSubmission()

	out, err := svc.SubmitReport(ctx, &sub, "user1", 100)
	assert.NoError(err)

	assigned, err := svc.Queue.AssignNext(ctx, "mod1")
	assert.NoError(err)
	_, _, err = svc.ApplyDecision(ctx, assigned.ID, "mod1", modqueue.ActionReject, "")
	assert.NoError(err)

	// a fresh item, never a mutation of the resolved one; the hazard goes
	// back to pending so the new decision can land
	reopened, err := svc.ReopenReview(ctx, out.Hazard.ID, "user1", []string{"submitter appeal"})
	assert.NoError(err)
	assert.NotEqual(out.QueueItem.ID, reopened.ID)
	assert.Equal(modqueue.StatusPending, reopened.Status)

	h, err := svc.Hazards.Store.Get(ctx, out.Hazard.ID)
	assert.NoError(err)
	assert.Equal(lifecycle.HazardPending, h.Status)

	// the appeal can overturn the original rejection
	assigned, err = svc.Queue.AssignNext(ctx, "mod2")
	assert.NoError(err)
	item, hazard, err := svc.ApplyDecision(ctx, assigned.ID, "mod2", modqueue.ActionApprove, "appeal upheld")
	assert.NoError(err)
	assert.Equal(modqueue.StatusApproved, item.Status)
	assert.Equal(lifecycle.HazardApproved, hazard.Status)
}

func TestReopenReviewResolvedHazard(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	svc, _ := testService()
	sub := engine.TestSubmission()
	sub.Category = "debris"

	out, err := svc.SubmitReport(ctx, &sub, "user1", 600)
	assert.NoError(err)
	assert.Equal(lifecycle.HazardApproved, out.Hazard.Status)

	_, err = svc.Hazards.Resolve(ctx, out.Hazard.ID)
	assert.NoError(err)

	_, err = svc.ReopenReview(ctx, out.Hazard.ID, "user1", []string{"submitter appeal"})
	assert.ErrorIs(err, lifecycle.ErrAlreadyResolved)
}

// a decision whose hazard transition cannot succeed must not burn the item
func TestApplyDecisionIllegalTransitionKeepsItem(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	svc, _ := testService()
	sub := engine.TestSubmission()

	out, err := svc.SubmitReport(ctx, &sub, "user1", 100)
	assert.NoError(err)

	// hazard rejected out-of-band while the item sits in the queue
	_, err = svc.Hazards.Reject(ctx, out.Hazard.ID)
	assert.NoError(err)

	assigned, err := svc.Queue.AssignNext(ctx, "mod1")
	assert.NoError(err)

	_, _, err = svc.ApplyDecision(ctx, assigned.ID, "mod1", modqueue.ActionApprove, "")
	assert.ErrorIs(err, lifecycle.ErrInvalidTransition)

	item, err := svc.Queue.Store.Get(ctx, assigned.ID)
	assert.NoError(err)
	assert.False(item.Status.Terminal())
	assert.Nil(item.ResolvedAt)
}

func TestSubmitReportAutoExpirePolicy(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	svc, _ := testService()
	sub := engine.TestSubmission()
	sub.Category = "wildlife"

	out, err := svc.SubmitReport(ctx, &sub, "user1", 100)
	assert.NoError(err)
	assert.Equal(lifecycle.ExpireAuto, out.Hazard.Expiration)
	assert.NotNil(out.Hazard.ExpiresAt)
}

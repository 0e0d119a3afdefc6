package engine

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEngineBasics(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	eng := EngineTestFixture()
	sub := TestSubmission()

	res, err := eng.ScreenSubmission(ctx, &sub, 100)
	assert.NoError(err)
	assert.Equal(ActionReview, res.Action)
	assert.Equal(RiskLow, res.RiskLevel)

	// decision counter was persisted
	n, err := eng.Counters.GetCount(ctx, "screening-action", string(ActionReview), "total")
	assert.NoError(err)
	assert.Equal(1, n)
}

func TestEngineValidation(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	eng := EngineTestFixture()
	sub := TestSubmission()
	sub.Title = ""
	sub.Severity = 9

	_, err := eng.ScreenSubmission(ctx, &sub, 100)
	var invalid *SubmissionInvalidError
	assert.True(errors.As(err, &invalid))
	assert.Len(invalid.Fields, 2)
}

func TestEngineDisabled(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	eng := EngineTestFixture()
	eng.Config.Enabled = false
	sub := TestSubmission()

	res, err := eng.ScreenSubmission(ctx, &sub, 1000)
	assert.NoError(err)
	assert.Equal(ActionReview, res.Action)
	assert.True(res.RequiresHumanReview)
	assert.Equal([]string{"pre-screening disabled"}, res.Reasons)
}

func TestEngineSignalDegradation(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	eng := EngineTestFixture()
	eng.Signals.Signals = append(eng.Signals.Signals, Signal{
		Name: SignalDuplicate,
		Run: func(c *SubmissionContext) error {
			return fmt.Errorf("backend unavailable")
		},
	})
	sub := TestSubmission()

	res, err := eng.ScreenSubmission(ctx, &sub, 100)
	assert.NoError(err)
	assert.Contains(res.Reasons, "unable to check duplicate signal")
}

func TestEngineSignalPanicRecovery(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	eng := EngineTestFixture()
	eng.Signals.Signals = append(eng.Signals.Signals, Signal{
		Name: SignalMedia,
		Run: func(c *SubmissionContext) error {
			panic("boom")
		},
	})
	sub := TestSubmission()

	res, err := eng.ScreenSubmission(ctx, &sub, 100)
	assert.NoError(err)
	assert.Contains(res.Reasons, "unable to check media signal")
}

type fixedTrust struct {
	score int64
	calls int
}

func (f *fixedTrust) GetTrustScore(ctx context.Context, userID string) (int64, error) {
	f.calls++
	return f.score, nil
}

func TestEngineTrustCache(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	eng := EngineTestFixture()
	lookup := &fixedTrust{score: 250}
	eng.Trust = lookup
	sub := TestSubmission()

	_, err := eng.ScreenForUser(ctx, &sub, "user123")
	assert.NoError(err)
	_, err = eng.ScreenForUser(ctx, &sub, "user123")
	assert.NoError(err)
	assert.Equal(1, lookup.calls)
}

func TestAggregate(t *testing.T) {
	assert := assert.New(t)

	agg := Aggregate([]SignalResult{
		{Name: SignalText, Risk: 0.6, Confidence: 0.8, Reasons: []string{"a"}},
		{Name: SignalMedia, Risk: 0.8, Confidence: 0.9, Reasons: []string{"b"}},
		{Name: SignalLocation, Risk: 1.5, Confidence: 0.2},
	})
	// risks sum (with per-signal clamping), confidence is the max
	assert.InDelta(2.4, agg.Risk, 1e-9)
	assert.Equal(0.9, agg.Confidence)
	assert.Equal([]string{"a", "b"}, agg.Reasons)
}

func TestEngineClock(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	eng := EngineTestFixture()
	fixed := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
	eng.Now = func() time.Time { return fixed }
	sub := TestSubmission()

	_, err := eng.ScreenSubmission(ctx, &sub, 100)
	assert.NoError(err)
}

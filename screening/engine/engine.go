package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hazardwatch/hazardwatch/screening/cachestore"
	"github.com/hazardwatch/hazardwatch/screening/countstore"
)

// Runtime for screening submissions: runs signals, adjusts for trust, and
// records decisions.
//
// TODO: careful when initializing: several fields should not be null or zero, even though they are pointer type.
type Engine struct {
	Logger  *slog.Logger
	Config  ScreeningConfig
	Signals SignalSet
	// Injected duplicate-check capability (optional)
	Dupes DupeChecker
	// Authoritative trust score source (optional; only needed for ScreenForUser)
	Trust TrustLookup
	// Cache in front of Trust lookups (optional)
	Cache    cachestore.TrustCache
	Counters countstore.CountStore
	// Injectable clock; defaults to time.Now
	Now func() time.Time
}

// TrustLookup resolves a submitter's current trust score from the
// authoritative user service.
type TrustLookup interface {
	GetTrustScore(ctx context.Context, userID string) (int64, error)
}

// SubmissionInvalidError wraps field-level validation failures; it is
// returned before any scoring happens.
type SubmissionInvalidError struct {
	Fields []*ValidationError
}

func (e *SubmissionInvalidError) Error() string {
	if len(e.Fields) == 1 {
		return e.Fields[0].Error()
	}
	return fmt.Sprintf("submission invalid: %d field violations", len(e.Fields))
}

func (eng *Engine) now() time.Time {
	if eng.Now != nil {
		return eng.Now()
	}
	return time.Now()
}

// ScreenSubmission validates and scores a submission, returning the
// screening decision. The trust score is supplied by the caller; use
// ScreenForUser to resolve it from the trust service.
func (eng *Engine) ScreenSubmission(ctx context.Context, sub *Submission, trustScore int64) (*ScreeningResult, error) {
	start := eng.now()
	defer func() {
		screeningDuration.Observe(eng.now().Sub(start).Seconds())
	}()

	if !eng.Config.Enabled {
		res := &ScreeningResult{
			Action:              ActionReview,
			Confidence:          0.1,
			Reasons:             []string{"pre-screening disabled"},
			RiskLevel:           RiskLow,
			RequiresHumanReview: true,
			EstimatedReviewMins: reviewMinutes(RiskLow),
		}
		eng.recordDecision(ctx, res)
		return res, nil
	}

	if fieldErrs := ValidateSubmission(sub); fieldErrs != nil {
		screeningErrorCount.Inc()
		return nil, &SubmissionInvalidError{Fields: fieldErrs}
	}

	c := &SubmissionContext{
		Ctx:        ctx,
		Logger:     eng.Logger.With("category", sub.Category, "severity", sub.Severity),
		Config:     &eng.Config,
		Dupes:      eng.Dupes,
		Submission: *sub,
		Now:        start,
	}
	eng.runSignals(c)

	assessment := Aggregate(c.Results())

	if c.RejectedOutright() {
		res := &ScreeningResult{
			Action:     ActionReject,
			Confidence: assessment.Confidence,
			Reasons:    assessment.Reasons,
			RiskScore:  assessment.Risk,
			RiskLevel:  classifyRisk(assessment.Risk, &eng.Config),
		}
		eng.Logger.Info("screened submission",
			"action", res.Action,
			"risk", res.RiskScore,
			"confidence", res.Confidence,
			"outright", true,
		)
		eng.recordDecision(ctx, res)
		return res, nil
	}

	adj := AdjustForTrust(trustScore)
	postRisk := assessment.Risk * adj.Multiplier

	res := Decide(postRisk, assessment.Confidence, assessment.Reasons, trustScore, &eng.Config)
	res.TrustNote = adj.Note

	eng.Logger.Info("screened submission",
		"action", res.Action,
		"risk", res.RiskScore,
		"confidence", res.Confidence,
		"trustMultiplier", adj.Multiplier,
		"reasons", len(res.Reasons),
	)
	eng.recordDecision(ctx, &res)
	return &res, nil
}

// ScreenForUser resolves the submitter's trust score (through the cache when
// one is configured) and screens the submission with it.
func (eng *Engine) ScreenForUser(ctx context.Context, sub *Submission, userID string) (*ScreeningResult, error) {
	trust, err := eng.getTrustScore(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolving trust score: %w", err)
	}
	return eng.ScreenSubmission(ctx, sub, trust)
}

func (eng *Engine) getTrustScore(ctx context.Context, userID string) (int64, error) {
	if eng.Cache != nil {
		if trust, ok, err := eng.Cache.GetScore(ctx, userID); err == nil && ok {
			trustLookupCount.WithLabelValues("cache").Inc()
			return trust, nil
		}
	}
	if eng.Trust == nil {
		return 0, fmt.Errorf("no trust lookup configured")
	}
	trust, err := eng.Trust.GetTrustScore(ctx, userID)
	if err != nil {
		return 0, err
	}
	trustLookupCount.WithLabelValues("origin").Inc()
	if eng.Cache != nil {
		if err := eng.Cache.SetScore(ctx, userID, trust); err != nil {
			eng.Logger.Warn("failed to cache trust score", "err", err, "userID", userID)
		}
	}
	return trust, nil
}

// runSignals executes every configured signal. A signal which errors or
// panics degrades to an explicit zero-risk "unable to check" result; it is
// never silently dropped.
func (eng *Engine) runSignals(c *SubmissionContext) {
	for _, sig := range eng.Signals.Signals {
		eng.runSignal(c, sig)
	}
}

func (eng *Engine) runSignal(c *SubmissionContext, sig Signal) {
	defer func() {
		if r := recover(); r != nil {
			eng.Logger.Error("signal execution panic", "signal", sig.Name, "err", r)
			eng.degradeSignal(c, sig.Name)
		}
	}()
	if err := sig.Run(c); err != nil {
		eng.Logger.Warn("signal execution failed", "signal", sig.Name, "err", err)
		eng.degradeSignal(c, sig.Name)
	}
}

func (eng *Engine) degradeSignal(c *SubmissionContext, name string) {
	signalFailureCount.WithLabelValues(name).Inc()
	c.AddSignalResult(SignalResult{
		Name:       name,
		Risk:       0,
		Confidence: 0,
		Reasons:    []string{fmt.Sprintf("unable to check %s signal", name)},
	})
}

func (eng *Engine) recordDecision(ctx context.Context, res *ScreeningResult) {
	screeningDecisionCount.WithLabelValues(string(res.Action)).Inc()
	if eng.Counters != nil {
		if err := eng.Counters.Increment(ctx, "screening-action", string(res.Action)); err != nil {
			eng.Logger.Warn("failed to increment decision counter", "err", err)
		}
	}
}

package engine

import (
	"context"
	"log/slog"
	"time"
)

// SubmissionContext is the primary interface exposed to signal functions.
// One is created per screened submission; signals read the submission and
// config, and append their results.
type SubmissionContext struct {
	// Actual golang "context.Context", for the injected duplicate checker
	Ctx context.Context
	// slog logger handle, with submission-specific structured fields pre-populated. Pointer, but expected to never be nil.
	Logger *slog.Logger
	// Immutable policy configuration. Pointer, but expected never to be nil.
	Config *ScreeningConfig
	// Injected duplicate-check capability (nullable; the duplicate signal
	// degrades to "unable to check" when absent).
	Dupes DupeChecker

	Submission Submission
	// Wall-clock time of the screening call, injected for testability.
	Now time.Time

	results        []SignalResult
	rejectOutright bool
}

// RejectSubmission marks the submission for unconditional rejection. The
// trust multiplier is not applied to outright rejections.
func (c *SubmissionContext) RejectSubmission() {
	c.rejectOutright = true
}

// RejectedOutright reports whether any signal demanded unconditional
// rejection.
func (c *SubmissionContext) RejectedOutright() bool {
	return c.rejectOutright
}

// AddSignalResult records one signal's outcome. Risk and confidence are
// clamped to [0,1] on the way in.
func (c *SubmissionContext) AddSignalResult(r SignalResult) {
	r.Risk = clamp01(r.Risk)
	r.Confidence = clamp01(r.Confidence)
	c.results = append(c.results, r)
}

// Results returns signal outcomes in execution order.
func (c *SubmissionContext) Results() []SignalResult {
	return c.results
}

// SignalFunc is one independent risk signal. Implementations must be
// side-effect-free apart from appending results to the context.
type SignalFunc func(c *SubmissionContext) error

// Signal pairs a signal function with the name used in logs, metrics, and
// degraded "unable to check" results.
type Signal struct {
	Name string
	Run  SignalFunc
}

// SignalSet holds the signals to run against each submission, in order.
type SignalSet struct {
	Signals []Signal
}

package engine

// Signal names, used as metric labels and counter keys.
const (
	SignalText      = "text"
	SignalLocation  = "location"
	SignalMedia     = "media"
	SignalDuplicate = "duplicate"
)

// SignalResult is the outcome of one independent risk signal. Risk and
// Confidence are each clamped to [0,1]; Reasons are human-readable and
// retained verbatim for audit and moderator display.
type SignalResult struct {
	Name       string
	Risk       float64
	Confidence float64
	Reasons    []string
}

// RiskAssessment aggregates all signal results for one submission.
//
// Risk is the SUM of per-signal risks, deliberately punitive: several
// moderately suspicious signals together should read as worse than any one
// alone. Confidence is the max across signals.
type RiskAssessment struct {
	Signals    []SignalResult
	Risk       float64
	Confidence float64
	Reasons    []string
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Aggregate combines per-signal results in signal execution order.
func Aggregate(signals []SignalResult) RiskAssessment {
	out := RiskAssessment{Signals: signals}
	for _, s := range signals {
		out.Risk += clamp01(s.Risk)
		if s.Confidence > out.Confidence {
			out.Confidence = s.Confidence
		}
		out.Reasons = append(out.Reasons, s.Reasons...)
	}
	return out
}

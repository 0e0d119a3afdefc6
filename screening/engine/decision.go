package engine

// Action is the screening outcome for a submission.
type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
	ActionFlag    Action = "flag"
	ActionReview  Action = "review"
)

// RiskLevel is the qualitative band of a post-trust risk score.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// ScreeningResult is the full screening outcome, suitable for returning to
// the submitter (action + reasons) and to moderators (everything).
type ScreeningResult struct {
	Action Action
	// Confidence is the aggregate signal confidence backing the action.
	Confidence float64
	// Reasons, in signal execution order, explaining the score.
	Reasons []string
	// RiskScore is the post-trust aggregate risk.
	RiskScore float64
	RiskLevel RiskLevel
	// TrustNote describes the trust band applied to the score.
	TrustNote            string
	RequiresHumanReview  bool
	EstimatedReviewMins  int
}

func classifyRisk(risk float64, cfg *ScreeningConfig) RiskLevel {
	switch {
	case risk >= cfg.HighRisk:
		return RiskHigh
	case risk >= cfg.MediumRisk:
		return RiskMedium
	default:
		return RiskLow
	}
}

func reviewMinutes(level RiskLevel) int {
	switch level {
	case RiskHigh:
		return 15
	case RiskMedium:
		return 8
	default:
		return 5
	}
}

// Decide maps an aggregated, trust-adjusted assessment to a screening
// action. First match wins:
//
//  1. trusted submitter with unambiguously low risk: approve
//  2. high-confidence, high-risk submission: reject
//  3. high risk band (when flagging is on): flag for priority review
//  4. everything else: plain review
//
// Trust multipliers shrink but never zero out risk, so a sufficiently bad
// submission from a trusted account can still hit the reject branch.
func Decide(risk, confidence float64, reasons []string, trustScore int64, cfg *ScreeningConfig) ScreeningResult {
	level := classifyRisk(risk, cfg)
	res := ScreeningResult{
		Confidence: confidence,
		Reasons:    reasons,
		RiskScore:  risk,
		RiskLevel:  level,
	}

	if trustScore >= cfg.AutoApproveTrust && risk < cfg.AutoApproveMaxRisk {
		res.Action = ActionApprove
		return res
	}
	if confidence >= cfg.AutoRejectConfidence && risk >= cfg.AutoRejectMinRisk {
		res.Action = ActionReject
		return res
	}
	if level == RiskHigh && cfg.FlaggingEnabled {
		res.Action = ActionFlag
		res.RequiresHumanReview = true
		res.EstimatedReviewMins = 15
		return res
	}
	res.Action = ActionReview
	res.RequiresHumanReview = true
	res.EstimatedReviewMins = reviewMinutes(level)
	return res
}

package engine

// TrustAdjustment scales aggregate risk based on the submitter's standing.
// Trust never bypasses per-signal logic; it only shrinks (or, for brand-new
// accounts, inflates) the combined score.
type TrustAdjustment struct {
	Multiplier float64
	Note       string
}

// AdjustForTrust maps a trust score to a risk multiplier. Thresholds are
// checked in descending order; the highest matching band wins.
func AdjustForTrust(trustScore int64) TrustAdjustment {
	switch {
	case trustScore >= 500:
		return TrustAdjustment{Multiplier: 0.3, Note: "highly trusted submitter"}
	case trustScore >= 200:
		return TrustAdjustment{Multiplier: 0.5, Note: "trusted submitter"}
	case trustScore >= 50:
		return TrustAdjustment{Multiplier: 0.8, Note: "established submitter"}
	case trustScore == 0:
		return TrustAdjustment{Multiplier: 1.3, Note: "new submitter, no history"}
	default:
		return TrustAdjustment{Multiplier: 1.0, Note: "neutral submitter"}
	}
}

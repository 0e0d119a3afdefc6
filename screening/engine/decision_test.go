package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecideAutoApprove(t *testing.T) {
	assert := assert.New(t)
	cfg := DefaultConfig()

	res := Decide(0.15, 0.5, []string{"minor note"}, 600, &cfg)
	assert.Equal(ActionApprove, res.Action)
	assert.False(res.RequiresHumanReview)
	assert.Equal(0, res.EstimatedReviewMins)

	// same risk, insufficient trust
	res = Decide(0.15, 0.5, nil, 499, &cfg)
	assert.Equal(ActionReview, res.Action)

	// sufficient trust, risk at the bound is not approved
	res = Decide(0.2, 0.5, nil, 600, &cfg)
	assert.NotEqual(ActionApprove, res.Action)
}

func TestDecideAutoReject(t *testing.T) {
	assert := assert.New(t)
	cfg := DefaultConfig()

	res := Decide(0.9, 0.95, []string{"non-image attachment"}, 10, &cfg)
	assert.Equal(ActionReject, res.Action)
	assert.False(res.RequiresHumanReview)

	// high risk but low confidence falls through to flag
	res = Decide(0.9, 0.5, nil, 10, &cfg)
	assert.Equal(ActionFlag, res.Action)
	assert.True(res.RequiresHumanReview)
	assert.Equal(15, res.EstimatedReviewMins)
}

func TestDecideFlagDisabled(t *testing.T) {
	assert := assert.New(t)
	cfg := DefaultConfig()
	cfg.FlaggingEnabled = false

	res := Decide(0.7, 0.5, nil, 10, &cfg)
	assert.Equal(ActionReview, res.Action)
	assert.Equal(RiskHigh, res.RiskLevel)
	assert.Equal(15, res.EstimatedReviewMins)
}

func TestDecideReviewEstimates(t *testing.T) {
	assert := assert.New(t)
	cfg := DefaultConfig()

	res := Decide(0.45, 0.5, nil, 10, &cfg)
	assert.Equal(ActionReview, res.Action)
	assert.Equal(RiskMedium, res.RiskLevel)
	assert.Equal(8, res.EstimatedReviewMins)

	res = Decide(0.1, 0.5, nil, 10, &cfg)
	assert.Equal(ActionReview, res.Action)
	assert.Equal(RiskLow, res.RiskLevel)
	assert.Equal(5, res.EstimatedReviewMins)
}

func TestConfigValidate(t *testing.T) {
	assert := assert.New(t)

	cfg := DefaultConfig()
	assert.NoError(cfg.Validate())

	bad := DefaultConfig()
	bad.AutoApproveMaxRisk = 0.9
	assert.Error(bad.Validate())

	bad = DefaultConfig()
	bad.MediumRisk = 0.7
	assert.Error(bad.Validate())

	bad = DefaultConfig()
	bad.AutoRejectConfidence = 1.5
	assert.Error(bad.Validate())

	bad = DefaultConfig()
	bad.MediaMinBytes = bad.MediaMaxBytes
	assert.Error(bad.Validate())

	bad = DefaultConfig()
	bad.Region.MinLat = bad.Region.MaxLat
	assert.Error(bad.Validate())
}

package engine

import (
	"fmt"
)

// BoundingBox is the supported reporting region. Reports outside it are not
// rejected outright but score heavily against the location signal.
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

func (b BoundingBox) Contains(p GeoPoint) bool {
	return p.Lat >= b.MinLat && p.Lat <= b.MaxLat && p.Lon >= b.MinLon && p.Lon <= b.MaxLon
}

// ScreeningConfig is the immutable policy configuration for the screening
// engine. It is validated once at load time; decision code may assume every
// field is in range.
type ScreeningConfig struct {
	// Enabled globally turns pre-screening on. When false, every submission
	// short-circuits to a review decision.
	Enabled bool

	// AutoApproveTrust is the minimum trust score eligible for skipping
	// review entirely.
	AutoApproveTrust int64
	// AutoApproveMaxRisk is the post-trust risk ceiling for auto-approval.
	// Historically a hardcoded 0.2; a named field pending product sign-off
	// on whether deployments should tune it.
	AutoApproveMaxRisk float64

	// AutoRejectConfidence is the minimum aggregate confidence required
	// before an automatic rejection is allowed.
	AutoRejectConfidence float64
	// AutoRejectMinRisk is the post-trust risk floor for auto-rejection.
	AutoRejectMinRisk float64

	// HighRisk and MediumRisk partition post-trust risk into the
	// high/medium/low bands used for flagging and review estimates.
	HighRisk   float64
	MediumRisk float64

	// FlaggingEnabled allows high-risk submissions to be flagged for
	// priority review rather than falling into the general review pool.
	FlaggingEnabled bool

	// Media constraints.
	MaxMediaCount int
	MediaMinBytes int64
	MediaMaxBytes int64

	// Region is the supported reporting area.
	Region BoundingBox
}

// DefaultConfig returns production defaults: a greater-Boston reporting
// region and the screening thresholds the product launched with.
func DefaultConfig() ScreeningConfig {
	return ScreeningConfig{
		Enabled:              true,
		AutoApproveTrust:     500,
		AutoApproveMaxRisk:   0.2,
		AutoRejectConfidence: 0.9,
		AutoRejectMinRisk:    0.8,
		HighRisk:             0.6,
		MediumRisk:           0.3,
		FlaggingEnabled:      true,
		MaxMediaCount:        5,
		MediaMinBytes:        10 * 1024,
		MediaMaxBytes:        20 * 1024 * 1024,
		Region: BoundingBox{
			MinLat: 41.2,
			MaxLat: 43.0,
			MinLon: -73.6,
			MaxLon: -69.8,
		},
	}
}

// Validate rejects misconfiguration at load time, never at decision time.
func (c ScreeningConfig) Validate() error {
	for name, v := range map[string]float64{
		"auto-approve-max-risk":  c.AutoApproveMaxRisk,
		"auto-reject-confidence": c.AutoRejectConfidence,
		"high-risk":              c.HighRisk,
		"medium-risk":            c.MediumRisk,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("screening config: %s must be in [0,1], got %f", name, v)
		}
	}
	if c.AutoRejectMinRisk < 0 {
		return fmt.Errorf("screening config: auto-reject-min-risk must be non-negative, got %f", c.AutoRejectMinRisk)
	}
	if c.AutoApproveMaxRisk >= c.AutoRejectMinRisk {
		return fmt.Errorf("screening config: auto-approve-max-risk (%f) must be below auto-reject-min-risk (%f)", c.AutoApproveMaxRisk, c.AutoRejectMinRisk)
	}
	if c.MediumRisk >= c.HighRisk {
		return fmt.Errorf("screening config: medium-risk (%f) must be below high-risk (%f)", c.MediumRisk, c.HighRisk)
	}
	if c.AutoApproveTrust < 0 {
		return fmt.Errorf("screening config: auto-approve-trust must be non-negative, got %d", c.AutoApproveTrust)
	}
	if c.MaxMediaCount < 1 {
		return fmt.Errorf("screening config: max-media-count must be at least 1, got %d", c.MaxMediaCount)
	}
	if c.MediaMinBytes >= c.MediaMaxBytes {
		return fmt.Errorf("screening config: media-min-bytes (%d) must be below media-max-bytes (%d)", c.MediaMinBytes, c.MediaMaxBytes)
	}
	if c.Region.MinLat >= c.Region.MaxLat || c.Region.MinLon >= c.Region.MaxLon {
		return fmt.Errorf("screening config: region bounding box is inverted")
	}
	return nil
}

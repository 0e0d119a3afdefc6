package engine

import (
	"log/slog"
	"time"

	"github.com/hazardwatch/hazardwatch/screening/cachestore"
	"github.com/hazardwatch/hazardwatch/screening/countstore"
)

var _ SignalFunc = simpleTextSignal

// a minimal stand-in for the real text signal, keeping this package's tests
// independent of the signals package
func simpleTextSignal(c *SubmissionContext) error {
	res := SignalResult{Name: SignalText}
	if len(c.Submission.CombinedText()) < 20 {
		res.Risk = 0.3
		res.Confidence = 0.5
		res.Reasons = append(res.Reasons, "suspiciously short text")
	}
	c.AddSignalResult(res)
	return nil
}

func EngineTestFixture() Engine {
	return Engine{
		Logger: slog.Default(),
		Config: DefaultConfig(),
		Signals: SignalSet{
			Signals: []Signal{
				{Name: SignalText, Run: simpleTextSignal},
			},
		},
		Counters: countstore.NewMemCountStore(),
		Cache:    cachestore.NewMemTrustCache(10, time.Hour),
	}
}

// TestSubmission returns a plausible, clean hazard report within the default
// supported region.
func TestSubmission() Submission {
	return Submission{
		Title:       "Large pothole on Commonwealth Ave",
		Description: "Deep pothole in the right lane near the intersection with Harvard Ave, dangerous for cyclists.",
		Category:    "road-damage",
		Location:    GeoPoint{Lat: 42.3505, Lon: -71.1054},
		Severity:    3,
		Media: []MediaRef{
			{URL: "https://cdn.example.com/up/abc123.jpg", Filename: "pothole-comm-ave.jpg", MimeType: "image/jpeg", SizeBytes: 2 * 1024 * 1024},
		},
		SubmittedAt: time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC),
	}
}

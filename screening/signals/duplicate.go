package signals

import (
	"context"
	"fmt"
	"time"

	"github.com/hazardwatch/hazardwatch/screening/engine"
	"github.com/hazardwatch/hazardwatch/screening/keyword"
)

var _ engine.SignalFunc = DuplicateSignal

// DuplicateSignal defers to the injected duplicate checker. A missing or
// failing checker surfaces as an error, which the engine degrades to an
// explicit "unable to check" result.
func DuplicateSignal(c *engine.SubmissionContext) error {
	if c.Dupes == nil {
		return fmt.Errorf("no duplicate checker configured")
	}
	matches, err := c.Dupes.FindMatches(c.Ctx, &c.Submission, engine.DupeWindow)
	if err != nil {
		return fmt.Errorf("duplicate check: %w", err)
	}
	res := engine.SignalResult{Name: engine.SignalDuplicate, Confidence: 0.5}
	for _, m := range matches {
		res.Risk += 0.3
		if res.Confidence < 0.6 {
			res.Confidence = 0.6
		}
		res.Reasons = append(res.Reasons, m.Note)
	}
	c.AddSignalResult(res)
	return nil
}

// TitleHeuristicChecker is the default, stateless duplicate checker: a cheap
// comparison of the submitted title against overused generic titles. Real
// deployments should swap in a store-backed checker doing a
// geospatial+temporal query (see lifecycle.StoreDupeChecker).
type TitleHeuristicChecker struct{}

var _ engine.DupeChecker = TitleHeuristicChecker{}

func (TitleHeuristicChecker) FindMatches(ctx context.Context, sub *engine.Submission, window time.Duration) ([]engine.DupeMatch, error) {
	slug := keyword.Slugify(sub.Title)
	for _, generic := range keyword.GenericTitles {
		if slug == keyword.Slugify(generic) {
			return []engine.DupeMatch{
				{Note: fmt.Sprintf("generic title %q, likely duplicate", sub.Title)},
			}, nil
		}
	}
	return nil, nil
}

package engine

import (
	"context"
	"time"
)

// DupeMatch is one existing hazard which the duplicate checker considers a
// likely match for a new submission.
type DupeMatch struct {
	// HazardID of the suspected original, empty for purely heuristic matches.
	HazardID string
	// Note is a human-readable explanation of why this matched.
	Note string
}

// DupeChecker finds likely duplicates of a submission. The production
// implementation queries existing hazards by category within a small radius
// and time window; the default is a cheap title heuristic. May block on I/O;
// errors are recovered by the duplicate signal as "unable to check".
type DupeChecker interface {
	FindMatches(ctx context.Context, sub *Submission, window time.Duration) ([]DupeMatch, error)
}

// DupeWindow is how far back duplicate detection looks.
var DupeWindow = 48 * time.Hour

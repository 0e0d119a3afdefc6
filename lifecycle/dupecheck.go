package lifecycle

import (
	"context"
	"fmt"
	"time"

	"github.com/hazardwatch/hazardwatch/screening/engine"
)

// DefaultDupeRadiusMeters is how close two reports of the same category must
// be to count as likely duplicates.
const DefaultDupeRadiusMeters = 150.0

// StoreDupeChecker is the production duplicate checker: a geospatial and
// temporal nearest-neighbor query against existing hazards. It replaces the
// title heuristic the screening engine falls back to.
type StoreDupeChecker struct {
	Store        HazardStore
	RadiusMeters float64
	// Injectable clock; defaults to time.Now
	Now func() time.Time
}

var _ engine.DupeChecker = (*StoreDupeChecker)(nil)

func (d *StoreDupeChecker) FindMatches(ctx context.Context, sub *engine.Submission, window time.Duration) ([]engine.DupeMatch, error) {
	now := time.Now()
	if d.Now != nil {
		now = d.Now()
	}
	radius := d.RadiusMeters
	if radius <= 0 {
		radius = DefaultDupeRadiusMeters
	}
	nearby, err := d.Store.FindNearby(ctx, sub.Location.Lat, sub.Location.Lon, radius, sub.Category, now.Add(-window))
	if err != nil {
		return nil, fmt.Errorf("querying nearby hazards: %w", err)
	}
	out := make([]engine.DupeMatch, 0, len(nearby))
	for _, h := range nearby {
		dist := DistanceMeters(sub.Location.Lat, sub.Location.Lon, *h.Lat, *h.Lon)
		out = append(out, engine.DupeMatch{
			HazardID: h.ID,
			Note:     fmt.Sprintf("existing %s hazard %.0fm away reported within the last %s", h.Category, dist, window),
		})
	}
	return out, nil
}

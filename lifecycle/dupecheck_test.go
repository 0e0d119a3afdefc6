package lifecycle

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/hazardwatch/hazardwatch/screening/engine"
)

func TestStoreDupeChecker(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	store := NewMemHazardStore()
	now := time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC)
	checker := &StoreDupeChecker{
		Store: store,
		Now:   func() time.Time { return now },
	}

	// an existing pothole report ~50m away, one hour old
	lat, lon := 42.3505, -71.1054
	existing := &Hazard{
		ID:          uuid.NewString(),
		SubmitterID: "user1",
		Category:    "road-damage",
		Status:      HazardApproved,
		Expiration:  ExpirePermanent,
		Lat:         &lat,
		Lon:         &lon,
		CreatedAt:   now.Add(-time.Hour),
	}
	assert.NoError(store.Create(ctx, existing))

	sub := engine.TestSubmission()
	sub.Location = engine.GeoPoint{Lat: 42.3509, Lon: -71.1054}

	matches, err := checker.FindMatches(ctx, &sub, engine.DupeWindow)
	assert.NoError(err)
	assert.Len(matches, 1)
	assert.Equal(existing.ID, matches[0].HazardID)

	// different category does not match
	sub.Category = "flooding"
	matches, err = checker.FindMatches(ctx, &sub, engine.DupeWindow)
	assert.NoError(err)
	assert.Empty(matches)

	// too far away does not match
	sub.Category = "road-damage"
	sub.Location = engine.GeoPoint{Lat: 42.3605, Lon: -71.1054}
	matches, err = checker.FindMatches(ctx, &sub, engine.DupeWindow)
	assert.NoError(err)
	assert.Empty(matches)

	// outside the time window does not match
	sub.Location = engine.GeoPoint{Lat: 42.3509, Lon: -71.1054}
	matches, err = checker.FindMatches(ctx, &sub, 30*time.Minute)
	assert.NoError(err)
	assert.Empty(matches)
}

func TestDistanceMeters(t *testing.T) {
	assert := assert.New(t)

	// one degree of latitude is about 111km
	d := DistanceMeters(42.0, -71.0, 43.0, -71.0)
	assert.InDelta(111000, d, 1500)

	assert.Equal(0.0, DistanceMeters(42.35, -71.1, 42.35, -71.1))
}

package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsVisible(t *testing.T) {
	assert := assert.New(t)

	now := time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC)
	lat, lon := 42.3505, -71.1054

	base := Hazard{
		Status:     HazardApproved,
		Expiration: ExpirePermanent,
		Lat:        &lat,
		Lon:        &lon,
	}

	assert.True(IsVisible(&base, now))

	pending := base
	pending.Status = HazardPending
	assert.False(IsVisible(&pending, now))

	rejected := base
	rejected.Status = HazardRejected
	assert.False(IsVisible(&rejected, now))

	noCoords := base
	noCoords.Lat = nil
	assert.False(IsVisible(&noCoords, now))

	resolved := base
	earlier := now.Add(-time.Hour)
	resolved.ResolvedAt = &earlier
	assert.False(IsVisible(&resolved, now))
}

// auto_expire hazard past its expiry is hidden even before the lazy
// resolution write has run
func TestIsVisibleExpiredUnresolved(t *testing.T) {
	assert := assert.New(t)

	now := time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC)
	lat, lon := 42.3505, -71.1054
	past := now.Add(-time.Hour)

	h := Hazard{
		Status:     HazardApproved,
		Expiration: ExpireAuto,
		ExpiresAt:  &past,
		Lat:        &lat,
		Lon:        &lon,
	}
	assert.False(IsVisible(&h, now))

	// same record, before the expiry
	assert.True(IsVisible(&h, now.Add(-2*time.Hour)))

	// seasonal metadata does not auto-hide
	h.Expiration = ExpireSeasonal
	assert.True(IsVisible(&h, now))

	// auto_expire with no expiry set stays visible
	h.Expiration = ExpireAuto
	h.ExpiresAt = nil
	assert.True(IsVisible(&h, now))
}

// visibility is a pure function: same inputs, same answer
func TestIsVisibleDeterministic(t *testing.T) {
	assert := assert.New(t)

	now := time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC)
	lat, lon := 42.3505, -71.1054
	past := now.Add(-time.Hour)
	h := Hazard{
		Status:     HazardApproved,
		Expiration: ExpireAuto,
		ExpiresAt:  &past,
		Lat:        &lat,
		Lon:        &lon,
	}
	first := IsVisible(&h, now)
	second := IsVisible(&h, now)
	assert.Equal(first, second)
}

func TestIsExpiredBoundary(t *testing.T) {
	assert := assert.New(t)

	now := time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC)
	h := Hazard{Expiration: ExpireAuto, ExpiresAt: &now}

	// expiry is inclusive at the boundary
	assert.True(IsExpired(&h, now))
	assert.False(IsExpired(&h, now.Add(-time.Second)))
}

package lifecycle

import (
	"time"
)

// IsExpired is the authoritative expiry check: a pure function of the
// expiration policy, ExpiresAt, and the supplied clock. It must stay correct
// whether or not the lazy resolution write has run yet.
func IsExpired(h *Hazard, now time.Time) bool {
	if h.Expiration != ExpireAuto || h.ExpiresAt == nil {
		return false
	}
	return !h.ExpiresAt.After(now)
}

// IsVisible decides whether a hazard appears on the public map or listings.
// Evaluated per-read and never cached: everything derives from four stored
// fields plus wall-clock time.
func IsVisible(h *Hazard, now time.Time) bool {
	if h.Status != HazardApproved {
		return false
	}
	if h.Lat == nil || h.Lon == nil {
		return false
	}
	if h.ResolvedAt != nil {
		return false
	}
	return !IsExpired(h, now)
}

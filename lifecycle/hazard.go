// Hazard record lifecycle: moderation status, resolution, lazy expiration,
// and the always-recomputed visibility predicate the map and listing read
// paths depend on.
package lifecycle

import (
	"time"
)

// HazardStatus is the stored moderation state of a hazard record.
type HazardStatus string

const (
	HazardPending  HazardStatus = "pending"
	HazardApproved HazardStatus = "approved"
	HazardRejected HazardStatus = "rejected"
)

// ExpirationPolicy governs how an approved hazard eventually leaves the map.
type ExpirationPolicy string

const (
	// ExpirePermanent hazards stay until a moderator resolves them.
	ExpirePermanent ExpirationPolicy = "permanent"
	// ExpireUserResolvable hazards can be resolved by the reporting user.
	ExpireUserResolvable ExpirationPolicy = "user_resolvable"
	// ExpireSeasonal hazards carry a season-end timestamp as metadata but
	// are hidden only by explicit resolution.
	ExpireSeasonal ExpirationPolicy = "seasonal"
	// ExpireAuto hazards are lazily resolved once ExpiresAt passes.
	ExpireAuto ExpirationPolicy = "auto_expire"
)

// Hazard is the persisted record for an approved-or-not hazard report. Only
// Status, ResolvedAt, and ExpiresAt are mutated by this subsystem.
type Hazard struct {
	ID          string `gorm:"primaryKey"`
	SubmitterID string `gorm:"index;not null"`
	Category    string `gorm:"index;not null"`
	Title       string
	Description string
	Severity    int
	Status      HazardStatus     `gorm:"index;not null"`
	Expiration  ExpirationPolicy `gorm:"not null"`
	// ExpiresAt is meaningful only for the auto_expire and seasonal policies.
	ExpiresAt *time.Time
	// ResolvedAt is set at most once and never cleared.
	ResolvedAt *time.Time
	Lat        *float64
	Lon        *float64
	CreatedAt  time.Time `gorm:"not null"`
}

// ExpirationPolicyForCategory maps report categories to their default
// expiration policy.
func ExpirationPolicyForCategory(category string) ExpirationPolicy {
	switch category {
	case "ice", "snow", "seasonal-flooding":
		return ExpireSeasonal
	case "road-damage", "infrastructure", "bridge":
		return ExpirePermanent
	case "obstruction", "debris", "spill":
		return ExpireUserResolvable
	default:
		return ExpireAuto
	}
}

package lifecycle

import (
	"context"
	"errors"
	"time"
)

var (
	ErrHazardNotFound = errors.New("hazard not found")
	// ErrInvalidTransition covers approve/reject on a non-pending hazard and
	// resolve on a non-approved one.
	ErrInvalidTransition = errors.New("invalid hazard state transition")
	// ErrAlreadyResolved is returned for an explicit second resolution;
	// the lazy expiration path treats this case as a no-op instead.
	ErrAlreadyResolved = errors.New("hazard already resolved")
)

// HazardStore persists hazard records.
type HazardStore interface {
	Create(ctx context.Context, h *Hazard) error
	Get(ctx context.Context, id string) (*Hazard, error)
	Update(ctx context.Context, h *Hazard) error
	// ListByStatus returns hazards in a given stored status, oldest first.
	ListByStatus(ctx context.Context, status HazardStatus, limit int) ([]*Hazard, error)
	// FindNearby returns unresolved hazards of the category within the
	// bounding box implied by radiusMeters, created since the given time.
	FindNearby(ctx context.Context, lat, lon, radiusMeters float64, category string, since time.Time) ([]*Hazard, error)
}

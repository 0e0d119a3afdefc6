package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// GormHazardStore persists hazards in sqlite or postgres. The monotonic
// resolved_at invariant is enforced with a conditional update: a resolution
// write only lands if the row is still unresolved, which also makes the lazy
// expiration race harmless.
type GormHazardStore struct {
	DB *gorm.DB
}

var _ HazardStore = (*GormHazardStore)(nil)

func NewGormHazardStore(db *gorm.DB) (*GormHazardStore, error) {
	if err := db.AutoMigrate(&Hazard{}); err != nil {
		return nil, fmt.Errorf("migrating hazard schema: %w", err)
	}
	return &GormHazardStore{DB: db}, nil
}

func (s *GormHazardStore) Create(ctx context.Context, h *Hazard) error {
	return s.DB.WithContext(ctx).Create(h).Error
}

func (s *GormHazardStore) Get(ctx context.Context, id string) (*Hazard, error) {
	var h Hazard
	err := s.DB.WithContext(ctx).First(&h, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrHazardNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (s *GormHazardStore) Update(ctx context.Context, h *Hazard) error {
	updates := map[string]any{
		"status": h.Status,
	}
	q := s.DB.WithContext(ctx).Model(&Hazard{}).Where("id = ?", h.ID)
	if h.ResolvedAt != nil {
		// first resolution wins; later writers are no-ops
		updates["resolved_at"] = h.ResolvedAt
		q = q.Where("resolved_at IS NULL")
	}
	res := q.Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	return nil
}

func (s *GormHazardStore) ListByStatus(ctx context.Context, status HazardStatus, limit int) ([]*Hazard, error) {
	q := s.DB.WithContext(ctx).Where("status = ?", status).Order("created_at ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var out []*Hazard
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *GormHazardStore) FindNearby(ctx context.Context, lat, lon, radiusMeters float64, category string, since time.Time) ([]*Hazard, error) {
	dLat, dLon := boundingDeltas(lat, radiusMeters)
	var candidates []*Hazard
	err := s.DB.WithContext(ctx).
		Where("category = ? AND resolved_at IS NULL AND status <> ?", category, HazardRejected).
		Where("created_at >= ?", since).
		Where("lat BETWEEN ? AND ?", lat-dLat, lat+dLat).
		Where("lon BETWEEN ? AND ?", lon-dLon, lon+dLon).
		Find(&candidates).Error
	if err != nil {
		return nil, err
	}
	var out []*Hazard
	for _, h := range candidates {
		if h.Lat != nil && h.Lon != nil && DistanceMeters(lat, lon, *h.Lat, *h.Lon) <= radiusMeters {
			out = append(out, h)
		}
	}
	return out, nil
}

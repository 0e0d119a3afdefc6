package lifecycle

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// MemHazardStore is an in-process HazardStore, safe for concurrent use.
type MemHazardStore struct {
	lk      sync.Mutex
	hazards map[string]*Hazard
}

var _ HazardStore = (*MemHazardStore)(nil)

func NewMemHazardStore() *MemHazardStore {
	return &MemHazardStore{
		hazards: make(map[string]*Hazard),
	}
}

func copyHazard(h *Hazard) *Hazard {
	dup := *h
	if h.ExpiresAt != nil {
		v := *h.ExpiresAt
		dup.ExpiresAt = &v
	}
	if h.ResolvedAt != nil {
		v := *h.ResolvedAt
		dup.ResolvedAt = &v
	}
	if h.Lat != nil {
		v := *h.Lat
		dup.Lat = &v
	}
	if h.Lon != nil {
		v := *h.Lon
		dup.Lon = &v
	}
	return &dup
}

func (s *MemHazardStore) Create(ctx context.Context, h *Hazard) error {
	s.lk.Lock()
	defer s.lk.Unlock()
	if _, ok := s.hazards[h.ID]; ok {
		return fmt.Errorf("duplicate hazard id: %s", h.ID)
	}
	s.hazards[h.ID] = copyHazard(h)
	return nil
}

func (s *MemHazardStore) Get(ctx context.Context, id string) (*Hazard, error) {
	s.lk.Lock()
	defer s.lk.Unlock()
	h, ok := s.hazards[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrHazardNotFound, id)
	}
	return copyHazard(h), nil
}

func (s *MemHazardStore) Update(ctx context.Context, h *Hazard) error {
	s.lk.Lock()
	defer s.lk.Unlock()
	existing, ok := s.hazards[h.ID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrHazardNotFound, h.ID)
	}
	// resolved_at is monotonic: once set it is never cleared or changed
	if existing.ResolvedAt != nil && (h.ResolvedAt == nil || !h.ResolvedAt.Equal(*existing.ResolvedAt)) {
		h.ResolvedAt = existing.ResolvedAt
	}
	s.hazards[h.ID] = copyHazard(h)
	return nil
}

func (s *MemHazardStore) ListByStatus(ctx context.Context, status HazardStatus, limit int) ([]*Hazard, error) {
	s.lk.Lock()
	defer s.lk.Unlock()
	var out []*Hazard
	for _, h := range s.hazards {
		if h.Status == status {
			out = append(out, copyHazard(h))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *MemHazardStore) FindNearby(ctx context.Context, lat, lon, radiusMeters float64, category string, since time.Time) ([]*Hazard, error) {
	s.lk.Lock()
	defer s.lk.Unlock()
	var out []*Hazard
	for _, h := range s.hazards {
		if h.Category != category || h.ResolvedAt != nil || h.Status == HazardRejected {
			continue
		}
		if h.CreatedAt.Before(since) {
			continue
		}
		if h.Lat == nil || h.Lon == nil {
			continue
		}
		if DistanceMeters(lat, lon, *h.Lat, *h.Lon) <= radiusMeters {
			out = append(out, copyHazard(h))
		}
	}
	return out, nil
}

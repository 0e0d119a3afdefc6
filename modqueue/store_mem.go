package modqueue

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// MemQueueStore is an in-process QueueStore, safe for concurrent use. All
// operations take place under one mutex, which makes assignment and
// resolution trivially atomic.
type MemQueueStore struct {
	lk    sync.Mutex
	items map[string]*ModerationItem
}

var _ QueueStore = (*MemQueueStore)(nil)

func NewMemQueueStore() *MemQueueStore {
	return &MemQueueStore{
		items: make(map[string]*ModerationItem),
	}
}

func copyItem(item *ModerationItem) *ModerationItem {
	dup := *item
	if item.AssignedModerator != nil {
		v := *item.AssignedModerator
		dup.AssignedModerator = &v
	}
	if item.Notes != nil {
		v := *item.Notes
		dup.Notes = &v
	}
	if item.ResolvedAt != nil {
		v := *item.ResolvedAt
		dup.ResolvedAt = &v
	}
	dup.Reasons = append([]string(nil), item.Reasons...)
	return &dup
}

func (s *MemQueueStore) Create(ctx context.Context, item *ModerationItem) error {
	s.lk.Lock()
	defer s.lk.Unlock()
	if _, ok := s.items[item.ID]; ok {
		return fmt.Errorf("duplicate moderation item id: %s", item.ID)
	}
	s.items[item.ID] = copyItem(item)
	return nil
}

func (s *MemQueueStore) Get(ctx context.Context, id string) (*ModerationItem, error) {
	s.lk.Lock()
	defer s.lk.Unlock()
	item, ok := s.items[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	return copyItem(item), nil
}

func (s *MemQueueStore) List(ctx context.Context, filter ListFilter) ([]*ModerationItem, error) {
	s.lk.Lock()
	defer s.lk.Unlock()
	var out []*ModerationItem
	for _, item := range s.items {
		if filter.Status != nil && item.Status != *filter.Status {
			continue
		}
		if filter.Priority != nil && item.Priority != *filter.Priority {
			continue
		}
		out = append(out, copyItem(item))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Priority.rank() != out[j].Priority.rank() {
			return out[i].Priority.rank() > out[j].Priority.rank()
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (s *MemQueueStore) AssignNext(ctx context.Context, moderatorID string) (*ModerationItem, error) {
	s.lk.Lock()
	defer s.lk.Unlock()
	var best *ModerationItem
	for _, item := range s.items {
		if item.Status.Terminal() || item.AssignedModerator != nil {
			continue
		}
		if best == nil ||
			item.Priority.rank() > best.Priority.rank() ||
			(item.Priority.rank() == best.Priority.rank() && item.CreatedAt.Before(best.CreatedAt)) {
			best = item
		}
	}
	if best == nil {
		return nil, nil
	}
	best.AssignedModerator = &moderatorID
	return copyItem(best), nil
}

func (s *MemQueueStore) Resolve(ctx context.Context, id, moderatorID string, action ModAction, notes string, resolvedAt time.Time) (*ModerationItem, error) {
	s.lk.Lock()
	defer s.lk.Unlock()
	item, ok := s.items[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	if err := applyResolution(item, moderatorID, action, notes, resolvedAt); err != nil {
		return nil, err
	}
	return copyItem(item), nil
}

func (s *MemQueueStore) Escalate(ctx context.Context, id, notes string) (*ModerationItem, error) {
	s.lk.Lock()
	defer s.lk.Unlock()
	item, ok := s.items[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	if err := applyEscalation(item, notes); err != nil {
		return nil, err
	}
	return copyItem(item), nil
}

func (s *MemQueueStore) Stats(ctx context.Context) (*StoreStats, error) {
	s.lk.Lock()
	defer s.lk.Unlock()
	out := &StoreStats{PerPriority: make(map[Priority]int)}
	for _, item := range s.items {
		if item.Status.Terminal() {
			continue
		}
		out.Pending++
		out.PerPriority[item.Priority]++
	}
	return out, nil
}

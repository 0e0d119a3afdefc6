package modqueue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// priority ordering for SQL; keep in sync with Priority.rank
const priorityOrderExpr = "CASE priority WHEN 'urgent' THEN 3 WHEN 'high' THEN 2 WHEN 'medium' THEN 1 ELSE 0 END DESC, created_at ASC"

// GormQueueStore persists moderation items in sqlite or postgres.
// Assignment is a compare-and-swap on "unassigned", and resolution a
// compare-and-swap on "unresolved", so concurrent moderators never collide.
type GormQueueStore struct {
	DB *gorm.DB
}

var _ QueueStore = (*GormQueueStore)(nil)

func NewGormQueueStore(db *gorm.DB) (*GormQueueStore, error) {
	if err := db.AutoMigrate(&ModerationItem{}); err != nil {
		return nil, fmt.Errorf("migrating moderation queue schema: %w", err)
	}
	return &GormQueueStore{DB: db}, nil
}

func (s *GormQueueStore) Create(ctx context.Context, item *ModerationItem) error {
	return s.DB.WithContext(ctx).Create(item).Error
}

func (s *GormQueueStore) Get(ctx context.Context, id string) (*ModerationItem, error) {
	var item ModerationItem
	err := s.DB.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *GormQueueStore) List(ctx context.Context, filter ListFilter) ([]*ModerationItem, error) {
	q := s.DB.WithContext(ctx).Model(&ModerationItem{}).Order(priorityOrderExpr)
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	if filter.Priority != nil {
		q = q.Where("priority = ?", *filter.Priority)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	var out []*ModerationItem
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *GormQueueStore) AssignNext(ctx context.Context, moderatorID string) (*ModerationItem, error) {
	// optimistic CAS loop: pick a candidate, then claim it only if still
	// unassigned; a lost race just means trying the next candidate
	for attempt := 0; attempt < 3; attempt++ {
		var item ModerationItem
		err := s.DB.WithContext(ctx).
			Where("status IN ?", []Status{StatusPending, StatusNeedsReview}).
			Where("assigned_moderator IS NULL").
			Order(priorityOrderExpr).
			First(&item).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		res := s.DB.WithContext(ctx).Model(&ModerationItem{}).
			Where("id = ? AND assigned_moderator IS NULL AND resolved_at IS NULL", item.ID).
			Update("assigned_moderator", moderatorID)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 1 {
			item.AssignedModerator = &moderatorID
			return &item, nil
		}
	}
	return nil, nil
}

func (s *GormQueueStore) Resolve(ctx context.Context, id, moderatorID string, action ModAction, notes string, resolvedAt time.Time) (*ModerationItem, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyResolution(item, moderatorID, action, notes, resolvedAt); err != nil {
		return nil, err
	}
	res := s.DB.WithContext(ctx).Model(&ModerationItem{}).
		Where("id = ? AND resolved_at IS NULL", id).
		Updates(map[string]any{
			"status":             item.Status,
			"assigned_moderator": item.AssignedModerator,
			"notes":              item.Notes,
			"resolved_at":        item.ResolvedAt,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// raced with a concurrent resolution
		return nil, fmt.Errorf("%w: %s", ErrAlreadyResolved, id)
	}
	return item, nil
}

func (s *GormQueueStore) Escalate(ctx context.Context, id, notes string) (*ModerationItem, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyEscalation(item, notes); err != nil {
		return nil, err
	}
	res := s.DB.WithContext(ctx).Model(&ModerationItem{}).
		Where("id = ? AND resolved_at IS NULL", id).
		Updates(map[string]any{
			"status":             item.Status,
			"priority":           item.Priority,
			"assigned_moderator": nil,
			"notes":              item.Notes,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyResolved, id)
	}
	return item, nil
}

func (s *GormQueueStore) Stats(ctx context.Context) (*StoreStats, error) {
	type row struct {
		Priority Priority
		N        int
	}
	var rows []row
	err := s.DB.WithContext(ctx).Model(&ModerationItem{}).
		Select("priority, count(*) as n").
		Where("resolved_at IS NULL").
		Group("priority").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := &StoreStats{PerPriority: make(map[Priority]int)}
	for _, r := range rows {
		out.PerPriority[r.Priority] = r.N
		out.Pending += r.N
	}
	return out, nil
}

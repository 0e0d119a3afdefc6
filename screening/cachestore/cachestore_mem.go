package cachestore

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// MemTrustCache holds trust scores in an in-process expiring LRU. Suitable
// for single-instance deployments and tests.
type MemTrustCache struct {
	Data *expirable.LRU[string, int64]
}

var _ TrustCache = MemTrustCache{}

func NewMemTrustCache(capacity int, ttl time.Duration) MemTrustCache {
	if ttl <= 0 {
		ttl = DefaultTrustTTL
	}
	return MemTrustCache{
		Data: expirable.NewLRU[string, int64](capacity, nil, ttl),
	}
}

func (s MemTrustCache) GetScore(ctx context.Context, userID string) (int64, bool, error) {
	score, ok := s.Data.Get(userID)
	if !ok {
		return 0, false, nil
	}
	return score, true, nil
}

func (s MemTrustCache) SetScore(ctx context.Context, userID string, score int64) error {
	s.Data.Add(userID, score)
	return nil
}

func (s MemTrustCache) Purge(ctx context.Context, userID string) error {
	s.Data.Remove(userID)
	return nil
}

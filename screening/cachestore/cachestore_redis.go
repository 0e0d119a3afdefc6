package cachestore

import (
	"context"
	"time"

	"github.com/go-redis/cache/v9"
	"github.com/redis/go-redis/v9"
)

// RedisTrustCache shares trust scores across instances, with a small TinyLFU
// tier in front of redis so hot submitters do not round-trip.
type RedisTrustCache struct {
	Data *cache.Cache
	TTL  time.Duration
}

var _ TrustCache = (*RedisTrustCache)(nil)

func NewRedisTrustCache(redisURL string, ttl time.Duration) (*RedisTrustCache, error) {
	if ttl <= 0 {
		ttl = DefaultTrustTTL
	}
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opt)
	// check redis connection
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		return nil, err
	}
	data := cache.New(&cache.Options{
		Redis:      rdb,
		LocalCache: cache.NewTinyLFU(10_000, ttl),
	})
	return &RedisTrustCache{
		Data: data,
		TTL:  ttl,
	}, nil
}

func trustKey(userID string) string {
	return "trust/" + userID
}

func (s *RedisTrustCache) GetScore(ctx context.Context, userID string) (int64, bool, error) {
	var score int64
	err := s.Data.Get(ctx, trustKey(userID), &score)
	if err == cache.ErrCacheMiss {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return score, true, nil
}

func (s *RedisTrustCache) SetScore(ctx context.Context, userID string, score int64) error {
	return s.Data.Set(&cache.Item{
		Ctx:   ctx,
		Key:   trustKey(userID),
		Value: score,
		TTL:   s.TTL,
	})
}

func (s *RedisTrustCache) Purge(ctx context.Context, userID string) error {
	err := s.Data.Delete(ctx, trustKey(userID))
	if err == cache.ErrCacheMiss {
		return nil
	}
	return err
}

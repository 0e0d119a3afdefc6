// Caching for submitter trust scores, with a fixed TTL and purging.
//
// The screening engine consults the cache before hitting the authoritative
// user service on every submission. A miss is (0, false, nil), never an
// error; staleness is bounded by the TTL, and a score change can be forced
// through with Purge.
package cachestore

import (
	"context"
	"time"
)

// DefaultTrustTTL bounds how stale a cached trust score may be.
const DefaultTrustTTL = 5 * time.Minute

type TrustCache interface {
	GetScore(ctx context.Context, userID string) (int64, bool, error)
	SetScore(ctx context.Context, userID string, score int64) error
	Purge(ctx context.Context, userID string) error
}

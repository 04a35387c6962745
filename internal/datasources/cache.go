package datasources

import (
	"context"

	"github.com/coachably/ranking-engine/internal/domain"
)

// RankingCacheGetter returns a cached ranking for a coachee. A cache
// miss is reported as (nil, false, nil), never as an error.
type RankingCacheGetter interface {
	GetCachedRanking(ctx context.Context, coacheeID string) ([]domain.RankingResult, bool, error)
}

// RankingCacheSetter stores a computed ranking for a coachee.
type RankingCacheSetter interface {
	SetCachedRanking(ctx context.Context, coacheeID string, results []domain.RankingResult) error
}

// RankingCacheInvalidator drops a coachee's cached ranking.
type RankingCacheInvalidator interface {
	InvalidateCachedRanking(ctx context.Context, coacheeID string) error
}

// RankingCache combines the ranking cache operations.
type RankingCache interface {
	RankingCacheGetter
	RankingCacheSetter
	RankingCacheInvalidator
}

// NullRankingCache is a null implementation of RankingCache. Every
// lookup misses, so rankings are always computed fresh.
type NullRankingCache struct{}

var _ RankingCache = NullRankingCache{}

func (NullRankingCache) GetCachedRanking(_ context.Context, _ string) ([]domain.RankingResult, bool, error) {
	return nil, false, nil
}

func (NullRankingCache) SetCachedRanking(_ context.Context, _ string, _ []domain.RankingResult) error {
	return nil
}

func (NullRankingCache) InvalidateCachedRanking(_ context.Context, _ string) error {
	return nil
}

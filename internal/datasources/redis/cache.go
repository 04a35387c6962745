// Package redis caches computed rankings so repeated requests for the
// same coachee within the TTL skip the scoring pipeline.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/coachably/ranking-engine/internal/datasources"
	"github.com/coachably/ranking-engine/internal/domain"
)

var _ datasources.RankingCache = (*RankingCache)(nil)

const rankingKeyPrefix = "ranking:v1:"

type RankingCache struct {
	client *redis.Client
	ttl    time.Duration
}

// Connect builds a ranking cache against the given Redis address,
// verifying the connection before returning.
func Connect(ctx context.Context, addr, password string, ttl time.Duration) (*RankingCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("checking Redis connection: %w", err)
	}

	return &RankingCache{client: client, ttl: ttl}, nil
}

// New wraps an existing client, for tests that use a miniredis or
// pre-configured instance.
func New(client *redis.Client, ttl time.Duration) *RankingCache {
	return &RankingCache{client: client, ttl: ttl}
}

func (c *RankingCache) GetCachedRanking(
	ctx context.Context, coacheeID string,
) ([]domain.RankingResult, bool, error) {
	data, err := c.client.Get(ctx, rankingKeyPrefix+coacheeID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading cached ranking: %w", err)
	}

	var results []domain.RankingResult
	if err := json.Unmarshal(data, &results); err != nil {
		// A malformed entry is treated as a miss; it will be
		// overwritten by the next computed ranking.
		return nil, false, nil
	}

	return results, true, nil
}

func (c *RankingCache) SetCachedRanking(
	ctx context.Context, coacheeID string, results []domain.RankingResult,
) error {
	data, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("encoding ranking for cache: %w", err)
	}

	if err := c.client.Set(ctx, rankingKeyPrefix+coacheeID, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("writing cached ranking: %w", err)
	}
	return nil
}

func (c *RankingCache) InvalidateCachedRanking(ctx context.Context, coacheeID string) error {
	if err := c.client.Del(ctx, rankingKeyPrefix+coacheeID).Err(); err != nil {
		return fmt.Errorf("invalidating cached ranking: %w", err)
	}
	return nil
}

func (c *RankingCache) Close() error {
	return c.client.Close()
}

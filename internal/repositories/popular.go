package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"weather-info/internal/models"

	"github.com/redis/go-redis/v9"
)

const popularKey = "popular:requests"

// PopularRepository tracks how often each request is served. Entries live in
// a redis sorted set keyed by the serialized refresh command, scored by hit
// count, so the cron publisher can re-fetch the hottest ones.
type PopularRepository struct {
	redis *redis.Client
}

func NewPopularRepository(redis *redis.Client) *PopularRepository {
	return &PopularRepository{redis: redis}
}

// Bump increments the hit count for a request.
func (r *PopularRepository) Bump(ctx context.Context, cmd models.RefreshCommand) error {
	member, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("marshal refresh command: %w", err)
	}
	return r.redis.ZIncrBy(ctx, popularKey, 1, string(member)).Err()
}

// Register adds a request with an initial score so it is refreshed even
// before organic traffic reaches it.
func (r *PopularRepository) Register(ctx context.Context, cmd models.RefreshCommand, score float64) error {
	member, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("marshal refresh command: %w", err)
	}
	return r.redis.ZAdd(ctx, popularKey, redis.Z{Score: score, Member: string(member)}).Err()
}

// GetTopRequests returns the n most requested commands, hottest first.
func (r *PopularRepository) GetTopRequests(ctx context.Context, n int64) ([]models.RefreshCommand, error) {
	members, err := r.redis.ZRevRange(ctx, popularKey, 0, n-1).Result()
	if err != nil {
		return nil, fmt.Errorf("read popular set: %w", err)
	}

	var top []models.RefreshCommand
	for _, m := range members {
		var cmd models.RefreshCommand
		if err := json.Unmarshal([]byte(m), &cmd); err != nil {
			continue // skip entries written by older versions
		}
		top = append(top, cmd)
	}
	return top, nil
}

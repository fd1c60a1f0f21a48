package services

import (
	"context"
	"encoding/json"
	"log"

	"weather-info/internal/kafka"

	"github.com/redis/go-redis/v9"
)

// CacheService is a redis read-through cache around a Fetcher. On a miss the
// fetched value is published to kafka; the syncer workers write it back into
// redis, so the request path never blocks on the cache write.
type CacheService[T any] struct {
	redis    *redis.Client
	producer *kafka.Producer
	fetcher  Fetcher[T]
}

func NewCacheService[T any](
	redis *redis.Client,
	producer *kafka.Producer,
	fetcher Fetcher[T],
) *CacheService[T] {
	return &CacheService[T]{
		redis:    redis,
		producer: producer,
		fetcher:  fetcher,
	}
}

func (s *CacheService[T]) Get(ctx context.Context, params ...string) (*T, error) {
	key := s.fetcher.CacheKey(params...)

	if data, err := s.redis.Get(ctx, key).Bytes(); err == nil {
		var result T
		if json.Unmarshal(data, &result) == nil {
			log.Printf("Cache HIT: %s", key)
			return &result, nil
		}
	}

	result, err := s.fetcher.Fetch(ctx, params...)
	if err != nil {
		return nil, err
	}

	if s.producer != nil {
		s.producer.PublishObjectAsync([]byte(key), result)
	}

	return result, nil
}

package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const tokenTTL = 24 * time.Hour

// TokenService issues API tokens. A token lives in redis under token:<value>
// until it expires; the auth middleware only checks key existence.
type TokenService struct {
	redis *redis.Client
}

func NewTokenService(redis *redis.Client) *TokenService {
	return &TokenService{redis: redis}
}

func (s *TokenService) Issue(ctx context.Context) (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	token := hex.EncodeToString(buf)

	if err := s.redis.Set(ctx, "token:"+token, "1", tokenTTL).Err(); err != nil {
		return "", fmt.Errorf("store token: %w", err)
	}
	return token, nil
}

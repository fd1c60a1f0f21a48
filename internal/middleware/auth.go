package middleware

import (
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"
)

// AuthRequired checks that the X-API-Token header names a token issued via
// POST /token and still present in redis.
func AuthRequired(redisClient *redis.Client) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get("X-API-Token")
			if token == "" {
				http.Error(w, "X-API-Token header required", http.StatusUnauthorized)
				return
			}

			ctx := r.Context()
			exists, err := redisClient.Exists(ctx, "token:"+token).Result()
			if err != nil {
				log.Printf("Redis EXISTS error for token: %v", err)
				http.Error(w, "Internal error", http.StatusInternalServerError)
				return
			}

			if exists == 0 {
				http.Error(w, "Unknown or expired token. Request one via POST /token.", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

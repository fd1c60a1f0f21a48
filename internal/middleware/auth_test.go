package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestAuthRequiredMissingHeader(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond})
	defer rdb.Close()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler should not be reached")
	})
	h := AuthRequired(rdb)(next)

	req := httptest.NewRequest(http.MethodGet, "/weather", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthRequiredRedisDown(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond, MaxRetries: -1})
	defer rdb.Close()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler should not be reached")
	})
	h := AuthRequired(rdb)(next)

	req := httptest.NewRequest(http.MethodGet, "/weather", nil)
	req.Header.Set("X-API-Token", "deadbeef")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestAuthRequiredTokenLifecycle(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	defer rdb.Close()
	req := httptest.NewRequest(http.MethodGet, "/weather", nil)
	if err := rdb.Ping(req.Context()).Err(); err != nil {
		t.Skipf("Redis unavailable: %v", err)
	}

	token := "test-token-" + t.Name()
	if err := rdb.Set(req.Context(), "token:"+token, "1", time.Minute).Err(); err != nil {
		t.Fatalf("seed token: %v", err)
	}
	t.Cleanup(func() { rdb.Del(req.Context(), "token:"+token) })

	var reached bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})
	h := AuthRequired(rdb)(next)

	req.Header.Set("X-API-Token", token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if !reached || rec.Code != http.StatusOK {
		t.Fatalf("expected pass-through, got %d (reached=%v)", rec.Code, reached)
	}

	// Unknown token is rejected.
	req = httptest.NewRequest(http.MethodGet, "/weather", nil)
	req.Header.Set("X-API-Token", "unknown-"+token)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown token, got %d", rec.Code)
	}
}

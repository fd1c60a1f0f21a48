package repositories

import (
	"context"
	"testing"

	"weather-info/internal/models"

	"github.com/redis/go-redis/v9"
)

func TestPopularRepositoryBumpAndTop(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	defer rdb.Close()
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis unavailable: %v", err)
	}

	rdb.Del(ctx, popularKey)
	t.Cleanup(func() { rdb.Del(context.Background(), popularKey) })

	repo := NewPopularRepository(rdb)

	berlin := models.RefreshCommand{Type: "weather", Args: map[string]string{"lat": "52.5", "lng": "13.4", "lang": "en"}}
	sydney := models.RefreshCommand{Type: "weather", Args: map[string]string{"lat": "-33.86", "lng": "151.2", "lang": "en"}}

	// Sydney gets more traffic than Berlin.
	for i := 0; i < 3; i++ {
		if err := repo.Bump(ctx, sydney); err != nil {
			t.Fatalf("bump failed: %v", err)
		}
	}
	if err := repo.Bump(ctx, berlin); err != nil {
		t.Fatalf("bump failed: %v", err)
	}

	top, err := repo.GetTopRequests(ctx, 10)
	if err != nil {
		t.Fatalf("top failed: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(top))
	}
	if top[0].Args["lat"] != "-33.86" {
		t.Errorf("expected Sydney first, got %+v", top[0])
	}

	// An admin-registered entry with a high score outranks both.
	query := models.RefreshCommand{Type: "geocode", Args: map[string]string{"q": "Invalidenstr 116"}}
	if err := repo.Register(ctx, query, 10); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	top, err = repo.GetTopRequests(ctx, 1)
	if err != nil {
		t.Fatalf("top failed: %v", err)
	}
	if len(top) != 1 || top[0].Type != "geocode" {
		t.Errorf("expected registered geocode entry first, got %+v", top)
	}
}

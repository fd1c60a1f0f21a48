package integration

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"weather-info/internal/kafka"
	"weather-info/internal/models"
	"weather-info/internal/workers"
	testutils "weather-info/test/utils"

	"github.com/avast/retry-go/v4"
	"github.com/redis/go-redis/v9"
)

// Verifies the kafka -> redis sync path: a weather value published to the
// reports topic ends up in the cache under its key.
func TestWeatherSyncer_KafkaToRedis(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	defer rdb.Close()
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis unavailable: %v", err)
	}

	testutils.CreateKafkaTopic(t, "weather-reports")
	time.Sleep(500 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	consumer := kafka.NewConsumer("weather-reports", "test-weather-"+t.Name())
	workers.StartAllWorkers(
		ctx,
		rdb,
		&kafka.KafkaBundle{WeatherConsumer: consumer},
		nil,
		"en",
	)

	time.Sleep(1 * time.Second)

	producer := kafka.NewProducer("weather-reports")
	defer producer.Close()

	key := "weather:52.5:13.4:en"
	rdb.Del(ctx, key)
	t.Cleanup(func() { rdb.Del(context.Background(), key) })

	published := models.Weather{
		City:        "Berlin",
		Temperature: 21.5,
		Description: "clear",
		Updated:     time.Now(),
	}
	value, _ := json.Marshal(published)
	if err := producer.Publish([]byte(key), value); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	var redisVal string
	err := retry.Do(
		func() error {
			return rdb.Get(ctx, key).Scan(&redisVal)
		},
		retry.Attempts(150),
		retry.Delay(100*time.Millisecond),
	)
	if err != nil {
		t.Fatalf("value not in Redis after 15s: %v", err)
	}

	var fromRedis models.Weather
	if err := json.Unmarshal([]byte(redisVal), &fromRedis); err != nil {
		t.Fatalf("JSON parse error: %v", err)
	}

	if fromRedis.City != "Berlin" {
		t.Errorf("expected city Berlin, got %s", fromRedis.City)
	}
	if fromRedis.Temperature != 21.5 {
		t.Errorf("expected temperature 21.5, got %f", fromRedis.Temperature)
	}
}

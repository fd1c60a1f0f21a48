package workers

import (
	"context"
	"log"
	"time"

	"weather-info/internal/here"
	"weather-info/internal/kafka"
	"weather-info/internal/models"
	"weather-info/internal/services"

	"github.com/redis/go-redis/v9"
)

type WorkerBundle struct {
	WeatherWorker *GenericWorker[models.Weather]
	GeocodeWorker *GenericWorker[models.Locations]
}

// StartAllWorkers wires the kafka consumers into redis: syncers persist
// values the HTTP path already fetched, and refresh workers re-fetch popular
// requests on command.
func StartAllWorkers(
	ctx context.Context,
	redisClient *redis.Client,
	kafkaBundle *kafka.KafkaBundle,
	hereClient *here.Client,
	defaultLang string,
) *WorkerBundle {
	weatherCh := make(chan []byte, 100)
	geocodeCh := make(chan []byte, 100)

	StartRefreshMultiplexer(kafkaBundle.RefreshConsumer, weatherCh, geocodeCh)
	startWeatherSyncer(redisClient, kafkaBundle.WeatherConsumer)
	startGeocodeSyncer(redisClient, kafkaBundle.GeocodeConsumer)

	weatherWorker := NewGenericWorker[models.Weather](weatherCh, redisClient, WeatherRefreshHandler{
		Fetcher:     services.WeatherFetcher{Client: hereClient},
		DefaultLang: defaultLang,
	})
	geocodeWorker := NewGenericWorker[models.Locations](geocodeCh, redisClient, GeocodeRefreshHandler{
		Fetcher:     services.GeocodeFetcher{Client: hereClient},
		DefaultLang: defaultLang,
	})

	go weatherWorker.Start(ctx)
	go geocodeWorker.Start(ctx)

	return &WorkerBundle{
		WeatherWorker: weatherWorker,
		GeocodeWorker: geocodeWorker,
	}
}

func startWeatherSyncer(redisClient *redis.Client, consumer *kafka.Consumer) {
	if consumer == nil {
		return
	}
	consumer.Start(func(key, value []byte) {
		if len(key) == 0 {
			log.Println("WeatherSyncer: empty key")
			return
		}
		ctx := context.Background()
		redisKey := string(key)
		if err := redisClient.Set(ctx, redisKey, value, 10*time.Minute).Err(); err != nil {
			log.Printf("WeatherSyncer: failed set %s: %v", redisKey, err)
			return
		}
		log.Printf("Weather cached in Redis: %s", redisKey)
	})
}

func startGeocodeSyncer(redisClient *redis.Client, consumer *kafka.Consumer) {
	if consumer == nil {
		return
	}
	consumer.Start(func(key, value []byte) {
		if len(key) == 0 {
			log.Println("GeocodeSyncer: empty key")
			return
		}
		ctx := context.Background()
		redisKey := string(key)
		if err := redisClient.Set(ctx, redisKey, value, 24*time.Hour).Err(); err != nil {
			log.Printf("GeocodeSyncer: failed set %s: %v", redisKey, err)
			return
		}
		log.Printf("Geocode result cached in Redis: %s", redisKey)
	})
}

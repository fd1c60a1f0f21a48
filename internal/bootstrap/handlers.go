package bootstrap

import (
	"weather-info/internal/config"
	"weather-info/internal/handlers"
	"weather-info/internal/here"
	"weather-info/internal/kafka"
	"weather-info/internal/models"
	"weather-info/internal/repositories"
	"weather-info/internal/services"

	"github.com/redis/go-redis/v9"
)

type HandlersBundle struct {
	WeatherHandler   *handlers.WeatherHandler
	AstronomyHandler *handlers.AstronomyHandler
	GeocodeHandler   *handlers.GeocodeHandler
	TokenHandler     *handlers.TokenHandler
	AdminHandler     *handlers.AdminHandler
}

type BootstrapBundle struct {
	Handlers    *HandlersBundle
	PopularRepo *repositories.PopularRepository
}

func InitBootstrap(
	cfg *config.Config,
	redisClient *redis.Client,
	kafkaBundle *kafka.KafkaBundle,
	hereClient *here.Client,
) *BootstrapBundle {
	popularRepo := repositories.NewPopularRepository(redisClient)

	weatherService := services.NewCacheService[models.Weather](
		redisClient,
		kafkaBundle.WeatherProducer,
		services.WeatherFetcher{Client: hereClient},
	)
	astronomyService := services.NewCacheService[models.Astronomy](
		redisClient,
		kafkaBundle.WeatherProducer,
		services.AstronomyFetcher{Client: hereClient},
	)
	geocodeService := services.NewCacheService[models.Locations](
		redisClient,
		kafkaBundle.GeocodeProducer,
		services.GeocodeFetcher{Client: hereClient},
	)

	handlersBundle := &HandlersBundle{
		WeatherHandler:   handlers.NewWeatherHandler(weatherService, popularRepo, cfg.DefaultLanguage),
		AstronomyHandler: handlers.NewAstronomyHandler(astronomyService, cfg.DefaultLanguage),
		GeocodeHandler:   handlers.NewGeocodeHandler(geocodeService, cfg.DefaultLanguage),
		TokenHandler:     handlers.NewTokenHandler(services.NewTokenService(redisClient)),
		AdminHandler:     handlers.NewAdminHandler(services.NewAdminService(popularRepo)),
	}

	return &BootstrapBundle{
		Handlers:    handlersBundle,
		PopularRepo: popularRepo,
	}
}

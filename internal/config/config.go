package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HereAPIKey      string
	RedisURL        string
	WeatherTopic    string
	GeocodeTopic    string
	RefreshTopic    string
	DefaultLanguage string
	Port            string
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println(".env not loaded (ok for prod)")
	}
	return &Config{
		HereAPIKey:      os.Getenv("HERE_API_KEY"),
		RedisURL:        getEnv("REDIS_URL", "redis://localhost:6379"),
		WeatherTopic:    getEnv("WEATHER_KAFKA_TOPIC", "weather-reports"),
		GeocodeTopic:    getEnv("GEOCODE_KAFKA_TOPIC", "geocode-lookups"),
		RefreshTopic:    getEnv("REFRESH_KAFKA_TOPIC", "refresh-commands"),
		DefaultLanguage: getEnv("DEFAULT_LANGUAGE", "en"),
		Port:            getEnv("PORT", "8080"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

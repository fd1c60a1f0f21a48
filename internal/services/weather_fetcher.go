package services

import (
	"context"
	"fmt"
	"time"

	"weather-info/internal/here"
	"weather-info/internal/models"
)

type WeatherFetcher struct {
	Client *here.Client
}

func (WeatherFetcher) CacheKey(params ...string) string {
	return "weather:" + normalizeKey(params)
}

func (f WeatherFetcher) Fetch(ctx context.Context, params ...string) (*models.Weather, error) {
	lat, lng, lang, err := coordinateParams(params)
	if err != nil {
		return nil, err
	}

	observations, err := f.Client.Observations(ctx, lat, lng, lang)
	if err != nil {
		return nil, fmt.Errorf("here observations: %w", err)
	}
	if len(observations) == 0 {
		return nil, fmt.Errorf("no observation returned for %v,%v", lat, lng)
	}

	// oneobservation=true makes the first entry the best mapped station.
	obs := observations[0]
	return &models.Weather{
		City:              obs.City,
		Country:           obs.Country,
		Latitude:          obs.Latitude,
		Longitude:         obs.Longitude,
		Temperature:       obs.Temperature,
		HighTemperature:   obs.HighTemperature,
		LowTemperature:    obs.LowTemperature,
		Humidity:          obs.Humidity,
		Description:       obs.Description,
		WindSpeed:         obs.WindSpeed,
		WindDirection:     obs.WindDirection,
		BarometerPressure: obs.BarometerPressure,
		Visibility:        obs.Visibility,
		Updated:           time.Now(),
	}, nil
}

package services

import (
	"context"
	"fmt"
	"time"

	"weather-info/internal/here"
	"weather-info/internal/models"
)

type AstronomyFetcher struct {
	Client *here.Client
}

func (AstronomyFetcher) CacheKey(params ...string) string {
	return "astronomy:" + normalizeKey(params)
}

func (f AstronomyFetcher) Fetch(ctx context.Context, params ...string) (*models.Astronomy, error) {
	lat, lng, lang, err := coordinateParams(params)
	if err != nil {
		return nil, err
	}

	entries, err := f.Client.Astronomy(ctx, lat, lng, lang)
	if err != nil {
		return nil, fmt.Errorf("here astronomy: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no astronomy data returned for %v,%v", lat, lng)
	}

	// The first entry is today; the rest are the forecast days.
	today := entries[0]
	return &models.Astronomy{
		City:          today.City,
		Sunrise:       today.Sunrise,
		Sunset:        today.Sunset,
		Moonrise:      today.Moonrise,
		Moonset:       today.Moonset,
		MoonPhase:     today.MoonPhase,
		MoonPhaseDesc: today.MoonPhaseDesc,
		Updated:       time.Now(),
	}, nil
}

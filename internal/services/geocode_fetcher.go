package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"weather-info/internal/here"
	"weather-info/internal/models"
)

type GeocodeFetcher struct {
	Client *here.Client
}

func (GeocodeFetcher) CacheKey(params ...string) string {
	return "geocode:" + normalizeKey(params)
}

func (f GeocodeFetcher) Fetch(ctx context.Context, params ...string) (*models.Locations, error) {
	if len(params) < 1 || strings.TrimSpace(params[0]) == "" {
		return nil, fmt.Errorf("query required")
	}
	query := strings.TrimSpace(params[0])
	lang := ""
	if len(params) > 1 {
		lang = strings.TrimSpace(params[1])
	}

	places, err := f.Client.Geocode(ctx, query, lang)
	if err != nil {
		return nil, fmt.Errorf("here geocode: %w", err)
	}

	result := &models.Locations{Query: query}
	for _, p := range places {
		result.Results = append(result.Results, models.Location{
			Label:       p.Address.Label,
			City:        p.Address.City,
			State:       p.Address.State,
			CountryCode: p.Address.CountryCode,
			PostalCode:  p.Address.PostalCode,
			Latitude:    p.Position.Lat,
			Longitude:   p.Position.Lng,
			Updated:     time.Now(),
		})
	}
	return result, nil
}

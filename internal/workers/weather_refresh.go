package workers

import (
	"context"
	"encoding/json"
	"fmt"

	"weather-info/internal/models"
	"weather-info/internal/services"
)

// WeatherRefreshHandler re-fetches current conditions for a refresh command
// published by the cron publisher.
type WeatherRefreshHandler struct {
	Fetcher services.WeatherFetcher

	// DefaultLang must match the HTTP read path's default, so commands
	// without a lang cache under the key readers actually look up.
	DefaultLang string
}

func (WeatherRefreshHandler) Type() string {
	return "weather"
}

func (h WeatherRefreshHandler) Handle(
	ctx context.Context,
	key, value []byte,
) (*models.Weather, string, error) {
	var cmd models.RefreshCommand
	if err := json.Unmarshal(value, &cmd); err != nil {
		return nil, "", fmt.Errorf("invalid refresh command: %w", err)
	}
	if cmd.Type != "weather" {
		return nil, "", fmt.Errorf("unexpected command type %q", cmd.Type)
	}

	lat, lng := cmd.Args["lat"], cmd.Args["lng"]
	if lat == "" || lng == "" {
		return nil, "", fmt.Errorf("lat and lng required in command")
	}
	lang := cmd.Args["lang"]
	if lang == "" {
		lang = h.DefaultLang
	}
	params := []string{lat, lng}
	if lang != "" {
		params = append(params, lang)
	}

	weather, err := h.Fetcher.Fetch(ctx, params...)
	if err != nil {
		return nil, "", err
	}
	return weather, h.Fetcher.CacheKey(params...), nil
}

func (WeatherRefreshHandler) TTL() int {
	return 600
}

package workers

import (
	"context"
	"encoding/json"
	"fmt"

	"weather-info/internal/models"
	"weather-info/internal/services"
)

// GeocodeRefreshHandler re-resolves a geocoding query for a refresh command.
type GeocodeRefreshHandler struct {
	Fetcher services.GeocodeFetcher

	// DefaultLang must match the HTTP read path's default, so commands
	// without a lang cache under the key readers actually look up.
	DefaultLang string
}

func (GeocodeRefreshHandler) Type() string {
	return "geocode"
}

func (h GeocodeRefreshHandler) Handle(
	ctx context.Context,
	key, value []byte,
) (*models.Locations, string, error) {
	var cmd models.RefreshCommand
	if err := json.Unmarshal(value, &cmd); err != nil {
		return nil, "", fmt.Errorf("invalid refresh command: %w", err)
	}
	if cmd.Type != "geocode" {
		return nil, "", fmt.Errorf("unexpected command type %q", cmd.Type)
	}

	query := cmd.Args["q"]
	if query == "" {
		return nil, "", fmt.Errorf("q required in command")
	}
	lang := cmd.Args["lang"]
	if lang == "" {
		lang = h.DefaultLang
	}
	params := []string{query}
	if lang != "" {
		params = append(params, lang)
	}

	locations, err := h.Fetcher.Fetch(ctx, params...)
	if err != nil {
		return nil, "", err
	}
	return locations, h.Fetcher.CacheKey(params...), nil
}

// Geocoding results are stable, keep them for a day.
func (GeocodeRefreshHandler) TTL() int {
	return 86400
}

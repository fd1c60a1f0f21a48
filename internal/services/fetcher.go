package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Fetcher resolves one kind of remote lookup. CacheKey must be stable for a
// given parameter list; Fetch performs the actual upstream call.
type Fetcher[T any] interface {
	CacheKey(params ...string) string
	Fetch(ctx context.Context, params ...string) (*T, error)
}

func normalizeKey(params []string) string {
	cleaned := make([]string, len(params))
	for i, p := range params {
		cleaned[i] = strings.ToLower(strings.TrimSpace(p))
	}
	return strings.Join(cleaned, ":")
}

// coordinateParams parses the (lat, lng[, lang]) parameter convention shared
// by the coordinate-based fetchers.
func coordinateParams(params []string) (lat, lng float64, lang string, err error) {
	if len(params) < 2 {
		return 0, 0, "", fmt.Errorf("latitude and longitude required")
	}
	lat, err = strconv.ParseFloat(strings.TrimSpace(params[0]), 64)
	if err != nil {
		return 0, 0, "", fmt.Errorf("invalid latitude %q: %w", params[0], err)
	}
	lng, err = strconv.ParseFloat(strings.TrimSpace(params[1]), 64)
	if err != nil {
		return 0, 0, "", fmt.Errorf("invalid longitude %q: %w", params[1], err)
	}
	if len(params) > 2 {
		lang = strings.TrimSpace(params[2])
	}
	return lat, lng, lang, nil
}

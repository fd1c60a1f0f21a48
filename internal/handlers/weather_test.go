package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"weather-info/internal/models"
	"weather-info/internal/services"

	"github.com/redis/go-redis/v9"
)

type stubWeatherFetcher struct {
	result *models.Weather
	err    error
}

func (stubWeatherFetcher) CacheKey(params ...string) string {
	return "weather:stub"
}

func (s stubWeatherFetcher) Fetch(ctx context.Context, params ...string) (*models.Weather, error) {
	return s.result, s.err
}

func deadRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func newWeatherHandler(fetcher stubWeatherFetcher) *WeatherHandler {
	svc := services.NewCacheService[models.Weather](deadRedis(), nil, fetcher)
	return NewWeatherHandler(svc, nil, "en")
}

func TestGetWeatherSuccess(t *testing.T) {
	h := newWeatherHandler(stubWeatherFetcher{
		result: &models.Weather{City: "Berlin", Temperature: 21.5, Description: "clear"},
	})

	req := httptest.NewRequest(http.MethodGet, "/weather?lat=52.5&lng=13.4", nil)
	rec := httptest.NewRecorder()
	h.GetWeather(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %s", ct)
	}

	var got models.Weather
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if got.City != "Berlin" || got.Temperature != 21.5 || got.Description != "clear" {
		t.Errorf("unexpected body: %+v", got)
	}
}

func TestGetWeatherMissingParams(t *testing.T) {
	h := newWeatherHandler(stubWeatherFetcher{})

	for _, target := range []string{"/weather", "/weather?lat=52.5", "/weather?lng=13.4"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		h.GetWeather(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", target, rec.Code)
		}
	}
}

func TestGetWeatherUpstreamError(t *testing.T) {
	h := newWeatherHandler(stubWeatherFetcher{err: errors.New("upstream down")})

	req := httptest.NewRequest(http.MethodGet, "/weather?lat=52.5&lng=13.4", nil)
	rec := httptest.NewRecorder()
	h.GetWeather(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var envelope map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("invalid error JSON: %v", err)
	}
	if envelope["error"] == "" {
		t.Error("expected error message in envelope")
	}
}

type stubGeocodeFetcher struct {
	result *models.Locations
}

func (stubGeocodeFetcher) CacheKey(params ...string) string {
	return "geocode:stub"
}

func (s stubGeocodeFetcher) Fetch(ctx context.Context, params ...string) (*models.Locations, error) {
	return s.result, nil
}

func TestGeocodeSuccess(t *testing.T) {
	svc := services.NewCacheService[models.Locations](deadRedis(), nil, stubGeocodeFetcher{
		result: &models.Locations{
			Query:   "Berlin",
			Results: []models.Location{{Label: "Berlin, Deutschland", Latitude: 52.52, Longitude: 13.405}},
		},
	})
	h := NewGeocodeHandler(svc, "en")

	req := httptest.NewRequest(http.MethodGet, "/geocode?q=Berlin", nil)
	rec := httptest.NewRecorder()
	h.Geocode(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got models.Locations
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if len(got.Results) != 1 || got.Results[0].Latitude != 52.52 {
		t.Errorf("unexpected body: %+v", got)
	}
}

func TestGeocodeMissingQuery(t *testing.T) {
	svc := services.NewCacheService[models.Locations](deadRedis(), nil, stubGeocodeFetcher{})
	h := NewGeocodeHandler(svc, "en")

	req := httptest.NewRequest(http.MethodGet, "/geocode", nil)
	rec := httptest.NewRecorder()
	h.Geocode(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"weather-info/internal/models"
	"weather-info/internal/repositories"
	"weather-info/internal/services"
)

type WeatherHandler struct {
	service     *services.CacheService[models.Weather]
	popular     *repositories.PopularRepository
	defaultLang string
}

func NewWeatherHandler(
	service *services.CacheService[models.Weather],
	popular *repositories.PopularRepository,
	defaultLang string,
) *WeatherHandler {
	return &WeatherHandler{service: service, popular: popular, defaultLang: defaultLang}
}

func (h *WeatherHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	lat := strings.TrimSpace(r.URL.Query().Get("lat"))
	lng := strings.TrimSpace(r.URL.Query().Get("lng"))
	if lat == "" || lng == "" {
		writeError(w, http.StatusBadRequest, "query parameters 'lat' and 'lng' are required")
		return
	}
	lang := strings.TrimSpace(r.URL.Query().Get("lang"))
	if lang == "" {
		lang = h.defaultLang
	}

	weather, err := h.service.Get(r.Context(), lat, lng, lang)
	if err != nil {
		log.Printf("Weather error for %s,%s: %v", lat, lng, err)
		writeError(w, http.StatusInternalServerError, "could not fetch weather")
		return
	}

	if h.popular != nil {
		cmd := models.RefreshCommand{Type: "weather", Args: map[string]string{"lat": lat, "lng": lng, "lang": lang}}
		if err := h.popular.Bump(r.Context(), cmd); err != nil {
			log.Printf("Popularity bump failed: %v", err)
		}
	}

	writeJSON(w, http.StatusOK, weather)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

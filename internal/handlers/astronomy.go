package handlers

import (
	"log"
	"net/http"
	"strings"

	"weather-info/internal/models"
	"weather-info/internal/services"
)

type AstronomyHandler struct {
	service     *services.CacheService[models.Astronomy]
	defaultLang string
}

func NewAstronomyHandler(service *services.CacheService[models.Astronomy], defaultLang string) *AstronomyHandler {
	return &AstronomyHandler{service: service, defaultLang: defaultLang}
}

func (h *AstronomyHandler) GetAstronomy(w http.ResponseWriter, r *http.Request) {
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

	astronomy, err := h.service.Get(r.Context(), lat, lng, lang)
	if err != nil {
		log.Printf("Astronomy error for %s,%s: %v", lat, lng, err)
		writeError(w, http.StatusInternalServerError, "could not fetch astronomy data")
		return
	}

	writeJSON(w, http.StatusOK, astronomy)
}

package handlers

import (
	"log"
	"net/http"
	"strings"

	"weather-info/internal/models"
	"weather-info/internal/services"
)

type GeocodeHandler struct {
	service     *services.CacheService[models.Locations]
	defaultLang string
}

func NewGeocodeHandler(service *services.CacheService[models.Locations], defaultLang string) *GeocodeHandler {
	return &GeocodeHandler{service: service, defaultLang: defaultLang}
}

func (h *GeocodeHandler) Geocode(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeError(w, http.StatusBadRequest, "query parameter 'q' is required")
		return
	}
	lang := strings.TrimSpace(r.URL.Query().Get("lang"))
	if lang == "" {
		lang = h.defaultLang
	}

	locations, err := h.service.Get(r.Context(), query, lang)
	if err != nil {
		log.Printf("Geocode error for %q: %v", query, err)
		writeError(w, http.StatusInternalServerError, "could not geocode query")
		return
	}

	writeJSON(w, http.StatusOK, locations)
}

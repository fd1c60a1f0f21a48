package handlers

import (
	"log"
	"net/http"

	"weather-info/internal/services"
)

type TokenHandler struct {
	service *services.TokenService
}

func NewTokenHandler(service *services.TokenService) *TokenHandler {
	return &TokenHandler{service: service}
}

func (h *TokenHandler) CreateToken(w http.ResponseWriter, r *http.Request) {
	token, err := h.service.Issue(r.Context())
	if err != nil {
		log.Printf("Token issue failed: %v", err)
		writeError(w, http.StatusInternalServerError, "could not issue token")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"token": token})
}

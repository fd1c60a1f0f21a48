package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"weather-info/internal/models"
	"weather-info/internal/services"
)

type AdminHandler struct {
	service *services.AdminService
}

func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{service: adminService}
}

// CreatePopular registers a request for background refresh from a command
// line like "/weather 52.52 13.405 en" or "/geocode Invalidenstr 116, Berlin".
func (h *AdminHandler) CreatePopular(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		writeError(w, http.StatusBadRequest, "field 'text' is required")
		return
	}

	task, err := parseCommandToTask(text)
	if err != nil {
		writeError(w, http.StatusBadRequest, "parse error: "+err.Error())
		return
	}

	if err := h.service.SaveTask(r.Context(), task); err != nil {
		log.Printf("Failed to save task: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	resp := struct {
		OK   bool              `json:"ok"`
		Type string            `json:"type"`
		Args map[string]string `json:"args"`
	}{
		OK:   true,
		Type: task.Title,
		Args: task.Args,
	}
	writeJSON(w, http.StatusCreated, resp)
}

func parseCommandToTask(text string) (models.Task, error) {
	parts := strings.Fields(text)
	if len(parts) == 0 {
		return models.Task{}, fmt.Errorf("empty command")
	}

	cmd := parts[0]
	args := make(models.TaskArgs)

	switch cmd {
	case "/weather":
		if len(parts) < 3 {
			return models.Task{}, fmt.Errorf("usage: /weather <lat> <lng> [lang]")
		}
		if _, err := strconv.ParseFloat(parts[1], 64); err != nil {
			return models.Task{}, fmt.Errorf("invalid latitude %q", parts[1])
		}
		if _, err := strconv.ParseFloat(parts[2], 64); err != nil {
			return models.Task{}, fmt.Errorf("invalid longitude %q", parts[2])
		}
		args["lat"] = parts[1]
		args["lng"] = parts[2]
		if len(parts) > 3 {
			args["lang"] = strings.ToLower(parts[3])
		}
		return models.Task{
			Title:     "weather",
			Args:      args,
			CreatedAt: time.Now(),
		}, nil

	case "/geocode":
		if len(parts) < 2 {
			return models.Task{}, fmt.Errorf("usage: /geocode <query>")
		}
		args["q"] = strings.Join(parts[1:], " ")
		return models.Task{
			Title:     "geocode",
			Args:      args,
			CreatedAt: time.Now(),
		}, nil

	default:
		return models.Task{}, fmt.Errorf("unknown command: %s", cmd)
	}
}

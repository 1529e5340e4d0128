// Package handlers provides HTTP handlers for alert checks.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/marketviz/chartkit/internal/modules/alerts"
	"github.com/rs/zerolog"
)

// Handler handles alert HTTP requests
type Handler struct {
	service *alerts.Service
	log     zerolog.Logger
}

// NewHandler creates a new alerts handler
func NewHandler(service *alerts.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "alerts").Logger(),
	}
}

// RegisterRoutes registers all alert routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/alerts", func(r chi.Router) {
		r.Post("/check", h.HandleCheck) // Evaluate alert rules over posted readings
	})
}

// HandleCheck evaluates every alert rule whose readings are present and
// returns the triggered alerts
func (h *Handler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	var req alerts.CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	triggered := h.service.Check(req)

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"alerts": triggered,
		"count":  len(triggered),
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}

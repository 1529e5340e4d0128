// Package handlers provides HTTP handlers for technical indicators.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/marketviz/chartkit/internal/modules/indicators"
	"github.com/rs/zerolog"
)

// Handler handles indicator HTTP requests
type Handler struct {
	service *indicators.Service
	log     zerolog.Logger
}

// NewHandler creates a new indicators handler
func NewHandler(service *indicators.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "indicators").Logger(),
	}
}

// RegisterRoutes registers all indicator routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/indicators", func(r chi.Router) {
		r.Post("/summary", h.HandleSummary) // Standard indicator set over a close series
	})
}

// HandleSummary computes the standard indicator set for the posted series
func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	var req indicators.SummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	summary, err := h.service.ComputeSummary(req)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, summary)
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

// Package handlers provides HTTP handlers for stock scoring.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/marketviz/chartkit/internal/modules/scoring"
	"github.com/rs/zerolog"
)

// Handler handles scoring HTTP requests
type Handler struct {
	service *scoring.Service
	log     zerolog.Logger
}

// NewHandler creates a new scoring handler
func NewHandler(service *scoring.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "scoring").Logger(),
	}
}

// RegisterRoutes registers all scoring routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/scoring", func(r chi.Router) {
		r.Post("/score", h.HandleScore) // Composite score + signal
		r.Post("/radar", h.HandleRadar) // Score breakdown as radar descriptor
	})
}

// HandleScore scores a stock from the posted dimension inputs
func (h *Handler) HandleScore(w http.ResponseWriter, r *http.Request) {
	var req scoring.ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.writeJSON(w, http.StatusOK, h.service.Score(req))
}

// HandleRadar scores a stock and returns the breakdown as a radar chart
// descriptor
func (h *Handler) HandleRadar(w http.ResponseWriter, r *http.Request) {
	var req struct {
		scoring.ScoreRequest
		Title string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result := h.service.Score(req.ScoreRequest)
	h.writeJSON(w, http.StatusOK, scoring.RadarOption(result.Scores, req.Title))
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

// Package handlers provides HTTP handlers for chart descriptor generation.
package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/marketviz/chartkit/internal/modules/charts"
	"github.com/rs/zerolog"
	"github.com/vmihailenco/msgpack/v5"
)

// Handler handles chart HTTP requests
type Handler struct {
	service *charts.Service
	log     zerolog.Logger
}

// NewHandler creates a new charts handler
func NewHandler(service *charts.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "charts").Logger(),
	}
}

// HandleKLine builds a candlestick descriptor from the posted series
func (h *Handler) HandleKLine(w http.ResponseWriter, r *http.Request) {
	var req charts.KLineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	opt, err := h.service.BuildKLine(req)
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	h.respond(w, r, http.StatusOK, opt)
}

// HandleCapitalFlow builds a dual-grid capital-flow descriptor
func (h *Handler) HandleCapitalFlow(w http.ResponseWriter, r *http.Request) {
	var req charts.CapitalFlowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	opt, err := h.service.BuildCapitalFlow(req)
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	h.respond(w, r, http.StatusOK, opt)
}

// HandleHeatmap builds a heatmap descriptor, optionally with a custom
// gradient color ramp
func (h *Handler) HandleHeatmap(w http.ResponseWriter, r *http.Request) {
	var req charts.HeatmapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	opt, err := h.service.BuildHeatmap(req)
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	h.respond(w, r, http.StatusOK, opt)
}

// HandleRadar builds a radar descriptor
func (h *Handler) HandleRadar(w http.ResponseWriter, r *http.Request) {
	var req charts.RadarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	opt, err := h.service.BuildRadar(req)
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	h.respond(w, r, http.StatusOK, opt)
}

// respond encodes the payload as msgpack when the client asks for it via
// Accept: application/x-msgpack, JSON otherwise. Descriptors can get large
// for long date ranges, so the binary encoding is worth offering.
func (h *Handler) respond(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	if strings.Contains(r.Header.Get("Accept"), "application/x-msgpack") {
		w.Header().Set("Content-Type", "application/x-msgpack")
		w.WriteHeader(status)
		if err := msgpack.NewEncoder(w).Encode(data); err != nil {
			h.log.Error().Err(err).Msg("Failed to encode msgpack response")
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	h.respond(w, r, status, map[string]string{"error": message})
}

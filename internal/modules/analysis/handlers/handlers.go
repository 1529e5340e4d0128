// Package handlers provides HTTP handlers for series analysis.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/marketviz/chartkit/internal/modules/analysis"
	"github.com/rs/zerolog"
)

// Handler handles analysis HTTP requests
type Handler struct {
	service *analysis.Service
	log     zerolog.Logger
}

// NewHandler creates a new analysis handler
func NewHandler(service *analysis.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "analysis").Logger(),
	}
}

// RegisterRoutes registers all analysis routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/analysis", func(r chi.Router) {
		r.Post("/price-metrics", h.HandlePriceMetrics) // Distribution metrics
		r.Post("/vwap", h.HandleVWAP)                  // Volume-weighted average price
		r.Post("/cost-pressure", h.HandleCostPressure) // Buy/sell cost pressure index
	})
}

// HandlePriceMetrics returns distribution metrics for the posted series
func (h *Handler) HandlePriceMetrics(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Prices []float64 `json:"prices"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	metrics, err := h.service.ComputePriceMetrics(req.Prices)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, metrics)
}

// HandleVWAP returns the volume-weighted average price of the posted series
func (h *Handler) HandleVWAP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Prices  []float64 `json:"prices"`
		Volumes []float64 `json:"volumes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	vwap, err := h.service.VWAP(req.Prices, req.Volumes)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]float64{"vwap": vwap})
}

// HandleCostPressure computes the cost-pressure index from the buy and sell
// sides of the order book
func (h *Handler) HandleCostPressure(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BuyPrices    []float64 `json:"buy_prices"`
		BuyVolumes   []float64 `json:"buy_volumes"`
		SellPrices   []float64 `json:"sell_prices"`
		SellVolumes  []float64 `json:"sell_volumes"`
		CurrentPrice float64   `json:"current_price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	buyVWAP, err := h.service.VWAP(req.BuyPrices, req.BuyVolumes)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	sellVWAP, err := h.service.VWAP(req.SellPrices, req.SellVolumes)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]float64{
		"buy_vwap":  buyVWAP,
		"sell_vwap": sellVWAP,
		"pressure":  h.service.CostPressure(buyVWAP, sellVWAP, req.CurrentPrice),
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

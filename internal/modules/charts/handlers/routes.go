package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all chart routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/charts", func(r chi.Router) {
		r.Post("/kline", h.HandleKLine)              // Candlestick descriptor
		r.Post("/capital-flow", h.HandleCapitalFlow) // Net-inflow bars + ratio line
		r.Post("/heatmap", h.HandleHeatmap)          // Category-grid heatmap
		r.Post("/radar", h.HandleRadar)              // Multi-dimension radar
	})
}

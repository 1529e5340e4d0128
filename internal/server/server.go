// Package server provides the HTTP server and routing for the chart
// descriptor service.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/marketviz/chartkit/internal/modules/alerts"
	alertshandlers "github.com/marketviz/chartkit/internal/modules/alerts/handlers"
	"github.com/marketviz/chartkit/internal/modules/analysis"
	analysishandlers "github.com/marketviz/chartkit/internal/modules/analysis/handlers"
	"github.com/marketviz/chartkit/internal/modules/charts"
	chartshandlers "github.com/marketviz/chartkit/internal/modules/charts/handlers"
	"github.com/marketviz/chartkit/internal/modules/indicators"
	indicatorshandlers "github.com/marketviz/chartkit/internal/modules/indicators/handlers"
	"github.com/marketviz/chartkit/internal/modules/scoring"
	scoringhandlers "github.com/marketviz/chartkit/internal/modules/scoring/handlers"
)

// Config holds server configuration
type Config struct {
	Log     zerolog.Logger
	Port    int
	DevMode bool
}

// Server represents the HTTP server
type Server struct {
	router         *chi.Mux
	server         *http.Server
	log            zerolog.Logger
	port           int
	systemHandlers *SystemHandlers
}

// New creates a new HTTP server
func New(cfg Config) *Server {
	s := &Server{
		router:         chi.NewRouter(),
		log:            cfg.Log.With().Str("component", "server").Logger(),
		port:           cfg.Port,
		systemHandlers: NewSystemHandlers(cfg.Log),
	}

	s.setupMiddleware(cfg.DevMode)
	s.setupRoutes(cfg.Log)

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware(devMode bool) {
	// Recovery from panics
	s.router.Use(middleware.Recoverer)

	// Request ID
	s.router.Use(middleware.RequestID)

	// Real IP
	s.router.Use(middleware.RealIP)

	// Logging
	s.router.Use(s.loggingMiddleware)

	// Timeout
	s.router.Use(middleware.Timeout(60 * time.Second))

	// CORS
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Compress responses
	if !devMode {
		s.router.Use(middleware.Compress(5))
	}
}

// setupRoutes configures all routes
func (s *Server) setupRoutes(log zerolog.Logger) {
	// Health check
	s.router.Get("/health", s.handleHealth)

	// API routes
	s.router.Route("/api", func(r chi.Router) {
		// System monitoring
		r.Route("/system", func(r chi.Router) {
			r.Get("/status", s.systemHandlers.HandleSystemStatus)
		})

		// Charts module
		chartsService := charts.NewService(log)
		chartsHandler := chartshandlers.NewHandler(chartsService, log)
		chartsHandler.RegisterRoutes(r)

		// Indicators module
		indicatorsService := indicators.NewService(log)
		indicatorsHandler := indicatorshandlers.NewHandler(indicatorsService, log)
		indicatorsHandler.RegisterRoutes(r)

		// Analysis module
		analysisService := analysis.NewService(log)
		analysisHandler := analysishandlers.NewHandler(analysisService, log)
		analysisHandler.RegisterRoutes(r)

		// Scoring module
		scoringService := scoring.NewService(scoring.DefaultWeights(), log)
		scoringHandler := scoringhandlers.NewHandler(scoringService, log)
		scoringHandler.RegisterRoutes(r)

		// Alerts module
		alertsService := alerts.NewService(log)
		alertsHandler := alertshandlers.NewHandler(alertsService, log)
		alertsHandler.RegisterRoutes(r)
	})
}

// handleHealth responds to health checks
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(`{"status":"ok"}`)); err != nil {
		s.log.Error().Err(err).Msg("Failed to write health response")
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Info().Int("port", s.port).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// loggingMiddleware logs HTTP requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration_ms", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("HTTP request")
	})
}

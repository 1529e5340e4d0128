package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *Server {
	return New(Config{
		Log:     zerolog.Nop(),
		Port:    0,
		DevMode: true,
	})
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestSystemStatus(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/system/status", nil)
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var status map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "ok", status["status"])
	assert.Contains(t, status, "cpu_percent")
	assert.Contains(t, status, "memory_percent")
	assert.Contains(t, status, "goroutines")
}

func TestModuleRoutesAreWired(t *testing.T) {
	srv := newTestServer()

	// Each module answers on its route; bad bodies get a 400, not a 404.
	paths := []string{
		"/api/charts/kline",
		"/api/charts/capital-flow",
		"/api/charts/heatmap",
		"/api/charts/radar",
		"/api/indicators/summary",
		"/api/analysis/price-metrics",
		"/api/analysis/vwap",
		"/api/analysis/cost-pressure",
		"/api/scoring/score",
		"/api/scoring/radar",
		"/api/alerts/check",
	}

	for _, path := range paths {
		req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader([]byte("{not json")))
		rec := httptest.NewRecorder()
		srv.router.ServeHTTP(rec, req)
		assert.NotEqual(t, http.StatusNotFound, rec.Code, "path %s", path)
	}
}

func TestEndToEndKLine(t *testing.T) {
	srv := newTestServer()

	body, err := json.Marshal(map[string]any{
		"dates":   []string{"2024-01-02"},
		"candles": [][]float64{{10, 10.5, 9.8, 10.7}},
		"title":   "贵州茅台",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/charts/kline", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "candlestick")
	assert.Contains(t, rec.Body.String(), "贵州茅台")
}

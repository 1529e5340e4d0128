package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/marketviz/chartkit/internal/modules/indicators"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() chi.Router {
	svc := indicators.NewService(zerolog.Nop())
	h := NewHandler(svc, zerolog.Nop())

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		h.RegisterRoutes(r)
	})
	return r
}

func TestHandleSummary(t *testing.T) {
	router := newTestRouter()

	closes := make([]float64, 40)
	for i := range closes {
		closes[i] = float64(i + 1)
	}
	raw, err := json.Marshal(map[string]any{"closes": closes})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/indicators/summary", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var summary struct {
		MA5   []float64 `json:"ma5"`
		RSI14 []float64 `json:"rsi14"`
		MACD  struct {
			MACD []float64 `json:"macd"`
		} `json:"macd"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Len(t, summary.MA5, 40)
	assert.Len(t, summary.RSI14, 40)
	assert.Len(t, summary.MACD.MACD, 40)
}

func TestHandleSummary_TooShort(t *testing.T) {
	router := newTestRouter()

	raw, err := json.Marshal(map[string]any{"closes": []float64{1, 2, 3}})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/indicators/summary", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

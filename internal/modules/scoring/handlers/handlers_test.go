package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/marketviz/chartkit/internal/modules/scoring"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() chi.Router {
	svc := scoring.NewService(scoring.DefaultWeights(), zerolog.Nop())
	h := NewHandler(svc, zerolog.Nop())

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		h.RegisterRoutes(r)
	})
	return r
}

func TestHandleScore(t *testing.T) {
	router := newTestRouter()

	body, err := json.Marshal(map[string]any{
		"capital": map[string]any{
			"net_inflow":   1e8,
			"inflow_ratio": 10,
			"total_amount": 1e6,
		},
		"technical": map[string]any{
			"close_price": 11, "ma5": 10.5, "ma20": 10, "ma60": 9.5,
			"volume": 1300, "vma5": 1000, "change_pct": 2,
		},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/scoring/score", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result scoring.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 70.0, result.Scores.Capital)
	assert.Equal(t, 100.0, result.Scores.Technical)
	assert.NotEmpty(t, result.Signal.Type)
	assert.Equal(t, scoring.DefaultWeights(), result.Weights)
}

func TestHandleScore_BadBody(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/scoring/score", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleRadar(t *testing.T) {
	router := newTestRouter()

	body, err := json.Marshal(map[string]any{
		"title": "综合评分",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/scoring/radar", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var opt struct {
		Title struct {
			Text string `json:"text"`
		} `json:"title"`
		Radar struct {
			Indicator []struct {
				Name string `json:"name"`
			} `json:"indicator"`
		} `json:"radar"`
		Series []struct {
			Data []struct {
				Value []float64 `json:"value"`
			} `json:"data"`
		} `json:"series"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &opt))
	assert.Equal(t, "综合评分", opt.Title.Text)
	assert.Len(t, opt.Radar.Indicator, 5)
	assert.Len(t, opt.Series[0].Data[0].Value, 5)
}

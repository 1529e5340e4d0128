// Package charts assembles renderer-ready chart descriptors from
// caller-supplied market series.
package charts

import (
	"fmt"

	"github.com/marketviz/chartkit/pkg/echarts"
	"github.com/rs/zerolog"
)

// KLineRequest carries the inputs for a candlestick chart.
type KLineRequest struct {
	Dates   []string         `json:"dates"`
	Candles []echarts.Candle `json:"candles"`
	Title   string           `json:"title"`
}

// CapitalFlowRequest carries the inputs for a dual-grid capital-flow chart.
type CapitalFlowRequest struct {
	Dates        []string  `json:"dates"`
	NetInflows   []float64 `json:"net_inflows"`
	InflowRatios []float64 `json:"inflow_ratios"`
}

// HeatmapRequest carries the inputs for a category-grid heatmap. The three
// gradient fields are optional: when both endpoint colors are set, the
// visual-map color ramp is interpolated between them.
type HeatmapRequest struct {
	Data          echarts.HeatmapData `json:"data"`
	Title         string              `json:"title"`
	GradientStart string              `json:"gradient_start,omitempty"`
	GradientEnd   string              `json:"gradient_end,omitempty"`
	GradientSteps int                 `json:"gradient_steps,omitempty"`
}

// RadarRequest carries the inputs for a single-series radar chart.
type RadarRequest struct {
	Indicators []echarts.RadarIndicator `json:"indicators"`
	Values     []float64                `json:"values"`
	Title      string                   `json:"title"`
}

// Service builds chart descriptors. It holds no state beyond its logger;
// every request is self-contained.
type Service struct {
	log zerolog.Logger
}

// NewService creates a new charts service
func NewService(log zerolog.Logger) *Service {
	return &Service{
		log: log.With().Str("service", "charts").Logger(),
	}
}

// BuildKLine validates the request and produces a candlestick descriptor.
// Dates and candles must be non-empty and aligned; mismatches are rejected
// rather than truncated.
func (s *Service) BuildKLine(req KLineRequest) (echarts.KLineOption, error) {
	if len(req.Dates) == 0 {
		return echarts.KLineOption{}, fmt.Errorf("dates cannot be empty")
	}
	if len(req.Dates) != len(req.Candles) {
		return echarts.KLineOption{}, fmt.Errorf("dates and candles length mismatch: %d vs %d", len(req.Dates), len(req.Candles))
	}

	s.log.Debug().Int("points", len(req.Candles)).Str("title", req.Title).Msg("Building k-line descriptor")
	return echarts.NewKLineOption(req.Dates, req.Candles, req.Title), nil
}

// BuildCapitalFlow validates the request and produces the dual-grid
// capital-flow descriptor (net-inflow bars over an inflow-ratio line).
func (s *Service) BuildCapitalFlow(req CapitalFlowRequest) (echarts.CapitalFlowOption, error) {
	if len(req.Dates) == 0 {
		return echarts.CapitalFlowOption{}, fmt.Errorf("dates cannot be empty")
	}
	if len(req.Dates) != len(req.NetInflows) || len(req.Dates) != len(req.InflowRatios) {
		return echarts.CapitalFlowOption{}, fmt.Errorf(
			"series length mismatch: %d dates, %d net inflows, %d ratios",
			len(req.Dates), len(req.NetInflows), len(req.InflowRatios))
	}

	s.log.Debug().Int("points", len(req.Dates)).Msg("Building capital-flow descriptor")
	return echarts.NewCapitalFlowOption(req.Dates, req.NetInflows, req.InflowRatios), nil
}

// BuildHeatmap validates the request and produces a heatmap descriptor.
// When gradient endpoints are supplied, the visual map gets an interpolated
// color ramp; otherwise the renderer's default ramp applies.
func (s *Service) BuildHeatmap(req HeatmapRequest) (echarts.HeatmapOption, error) {
	if len(req.Data.XAxis) == 0 || len(req.Data.YAxis) == 0 {
		return echarts.HeatmapOption{}, fmt.Errorf("heatmap axes cannot be empty")
	}

	opt := echarts.NewHeatmapOption(req.Data, req.Title)

	if req.GradientStart != "" || req.GradientEnd != "" {
		if req.GradientStart == "" || req.GradientEnd == "" {
			return echarts.HeatmapOption{}, fmt.Errorf("gradient requires both start and end colors")
		}
		steps := req.GradientSteps
		if steps == 0 {
			steps = 10
		}
		colors, err := echarts.Gradient(req.GradientStart, req.GradientEnd, steps)
		if err != nil {
			return echarts.HeatmapOption{}, fmt.Errorf("failed to build gradient: %w", err)
		}
		opt.VisualMap.InRange = &echarts.VisualMapRange{Color: colors}
	}

	s.log.Debug().
		Int("cells", len(req.Data.Values)).
		Str("title", req.Title).
		Msg("Building heatmap descriptor")
	return opt, nil
}

// BuildRadar validates the request and produces a radar descriptor. The
// value count must match the indicator count so every axis has a reading.
func (s *Service) BuildRadar(req RadarRequest) (echarts.RadarOption, error) {
	if len(req.Indicators) == 0 {
		return echarts.RadarOption{}, fmt.Errorf("indicators cannot be empty")
	}
	if len(req.Indicators) != len(req.Values) {
		return echarts.RadarOption{}, fmt.Errorf("indicators and values length mismatch: %d vs %d", len(req.Indicators), len(req.Values))
	}

	s.log.Debug().Int("axes", len(req.Indicators)).Str("title", req.Title).Msg("Building radar descriptor")
	return echarts.NewRadarOption(req.Indicators, req.Values, req.Title), nil
}

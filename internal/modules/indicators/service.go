// Package indicators computes technical indicators over price series.
package indicators

import (
	"fmt"

	"github.com/markcheno/go-talib"
	"github.com/rs/zerolog"
)

// MACDResult bundles the three MACD output lines.
type MACDResult struct {
	MACD      []float64 `json:"macd"`
	Signal    []float64 `json:"signal"`
	Histogram []float64 `json:"histogram"`
}

// BollingerResult bundles the three Bollinger band lines.
type BollingerResult struct {
	Upper  []float64 `json:"upper"`
	Middle []float64 `json:"middle"`
	Lower  []float64 `json:"lower"`
}

// SummaryRequest carries the price series for an indicator summary. Highs
// and lows are optional; ATR is only computed when both are present.
type SummaryRequest struct {
	Closes []float64 `json:"closes"`
	Highs  []float64 `json:"highs,omitempty"`
	Lows   []float64 `json:"lows,omitempty"`
}

// Summary is the standard indicator set computed over a close series.
type Summary struct {
	MA5   []float64       `json:"ma5"`
	MA10  []float64       `json:"ma10"`
	MA20  []float64       `json:"ma20"`
	RSI14 []float64       `json:"rsi14"`
	MACD  MACDResult      `json:"macd"`
	BOLL  BollingerResult `json:"boll"`
	ATR14 []float64       `json:"atr14,omitempty"`
}

// Service computes technical indicators
type Service struct {
	log zerolog.Logger
}

// NewService creates a new indicators service
func NewService(log zerolog.Logger) *Service {
	return &Service{
		log: log.With().Str("service", "indicators").Logger(),
	}
}

// MA returns the simple moving average. Warm-up positions (the first
// period-1 entries) are zero.
func (s *Service) MA(closes []float64, period int) ([]float64, error) {
	if err := checkSeries(closes, period); err != nil {
		return nil, err
	}
	return talib.Sma(closes, period), nil
}

// EMA returns the exponential moving average.
func (s *Service) EMA(closes []float64, period int) ([]float64, error) {
	if err := checkSeries(closes, period); err != nil {
		return nil, err
	}
	return talib.Ema(closes, period), nil
}

// RSI returns the relative strength index.
func (s *Service) RSI(closes []float64, period int) ([]float64, error) {
	if err := checkSeries(closes, period); err != nil {
		return nil, err
	}
	return talib.Rsi(closes, period), nil
}

// MACD returns the MACD line, signal line and histogram using the standard
// 12/26/9 parameters.
func (s *Service) MACD(closes []float64) (MACDResult, error) {
	if err := checkSeries(closes, 26); err != nil {
		return MACDResult{}, err
	}
	macd, signal, hist := talib.Macd(closes, 12, 26, 9)
	return MACDResult{MACD: macd, Signal: signal, Histogram: hist}, nil
}

// BollingerBands returns the 20-period bands at 2 standard deviations.
func (s *Service) BollingerBands(closes []float64) (BollingerResult, error) {
	if err := checkSeries(closes, 20); err != nil {
		return BollingerResult{}, err
	}
	upper, middle, lower := talib.BBands(closes, 20, 2, 2, talib.SMA)
	return BollingerResult{Upper: upper, Middle: middle, Lower: lower}, nil
}

// ATR returns the average true range over the given period. All three
// series must be aligned.
func (s *Service) ATR(highs, lows, closes []float64, period int) ([]float64, error) {
	if err := checkSeries(closes, period); err != nil {
		return nil, err
	}
	if len(highs) != len(closes) || len(lows) != len(closes) {
		return nil, fmt.Errorf("highs/lows/closes length mismatch: %d/%d/%d", len(highs), len(lows), len(closes))
	}
	return talib.Atr(highs, lows, closes, period), nil
}

// ComputeSummary computes the standard indicator set over the request's
// close series. ATR is included only when highs and lows accompany it.
func (s *Service) ComputeSummary(req SummaryRequest) (Summary, error) {
	if len(req.Closes) == 0 {
		return Summary{}, fmt.Errorf("closes cannot be empty")
	}

	// The longest lookback in the set; shorter series would return
	// all-warm-up output for most indicators.
	const minPoints = 26
	if len(req.Closes) < minPoints {
		return Summary{}, fmt.Errorf("need at least %d closes, got %d", minPoints, len(req.Closes))
	}

	macd, err := s.MACD(req.Closes)
	if err != nil {
		return Summary{}, err
	}
	boll, err := s.BollingerBands(req.Closes)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{
		MA5:   talib.Sma(req.Closes, 5),
		MA10:  talib.Sma(req.Closes, 10),
		MA20:  talib.Sma(req.Closes, 20),
		RSI14: talib.Rsi(req.Closes, 14),
		MACD:  macd,
		BOLL:  boll,
	}

	if len(req.Highs) > 0 && len(req.Lows) > 0 {
		atr, err := s.ATR(req.Highs, req.Lows, req.Closes, 14)
		if err != nil {
			return Summary{}, err
		}
		summary.ATR14 = atr
	}

	s.log.Debug().Int("points", len(req.Closes)).Bool("atr", summary.ATR14 != nil).Msg("Computed indicator summary")
	return summary, nil
}

func checkSeries(closes []float64, period int) error {
	if len(closes) == 0 {
		return fmt.Errorf("closes cannot be empty")
	}
	if period < 1 {
		return fmt.Errorf("period must be positive, got %d", period)
	}
	if len(closes) < period {
		return fmt.Errorf("need at least %d closes, got %d", period, len(closes))
	}
	return nil
}

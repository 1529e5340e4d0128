// Package analysis provides statistical helpers over price and volume
// series: VWAP, distribution metrics, normalization, correlation and
// anomaly detection.
package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/stat"
)

// PriceMetrics summarizes the distribution of a price series.
type PriceMetrics struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Range  float64 `json:"range"`
	CV     float64 `json:"cv"`
}

// Service computes statistical analysis over market series
type Service struct {
	log zerolog.Logger
}

// NewService creates a new analysis service
func NewService(log zerolog.Logger) *Service {
	return &Service{
		log: log.With().Str("service", "analysis").Logger(),
	}
}

// VWAP returns the volume-weighted average price. Empty inputs or a zero
// total volume yield 0 rather than an error, matching how downstream
// pressure calculations treat missing sides of the book.
func (s *Service) VWAP(prices, volumes []float64) (float64, error) {
	if len(prices) != len(volumes) {
		return 0, fmt.Errorf("prices and volumes length mismatch: %d vs %d", len(prices), len(volumes))
	}
	if len(prices) == 0 {
		return 0, nil
	}

	var totalValue, totalVolume float64
	for i, p := range prices {
		totalValue += p * volumes[i]
		totalVolume += volumes[i]
	}
	if totalVolume == 0 {
		return 0, nil
	}
	return totalValue / totalVolume, nil
}

// ComputePriceMetrics returns distribution metrics for a price series. The
// standard deviation is the population one, and the coefficient of
// variation falls back to 0 when the mean is zero.
func (s *Service) ComputePriceMetrics(prices []float64) (PriceMetrics, error) {
	if len(prices) == 0 {
		return PriceMetrics{}, fmt.Errorf("prices cannot be empty")
	}

	mean := stat.Mean(prices, nil)
	std := stat.PopStdDev(prices, nil)

	minVal, maxVal := prices[0], prices[0]
	for _, p := range prices[1:] {
		if p < minVal {
			minVal = p
		}
		if p > maxVal {
			maxVal = p
		}
	}

	cv := 0.0
	if mean != 0 {
		cv = std / mean
	}

	return PriceMetrics{
		Mean:   mean,
		Median: median(prices),
		Std:    std,
		Min:    minVal,
		Max:    maxVal,
		Range:  maxVal - minVal,
		CV:     cv,
	}, nil
}

// CostPressure measures how far the buy-side cost sits above the sell-side
// cost, as a percentage of the current price. Positive values mean buyers
// are paying up. A zero current price yields 0.
func (s *Service) CostPressure(buyVWAP, sellVWAP, currentPrice float64) float64 {
	if currentPrice == 0 {
		return 0
	}
	return (buyVWAP - sellVWAP) / currentPrice * 100
}

// Normalize rescales a series. "minmax" maps onto [0, 1] (a constant series
// becomes all 0.5), "zscore" centers on the population mean (a constant
// series becomes all 0). Unknown methods return the input unchanged.
func (s *Service) Normalize(data []float64, method string) []float64 {
	if len(data) == 0 {
		return []float64{}
	}

	switch method {
	case "minmax":
		minVal, maxVal := data[0], data[0]
		for _, v := range data[1:] {
			if v < minVal {
				minVal = v
			}
			if v > maxVal {
				maxVal = v
			}
		}
		out := make([]float64, len(data))
		if maxVal == minVal {
			for i := range out {
				out[i] = 0.5
			}
			return out
		}
		for i, v := range data {
			out[i] = (v - minVal) / (maxVal - minVal)
		}
		return out

	case "zscore":
		mean := stat.Mean(data, nil)
		std := stat.PopStdDev(data, nil)
		out := make([]float64, len(data))
		if std == 0 {
			return out
		}
		for i, v := range data {
			out[i] = (v - mean) / std
		}
		return out

	default:
		return data
	}
}

// Correlation returns the Pearson correlation of two series, or 0 when the
// series are mismatched, too short, or degenerate (zero variance).
func (s *Service) Correlation(x, y []float64) float64 {
	if len(x) != len(y) || len(x) < 2 {
		return 0
	}
	r := stat.Correlation(x, y, nil)
	if math.IsNaN(r) {
		return 0
	}
	return r
}

// DetectAnomalies flags entries whose absolute z-score exceeds the
// threshold. Series shorter than 3 points or with zero variance produce no
// flags.
func (s *Service) DetectAnomalies(data []float64, threshold float64) []bool {
	flags := make([]bool, len(data))
	if len(data) < 3 {
		return flags
	}

	mean := stat.Mean(data, nil)
	std := stat.PopStdDev(data, nil)
	if std == 0 {
		return flags
	}

	for i, v := range data {
		flags[i] = math.Abs((v-mean)/std) > threshold
	}
	return flags
}

// FillMissing replaces NaN entries. "linear" interpolates between the
// nearest known neighbors (edge gaps take the nearest known value),
// "forward" and "backward" propagate neighbors, "mean" uses the mean of the
// known values. Unknown methods leave the data untouched.
func (s *Service) FillMissing(data []float64, method string) []float64 {
	out := make([]float64, len(data))
	copy(out, data)

	hasMissing := false
	for _, v := range out {
		if math.IsNaN(v) {
			hasMissing = true
			break
		}
	}
	if !hasMissing {
		return out
	}

	switch method {
	case "linear":
		fillLinear(out)
	case "forward":
		for i := 1; i < len(out); i++ {
			if math.IsNaN(out[i]) && !math.IsNaN(out[i-1]) {
				out[i] = out[i-1]
			}
		}
	case "backward":
		for i := len(out) - 2; i >= 0; i-- {
			if math.IsNaN(out[i]) && !math.IsNaN(out[i+1]) {
				out[i] = out[i+1]
			}
		}
	case "mean":
		var sum float64
		var n int
		for _, v := range out {
			if !math.IsNaN(v) {
				sum += v
				n++
			}
		}
		if n > 0 {
			mean := sum / float64(n)
			for i, v := range out {
				if math.IsNaN(v) {
					out[i] = mean
				}
			}
		}
	}
	return out
}

func fillLinear(data []float64) {
	// Known sample positions in order.
	var known []int
	for i, v := range data {
		if !math.IsNaN(v) {
			known = append(known, i)
		}
	}
	if len(known) == 0 {
		return
	}

	for i, v := range data {
		if !math.IsNaN(v) {
			continue
		}
		// Index of the first known position at or after i.
		j := sort.SearchInts(known, i)
		switch {
		case j == 0:
			data[i] = data[known[0]]
		case j == len(known):
			data[i] = data[known[len(known)-1]]
		default:
			lo, hi := known[j-1], known[j]
			frac := float64(i-lo) / float64(hi-lo)
			data[i] = data[lo] + (data[hi]-data[lo])*frac
		}
	}
}

// median returns the interpolated median without mutating the input.
func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

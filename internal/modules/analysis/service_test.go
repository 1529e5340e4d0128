package analysis

import (
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	return NewService(zerolog.Nop())
}

func TestVWAP(t *testing.T) {
	svc := newTestService()

	vwap, err := svc.VWAP([]float64{10, 20}, []float64{100, 300})
	require.NoError(t, err)
	assert.InDelta(t, 17.5, vwap, 1e-9)
}

func TestVWAP_DegenerateInputs(t *testing.T) {
	svc := newTestService()

	// Empty series yields 0, not an error.
	vwap, err := svc.VWAP(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, vwap)

	// All-zero volume yields 0.
	vwap, err = svc.VWAP([]float64{10, 20}, []float64{0, 0})
	require.NoError(t, err)
	assert.Equal(t, 0.0, vwap)

	// Mismatched lengths are an error.
	_, err = svc.VWAP([]float64{10}, []float64{1, 2})
	assert.ErrorContains(t, err, "mismatch")
}

func TestComputePriceMetrics(t *testing.T) {
	svc := newTestService()

	m, err := svc.ComputePriceMetrics([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	require.NoError(t, err)

	assert.InDelta(t, 5.0, m.Mean, 1e-9)
	assert.InDelta(t, 4.5, m.Median, 1e-9)
	// Population standard deviation, not sample.
	assert.InDelta(t, 2.0, m.Std, 1e-9)
	assert.Equal(t, 2.0, m.Min)
	assert.Equal(t, 9.0, m.Max)
	assert.Equal(t, 7.0, m.Range)
	assert.InDelta(t, 0.4, m.CV, 1e-9)
}

func TestComputePriceMetrics_OddLengthMedian(t *testing.T) {
	svc := newTestService()

	m, err := svc.ComputePriceMetrics([]float64{9, 1, 5})
	require.NoError(t, err)
	assert.Equal(t, 5.0, m.Median)
}

func TestComputePriceMetrics_ZeroMeanCV(t *testing.T) {
	svc := newTestService()

	m, err := svc.ComputePriceMetrics([]float64{-1, 1})
	require.NoError(t, err)
	assert.Equal(t, 0.0, m.CV)
}

func TestComputePriceMetrics_Empty(t *testing.T) {
	svc := newTestService()

	_, err := svc.ComputePriceMetrics(nil)
	assert.ErrorContains(t, err, "empty")
}

func TestCostPressure(t *testing.T) {
	svc := newTestService()

	assert.InDelta(t, 5.0, svc.CostPressure(10.5, 10.0, 10.0), 1e-9)
	assert.InDelta(t, -5.0, svc.CostPressure(10.0, 10.5, 10.0), 1e-9)
	assert.Equal(t, 0.0, svc.CostPressure(10.5, 10.0, 0))
}

func TestNormalize_MinMax(t *testing.T) {
	svc := newTestService()

	got := svc.Normalize([]float64{10, 20, 30}, "minmax")
	assert.InDeltaSlice(t, []float64{0, 0.5, 1}, got, 1e-9)

	// A constant series maps to all 0.5.
	got = svc.Normalize([]float64{7, 7, 7}, "minmax")
	assert.Equal(t, []float64{0.5, 0.5, 0.5}, got)
}

func TestNormalize_ZScore(t *testing.T) {
	svc := newTestService()

	got := svc.Normalize([]float64{1, 2, 3}, "zscore")
	require.Len(t, got, 3)
	assert.InDelta(t, 0.0, got[1], 1e-9)
	assert.InDelta(t, -got[0], got[2], 1e-9)

	// Zero variance maps to all zeros.
	got = svc.Normalize([]float64{5, 5}, "zscore")
	assert.Equal(t, []float64{0, 0}, got)
}

func TestNormalize_UnknownMethodPassthrough(t *testing.T) {
	svc := newTestService()

	in := []float64{3, 1, 2}
	assert.Equal(t, in, svc.Normalize(in, "robust"))
	assert.Empty(t, svc.Normalize(nil, "minmax"))
}

func TestCorrelation(t *testing.T) {
	svc := newTestService()

	// Perfect positive and negative correlation.
	assert.InDelta(t, 1.0, svc.Correlation([]float64{1, 2, 3}, []float64{2, 4, 6}), 1e-9)
	assert.InDelta(t, -1.0, svc.Correlation([]float64{1, 2, 3}, []float64{6, 4, 2}), 1e-9)

	// Degenerate cases collapse to 0.
	assert.Equal(t, 0.0, svc.Correlation([]float64{1}, []float64{2}))
	assert.Equal(t, 0.0, svc.Correlation([]float64{1, 2}, []float64{1, 2, 3}))
	assert.Equal(t, 0.0, svc.Correlation([]float64{5, 5, 5}, []float64{1, 2, 3}))
}

func TestDetectAnomalies(t *testing.T) {
	svc := newTestService()

	data := []float64{10, 10, 10, 10, 10, 10, 10, 10, 10, 100}
	flags := svc.DetectAnomalies(data, 2)
	require.Len(t, flags, len(data))

	assert.True(t, flags[9])
	for i := 0; i < 9; i++ {
		assert.False(t, flags[i], "index %d", i)
	}
}

func TestDetectAnomalies_Degenerate(t *testing.T) {
	svc := newTestService()

	// Too short: nothing flagged.
	assert.Equal(t, []bool{false, false}, svc.DetectAnomalies([]float64{1, 100}, 1))

	// Zero variance: nothing flagged.
	assert.Equal(t, []bool{false, false, false}, svc.DetectAnomalies([]float64{5, 5, 5}, 1))
}

func TestFillMissing_Linear(t *testing.T) {
	svc := newTestService()

	nan := math.NaN()
	got := svc.FillMissing([]float64{1, nan, 3, nan, nan, 9}, "linear")
	assert.InDeltaSlice(t, []float64{1, 2, 3, 5, 7, 9}, got, 1e-9)

	// Edge gaps take the nearest known value.
	got = svc.FillMissing([]float64{nan, 2, nan}, "linear")
	assert.InDeltaSlice(t, []float64{2, 2, 2}, got, 1e-9)
}

func TestFillMissing_ForwardBackwardMean(t *testing.T) {
	svc := newTestService()

	nan := math.NaN()

	got := svc.FillMissing([]float64{1, nan, nan, 4}, "forward")
	assert.InDeltaSlice(t, []float64{1, 1, 1, 4}, got, 1e-9)

	got = svc.FillMissing([]float64{1, nan, nan, 4}, "backward")
	assert.InDeltaSlice(t, []float64{1, 4, 4, 4}, got, 1e-9)

	got = svc.FillMissing([]float64{2, nan, 4}, "mean")
	assert.InDeltaSlice(t, []float64{2, 3, 4}, got, 1e-9)
}

func TestFillMissing_NoGaps(t *testing.T) {
	svc := newTestService()

	in := []float64{1, 2, 3}
	assert.Equal(t, in, svc.FillMissing(in, "linear"))
}

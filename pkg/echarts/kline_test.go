package echarts

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKLineOption(t *testing.T) {
	dates := []string{"2024-01-02", "2024-01-03", "2024-01-04"}
	candles := []Candle{
		{10.0, 10.5, 9.8, 10.7},
		{10.5, 10.2, 10.0, 10.6},
		{10.2, 10.9, 10.1, 11.0},
	}

	opt := NewKLineOption(dates, candles, "贵州茅台")

	assert.Equal(t, "贵州茅台", opt.Title.Text)
	assert.Equal(t, "center", opt.Title.Left)
	assert.Equal(t, "axis", opt.Tooltip.Trigger)
	require.NotNil(t, opt.Tooltip.AxisPointer)
	assert.Equal(t, "cross", opt.Tooltip.AxisPointer.Type)

	// Candle data is an identity passthrough.
	require.Len(t, opt.Series, 1)
	assert.Equal(t, "candlestick", opt.Series[0].Type)
	assert.Equal(t, candles, opt.Series[0].Data)

	// Chinese-market convention: up days red, down days green.
	assert.Equal(t, UpColor, opt.Series[0].ItemStyle.Color)
	assert.Equal(t, DownColor, opt.Series[0].ItemStyle.Color0)

	// X axis binds the dates with rotated labels and data-driven bounds.
	assert.Equal(t, "category", opt.XAxis.Type)
	assert.Equal(t, dates, opt.XAxis.Data)
	require.NotNil(t, opt.XAxis.AxisLabel)
	assert.Equal(t, 45, opt.XAxis.AxisLabel.Rotate)
	assert.Equal(t, "dataMin", opt.XAxis.Min)
	assert.Equal(t, "dataMax", opt.XAxis.Max)

	assert.Equal(t, "value", opt.YAxis.Type)
	assert.True(t, opt.YAxis.Scale)
	require.NotNil(t, opt.YAxis.SplitArea)
	assert.True(t, opt.YAxis.SplitArea.Show)
}

func TestNewKLineOption_ZoomDefaults(t *testing.T) {
	opt := NewKLineOption(nil, nil, "")

	require.Len(t, opt.DataZoom, 2)
	assert.Equal(t, "inside", opt.DataZoom[0].Type)
	assert.Equal(t, "slider", opt.DataZoom[1].Type)

	// Both zoom controls default to the last half of the range.
	for _, z := range opt.DataZoom {
		assert.Equal(t, 50.0, z.Start)
		assert.Equal(t, 100.0, z.End)
	}
}

func TestNewKLineOption_LegendKeepsMAPlaceholders(t *testing.T) {
	opt := NewKLineOption([]string{"2024-01-02"}, []Candle{{1, 2, 0.5, 2.5}}, "")

	// The MA entries are advertised without backing series.
	assert.Equal(t, []string{"K线", "MA5", "MA10"}, opt.Legend.Data)
	assert.Len(t, opt.Series, 1)
}

func TestKLineOption_JSONKeys(t *testing.T) {
	opt := NewKLineOption([]string{"2024-01-02"}, []Candle{{1, 2, 0.5, 2.5}}, "T")

	raw, err := json.Marshal(opt)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &decoded))

	for _, key := range []string{"title", "tooltip", "legend", "grid", "xAxis", "yAxis", "dataZoom", "series"} {
		assert.Contains(t, decoded, key)
	}
}

package echarts

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRadarOption(t *testing.T) {
	indicators := []RadarIndicator{
		{Name: "资金", Max: 100},
		{Name: "技术", Max: 100},
		{Name: "基本面", Max: 100},
		{Name: "风险", Max: 100},
	}
	values := []float64{72.5, 60, 48.3, 85}

	opt := NewRadarOption(indicators, values, "综合评分")

	assert.Equal(t, "综合评分", opt.Title.Text)
	assert.Equal(t, indicators, opt.Radar.Indicator)

	require.Len(t, opt.Series, 1)
	series := opt.Series[0]
	assert.Equal(t, "radar", series.Type)
	assert.Equal(t, "综合评分", series.Name)

	require.Len(t, series.Data, 1)
	assert.Equal(t, values, series.Data[0].Value)
	assert.Equal(t, "综合评分", series.Data[0].Name)

	assert.Equal(t, 0.3, series.AreaStyle.Opacity)
	assert.Equal(t, 2, series.LineStyle.Width)
	assert.Equal(t, RadarColor, series.LineStyle.Color)
	assert.Equal(t, RadarColor, series.ItemStyle.Color)
}

func TestNewRadarOption_NoLengthCheck(t *testing.T) {
	// A value count that disagrees with the indicator count is passed
	// through untouched.
	indicators := []RadarIndicator{{Name: "a", Max: 1}, {Name: "b", Max: 1}}
	values := []float64{0.5}

	opt := NewRadarOption(indicators, values, "")
	assert.Equal(t, values, opt.Series[0].Data[0].Value)
}

func TestRadarOption_JSONKeys(t *testing.T) {
	opt := NewRadarOption([]RadarIndicator{{Name: "a", Max: 10}}, []float64{7}, "T")

	raw, err := json.Marshal(opt)
	require.NoError(t, err)

	var decoded struct {
		Radar struct {
			Indicator []struct {
				Name string  `json:"name"`
				Max  float64 `json:"max"`
			} `json:"indicator"`
		} `json:"radar"`
		Series []struct {
			Data []struct {
				Value []float64 `json:"value"`
			} `json:"data"`
		} `json:"series"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	require.Len(t, decoded.Radar.Indicator, 1)
	assert.Equal(t, "a", decoded.Radar.Indicator[0].Name)
	assert.Equal(t, 10.0, decoded.Radar.Indicator[0].Max)
	assert.Equal(t, []float64{7}, decoded.Series[0].Data[0].Value)
}

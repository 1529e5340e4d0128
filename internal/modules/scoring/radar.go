package scoring

import (
	"github.com/marketviz/chartkit/pkg/echarts"
)

// radarAxes are the five axes of the score radar, all on a 0-100 scale.
var radarAxes = []echarts.RadarIndicator{
	{Name: "资金", Max: 100},
	{Name: "技术", Max: 100},
	{Name: "基本面", Max: 100},
	{Name: "风险", Max: 100},
	{Name: "总分", Max: 100},
}

// RadarOption renders a score breakdown as a radar chart descriptor.
func RadarOption(scores Scores, title string) echarts.RadarOption {
	values := []float64{
		scores.Capital,
		scores.Technical,
		scores.Fundamental,
		scores.Risk,
		scores.Total,
	}
	return echarts.NewRadarOption(radarAxes, values, title)
}

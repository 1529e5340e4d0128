package echarts

// Bar colors for the capital-flow chart, following the same red-inflow
// convention as the candlestick palette.
const (
	InflowColor  = "#ec0000"
	OutflowColor = "#00da3c"
)

// flowUnit scales raw net-inflow amounts to the 万 display unit.
const flowUnit = 10000

// FlowBarColor maps a raw net-inflow value to its bar color: strictly
// positive values get the inflow color, everything else the outflow color.
func FlowBarColor(netInflow float64) string {
	if netInflow > 0 {
		return InflowColor
	}
	return OutflowColor
}

// BarItemStyle carries the per-bar color.
type BarItemStyle struct {
	Color string `json:"color"`
}

// BarItem is one bar value with its sign-derived color.
type BarItem struct {
	Value     float64      `json:"value"`
	ItemStyle BarItemStyle `json:"itemStyle"`
}

// BarSeries is the net-inflow bar series, pinned to grid/axis 0.
type BarSeries struct {
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	XAxisIndex int       `json:"xAxisIndex"`
	YAxisIndex int       `json:"yAxisIndex"`
	Data       []BarItem `json:"data"`
}

// LineSeries is the inflow-ratio line series, pinned to grid/axis 1.
type LineSeries struct {
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	XAxisIndex int       `json:"xAxisIndex"`
	YAxisIndex int       `json:"yAxisIndex"`
	Smooth     bool      `json:"smooth"`
	Data       []float64 `json:"data"`
}

// CapitalFlowOption is the dual-grid descriptor pairing a net-inflow bar
// chart with an inflow-ratio line chart. Series order and their
// xAxisIndex/yAxisIndex pairings are part of the contract: the bar series
// always rides grid 0, the line series grid 1.
type CapitalFlowOption struct {
	Tooltip Tooltip `json:"tooltip"`
	Legend  Legend  `json:"legend"`
	Grid    []Grid  `json:"grid"`
	XAxis   []Axis  `json:"xAxis"`
	YAxis   []Axis  `json:"yAxis"`
	Series  []any   `json:"series"`
}

// NewCapitalFlowOption builds the two-grid capital-flow descriptor. Net
// inflows are scaled to 万 (divided by 10,000) and colored by sign through
// FlowBarColor; inflow ratios are drawn as a smoothed percentage line on the
// lower grid with its x-axis hidden.
func NewCapitalFlowOption(dates []string, netInflows, inflowRatios []float64) CapitalFlowOption {
	bars := make([]BarItem, len(netInflows))
	for i, v := range netInflows {
		bars[i] = BarItem{
			Value:     v / flowUnit,
			ItemStyle: BarItemStyle{Color: FlowBarColor(v)},
		}
	}

	return CapitalFlowOption{
		Tooltip: Tooltip{
			Trigger:     "axis",
			AxisPointer: &AxisPointer{Type: "cross"},
		},
		Legend: Legend{Data: []string{"净流入", "流入占比"}},
		Grid: []Grid{
			{Left: "10%", Right: "8%", Top: "10%", Height: "60%"},
			{Left: "10%", Right: "8%", Top: "75%", Height: "15%"},
		},
		XAxis: []Axis{
			{Type: "category", Data: dates, GridIndex: 0},
			{Type: "category", Data: dates, GridIndex: 1, AxisLabel: &AxisLabel{Show: boolPtr(false)}},
		},
		YAxis: []Axis{
			{Type: "value", GridIndex: 0, AxisLabel: &AxisLabel{Formatter: "{value} 万"}},
			{Type: "value", GridIndex: 1, AxisLabel: &AxisLabel{Formatter: "{value}%"}},
		},
		Series: []any{
			BarSeries{
				Name:       "净流入",
				Type:       "bar",
				XAxisIndex: 0,
				YAxisIndex: 0,
				Data:       bars,
			},
			LineSeries{
				Name:       "流入占比",
				Type:       "line",
				XAxisIndex: 1,
				YAxisIndex: 1,
				Smooth:     true,
				Data:       inflowRatios,
			},
		},
	}
}

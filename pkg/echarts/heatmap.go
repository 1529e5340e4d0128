package echarts

// HeatmapCell is one heatmap value: x-axis index, y-axis index, magnitude.
type HeatmapCell [3]float64

// HeatmapData is the caller-supplied input for a heatmap descriptor.
type HeatmapData struct {
	XAxis  []string      `json:"xAxis"`
	YAxis  []string      `json:"yAxis"`
	Values []HeatmapCell `json:"values"`
	Min    float64       `json:"min"`
	Max    float64       `json:"max"`
}

// HeatmapLabel toggles in-cell value labels.
type HeatmapLabel struct {
	Show bool `json:"show"`
}

// EmphasisItemStyle is the hover highlight style.
type EmphasisItemStyle struct {
	ShadowBlur  int    `json:"shadowBlur"`
	ShadowColor string `json:"shadowColor"`
}

// Emphasis wraps the hover style of a series.
type Emphasis struct {
	ItemStyle EmphasisItemStyle `json:"itemStyle"`
}

// HeatmapSeries is the single data series of a heatmap chart.
type HeatmapSeries struct {
	Name     string        `json:"name"`
	Type     string        `json:"type"`
	Data     []HeatmapCell `json:"data"`
	Label    HeatmapLabel  `json:"label"`
	Emphasis Emphasis      `json:"emphasis"`
}

// HeatmapOption is the full descriptor for a category-grid heatmap.
type HeatmapOption struct {
	Title     Title           `json:"title"`
	Tooltip   Tooltip         `json:"tooltip"`
	Grid      Grid            `json:"grid"`
	XAxis     Axis            `json:"xAxis"`
	YAxis     Axis            `json:"yAxis"`
	VisualMap VisualMap       `json:"visualMap"`
	Series    []HeatmapSeries `json:"series"`
}

// NewHeatmapOption builds a heatmap descriptor. The visual-map legend spans
// [data.Min, data.Max] verbatim, is draggable (calculable) and sits
// horizontally centered below the grid. Cell values pass through untouched.
func NewHeatmapOption(data HeatmapData, title string) HeatmapOption {
	return HeatmapOption{
		Title:   Title{Text: title, Left: "center"},
		Tooltip: Tooltip{Position: "top"},
		Grid:    Grid{Top: "10%", Height: "60%"},
		XAxis: Axis{
			Type:      "category",
			Data:      data.XAxis,
			SplitArea: &SplitArea{Show: true},
		},
		YAxis: Axis{
			Type:      "category",
			Data:      data.YAxis,
			SplitArea: &SplitArea{Show: true},
		},
		VisualMap: VisualMap{
			Min:        data.Min,
			Max:        data.Max,
			Calculable: true,
			Orient:     "horizontal",
			Left:       "center",
			Bottom:     "5%",
		},
		Series: []HeatmapSeries{{
			Name:  title,
			Type:  "heatmap",
			Data:  data.Values,
			Label: HeatmapLabel{Show: true},
			Emphasis: Emphasis{
				ItemStyle: EmphasisItemStyle{
					ShadowBlur:  10,
					ShadowColor: "rgba(0, 0, 0, 0.5)",
				},
			},
		}},
	}
}

package echarts

// Fixed radar styling constants.
const (
	RadarColor       = "#5470c6"
	radarAreaOpacity = 0.3
	radarLineWidth   = 2
)

// AreaStyle fills the polygon under a radar series.
type AreaStyle struct {
	Opacity float64 `json:"opacity"`
}

// LineStyle strokes the radar polygon outline.
type LineStyle struct {
	Width int    `json:"width"`
	Color string `json:"color,omitempty"`
}

// ItemStyle colors the radar data points.
type ItemStyle struct {
	Color string `json:"color"`
}

// RadarDataPoint is one polygon: a value per indicator axis.
type RadarDataPoint struct {
	Value []float64 `json:"value"`
	Name  string    `json:"name"`
}

// RadarSeries is the single series of a radar chart.
type RadarSeries struct {
	Name      string           `json:"name"`
	Type      string           `json:"type"`
	Data      []RadarDataPoint `json:"data"`
	AreaStyle AreaStyle        `json:"areaStyle"`
	LineStyle LineStyle        `json:"lineStyle"`
	ItemStyle ItemStyle        `json:"itemStyle"`
}

// RadarOption is the full descriptor for a single-series radar chart.
type RadarOption struct {
	Title   Title           `json:"title"`
	Tooltip Tooltip         `json:"tooltip"`
	Radar   RadarCoordinate `json:"radar"`
	Series  []RadarSeries   `json:"series"`
}

// NewRadarOption builds a radar descriptor plotting one data point (values)
// against the given indicator axes. Values are passed through untouched; no
// length check against the indicator set is performed.
func NewRadarOption(indicators []RadarIndicator, values []float64, title string) RadarOption {
	return RadarOption{
		Title:   Title{Text: title, Left: "center"},
		Tooltip: Tooltip{},
		Radar:   RadarCoordinate{Indicator: indicators},
		Series: []RadarSeries{{
			Name: title,
			Type: "radar",
			Data: []RadarDataPoint{{
				Value: values,
				Name:  title,
			}},
			AreaStyle: AreaStyle{Opacity: radarAreaOpacity},
			LineStyle: LineStyle{Width: radarLineWidth, Color: RadarColor},
			ItemStyle: ItemStyle{Color: RadarColor},
		}},
	}
}

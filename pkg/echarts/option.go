// Package echarts assembles declarative chart-option descriptors for the
// dashboard's rendering engine, together with the display formatting and
// color helpers the builders rely on.
//
// Every function in this package is pure and stateless: descriptors are
// built fresh on each call, owned by the caller, and never mutated after
// return. Parallel input sequences (dates vs. values) are assumed to be
// pre-aligned and pre-sorted by the caller; no validation, sorting,
// truncation or padding happens here.
package echarts

// Title places the chart title.
type Title struct {
	Text string `json:"text"`
	Left string `json:"left,omitempty"`
}

// AxisPointer configures the tooltip pointer style.
type AxisPointer struct {
	Type string `json:"type,omitempty"`
}

// Tooltip configures hover tooltips.
type Tooltip struct {
	Trigger     string       `json:"trigger,omitempty"`
	Position    string       `json:"position,omitempty"`
	AxisPointer *AxisPointer `json:"axisPointer,omitempty"`
}

// Legend lists the series names shown in the chart legend.
type Legend struct {
	Data []string `json:"data"`
	Top  string   `json:"top,omitempty"`
}

// Grid positions a plotting area inside the chart canvas.
type Grid struct {
	Left   string `json:"left,omitempty"`
	Right  string `json:"right,omitempty"`
	Top    string `json:"top,omitempty"`
	Bottom string `json:"bottom,omitempty"`
	Height string `json:"height,omitempty"`
}

// AxisLabel styles axis tick labels.
type AxisLabel struct {
	Show      *bool  `json:"show,omitempty"`
	Rotate    int    `json:"rotate,omitempty"`
	Formatter string `json:"formatter,omitempty"`
}

// SplitArea toggles alternating background bands between axis splits.
type SplitArea struct {
	Show bool `json:"show"`
}

// SplitLine toggles grid lines at axis splits.
type SplitLine struct {
	Show bool `json:"show"`
}

// AxisLine configures the axis line itself.
type AxisLine struct {
	OnZero bool `json:"onZero"`
}

// Axis is a category or value axis definition. Min and Max accept either a
// number or the "dataMin"/"dataMax" keywords, hence the loose typing.
type Axis struct {
	Type        string     `json:"type"`
	Data        []string   `json:"data,omitempty"`
	GridIndex   int        `json:"gridIndex,omitempty"`
	Min         any        `json:"min,omitempty"`
	Max         any        `json:"max,omitempty"`
	Scale       bool       `json:"scale,omitempty"`
	BoundaryGap *bool      `json:"boundaryGap,omitempty"`
	AxisLine    *AxisLine  `json:"axisLine,omitempty"`
	AxisLabel   *AxisLabel `json:"axisLabel,omitempty"`
	SplitArea   *SplitArea `json:"splitArea,omitempty"`
	SplitLine   *SplitLine `json:"splitLine,omitempty"`
}

// DataZoom is one zoom control; Start and End are percentages of the data
// window.
type DataZoom struct {
	Type  string  `json:"type"`
	Show  *bool   `json:"show,omitempty"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Top   string  `json:"top,omitempty"`
}

// VisualMapRange maps the visual-map value range onto a color ramp.
type VisualMapRange struct {
	Color []string `json:"color"`
}

// VisualMap is the continuous value-to-color legend used by heatmaps.
type VisualMap struct {
	Min        float64         `json:"min"`
	Max        float64         `json:"max"`
	Calculable bool            `json:"calculable"`
	Orient     string          `json:"orient"`
	Left       string          `json:"left"`
	Bottom     string          `json:"bottom"`
	InRange    *VisualMapRange `json:"inRange,omitempty"`
}

// RadarIndicator is one radar axis with its maximum value.
type RadarIndicator struct {
	Name string  `json:"name"`
	Max  float64 `json:"max"`
}

// RadarCoordinate defines the radar axis set.
type RadarCoordinate struct {
	Indicator []RadarIndicator `json:"indicator"`
}

func boolPtr(b bool) *bool { return &b }

package echarts

// Candle is one candlestick tuple in the order the rendering engine expects
// for candlestick series data: open, close, lowest, highest.
type Candle [4]float64

// Chinese-market candle colors: red marks an up day, green a down day.
// This is the inverse of the Western convention and is deliberate.
const (
	UpColor         = "#ec0000"
	UpBorderColor   = "#8a0000"
	DownColor       = "#00da3c"
	DownBorderColor = "#008f28"
)

// CandlestickItemStyle colors the candle bodies and borders. Color applies
// to up days, Color0 to down days.
type CandlestickItemStyle struct {
	Color        string `json:"color"`
	Color0       string `json:"color0"`
	BorderColor  string `json:"borderColor"`
	BorderColor0 string `json:"borderColor0"`
}

// CandlestickSeries is the single data series of a K-line chart.
type CandlestickSeries struct {
	Name      string               `json:"name"`
	Type      string               `json:"type"`
	Data      []Candle             `json:"data"`
	ItemStyle CandlestickItemStyle `json:"itemStyle"`
}

// KLineOption is the full descriptor for a candlestick chart.
type KLineOption struct {
	Title    Title               `json:"title"`
	Tooltip  Tooltip             `json:"tooltip"`
	Legend   Legend              `json:"legend"`
	Grid     Grid                `json:"grid"`
	XAxis    Axis                `json:"xAxis"`
	YAxis    Axis                `json:"yAxis"`
	DataZoom []DataZoom          `json:"dataZoom"`
	Series   []CandlestickSeries `json:"series"`
}

// NewKLineOption builds a candlestick chart descriptor over the given
// parallel date/candle series. The candle slice is passed through to the
// series untouched.
//
// The legend advertises MA5/MA10 entries that have no backing series; the
// rendering engine tolerates the dangling names and the dashboard keeps them
// as an extension point for overlay series.
func NewKLineOption(dates []string, candles []Candle, title string) KLineOption {
	return KLineOption{
		Title: Title{Text: title, Left: "center"},
		Tooltip: Tooltip{
			Trigger:     "axis",
			AxisPointer: &AxisPointer{Type: "cross"},
		},
		Legend: Legend{Data: []string{"K线", "MA5", "MA10"}, Top: "30"},
		Grid:   Grid{Left: "10%", Right: "10%", Bottom: "15%"},
		XAxis: Axis{
			Type:        "category",
			Data:        dates,
			BoundaryGap: boolPtr(false),
			AxisLine:    &AxisLine{OnZero: false},
			SplitLine:   &SplitLine{Show: false},
			AxisLabel:   &AxisLabel{Rotate: 45},
			Min:         "dataMin",
			Max:         "dataMax",
		},
		YAxis: Axis{
			Type:      "value",
			Scale:     true,
			SplitArea: &SplitArea{Show: true},
		},
		DataZoom: []DataZoom{
			{Type: "inside", Start: 50, End: 100},
			{Type: "slider", Show: boolPtr(true), Top: "90%", Start: 50, End: 100},
		},
		Series: []CandlestickSeries{{
			Name: "K线",
			Type: "candlestick",
			Data: candles,
			ItemStyle: CandlestickItemStyle{
				Color:        UpColor,
				Color0:       DownColor,
				BorderColor:  UpBorderColor,
				BorderColor0: DownBorderColor,
			},
		}},
	}
}

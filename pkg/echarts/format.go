package echarts

import "fmt"

// Display-unit thresholds for large magnitudes.
const (
	hundredMillion = 1e8
	tenThousand    = 1e4
)

// FormatNumber renders a magnitude with the 万/亿 display-unit suffixes used
// across the dashboard: values at or above 1e8 are shown in 亿, values at or
// above 1e4 in 万, everything else plain, all with two decimals.
//
// The comparisons are against the signed value, not its absolute value, so
// negative magnitudes always fall through to the plain branch. Non-finite
// inputs are rendered as fmt prints them (NaN, +Inf).
//
// The unit is selected before rounding, so values just under a threshold
// can render as the threshold itself in the smaller unit: 99999999 is
// "10000.00万", not "1.00亿".
func FormatNumber(v float64) string {
	switch {
	case v >= hundredMillion:
		return fmt.Sprintf("%.2f亿", v/hundredMillion)
	case v >= tenThousand:
		return fmt.Sprintf("%.2f万", v/tenThousand)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

// FormatPercent renders a ratio as a fixed two-decimal percentage. The value
// is not clamped to [0, 100].
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

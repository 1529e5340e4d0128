package echarts

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrInvalidColor reports a color string that is not six hex digits with
	// an optional leading '#'.
	ErrInvalidColor = errors.New("echarts: invalid hex color")

	// ErrInvalidSteps reports a gradient request with fewer than two steps.
	ErrInvalidSteps = errors.New("echarts: gradient requires at least 2 steps")
)

// RGB is a red/green/blue channel triple. Channels are logically in
// [0, 255] but are not clamped anywhere in this package; see RGBToHex.
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// HexToRGB parses a six-digit hex color with an optional leading '#'.
// Case is ignored. Three-digit shorthand and any other malformed input
// return ErrInvalidColor.
func HexToRGB(hex string) (RGB, error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	return RGB{
		R: int(n >> 16 & 0xff),
		G: int(n >> 8 & 0xff),
		B: int(n & 0xff),
	}, nil
}

// RGBToHex packs the three channels into a 24-bit value rendered as
// "#rrggbb". Channels are used as given: values outside [0, 255] bleed into
// neighboring channels and produce garbled output rather than being clamped.
func RGBToHex(r, g, b int) string {
	return fmt.Sprintf("#%06x", r<<16|g<<8|b)
}

// Gradient returns exactly steps colors linearly interpolated per channel
// from start to end, both inclusive. The interpolation ratio for index i is
// i/(steps-1), so steps below 2 are rejected with ErrInvalidSteps instead of
// dividing by zero. Invalid endpoints surface ErrInvalidColor.
func Gradient(start, end string, steps int) ([]string, error) {
	if steps < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSteps, steps)
	}

	from, err := HexToRGB(start)
	if err != nil {
		return nil, err
	}
	to, err := HexToRGB(end)
	if err != nil {
		return nil, err
	}

	colors := make([]string, steps)
	for i := range colors {
		ratio := float64(i) / float64(steps-1)
		r := int(math.Round(float64(from.R) + float64(to.R-from.R)*ratio))
		g := int(math.Round(float64(from.G) + float64(to.G-from.G)*ratio))
		b := int(math.Round(float64(from.B) + float64(to.B-from.B)*ratio))
		colors[i] = RGBToHex(r, g, b)
	}

	return colors, nil
}

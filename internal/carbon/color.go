// Package carbon holds the helpers behind the carbon-footprint badge of a
// trip: emissions per kilometer, the green-to-black colour scale and the
// traction split of per-country distances.
package carbon

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	hexColorPattern = regexp.MustCompile(`^#?([0-9A-Fa-f]{2})([0-9A-Fa-f]{2})([0-9A-Fa-f]{2})$`)
	rgbColorPattern = regexp.MustCompile(`^rgb\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*\)$`)
)

// ErrInvalidHexColor is returned for colours that are neither #RRGGBB nor
// rgb(r, g, b).
var ErrInvalidHexColor = errors.New("invalid color, expected #RRGGBB or rgb(r, g, b)")

// RGB represents a color in RGB color space with values 0-255.
type RGB struct {
	R, G, B uint8
}

// String renders the colour as a CSS rgb() value.
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Hex renders the colour as lowercase #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// HexToRGB parses #RRGGBB, with or without the leading hash.
func HexToRGB(hex string) (RGB, error) {
	m := hexColorPattern.FindStringSubmatch(strings.TrimSpace(hex))
	if m == nil {
		return RGB{}, fmt.Errorf("%w: got %q", ErrInvalidHexColor, hex)
	}
	return componentsToRGB(m[1:], 16)
}

// ParseColor accepts either a hex colour or the rgb() form produced by
// CarbonColor.
func ParseColor(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if m := rgbColorPattern.FindStringSubmatch(s); m != nil {
		return componentsToRGB(m[1:], 10)
	}
	return HexToRGB(s)
}

func componentsToRGB(parts []string, base int) (RGB, error) {
	var out [3]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(p, base, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: component %q: %v", ErrInvalidHexColor, p, err)
		}
		out[i] = uint8(v)
	}
	return RGB{R: out[0], G: out[1], B: out[2]}, nil
}

// InterpolateColor blends from into to; factor 0 yields from, 1 yields to.
func InterpolateColor(from, to RGB, factor float64) RGB {
	blend := func(a, b uint8) uint8 {
		v := math.Round(float64(a) + (float64(b)-float64(a))*factor)
		return uint8(min(max(v, 0), 255))
	}
	return RGB{R: blend(from.R, to.R), G: blend(from.G, to.G), B: blend(from.B, to.B)}
}

// Carbon scale: green, yellow, orange, red, black at these kg CO2/km.
var (
	scaleColors     = []string{"#28a745", "#ffc107", "#fd7e14", "#dc3545", "#000000"}
	scaleThresholds = []float64{0, 0.05, 0.15, 0.25, 0.4}
)

// CarbonColor maps emissions per kilometer onto the carbon scale. Values at
// or below the first threshold and at or above the last one return the end
// colours as hex; values in between are interpolated and returned as rgb().
func CarbonColor(co2PerKm float64) string {
	last := len(scaleThresholds) - 1
	if co2PerKm <= scaleThresholds[0] {
		return scaleColors[0]
	}
	if co2PerKm >= scaleThresholds[last] {
		return scaleColors[last]
	}

	for i := 0; i < last; i++ {
		lo, hi := scaleThresholds[i], scaleThresholds[i+1]
		if co2PerKm >= lo && co2PerKm <= hi {
			factor := (co2PerKm - lo) / (hi - lo)
			from, _ := HexToRGB(scaleColors[i])
			to, _ := HexToRGB(scaleColors[i+1])
			return InterpolateColor(from, to, factor).String()
		}
	}
	// NaN
	return scaleColors[last]
}

// TextColor picks black or white text for a background, by perceived
// luminance.
func TextColor(bg RGB) string {
	luminance := (0.299*float64(bg.R) + 0.587*float64(bg.G) + 0.114*float64(bg.B)) / 255
	if luminance > 0.5 {
		return "#000000"
	}
	return "#FFFFFF"
}

// TextColorFor is TextColor for a colour string. Unparseable colours get
// white text.
func TextColorFor(bg string) string {
	rgb, err := ParseColor(bg)
	if err != nil {
		return "#FFFFFF"
	}
	return TextColor(rgb)
}

package render

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// Sinebow returns the rainbow color at t in [0, 1]; t wraps cyclically.
func Sinebow(t float64) gg.RGBA {
	t = (0.5 - t) * math.Pi
	return gg.RGB(sin2(t), sin2(t+math.Pi/3), sin2(t+2*math.Pi/3))
}

func sin2(x float64) float64 {
	s := math.Sin(x)
	return s * s
}

// SegmentColor returns the color of segment i out of n.
func SegmentColor(i, n int) gg.RGBA {
	if n <= 0 {
		return Sinebow(0)
	}
	return Sinebow(float64(i) / float64(n))
}

// StrokeWidth returns the line width for a curve of the given level. Higher
// levels pack more segments into the canvas and get thinner lines.
func StrokeWidth(level int) float64 {
	if level <= 0 {
		return 50
	}
	return 50 / float64(level*level)
}

// Hex formats c as #rrggbb, ignoring alpha.
func Hex(c gg.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

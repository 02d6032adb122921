package render

import (
	mt "github.com/rustyoz/Mtransform"

	"github.com/vasalvit/hilbert"
)

// Viewport is the pixel canvas a curve is drawn on.
type Viewport struct {
	Width   float64
	Height  float64
	Padding float64
	// FlipY draws grid y upwards, as on paper, instead of image rows down.
	FlipY bool
}

// DefaultViewport returns a 300x300 canvas with a 10 pixel margin.
func DefaultViewport() Viewport {
	return Viewport{Width: 300, Height: 300, Padding: 10, FlipY: true}
}

// Transform maps the bounding box b onto the canvas inside the padding.
// The minimum corner lands on (Padding, Padding) and the maximum corner on
// (Width-Padding, Height-Padding); with FlipY the y axis is mirrored.
// An axis with zero extent keeps a scale of 1.
func (v Viewport) Transform(b hilbert.Rect) mt.Transform {
	sx := axisScale(v.Width-2*v.Padding, b.Dx())
	sy := axisScale(v.Height-2*v.Padding, b.Dy())
	minX, minY := float64(b.Min.X), float64(b.Min.Y)

	scale := mt.Identity()
	translate := mt.Identity()
	if v.FlipY {
		scale.Scale(sx, -sy)
		translate.Translate(v.Padding-minX*sx, v.Height-v.Padding+minY*sy)
	} else {
		scale.Scale(sx, sy)
		translate.Translate(v.Padding-minX*sx, v.Padding-minY*sy)
	}
	return mt.MultiplyTransforms(translate, scale)
}

// Project applies t to a grid point.
func Project(t mt.Transform, p hilbert.Point) Tuple {
	x, y := t.Apply(float64(p.X), float64(p.Y))
	return Tuple{x, y}
}

func axisScale(span float64, extent int) float64 {
	if extent == 0 {
		return 1
	}
	return span / float64(extent)
}

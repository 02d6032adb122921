package render

import (
	"fmt"
	"io"

	"github.com/gogpu/gg"

	"github.com/vasalvit/hilbert"
)

// Rasterize draws the curve on a white software context the size of the
// viewport. The caller owns the returned context and must Close it.
func Rasterize(c *hilbert.Curve, v Viewport) (*gg.Context, error) {
	dc := gg.NewContext(int(v.Width), int(v.Height))
	dc.ClearWithColor(gg.White)
	dc.SetLineCap(gg.LineCapRound)

	for _, di := range Instructions(c, v) {
		switch di.Kind {
		case MoveInstruction:
			dc.MoveTo(di.M[0], di.M[1])
		case LineInstruction:
			dc.LineTo(di.M[0], di.M[1])
		case PaintInstruction:
			dc.SetStrokeBrush(gg.Solid(*di.Stroke))
			dc.SetLineWidth(*di.StrokeWidth)
			if err := dc.Stroke(); err != nil {
				dc.Close()
				return nil, fmt.Errorf("stroke segment: %w", err)
			}
		}
	}

	hilbert.Logger().Debug("render: rasterized curve", "level", c.Level, "width", v.Width, "height", v.Height)
	return dc, nil
}

// EncodePNG rasterizes the curve and writes it to w as PNG.
func EncodePNG(w io.Writer, c *hilbert.Curve, v Viewport) error {
	dc, err := Rasterize(c, v)
	if err != nil {
		return err
	}
	defer dc.Close()

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

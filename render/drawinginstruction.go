package render

import (
	"github.com/gogpu/gg"

	"github.com/vasalvit/hilbert"
)

// InstructionType tells a path drawing library which function it has to
// call
type InstructionType int

// These are instruction types that we use with our path drawing library
const (
	MoveInstruction InstructionType = iota
	LineInstruction
	PaintInstruction
)

// Tuple is an X,Y coordinate in pixel space
type Tuple [2]float64

// DrawingInstruction contains enough information that a simple drawing
// library can draw a curve. Paint instructions carry the stroke of the path
// built by the preceding Move and Line instructions.
type DrawingInstruction struct {
	Kind        InstructionType
	M           *Tuple
	Stroke      *gg.RGBA
	StrokeWidth *float64
}

// Instructions turns the curve into drawing instructions on viewport v. Every
// segment becomes its own path (Move, Line, Paint) so that each one can be
// painted in its own color.
func Instructions(c *hilbert.Curve, v Viewport) []*DrawingInstruction {
	t := v.Transform(c.Bounds())
	width := StrokeWidth(c.Level)
	n := len(c.Segments)

	instrs := make([]*DrawingInstruction, 0, 3*n)
	for i, s := range c.Segments {
		start := Project(t, s.Start)
		end := Project(t, s.End)
		stroke := SegmentColor(i, n)
		instrs = append(instrs,
			&DrawingInstruction{Kind: MoveInstruction, M: &start},
			&DrawingInstruction{Kind: LineInstruction, M: &end},
			&DrawingInstruction{Kind: PaintInstruction, Stroke: &stroke, StrokeWidth: &width},
		)
	}
	return instrs
}

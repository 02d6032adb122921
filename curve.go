package hilbert

import (
	"errors"
	"fmt"
)

// DefaultMaxLevel is the highest level NewCurve accepts unless WithMaxLevel
// says otherwise. A level L curve has 4^L points.
const DefaultMaxLevel = 12

// ErrLevelTooLarge is returned by NewCurve for levels above the configured
// maximum.
var ErrLevelTooLarge = errors.New("hilbert: level too large")

// Curve is a Hilbert curve with every stage of the pipeline that produced it.
type Curve struct {
	Level        int
	Mirrored     bool
	Instructions []Instruction
	Headings     []Heading
	Points       []Point
	Segments     []Segment
}

type options struct {
	mirrored bool
	maxLevel int
}

// Option configures NewCurve.
type Option func(*options)

// WithMirrored selects the reflected curve.
func WithMirrored(mirrored bool) Option {
	return func(o *options) {
		o.mirrored = mirrored
	}
}

// WithMaxLevel sets the highest accepted level.
func WithMaxLevel(level int) Option {
	return func(o *options) {
		o.maxLevel = level
	}
}

// NewCurve generates the curve of the given level and runs it through the
// interpreter, the integrator and the segment builder.
func NewCurve(level int, opts ...Option) (*Curve, error) {
	o := options{maxLevel: DefaultMaxLevel}
	for _, opt := range opts {
		opt(&o)
	}

	if level > o.maxLevel {
		Logger().Warn("hilbert: level rejected", "level", level, "max", o.maxLevel)
		return nil, fmt.Errorf("level %d exceeds %d: %w", level, o.maxLevel, ErrLevelTooLarge)
	}

	instrs, err := Generate(level, o.mirrored)
	if err != nil {
		Logger().Warn("hilbert: level rejected", "level", level)
		return nil, err
	}

	c := &Curve{
		Level:        level,
		Mirrored:     o.mirrored,
		Instructions: instrs,
	}
	c.Headings = Interpret(c.Instructions)
	c.Points = Integrate(c.Headings)
	c.Segments = Segments(c.Points)

	Logger().Debug("hilbert: curve built",
		"level", level,
		"headings", len(c.Headings),
		"points", len(c.Points),
		"segments", len(c.Segments))
	return c, nil
}

// Bounds returns the bounding box of the curve's points.
func (c *Curve) Bounds() Rect {
	return Bounds(c.Points)
}

// Len returns the number of segments.
func (c *Curve) Len() int {
	return len(c.Segments)
}

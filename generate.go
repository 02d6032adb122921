package hilbert

import (
	"errors"
	"fmt"
)

// ErrNegativeLevel is returned when a curve of a negative level is requested.
var ErrNegativeLevel = errors.New("hilbert: level must not be negative")

// Generate returns the turtle program drawing the Hilbert curve of the given
// level. When mirrored is false the program starts with a left turn and the
// curve stays in the positive quadrant; mirrored selects the reflected curve.
//
// Level 0 yields an empty program.
func Generate(level int, mirrored bool) ([]Instruction, error) {
	if level < 0 {
		return nil, fmt.Errorf("generate level %d: %w", level, ErrNegativeLevel)
	}
	instrs := generate(level, mirrored)
	Logger().Debug("hilbert: generated instructions", "level", level, "mirrored", mirrored, "count", len(instrs))
	return instrs, nil
}

func generate(level int, mirrored bool) []Instruction {
	if level == 0 {
		return []Instruction{}
	}

	h := generate(level-1, mirrored)
	hi := generate(level-1, !mirrored)

	a, b := TurnRight, TurnLeft
	if mirrored {
		a, b = TurnLeft, TurnRight
	}

	out := make([]Instruction, 0, 2*len(h)+2*len(hi)+7)
	out = append(out, b)
	out = append(out, hi...)
	out = append(out, Forward, a)
	out = append(out, h...)
	out = append(out, Forward)
	out = append(out, h...)
	out = append(out, a, Forward)
	out = append(out, hi...)
	out = append(out, b)
	return out
}

// ForwardCount returns the number of Forward instructions in a program of
// the given level: 4^level - 1, or 0 for level 0 and below.
func ForwardCount(level int) int {
	if level <= 0 {
		return 0
	}
	return 1<<(2*uint(level)) - 1
}

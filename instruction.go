package hilbert

import "strings"

// Instruction is one step of a turtle program.
type Instruction int

// These are the instructions a Hilbert curve program is made of
const (
	TurnLeft Instruction = iota
	TurnRight
	Forward
)

// String returns the classic L-system letter of the instruction.
func (i Instruction) String() string {
	switch i {
	case TurnLeft:
		return "-"
	case TurnRight:
		return "+"
	case Forward:
		return "F"
	}
	return "?"
}

// FormatInstructions joins a program into its L-system text, e.g. "-F+F+F-".
func FormatInstructions(instrs []Instruction) string {
	var b strings.Builder
	b.Grow(len(instrs))
	for _, i := range instrs {
		b.WriteString(i.String())
	}
	return b.String()
}

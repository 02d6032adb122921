package hilbert

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

type program struct {
	Instructions []Instruction `parser:"@( '-' | '+' | 'F' )*"`
}

// Capture implements the participle.Capture interface
func (i *Instruction) Capture(values []string) error {
	switch values[0] {
	case "-":
		*i = TurnLeft
	case "+":
		*i = TurnRight
	case "F":
		*i = Forward
	default:
		return fmt.Errorf("unknown instruction %q", values[0])
	}
	return nil
}

var turtleLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Op", Pattern: `[-+F]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var programParser = participle.MustBuild[program](
	participle.Lexer(turtleLexer),
	participle.Elide("Whitespace"),
)

// ParseInstructions parses L-system text made of '-', '+' and 'F' into a
// program. Whitespace is ignored; any other character is an error.
func ParseInstructions(text string) ([]Instruction, error) {
	p, err := programParser.ParseString("instructions", text)
	if err != nil {
		return nil, fmt.Errorf("parse instructions: %w", err)
	}
	if p.Instructions == nil {
		return []Instruction{}, nil
	}
	return p.Instructions, nil
}

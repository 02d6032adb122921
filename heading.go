package hilbert

// Heading is the direction the turtle currently moves in.
type Heading int

// Headings in clockwise order; a right turn advances to the next one.
const (
	Right Heading = iota
	Down
	Left
	Up
)

func (h Heading) String() string {
	switch h {
	case Right:
		return "R"
	case Down:
		return "D"
	case Left:
		return "L"
	case Up:
		return "U"
	}
	return "?"
}

// Right returns the heading after a right turn.
func (h Heading) Right() Heading {
	return (h + 1) % 4
}

// Left returns the heading after a left turn.
func (h Heading) Left() Heading {
	return (h + 3) % 4
}

// Interpret walks a turtle program starting to the Right and returns the
// heading of every Forward instruction, in order.
func Interpret(instrs []Instruction) []Heading {
	headings := make([]Heading, 0, len(instrs)/2+1)
	current := Right
	for _, i := range instrs {
		switch i {
		case TurnRight:
			current = current.Right()
		case TurnLeft:
			current = current.Left()
		case Forward:
			headings = append(headings, current)
		}
	}
	return headings
}

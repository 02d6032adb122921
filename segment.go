package hilbert

// A Segment is one edge of the curve between two consecutive points.
type Segment struct {
	Start, End Point
}

// Segments pairs every point with its successor. Entry i is
// (points[i], points[i+1]); fewer than two points give no segments.
func Segments(points []Point) []Segment {
	idx := Range(len(points) - 1)
	segs := make([]Segment, 0, len(idx))
	for _, i := range idx {
		segs = append(segs, Segment{Start: points[i], End: points[i+1]})
	}
	return segs
}

// Adjacent reports whether the segment is a single unit step along exactly
// one axis.
func (s Segment) Adjacent() bool {
	dx := abs(s.End.X - s.Start.X)
	dy := abs(s.End.Y - s.Start.Y)
	return dx+dy == 1
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

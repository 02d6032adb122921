package hilbert

// Point is a cell of the integer grid the curve walks on.
type Point struct {
	X, Y int
}

// Pt is a convenience function to create a Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Delta returns the unit step for the heading. Up increases Y.
func (h Heading) Delta() Point {
	switch h {
	case Up:
		return Point{Y: 1}
	case Down:
		return Point{Y: -1}
	case Left:
		return Point{X: -1}
	case Right:
		return Point{X: 1}
	}
	return Point{}
}

// Integrate walks the headings from the origin one unit at a time. The
// result starts at (0,0) and has one more point than there are headings.
func Integrate(headings []Heading) []Point {
	points := make([]Point, 0, len(headings)+1)
	current := Point{}
	points = append(points, current)
	for _, h := range headings {
		current = current.Add(h.Delta())
		points = append(points, current)
	}
	return points
}

// Rect is an axis aligned bounding box with inclusive corners.
type Rect struct {
	Min, Max Point
}

// Dx returns the width of the box.
func (r Rect) Dx() int { return r.Max.X - r.Min.X }

// Dy returns the height of the box.
func (r Rect) Dy() int { return r.Max.Y - r.Min.Y }

// Bounds returns the bounding box of points, or the zero Rect when points is
// empty.
func Bounds(points []Point) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	r := Rect{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		r.Min.X = min(r.Min.X, p.X)
		r.Min.Y = min(r.Min.Y, p.Y)
		r.Max.X = max(r.Max.X, p.X)
		r.Max.Y = max(r.Max.Y, p.Y)
	}
	return r
}

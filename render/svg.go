package render

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/vasalvit/hilbert"
)

// Svg is the SVG document of a rendered curve: a single group of lines.
type Svg struct {
	XMLName xml.Name `xml:"svg"`
	Xmlns   string   `xml:"xmlns,attr"`
	Width   float64  `xml:"width,attr"`
	Height  float64  `xml:"height,attr"`
	Title   string   `xml:"title,omitempty"`
	Groups  []Group  `xml:"g"`
}

// Group represents an SVG group holding the curve's lines. Stroke width and
// line cap are shared by every line of the group.
type Group struct {
	ID            string  `xml:"id,attr,omitempty"`
	StrokeWidth   float64 `xml:"stroke-width,attr"`
	StrokeLinecap string  `xml:"stroke-linecap,attr,omitempty"`
	Lines         []Line  `xml:"line"`
}

// Line is an SVG line element, one per curve segment.
type Line struct {
	X1     float64 `xml:"x1,attr"`
	Y1     float64 `xml:"y1,attr"`
	X2     float64 `xml:"x2,attr"`
	Y2     float64 `xml:"y2,attr"`
	Stroke string  `xml:"stroke,attr"`
}

// NewSvg builds the SVG document of the curve on viewport v.
func NewSvg(c *hilbert.Curve, v Viewport) *Svg {
	g := Group{
		ID:            fmt.Sprintf("hilbert-%d", c.Level),
		StrokeWidth:   StrokeWidth(c.Level),
		StrokeLinecap: "round",
	}

	var m *Tuple
	for _, di := range Instructions(c, v) {
		switch di.Kind {
		case MoveInstruction:
			m = di.M
		case LineInstruction:
			g.Lines = append(g.Lines, Line{X1: m[0], Y1: m[1], X2: di.M[0], Y2: di.M[1]})
		case PaintInstruction:
			g.Lines[len(g.Lines)-1].Stroke = Hex(*di.Stroke)
		}
	}

	return &Svg{
		Xmlns:  "http://www.w3.org/2000/svg",
		Width:  v.Width,
		Height: v.Height,
		Title:  fmt.Sprintf("Hilbert curve, level %d", c.Level),
		Groups: []Group{g},
	}
}

// Encode writes the document to w, preceded by the XML header.
func (s *Svg) Encode(w io.Writer) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode svg: %w", err)
	}
	return enc.Close()
}

// ParseSvgFromReader parses an SVG document written by Encode
func ParseSvgFromReader(r io.Reader) (*Svg, error) {
	var svg Svg
	if err := xml.NewDecoder(r).Decode(&svg); err != nil {
		return nil, fmt.Errorf("ParseSvg Error: %v", err)
	}
	return &svg, nil
}

// Segments returns the number of lines in the document.
func (s *Svg) Segments() int {
	n := 0
	for _, g := range s.Groups {
		n += len(g.Lines)
	}
	return n
}

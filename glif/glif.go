package glif

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2/xml"
)

// Glyph is the subset of a UFO .glif file that describes a glyph's
// outline.
type Glyph struct {
	Name     string
	Advance  float64
	Unicodes []rune
	Anchors  []Anchor
	Outline  Outline
}

// Anchor is a named attachment point. Format 1 files store anchors as
// contours holding a single named move point. Decode moves those into
// Anchors, and Encode writes anchor elements.
type Anchor struct {
	Name string
	X, Y float64
}

func parseUnicode(s string) (rune, error) {
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, err
	}
	return rune(n), nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Encode writes g as a format 2 .glif file. Handles are written as
// off-curve points, and segments without handles as lines.
func Encode(w io.Writer, g *Glyph) error {
	bw := bufio.NewWriter(w)
	var buf []byte
	attr := func(s string) string {
		return string(xml.EscapeAttrVal(&buf, []byte(s)))
	}

	fmt.Fprintf(bw, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(bw, "<glyph name=%s format=\"2\">\n", attr(g.Name))
	if g.Advance != 0 {
		fmt.Fprintf(bw, "  <advance width=\"%s\"/>\n", formatFloat(g.Advance))
	}
	for _, r := range g.Unicodes {
		fmt.Fprintf(bw, "  <unicode hex=\"%04X\"/>\n", r)
	}
	for _, a := range g.Anchors {
		fmt.Fprintf(bw, "  <anchor x=\"%s\" y=\"%s\" name=%s/>\n", formatFloat(a.X), formatFloat(a.Y), attr(a.Name))
	}
	if len(g.Outline) > 0 {
		fmt.Fprintf(bw, "  <outline>\n")
		for _, c := range g.Outline {
			fmt.Fprintf(bw, "    <contour>\n")
			writeContour(bw, c)
			fmt.Fprintf(bw, "    </contour>\n")
		}
		fmt.Fprintf(bw, "  </outline>\n")
	}
	fmt.Fprintf(bw, "</glyph>\n")
	return bw.Flush()
}

func writeContour(w io.Writer, c Contour) {
	point := func(x, y float64, typ PointType) {
		var sb strings.Builder
		fmt.Fprintf(&sb, "      <point x=\"%s\" y=\"%s\"", formatFloat(x), formatFloat(y))
		if typ != OffCurve {
			fmt.Fprintf(&sb, " type=\"%s\"", typ)
		}
		sb.WriteString("/>\n")
		io.WriteString(w, sb.String())
	}
	// segment writes the segment from p to q, ending with q itself.
	segment := func(p, q Point, last bool) {
		if p.A.Colocated && q.B.Colocated {
			if !last {
				point(q.X, q.Y, Line)
			}
			return
		}
		a, b := p.HandlePos(A), q.HandlePos(B)
		point(a.X, a.Y, OffCurve)
		point(b.X, b.Y, OffCurve)
		if !last {
			point(q.X, q.Y, Curve)
		}
	}
	if len(c) == 0 {
		return
	}
	first := c[0]
	typ := first.Type
	if !c.IsOpen() {
		last := c[len(c)-1]
		typ = Line
		if !last.A.Colocated || !first.B.Colocated {
			typ = Curve
		}
	}
	point(first.X, first.Y, typ)
	for i := 1; i < len(c); i++ {
		segment(c[i-1], c[i], false)
	}
	if !c.IsOpen() && len(c) > 1 {
		// The closing segment's handles trail the last point.
		segment(c[len(c)-1], first, true)
	}
}

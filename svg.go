package glyphcurve

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
	// Closed decides whether a contour ends in a Z command. The zero value
	// uses [DefaultTolerance].
	Closed *Tolerance
}

// SVG converts a glyph to a string of SVG path commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(g Glyph, opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, g, opts)
	return sb.String()
}

// WriteSVG converts a glyph to a string of SVG path commands and writes it
// to w. Each contour starts with an M command followed by one C command per
// segment, and closed contours end in Z. Empty contours are skipped.
//
// The current implementation doesn't take any special care to produce a
// short string (reducing precision, using relative movement).
func WriteSVG(w io.Writer, g Glyph, opts SVGOptions) error {
	tol := DefaultTolerance()
	if opts.Closed != nil {
		tol = *opts.Closed
	}
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		} else {
			s := strconv.FormatFloat(n, 'f', maxPrec, 64)
			if strings.Contains(s, ".") {
				s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
			}
			return s
		}
	}
	first := true
	for _, c := range g.segs {
		if c.Len() == 0 {
			continue
		}
		if !first {
			writef(" ")
		}
		first = false
		p := c.StartPoint()
		writef("M%s,%s", format(p.X), format(p.Y))
		for _, seg := range c.segs {
			writef(" C%s,%s %s,%s %s,%s",
				format(seg.P1.X), format(seg.P1.Y),
				format(seg.P2.X), format(seg.P2.Y),
				format(seg.P3.X), format(seg.P3.Y))
		}
		if c.IsClosed(tol) {
			writef(" Z")
		}
		if err != nil {
			return err
		}
	}
	return err
}

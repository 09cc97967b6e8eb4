package glif

import (
	"honnef.co/go/glyphcurve"
)

// ContourToPiecewise converts a contour to a piecewise curve with one
// segment per pair of consecutive points. A closed contour gets an
// additional segment from its last point back to its first. A contour of
// fewer than two points has no segments.
func ContourToPiecewise(c Contour) glyphcurve.Contour {
	if len(c) < 2 {
		return glyphcurve.NewContour(nil)
	}
	segs := make([]glyphcurve.Bezier, 0, len(c))
	for i := 1; i < len(c); i++ {
		segs = append(segs, segmentBetween(c[i-1], c[i]))
	}
	if !c.IsOpen() {
		segs = append(segs, segmentBetween(c[len(c)-1], c[0]))
	}
	return glyphcurve.NewContour(segs)
}

func segmentBetween(p, q Point) glyphcurve.Bezier {
	return glyphcurve.NewBezier(p.Pos(), p.HandlePos(A), q.HandlePos(B), q.Pos())
}

// PiecewiseToContour converts a piecewise curve to a contour. If the curve
// is closed according to tol, the closing segment is folded into the first
// point's incoming handle. Otherwise, the contour starts with a Move and
// ends with the curve's end point.
func PiecewiseToContour(pw glyphcurve.Contour, tol glyphcurve.Tolerance) Contour {
	if pw.Len() == 0 {
		return nil
	}
	closed := pw.IsClosed(tol)
	segs := pw.Segs()
	out := make(Contour, 0, len(segs)+1)
	for i, seg := range segs {
		typ := Curve
		if i == 0 && !closed {
			typ = Move
		}
		p := NewPoint(seg.P0, typ)
		p.A = At(seg.P1)
		if i > 0 {
			p.B = At(segs[i-1].P2)
		}
		out = append(out, p)
	}
	last := segs[len(segs)-1]
	if closed {
		out[0].B = At(last.P2)
	} else {
		end := NewPoint(last.P3, Curve)
		end.B = At(last.P2)
		out = append(out, end)
	}
	return out
}

// OutlineToGlyph converts the contours of o with [ContourToPiecewise].
// Contours that have no segments, such as lone points, are left out, so
// the glyph may hold fewer contours than o.
func OutlineToGlyph(o Outline) glyphcurve.Glyph {
	contours := make([]glyphcurve.Contour, 0, len(o))
	for _, c := range o {
		if pw := ContourToPiecewise(c); pw.Len() > 0 {
			contours = append(contours, pw)
		}
	}
	return glyphcurve.NewGlyph(contours)
}

// GlyphToOutline converts every contour of g with [PiecewiseToContour].
func GlyphToOutline(g glyphcurve.Glyph, tol glyphcurve.Tolerance) Outline {
	out := make(Outline, 0, g.Len())
	for _, c := range g.Segs() {
		out = append(out, PiecewiseToContour(c, tol))
	}
	return out
}

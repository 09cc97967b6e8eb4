package glif

import (
	"honnef.co/go/glyphcurve"
)

// QPoint is a point of a TrueType-style quadratic contour.
type QPoint struct {
	X, Y    float64
	OnCurve bool
}

func (p QPoint) pos() glyphcurve.Vec2 { return glyphcurve.Vec(p.X, p.Y) }

// QContour is a closed quadratic contour. Two consecutive off-curve points
// imply an on-curve point halfway between them.
type QContour []QPoint

// ResolveQuad converts a quadratic contour to an equivalent closed cubic
// contour. The handles of each quadratic segment p, h, q become
// p + 2/3(h-p) and q + 2/3(h-q). A contour of a single off-curve point has
// no on-curve points and resolves to nil.
func ResolveQuad(qc QContour) Contour {
	type onPoint struct {
		pos  glyphcurve.Vec2
		ctrl *glyphcurve.Vec2
	}

	// Make implied on-curve points explicit.
	pts := make(QContour, 0, len(qc)*2)
	for i, p := range qc {
		pts = append(pts, p)
		next := qc[(i+1)%len(qc)]
		if !p.OnCurve && !next.OnCurve && len(qc) > 1 {
			mid := p.pos().Lerp(next.pos(), 0.5)
			pts = append(pts, QPoint{X: mid.X, Y: mid.Y, OnCurve: true})
		}
	}
	start := -1
	for i, p := range pts {
		if p.OnCurve {
			start = i
			break
		}
	}
	if start == -1 {
		return nil
	}
	pts = append(pts[start:], pts[:start]...)

	var ons []onPoint
	for _, p := range pts {
		if p.OnCurve {
			ons = append(ons, onPoint{pos: p.pos()})
		} else {
			ctrl := p.pos()
			ons[len(ons)-1].ctrl = &ctrl
		}
	}

	out := make(Contour, len(ons))
	for k, on := range ons {
		out[k] = NewPoint(on.pos, Line)
	}
	for k, on := range ons {
		next := &out[(k+1)%len(out)]
		if on.ctrl == nil {
			continue
		}
		out[k].A = At(on.pos.Lerp(*on.ctrl, 2.0/3.0))
		next.B = At(next.Pos().Lerp(*on.ctrl, 2.0/3.0))
		next.Type = Curve
	}
	return out
}

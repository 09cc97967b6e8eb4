// Package glif converts between glyph outlines made of points with handles,
// as stored in UFO .glif files, and glyphcurve's piecewise curves.
package glif

import (
	"fmt"
	"math"

	"honnef.co/go/glyphcurve"
)

// PointType is the type of an on-curve point. It describes the segment that
// arrives at the point, except for Move, which starts an open contour.
type PointType int

const (
	OffCurve PointType = iota
	Move
	Line
	Curve
	QCurve
)

func (typ PointType) String() string {
	switch typ {
	case OffCurve:
		return "offcurve"
	case Move:
		return "move"
	case Line:
		return "line"
	case Curve:
		return "curve"
	case QCurve:
		return "qcurve"
	default:
		return fmt.Sprintf("PointType(%d)", int(typ))
	}
}

func parsePointType(s string) (PointType, bool) {
	switch s {
	case "", "offcurve":
		return OffCurve, true
	case "move":
		return Move, true
	case "line":
		return Line, true
	case "curve":
		return Curve, true
	case "qcurve":
		return QCurve, true
	default:
		return 0, false
	}
}

// Handle is a control point belonging to an on-curve point. A colocated
// handle sits on its point, and X and Y are ignored.
type Handle struct {
	X, Y      float64
	Colocated bool
}

// Colocated returns a handle that sits on its point.
func Colocated() Handle {
	return Handle{Colocated: true}
}

// At returns a handle at v.
func At(v glyphcurve.Vec2) Handle {
	return Handle{X: v.X, Y: v.Y}
}

// WhichHandle selects one of a point's handles.
type WhichHandle int

const (
	// A is the outgoing handle, the second control point of the segment
	// that starts at the point.
	A WhichHandle = iota
	// B is the incoming handle, the third control point of the segment that
	// ends at the point.
	B
)

// Point is an on-curve point with its two handles.
type Point struct {
	X, Y float64
	A, B Handle
	Type PointType
}

// NewPoint returns a point of the given type with colocated handles.
func NewPoint(v glyphcurve.Vec2, typ PointType) Point {
	return Point{X: v.X, Y: v.Y, A: Colocated(), B: Colocated(), Type: typ}
}

// Pos returns the position of the point.
func (p Point) Pos() glyphcurve.Vec2 {
	return glyphcurve.Vec(p.X, p.Y)
}

func (p Point) handle(wh WhichHandle) *Handle {
	switch wh {
	case A:
		return &p.A
	case B:
		return &p.B
	default:
		panic(fmt.Sprintf("invalid handle %d", int(wh)))
	}
}

// HandlePos returns the absolute position of a handle. A colocated handle
// is at the point.
func (p Point) HandlePos(wh WhichHandle) glyphcurve.Vec2 {
	h := p.handle(wh)
	if h.Colocated {
		return p.Pos()
	}
	return glyphcurve.Vec(h.X, h.Y)
}

// Cartesian returns the position of a handle relative to its point.
func (p Point) Cartesian(wh WhichHandle) glyphcurve.Vec2 {
	return p.HandlePos(wh).Sub(p.Pos())
}

// Polar returns the distance of a handle from its point and its angle in
// radians.
func (p Point) Polar(wh WhichHandle) (r, theta float64) {
	v := p.Cartesian(wh)
	return v.Hypot(), v.Angle()
}

// SetPolar places a handle at distance r from the point, at an angle of
// theta degrees.
func (p *Point) SetPolar(wh WhichHandle, r, theta float64) {
	s, c := math.Sincos(theta * math.Pi / 180)
	h := Handle{X: p.X + r*c, Y: p.Y + r*s}
	switch wh {
	case A:
		p.A = h
	case B:
		p.B = h
	default:
		panic(fmt.Sprintf("invalid handle %d", int(wh)))
	}
}

// Contour is a sequence of points. It is open if its first point is a
// Move, and closed otherwise.
type Contour []Point

// IsOpen reports whether c starts with a Move.
func (c Contour) IsOpen() bool {
	return len(c) > 0 && c[0].Type == Move
}

// Outline is a list of contours.
type Outline []Contour

// AssertColocated is AssertColocatedWithin with a distance of 1.
func (o Outline) AssertColocated() {
	o.AssertColocatedWithin(1)
}

// AssertColocatedWithin marks every handle that is closer than within to
// its point, on both axes, as colocated. The outline is modified in place.
func (o Outline) AssertColocatedWithin(within float64) {
	snap := func(p Point, h *Handle) {
		if !h.Colocated && math.Abs(h.X-p.X) < within && math.Abs(h.Y-p.Y) < within {
			*h = Colocated()
		}
	}
	for _, c := range o {
		for i := range c {
			p := &c[i]
			snap(*p, &p.A)
			snap(*p, &p.B)
		}
	}
}

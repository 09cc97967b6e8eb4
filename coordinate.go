package glyphcurve

import (
	"math"
	"strconv"
)

// Coordinate describes the values a curve evaluates to. It is implemented by
// [Vec2] for planar curves and by [Scalar] for one-dimensional profiles, which
// lets [Piecewise] stitch either kind of segment.
type Coordinate[C any] interface {
	Add(o C) C
	Sub(o C) C
	Mul(f float64) C
	// Hypot returns the magnitude of the coordinate, treated as a vector.
	Hypot() float64
}

// Lerp linearly interpolates between two coordinates. It returns exactly a
// at t = 0 and exactly b at t = 1.
func Lerp[C Coordinate[C]](a, b C, t float64) C {
	return a.Mul(1 - t).Add(b.Mul(t))
}

// Distance returns the distance between two coordinates.
func Distance[C Coordinate[C]](a, b C) float64 {
	return b.Sub(a).Hypot()
}

// Scalar is a one-dimensional coordinate.
type Scalar float64

var _ Coordinate[Scalar] = Scalar(0)

func (s Scalar) Add(o Scalar) Scalar  { return s + o }
func (s Scalar) Sub(o Scalar) Scalar  { return s - o }
func (s Scalar) Mul(f float64) Scalar { return s * Scalar(f) }
func (s Scalar) Hypot() float64       { return math.Abs(float64(s)) }

func (s Scalar) String() string {
	return strconv.FormatFloat(float64(s), 'g', -1, 64)
}

// Evaluator is the capability set shared by every segment type that can take
// part in a [Piecewise]. Self is the implementing type, so that
// ApplyTransform returns a value of the same type.
type Evaluator[C Coordinate[C], Self any] interface {
	// At evaluates the curve at parameter t. Generally, t is in the range
	// [0, 1], but implementations extrapolate outside of it.
	At(t float64) C
	// TangentAt returns the derivative of the curve at t.
	TangentAt(t float64) C
	// Bounds returns a rectangle that encloses the curve in the range [0, 1].
	Bounds() Rect
	// ApplyTransform maps every control value through f.
	ApplyTransform(f func(C) C) Self
	StartPoint() C
	EndPoint() C
}

// Splitter is an optional interface implemented by segment types that can be
// subdivided. Split must return ok == false when t is exactly 0 or 1.
type Splitter[T any] interface {
	Split(t float64) (left, right T, ok bool)
}

// Curve is the minimal planar curve needed to build a reparameterization
// table. [Bezier], [Contour], and [Glyph] all satisfy it.
type Curve interface {
	At(t float64) Vec2
	TangentAt(t float64) Vec2
}

// Transform applies an affine transformation to any evaluator over [Vec2]
// by transforming its control points.
func Transform[T interface {
	ApplyTransform(f func(Vec2) Vec2) T
}](v T, aff Affine) T {
	return v.ApplyTransform(func(p Vec2) Vec2 { return p.Transform(aff) })
}

package glyphcurve

import (
	"fmt"
	"math"
)

// Vec2 is a point or displacement in font units.
type Vec2 struct {
	X float64
	Y float64
}

var _ Coordinate[Vec2] = Vec2{}

func Vec(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Mul(f float64) Vec2   { return Vec2{v.X * f, v.Y * f} }
func (v Vec2) Div(f float64) Vec2   { return Vec2{v.X / f, v.Y / f} }
func (v Vec2) Negate() Vec2         { return Vec2{-v.X, -v.Y} }
func (v Vec2) Dot(o Vec2) float64   { return v.X*o.X + v.Y*o.Y }
func (v Vec2) Cross(o Vec2) float64 { return v.X*o.Y - v.Y*o.X }

// Hypot returns the length of v.
func (v Vec2) Hypot() float64 { return math.Hypot(v.X, v.Y) }

// Hypot2 returns the squared length of v, avoiding the square root.
func (v Vec2) Hypot2() float64 { return v.Dot(v) }

// Angle returns the direction of v in radians, measured from the positive X
// axis.
func (v Vec2) Angle() float64 { return math.Atan2(v.Y, v.X) }

// AngleTo returns the signed angle in radians that rotates v onto o, in
// (−π, π]. It is 0 when either vector is zero.
func (v Vec2) AngleTo(o Vec2) float64 {
	return math.Atan2(v.Cross(o), v.Dot(o))
}

// Lerp interpolates linearly from v to o. It returns v exactly at t = 0 and
// o exactly at t = 1.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return v.Mul(1 - t).Add(o.Mul(t))
}

func (v Vec2) Midpoint(o Vec2) Vec2 {
	return Vec2{0.5 * (v.X + o.X), 0.5 * (v.Y + o.Y)}
}

func (v Vec2) Distance(o Vec2) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

func (v Vec2) Transform(aff Affine) Vec2 {
	return Vec2{
		X: aff.N0*v.X + aff.N2*v.Y + aff.N4,
		Y: aff.N1*v.X + aff.N3*v.Y + aff.N5,
	}
}

// IsNaN reports whether either coordinate is NaN.
func (v Vec2) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y)
}

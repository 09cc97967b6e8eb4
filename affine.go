package glyphcurve

import (
	"math"
)

// Affine is a 2D affine transform. The coefficients (N0 … N5) form the
// matrix
//
//	| N0 N2 N4 |
//	| N1 N3 N5 |
//	|  0  0  1 |
//
// so that a.Mul(b) applies b first. Apply it to any [Evaluator] over Vec2
// with [Transform], or to a single point with [Vec2.Transform].
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

var (
	Identity = Affine{1, 0, 0, 1, 0, 0}
	// FlipY mirrors across the X axis, converting between the Y-up space of
	// font outlines and Y-down screen space.
	FlipY = Affine{1, 0, 0, -1, 0, 0}
)

func Scale(x, y float64) Affine { return Affine{x, 0, 0, y, 0, 0} }

func Translate(v Vec2) Affine { return Affine{1, 0, 0, 1, v.X, v.Y} }

// Rotate rotates by th radians. Positive angles turn the X axis towards the
// Y axis, which is anti-clockwise in font units.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// RotateAbout rotates by th radians around center.
func RotateAbout(th float64, center Vec2) Affine {
	return Translate(center.Negate()).ThenRotate(th).ThenTranslate(center)
}

// Skew shears by x horizontally and y vertically. A horizontal skew turns
// an upright glyph into a faux oblique.
func Skew(x, y float64) Affine {
	return Affine{1, y, x, 1, 0, 0}
}

func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

func (aff Affine) ThenRotate(th float64) Affine  { return Rotate(th).Mul(aff) }
func (aff Affine) ThenScale(x, y float64) Affine { return Scale(x, y).Mul(aff) }

func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}

// Invert returns the inverse transform. A singular transform yields NaNs.
func (aff Affine) Invert() Affine {
	inv := 1 / (aff.N0*aff.N3 - aff.N1*aff.N2)
	return Affine{
		inv * aff.N3,
		-inv * aff.N1,
		-inv * aff.N2,
		inv * aff.N0,
		inv * (aff.N2*aff.N5 - aff.N3*aff.N4),
		inv * (aff.N1*aff.N4 - aff.N0*aff.N5),
	}
}

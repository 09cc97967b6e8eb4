package glyphcurve

import (
	"math"
)

// Circle is a circle, used to build round contours such as the bowls of
// glyphs.
type Circle struct {
	Center Vec2
	Radius float64
}

// Contour approximates the circle with cubic Béziers whose distance from the
// true circle is at most tolerance. The contour starts at angle 0, runs
// anti-clockwise in a y-up space, and is closed.
func (c Circle) Contour(tolerance float64) Contour {
	scaledError := math.Abs(c.Radius) / tolerance
	var n int
	var armLength float64
	if scaledError < 1.0/1.9608e-4 {
		// Solution from http://spencermortensen.com/articles/bezier-circle/
		n = 4
		armLength = 0.551915024494
	} else {
		// This is empirically determined to fall within error tolerance.
		n = int(math.Ceil(math.Pow(1.1163*scaledError, 1.0/6.0)))
		armLength = (4.0 / 3.0) * math.Tan(math.Pi/2/(float64(n)))
	}

	x, y := c.Center.X, c.Center.Y
	r := c.Radius
	segs := make([]Bezier, 0, n)
	deltaTh := 2.0 * math.Pi / float64(n)
	for ix := 1; ix <= n; ix++ {
		a := armLength
		th1 := deltaTh * float64(ix)
		th0 := th1 - deltaTh
		s0, c0 := math.Sincos(th0)
		var s1, c1 float64
		if ix == n {
			// Close exactly.
			s1 = 0.0
			c1 = 1.0
		} else {
			s1, c1 = math.Sincos(th1)
		}
		segs = append(segs, Bezier{
			P0: Vec(x+r*c0, y+r*s0),
			P1: Vec(x+r*(c0-a*s0), y+r*(s0+a*c0)),
			P2: Vec(x+r*(c1+a*s1), y+r*(s1-a*c1)),
			P3: Vec(x+r*c1, y+r*s1),
		})
	}
	return NewContour(segs)
}

// Area returns the area of the circle.
func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

package glyphcurve

import (
	"math"
)

// Arc is an elliptical arc. Angles are in radians, and a positive sweep
// runs from the positive X axis towards the positive Y axis.
type Arc struct {
	Center     Vec2
	Radii      Vec2
	StartAngle float64
	SweepAngle float64
	XRotation  float64
}

// Contour approximates the arc with cubic Béziers whose distance from the
// true arc is at most tolerance. The segments have uniform cuts.
func (a Arc) Contour(tolerance float64) Contour {
	scaledError := max(a.Radii.X, a.Radii.Y) / tolerance
	// Number of subdivisions per ellipse based on error tolerance.
	// Note: this may slightly underestimate the error for quadrants.
	nError := max(math.Pow(1.1163*scaledError, 1.0/6.0), 3.999_999)
	n := math.Ceil(nError * math.Abs(a.SweepAngle) * (1.0 / (2.0 * math.Pi)))
	if n < 1 {
		return NewContour(nil)
	}
	angleStep := a.SweepAngle / n
	armLen := math.Copysign((4.0/3.0)*math.Tan(math.Abs(0.25*angleStep)), a.SweepAngle)

	segs := make([]Bezier, 0, int(n))
	angle0 := a.StartAngle
	p0 := sampleEllipse(a.Radii, a.XRotation, angle0)
	for range int(n) {
		angle1 := angle0 + angleStep
		p1 := p0.Add(sampleEllipse(a.Radii, a.XRotation, angle0+math.Pi/2).Mul(armLen))
		p3 := sampleEllipse(a.Radii, a.XRotation, angle1)
		p2 := p3.Sub(sampleEllipse(a.Radii, a.XRotation, angle1+math.Pi/2).Mul(armLen))
		segs = append(segs, Bezier{
			P0: a.Center.Add(p0),
			P1: a.Center.Add(p1),
			P2: a.Center.Add(p2),
			P3: a.Center.Add(p3),
		})
		angle0 = angle1
		p0 = p3
	}
	return NewContour(segs)
}

// sampleEllipse returns the point at angle on an ellipse centered on the
// origin with the given radii, rotated by xRotation.
func sampleEllipse(radii Vec2, xRotation float64, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{radii.X * cos, radii.Y * sin}.Transform(Rotate(xRotation))
}

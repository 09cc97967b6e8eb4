package glyphcurve

import (
	"math"
	"slices"
	"sort"
)

// epsilon is the amount by which [Bezier.TangentAt] nudges the parameter away
// from the endpoints.
const epsilon = 0x1p-52

var _ Evaluator[Vec2, Bezier] = Bezier{}
var _ Splitter[Bezier] = Bezier{}
var _ Curve = Bezier{}

// Bezier is a cubic Bézier segment. P0 and P3 are the endpoints, P1 and P2
// the handles. Handles may coincide with their endpoints or with each other.
type Bezier struct {
	P0 Vec2
	P1 Vec2
	P2 Vec2
	P3 Vec2
}

// NewBezier returns the cubic Bézier with the given control points.
func NewBezier(p0, p1, p2, p3 Vec2) Bezier {
	return Bezier{p0, p1, p2, p3}
}

// NewLine returns a straight cubic from p0 to p1. Its handles sit at one and
// two thirds of the way, which gives the line a uniform speed: At(t) is the
// point a fraction t along the line.
func NewLine(p0, p1 Vec2) Bezier {
	return Bezier{
		p0,
		p0.Lerp(p1, 1.0/3.0),
		p0.Lerp(p1, 2.0/3.0),
		p1,
	}
}

// ControlPoints returns the four control points in order.
func (c Bezier) ControlPoints() [4]Vec2 {
	return [4]Vec2{c.P0, c.P1, c.P2, c.P3}
}

// At evaluates the curve at t using de Casteljau's algorithm. Values of t
// outside [0, 1] extrapolate the curve.
func (c Bezier) At(t float64) Vec2 {
	p01 := c.P0.Lerp(c.P1, t)
	p12 := c.P1.Lerp(c.P2, t)
	p23 := c.P2.Lerp(c.P3, t)
	return p01.Lerp(p12, t).Lerp(p12.Lerp(p23, t), t)
}

// TangentAt returns the first derivative at t.
//
// A handle that coincides with its endpoint makes the derivative vanish at
// that end, so t values of exactly 0 and 1 are moved inward by one machine
// epsilon first. The result at the endpoints is therefore an approximation.
func (c Bezier) TangentAt(t float64) Vec2 {
	switch t {
	case 0:
		t = epsilon
	case 1:
		t = 1 - epsilon
	}
	return c.Differentiate().Eval(t)
}

// Differentiate returns the derivative of the curve, which is a quadratic.
func (c Bezier) Differentiate() QuadBez {
	return QuadBez{
		c.P1.Sub(c.P0).Mul(3),
		c.P2.Sub(c.P1).Mul(3),
		c.P3.Sub(c.P2).Mul(3),
	}
}

// SecondDerivativeAt returns the second derivative at t.
func (c Bezier) SecondDerivativeAt(t float64) Vec2 {
	a := c.P2.Sub(c.P1.Mul(2)).Add(c.P0)
	b := c.P3.Sub(c.P2.Mul(2)).Add(c.P1)
	return a.Mul(6 * (1 - t)).Add(b.Mul(6 * t))
}

// Curvature returns the signed curvature at t, which is positive where the
// curve turns anti-clockwise in a y-up space. It returns 0 where the first
// derivative vanishes.
func (c Bezier) Curvature(t float64) float64 {
	d1 := c.Differentiate().Eval(t)
	h := d1.Hypot()
	if h < 1e-12 {
		return 0
	}
	return d1.Cross(c.SecondDerivativeAt(t)) / (h * h * h)
}

// Split subdivides the curve at t using de Casteljau's algorithm. The two
// halves reproduce the original curve exactly. Split reports false when t
// is exactly 0 or 1, as one half would have zero length.
func (c Bezier) Split(t float64) (Bezier, Bezier, bool) {
	if t == 0 || t == 1 {
		return Bezier{}, Bezier{}, false
	}
	p01 := c.P0.Lerp(c.P1, t)
	p12 := c.P1.Lerp(c.P2, t)
	p23 := c.P2.Lerp(c.P3, t)
	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)
	p := p012.Lerp(p123, t)
	return Bezier{c.P0, p01, p012, p}, Bezier{p, p123, p23, c.P3}, true
}

// SplitAtMultipleT splits the curve at every parameter in ts, which may be
// given in any order. It returns len(ts)+1 pieces that cover the curve from
// start to end.
//
// Parameters are clamped to [0, 1]. A parameter that cannot split the
// remaining curve, because it is 0, 1, or a repeat of the previous one,
// contributes a zero-length piece.
func (c Bezier) SplitAtMultipleT(ts []float64) []Bezier {
	sorted := slices.Clone(ts)
	for i, t := range sorted {
		sorted[i] = min(max(t, 0), 1)
	}
	slices.Sort(sorted)

	out := make([]Bezier, 0, len(ts)+1)
	rest := c
	last := 0.0
	for _, t := range sorted {
		// Renormalize t into the parameter space of what is left.
		var lt float64
		if last >= 1 {
			lt = 1
		} else {
			lt = (t - last) / (1 - last)
		}
		left, right, ok := rest.Split(lt)
		switch {
		case ok:
			out = append(out, left)
			rest = right
			last = t
		case lt <= 0:
			out = append(out, point(rest.P0))
		default:
			out = append(out, rest)
			rest = point(rest.P3)
			last = 1
		}
	}
	return append(out, rest)
}

// point returns a zero-length curve at p.
func point(p Vec2) Bezier {
	return Bezier{p, p, p, p}
}

// Subdivide subdivides the curve into halves, using de Casteljau.
func (c Bezier) Subdivide() (Bezier, Bezier) {
	pm := c.At(0.5)
	return Bezier{
			c.P0,
			c.P0.Midpoint(c.P1),
			c.P0.Add(c.P1.Mul(2.0)).Add(c.P2).Mul(0.25),
			pm,
		},
		Bezier{
			pm,
			c.P1.Add(c.P2.Mul(2.0)).Add(c.P3).Mul(0.25),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

// Subsegment returns the part of the curve between t0 and t1.
func (c Bezier) Subsegment(t0, t1 float64) Bezier {
	p0 := c.At(t0)
	p3 := c.At(t1)
	d := c.Differentiate()
	scale := (t1 - t0) * (1.0 / 3.0)
	p1 := p0.Add(d.Eval(t0).Mul(scale))
	p2 := p3.Sub(d.Eval(t1).Mul(scale))
	return Bezier{p0, p1, p2, p3}
}

// Reverse returns the same curve traversed from end to start.
func (c Bezier) Reverse() Bezier {
	return Bezier{c.P3, c.P2, c.P1, c.P0}
}

// Balance moves handles that sit within 0.1 units of their endpoint onto the
// curve, at t = 0.4 for the first handle and t = 0.6 for the second. This
// gives near-retracted handles a usable direction.
func (c Bezier) Balance() Bezier {
	const distanceHeuristic = 0.1
	out := c
	if c.P0.Distance(c.P1) < distanceHeuristic {
		out.P1 = c.At(0.4)
	}
	if c.P2.Distance(c.P3) < distanceHeuristic {
		out.P2 = c.At(0.6)
	}
	return out
}

func (c Bezier) StartPoint() Vec2 {
	return c.P0
}

func (c Bezier) EndPoint() Vec2 {
	return c.P3
}

// Bounds returns the smallest axis-aligned rectangle that encloses the curve
// in the range [0, 1].
func (c Bezier) Bounds() Rect {
	bbox := NewRectFromPoints(c.P0, c.P3)
	ex, n := c.Extrema()
	for _, t := range ex[:n] {
		bbox = bbox.UnionPoint(c.At(t))
	}
	return bbox
}

// ControlBounds returns the rectangle enclosing all four control points. It
// always contains [Bezier.Bounds].
func (c Bezier) ControlBounds() Rect {
	return NewRectFromPointSet(c.P0, c.P1, c.P2, c.P3)
}

// ApplyTransform maps every control point through f.
func (c Bezier) ApplyTransform(f func(Vec2) Vec2) Bezier {
	return Bezier{f(c.P0), f(c.P1), f(c.P2), f(c.P3)}
}

func (c Bezier) Transform(aff Affine) Bezier {
	return Bezier{
		P0: c.P0.Transform(aff),
		P1: c.P1.Transform(aff),
		P2: c.P2.Transform(aff),
		P3: c.P3.Transform(aff),
	}
}

// Extrema returns the parameters in (0, 1) at which the x or y derivative
// vanishes, in increasing order.
func (c Bezier) Extrema() ([MaxExtrema]float64, int) {
	// two calls to oneCoord, up to 2 roots per call, for a total of 4 possible values.
	var out [MaxExtrema]float64
	var outN int
	oneCoord := func(d0, d1, d2 float64) {
		a := d0 - 2*d1 + d2
		b := 2 * (d1 - d0)
		c := d0
		roots, n := SolveQuadratic(c, b, a)
		for _, t := range roots[:n] {
			if t > 0.0 && t < 1.0 {
				out[outN] = t
				outN++
			}
		}
	}

	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	oneCoord(d0.X, d1.X, d2.X)
	oneCoord(d0.Y, d1.Y, d2.Y)
	sort.Float64s(out[:outN])
	return out, outN
}

// Tangents returns the start and end tangent directions. Unlike
// [Bezier.TangentAt], it falls back to the next distinct control point when a
// handle is retracted, so the result is only zero for a curve that is a
// single point.
func (c Bezier) Tangents() (Vec2, Vec2) {
	const epsilon = 1e-12
	d01 := c.P1.Sub(c.P0)
	var d0, d1 Vec2
	if d01.Hypot2() > epsilon {
		d0 = d01
	} else {
		d02 := c.P2.Sub(c.P0)
		if d02.Hypot2() > epsilon {
			d0 = d02
		} else {
			d0 = c.P3.Sub(c.P0)
		}
	}
	d23 := c.P3.Sub(c.P2)
	if d23.Hypot2() > epsilon {
		d1 = d23
	} else {
		d13 := c.P3.Sub(c.P1)
		if d13.Hypot2() > epsilon {
			d1 = d13
		} else {
			d1 = c.P3.Sub(c.P0)
		}
	}
	return d0, d1
}

// SignedArea returns the signed area between the curve and the origin. Summed
// over a closed contour, it is the area enclosed by the contour, positive for
// anti-clockwise contours in a y-up space.
func (c Bezier) SignedArea() float64 {
	v := c.P0.X*(6.0*c.P1.Y+3.0*c.P2.Y+c.P3.Y) +
		3.0*(c.P1.X*(-2.0*c.P0.Y+c.P2.Y+c.P3.Y)-c.P2.X*(c.P0.Y+c.P1.Y-2.0*c.P3.Y)) -
		c.P3.X*(c.P0.Y+3.0*c.P1.Y+6.0*c.P2.Y)
	return v * (1.0 / 20.0)
}

// Arclen returns the arclength of the curve.
//
// This is an adaptive subdivision approach using Legendre-Gauss quadrature.
// Unlike [ArclenParam], which samples the curve, the result is accurate to
// the given accuracy.
func (c Bezier) Arclen(accuracy float64) float64 {
	return c.arclen(accuracy, 0)
}

func (c Bezier) arclen(accuracy float64, depth int) float64 {
	d03 := c.P3.Sub(c.P0)
	d01 := c.P1.Sub(c.P0)
	d12 := c.P2.Sub(c.P1)
	d23 := c.P3.Sub(c.P2)
	lplc := d01.Hypot() + d12.Hypot() + d23.Hypot() - d03.Hypot()
	dd1 := d12.Sub(d01)
	dd2 := d23.Sub(d12)
	// The following values don't have the factor of 3 for first deriv
	dm := d01.Add(d23).Mul(0.25).Add(d12.Mul(0.5)) // first derivative at midpoint
	dm1 := dd2.Add(dd1).Mul(0.5)                   // second derivative at midpoint
	dm2 := dd2.Sub(dd1).Mul(0.25)                  // 0.5 * (third derivative at midpoint)

	var est float64
	for _, coeff := range gaussLegendreCoeffs8 {
		wi, xi := coeff[0], coeff[1]
		dNorm2 := dm.Add(dm1.Mul(xi)).Add(dm2.Mul(xi * xi)).Hypot2()
		ddNorm2 := dm1.Add(dm2.Mul(2.0 * xi)).Hypot2()
		est += wi * (ddNorm2 / dNorm2)
	}
	if math.IsNaN(est) {
		// dNorm2 will be 0 as c approaches a singularity
		est = 0
	}

	estGauss8Error := min(math.Pow(est, 3)*2.5e-6, 3e-2) * lplc
	if estGauss8Error < accuracy {
		return arclenQuadratureCore(gaussLegendreCoeffs8Half[:], dm, dm1, dm2)
	}
	estGauss16Error := min(math.Pow(est, 6)*1.5e-11, 9e-3) * lplc
	if estGauss16Error < accuracy {
		return arclenQuadratureCore(gaussLegendreCoeffs16Half[:], dm, dm1, dm2)
	}
	estGauss24Error := min(math.Pow(est, 9)*3.5e-16, 3.5e-3) * lplc
	if estGauss24Error < accuracy || depth >= 20 {
		return arclenQuadratureCore(gaussLegendreCoeffs24Half[:], dm, dm1, dm2)
	}
	c0, c1 := c.Subdivide()
	return c0.arclen(accuracy*0.5, depth+1) + c1.arclen(accuracy*0.5, depth+1)
}

func arclenQuadratureCore(coeffs [][2]float64, dm Vec2, dm1 Vec2, dm2 Vec2) float64 {
	var sum float64
	for _, coeff := range coeffs {
		wi, xi := coeff[0], coeff[1]
		d := dm.Add(dm2.Mul(xi * xi))
		dpx := d.Add(dm1.Mul(xi)).Hypot()
		dmx := d.Sub(dm1.Mul(xi)).Hypot()
		sum += math.Sqrt(2.25) * wi * (dpx + dmx)
	}
	return sum
}

// SolveForArclen returns the parameter t at which the length of the curve
// from its start equals arclen. It serves as an exact reference for the
// sampled [ArclenParam].
//
// The solution uses [SolveITP] and computes arc lengths of increasingly
// smaller subsegments rather than repeatedly measuring from t = 0.
func (c Bezier) SolveForArclen(arclen float64, accuracy float64) float64 {
	if arclen <= 0.0 {
		return 0.0
	}
	totalArclen := c.Arclen(accuracy)
	if arclen >= totalArclen {
		return 1.0
	}
	tLast := 0.0
	arclenLast := 0.0
	eps := accuracy / totalArclen
	n := 1.0 - min(math.Ceil(math.Log2(eps)), 0.0)
	innerAccuracy := accuracy / n
	f := func(t float64) float64 {
		var rangeStart, rangeEnd, dir float64
		if t > tLast {
			rangeStart, rangeEnd, dir = tLast, t, 1.0
		} else {
			rangeStart, rangeEnd, dir = t, tLast, -1.0
		}
		arclenLast += c.Subsegment(rangeStart, rangeEnd).Arclen(innerAccuracy) * dir
		tLast = t
		return arclenLast - arclen
	}
	return SolveITP(f, 0.0, 1.0, eps, 1, 0.2, -arclen, totalArclen-arclen)
}

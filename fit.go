package glyphcurve

import (
	"fmt"
)

// LinearFit returns the least-squares line y = slope·x + intercept through
// points.
func LinearFit(points []Vec2) (slope, intercept float64, err error) {
	if len(points) < 2 {
		return 0, 0, fmt.Errorf("linear fit: %w: got %d, need 2", ErrTooFewPoints, len(points))
	}
	var xsum, ysum, x2sum, xysum float64
	for _, p := range points {
		xsum += p.X
		ysum += p.Y
		x2sum += p.X * p.X
		xysum += p.X * p.Y
	}
	n := float64(len(points))
	den := n*x2sum - xsum*xsum
	if den == 0 {
		return 0, 0, fmt.Errorf("linear fit: %w: all points have x = %g", ErrDegenerateFit, points[0].X)
	}
	slope = (n*xysum - xsum*ysum) / den
	intercept = (x2sum*ysum - xsum*xysum) / den
	return slope, intercept, nil
}

// FitThroughPoints returns a smooth open contour that passes through every
// knot, with one segment between each pair of consecutive knots. The
// control points are chosen so that first and second derivatives are
// continuous at the inner knots and the second derivative vanishes at both
// ends. Two knots produce a straight line.
func FitThroughPoints(knots []Vec2) (Contour, error) {
	n := len(knots) - 1
	if n < 1 {
		return Contour{}, fmt.Errorf("fit through points: %w: got %d, need 2", ErrTooFewPoints, len(knots))
	}
	if n == 1 {
		// 3P1 = 2P0 + P3, P2 = 2P1 - P0
		p1 := knots[0].Mul(2).Add(knots[1]).Div(3)
		p2 := p1.Mul(2).Sub(knots[0])
		return NewContour([]Bezier{{knots[0], p1, p2, knots[1]}}), nil
	}

	rhs := make([]Vec2, n)
	rhs[0] = knots[0].Add(knots[1].Mul(2))
	for i := 1; i < n-1; i++ {
		rhs[i] = knots[i].Mul(4).Add(knots[i+1].Mul(2))
	}
	rhs[n-1] = knots[n-1].Mul(8).Add(knots[n]).Div(2)
	first := firstControlPoints(rhs)

	segs := make([]Bezier, n)
	for i := range n {
		var second Vec2
		if i < n-1 {
			second = knots[i+1].Mul(2).Sub(first[i+1])
		} else {
			second = knots[n].Add(first[n-1]).Div(2)
		}
		segs[i] = Bezier{knots[i], first[i], second, knots[i+1]}
	}
	return NewContour(segs), nil
}

// firstControlPoints solves the tridiagonal system for the first control
// points of each segment, for both coordinates at once.
func firstControlPoints(rhs []Vec2) []Vec2 {
	n := len(rhs)
	x := make([]Vec2, n)
	tmp := make([]float64, n)
	b := 2.0
	x[0] = rhs[0].Div(b)
	// Decomposition and forward substitution.
	for i := 1; i < n; i++ {
		tmp[i] = 1 / b
		if i < n-1 {
			b = 4 - tmp[i]
		} else {
			b = 3.5 - tmp[i]
		}
		x[i] = rhs[i].Sub(x[i-1]).Div(b)
	}
	// Backsubstitution.
	for i := 1; i < n; i++ {
		x[n-i-1] = x[n-i-1].Sub(x[n-i].Mul(tmp[n-i]))
	}
	return x
}

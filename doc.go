// Package glyphcurve provides a piecewise cubic Bézier curve algebra for
// representing, reparameterizing, subdividing and analyzing smooth outlines
// such as font glyphs.
//
// # Curves and piecewise curves
//
// The primitive curve is the cubic [Bezier]. Segments are stitched into a
// single curve with [Piecewise], whose parameter runs from 0 to 1 across all
// of its segments. A cut table records which range of the parameter each
// segment covers. Piecewise curves nest: a [Contour] is a Piecewise of
// Béziers, and a [Glyph] is a Piecewise of contours.
//
// Every segment type implements [Evaluator], which is generic over the
// [Coordinate] the curve evaluates to. Planar curves evaluate to [Vec2]. The
// same machinery works for one-dimensional profiles evaluating to [Scalar],
// such as a Piecewise of [Interpolator] values describing a stroke's width.
//
// All values are immutable. Operations that change a curve return a new one,
// so curves can be shared between goroutines without synchronization.
//
// # Reparameterization
//
// The native parameter of a Bézier does not advance at constant speed.
// [ArclenParam] maps fractions of arc length to native parameters, and
// [AngleParam] does the same for fractions of the total turning of the
// tangent. Both are tables of cumulative values sampled along the curve and
// are inverted with [Search]. [AngleParam.IntervalParams] finds the
// parameters at which a curve has turned by multiples of an angle, which is
// useful for placing points along a curve at regular changes in direction.
//
// # Continuity
//
// [ContinuousAt] classifies the joint between two Béziers as [G0], [G1] or
// [G2] continuous, within the thresholds of a [Tolerance].
// [ContinuousRuns] splits a contour into maximal continuous runs.
//
// # Logging
//
// The package logs nothing by default. Use [SetLogger] to receive debug
// records about table construction and rejected input.
//
// # Literature
//
// This package makes use of the following ideas:
//   - [A Primer on Bézier Curves]
//   - [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality] by Oliveira and Takahashi
//   - [Approximate a circle with cubic Bézier curves] by Spencer Mortensen
//   - [Calculating Area of Closed Curves in ℝ²]
//   - [Draw a Smooth Curve through a Set of 2D Points with Bezier Primitives]
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality]: https://dl.acm.org/doi/10.1145/3423597
// [Approximate a circle with cubic Bézier curves]: https://spencermortensen.com/articles/bezier-circle/
// [Calculating Area of Closed Curves in ℝ²]: http://ich.deanmcnamee.com/graphics/2016/03/30/CurveArea.html
// [Draw a Smooth Curve through a Set of 2D Points with Bezier Primitives]: https://www.codeproject.com/Articles/31859/Draw-a-Smooth-Curve-through-a-Set-of-2D-Points-wit
package glyphcurve

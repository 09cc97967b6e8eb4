package glyphcurve

import (
	"fmt"
)

// InterpolationKind selects how an [Interpolator] moves from its start value
// to its end value.
type InterpolationKind int

const (
	// InterpolateNone holds the start value over the whole range.
	InterpolateNone InterpolationKind = iota
	// InterpolateLinear moves from start to end at constant speed.
	InterpolateLinear
	// InterpolateExponential eases in quadratically.
	InterpolateExponential
)

func (k InterpolationKind) String() string {
	switch k {
	case InterpolateNone:
		return "none"
	case InterpolateLinear:
		return "linear"
	case InterpolateExponential:
		return "exponential"
	default:
		return fmt.Sprintf("InterpolationKind(%d)", int(k))
	}
}

// Interpolator is a one-dimensional segment, such as one span of a stroke's
// width profile. A Piecewise[Scalar, Interpolator] stitches spans together
// the same way a [Contour] stitches Béziers.
type Interpolator struct {
	Start, End Scalar
	Kind       InterpolationKind
}

var _ Evaluator[Scalar, Interpolator] = Interpolator{}
var _ Splitter[Interpolator] = Interpolator{}

// At evaluates the interpolator at t.
func (in Interpolator) At(t float64) Scalar {
	switch in.Kind {
	case InterpolateLinear:
		return Lerp(in.Start, in.End, t)
	case InterpolateExponential:
		return in.Start + (in.End-in.Start).Mul(t*t)
	default:
		return in.Start
	}
}

// TangentAt returns the derivative of the interpolator at t.
func (in Interpolator) TangentAt(t float64) Scalar {
	switch in.Kind {
	case InterpolateLinear:
		return in.End - in.Start
	case InterpolateExponential:
		return (in.End - in.Start).Mul(2 * t)
	default:
		return 0
	}
}

// Bounds returns the range of values taken in [0, 1] as an interval on the X
// axis.
func (in Interpolator) Bounds() Rect {
	lo, hi := float64(in.At(0)), float64(in.At(1))
	return NewRectFromPoints(Vec(lo, 0), Vec(hi, 0))
}

// ApplyTransform maps the start and end values through f.
func (in Interpolator) ApplyTransform(f func(Scalar) Scalar) Interpolator {
	in.Start = f(in.Start)
	in.End = f(in.End)
	return in
}

// StartPoint returns the value at t = 0.
func (in Interpolator) StartPoint() Scalar { return in.At(0) }

// EndPoint returns the value at t = 1.
func (in Interpolator) EndPoint() Scalar { return in.At(1) }

// Split divides the interpolator at t. Constant and linear interpolators
// split exactly. Exponential ones cannot be split into two exponential
// spans, and Split reports false for them.
func (in Interpolator) Split(t float64) (Interpolator, Interpolator, bool) {
	if !(t > 0 && t < 1) {
		return Interpolator{}, Interpolator{}, false
	}
	switch in.Kind {
	case InterpolateNone:
		return in, in, true
	case InterpolateLinear:
		mid := in.At(t)
		return Interpolator{in.Start, mid, in.Kind}, Interpolator{mid, in.End, in.Kind}, true
	default:
		return Interpolator{}, Interpolator{}, false
	}
}

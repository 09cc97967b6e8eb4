package glyphcurve

import (
	"fmt"
	"math"
	"slices"
)

// AngleParam maps fractions of a curve's total turning to the curve's native
// parameter. Turning is accumulated as the absolute angle between tangents
// at evenly spaced samples, so an S-curve turns by the sum of both bends.
type AngleParam struct {
	angles cumulative
}

// NewAngleParam samples the tangent of c at iterations+1 evenly spaced
// parameters and accumulates the absolute angle between consecutive
// tangents. A zero tangent contributes no turning. iterations is raised to
// 1 if it is smaller.
func NewAngleParam(c Curve, iterations int) AngleParam {
	iterations = max(iterations, 1)
	angles := make(cumulative, iterations+1)
	prev := c.TangentAt(0)
	for i := 1; i <= iterations; i++ {
		tan := c.TangentAt(float64(i) / float64(iterations))
		var d float64
		if prev != (Vec2{}) && tan != (Vec2{}) {
			d = math.Abs(prev.AngleTo(tan))
		}
		angles[i] = angles[i-1] + d
		prev = tan
	}
	Logger().Debug("built angle table", "iterations", iterations, "total", angles.total())
	return AngleParam{angles: angles}
}

// Total returns the total turning of the curve, in radians.
func (p AngleParam) Total() float64 {
	return p.angles.total()
}

// Table returns a copy of the cumulative angles.
func (p AngleParam) Table() []float64 {
	return slices.Clone(p.angles)
}

// AngleAt returns the turning from the start of the curve up to the native
// parameter t.
func (p AngleParam) AngleAt(t float64) float64 {
	return p.angles.valueAt(t)
}

// Parameterize returns the native parameter at which the curve has turned
// by the fraction u of its total turning. A curve that does not turn maps u
// to itself.
func (p AngleParam) Parameterize(u float64) (float64, error) {
	return p.angles.parameterize(u)
}

// maxCrossingsPerSample bounds how many crossings a single interval of the
// table may hold, which bounds the output to a multiple of the table size.
const maxCrossingsPerSample = 64

// IntervalParams returns the native parameters at which the cumulative
// turning crosses step, 2·step, 3·step, and so on. Only crossings strictly
// before the end of the curve are returned, so dividing the total turning
// into n equal steps yields n-1 parameters.
//
// A step so small that the table's intervals would hold more than 64
// crossings each, on average, is rejected with [ErrInvalidStep].
func (p AngleParam) IntervalParams(step float64) ([]float64, error) {
	if !(step > 0) {
		return nil, ErrInvalidStep
	}
	return p.crossings(step, 0, p.Total())
}

// IntervalParamsInRange is like [AngleParam.IntervalParams], but measures
// turning from minT and only returns crossings before maxT.
func (p AngleParam) IntervalParamsInRange(step, minT, maxT float64) ([]float64, error) {
	if !(step > 0) {
		return nil, ErrInvalidStep
	}
	if !(0 <= minT && minT <= maxT && maxT <= 1) {
		return nil, ErrInvalidRange
	}
	return p.crossings(step, p.AngleAt(minT), p.AngleAt(maxT))
}

func (p AngleParam) crossings(step, from, to float64) ([]float64, error) {
	if n := (to - from) / step; n > float64(maxCrossingsPerSample*(len(p.angles)-1)) {
		return nil, fmt.Errorf("%w: %g yields %.0f crossings for a table of %d samples", ErrInvalidStep, step, n, len(p.angles))
	}
	// Crossings that coincide with the end, up to rounding, are not interior.
	limit := to - 1e-9*max(1, p.Total())
	var out []float64
	for k := 1; ; k++ {
		th := from + float64(k)*step
		if !(th < limit) {
			break
		}
		t, st := p.angles.inverse(th)
		if !st.OK() {
			break
		}
		out = append(out, t)
	}
	return out, nil
}

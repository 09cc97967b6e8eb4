package glyphcurve

import (
	"math"
	"slices"
)

// Parameterizer maps a normalized quantity u in [0, 1], such as a fraction
// of a curve's length, onto the curve's native parameter.
type Parameterizer interface {
	Parameterize(u float64) (float64, error)
}

var _ Parameterizer = ArclenParam{}
var _ Parameterizer = AngleParam{}

// cumulative is a non-decreasing table of N+1 values sampled at the native
// parameters i/N.
type cumulative []float64

func (tab cumulative) total() float64 {
	if len(tab) == 0 {
		return 0
	}
	return tab[len(tab)-1]
}

// valueAt interpolates the table at native parameter t, extrapolating
// linearly outside of [0, 1].
func (tab cumulative) valueAt(t float64) float64 {
	n := len(tab) - 1
	switch {
	case n < 0:
		return 0
	case n == 0:
		return tab[0]
	case math.IsNaN(t):
		return t
	}
	f := t * float64(n)
	i := int(math.Floor(math.Max(0, math.Min(f, float64(n-1)))))
	return tab[i] + (tab[i+1]-tab[i])*(f-float64(i))
}

// inverse returns the native parameter at which the table reaches target.
// The status is that of [Search]; t is only meaningful if it is OK.
func (tab cumulative) inverse(target float64) (float64, SearchStatus) {
	i, st := Search(tab, target)
	if !st.OK() {
		return 0, st
	}
	frac := (target - tab[i]) / (tab[i+1] - tab[i])
	return (float64(i) + frac) / float64(len(tab)-1), st
}

func (tab cumulative) parameterize(u float64) (float64, error) {
	t, st := tab.inverse(u * tab.total())
	switch st {
	case Found, Before, After:
		return t, nil
	case Degenerate:
		return u, nil
	case Unbracketed:
		return 0, ErrUnbracketed
	default:
		return 0, ErrEmptyTable
	}
}

// ArclenParam maps fractions of a curve's arc length to the curve's native
// parameter. The arc length is approximated by summing the distances between
// evenly spaced samples.
//
// An ArclenParam holds no reference to its curve and can be shared freely.
type ArclenParam struct {
	arclens cumulative
}

// NewArclenParam samples c at iterations+1 evenly spaced parameters and
// accumulates the distances between consecutive samples. iterations is
// raised to 1 if it is smaller.
func NewArclenParam(c Curve, iterations int) ArclenParam {
	iterations = max(iterations, 1)
	arclens := make(cumulative, iterations+1)
	prev := c.At(0)
	for i := 1; i <= iterations; i++ {
		p := c.At(float64(i) / float64(iterations))
		arclens[i] = arclens[i-1] + prev.Distance(p)
		prev = p
	}
	Logger().Debug("built arc length table", "iterations", iterations, "total", arclens.total())
	return ArclenParam{arclens: arclens}
}

// Total returns the approximate arc length of the curve.
func (p ArclenParam) Total() float64 {
	return p.arclens.total()
}

// Table returns a copy of the cumulative arc lengths.
func (p ArclenParam) Table() []float64 {
	return slices.Clone(p.arclens)
}

// ArclenAt returns the arc length from the start of the curve up to the
// native parameter t.
func (p ArclenParam) ArclenAt(t float64) float64 {
	return p.arclens.valueAt(t)
}

// Parameterize returns the native parameter at which the curve has covered
// the fraction u of its length. Values of u outside of [0, 1] extrapolate
// from the first or last sample interval. For a curve of zero length, u is
// returned as is.
func (p ArclenParam) Parameterize(u float64) (float64, error) {
	return p.arclens.parameterize(u)
}

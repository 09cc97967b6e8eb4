package glyphcurve

import (
	"fmt"
	"math"
)

// SplitN divides c into n pieces of identical arc length. Arc length is
// measured with an [ArclenParam] of the given number of iterations, so
// the pieces are equal up to its sampling error.
func SplitN(c Contour, n int, iterations int) (Glyph, error) {
	if n < 1 {
		return Glyph{}, fmt.Errorf("split into %d pieces: %w", n, ErrInvalidStep)
	}
	if n == 1 || c.Len() == 0 {
		return NewGlyph([]Contour{c}), nil
	}
	param := NewArclenParam(c, iterations)
	ts := make([]float64, 0, n-1)
	for k := 1; k < n; k++ {
		t, err := param.Parameterize(float64(k) / float64(n))
		if err != nil {
			return Glyph{}, fmt.Errorf("split into %d pieces: %w", n, err)
		}
		ts = append(ts, t)
	}
	return NewGlyph(c.SplitAtMultipleT(ts)), nil
}

// SplitArclen divides c into pieces of arc length l. Any remainder is in the
// last piece.
func SplitArclen(c Contour, l float64, iterations int) (Glyph, error) {
	if !(l > 0) || math.IsInf(l, 0) {
		return Glyph{}, fmt.Errorf("split into pieces of length %g: %w", l, ErrInvalidStep)
	}
	if c.Len() == 0 {
		return NewGlyph([]Contour{c}), nil
	}
	param := NewArclenParam(c, iterations)
	total := param.Total()
	var ts []float64
	for k := 1; float64(k)*l < total; k++ {
		t, err := param.Parameterize(float64(k) * l / total)
		if err != nil {
			return Glyph{}, fmt.Errorf("split into pieces of length %g: %w", l, err)
		}
		ts = append(ts, t)
	}
	return NewGlyph(c.SplitAtMultipleT(ts)), nil
}

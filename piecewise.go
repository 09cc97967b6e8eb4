package glyphcurve

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

// Piecewise stitches an ordered sequence of segments into a single curve
// whose parameter runs from 0 at the start of the first segment to 1 at the
// end of the last.
//
// The cut table maps the global parameter onto segments: segment i covers
// [cuts[i], cuts[i+1]). There is always one more cut than there are segments,
// the first cut is 0, the last is 1, and cuts never decrease.
//
// A Piecewise is itself an [Evaluator] and a [Splitter], so it nests: a
// [Contour] is a Piecewise of [Bezier] segments and a [Glyph] is a Piecewise
// of contours.
//
// Piecewise values are immutable. Every operation that changes the curve
// returns a new value, and the slices returned by accessors are copies.
type Piecewise[C Coordinate[C], T Evaluator[C, T]] struct {
	segs []T
	cuts []float64
}

// Contour is a sequence of cubic Béziers, such as one closed outline of a
// glyph.
type Contour = Piecewise[Vec2, Bezier]

// Glyph is a sequence of contours.
type Glyph = Piecewise[Vec2, Contour]

var _ Evaluator[Vec2, Contour] = Contour{}
var _ Splitter[Contour] = Contour{}
var _ Evaluator[Vec2, Glyph] = Glyph{}
var _ Curve = Glyph{}

// Segment is one element of a [Piecewise] together with the range of the
// global parameter it covers.
type Segment[T any] struct {
	Seg        T
	Start, End float64
}

// NewPiecewise returns a Piecewise of segs with uniform cuts, so that each
// segment covers an equal share of the parameter range.
func NewPiecewise[C Coordinate[C], T Evaluator[C, T]](segs []T) Piecewise[C, T] {
	return Piecewise[C, T]{
		segs: slices.Clone(segs),
		cuts: uniformCuts(len(segs)),
	}
}

// NewPiecewiseCuts returns a Piecewise of segs with the given cut table. The
// table is validated and a [*CutsError] is returned if it is malformed.
func NewPiecewiseCuts[C Coordinate[C], T Evaluator[C, T]](segs []T, cuts []float64) (Piecewise[C, T], error) {
	if err := validateCuts(len(segs), cuts); err != nil {
		Logger().Debug("rejected cut table", "segments", len(segs), "cuts", len(cuts), "err", err)
		return Piecewise[C, T]{}, err
	}
	return Piecewise[C, T]{
		segs: slices.Clone(segs),
		cuts: slices.Clone(cuts),
	}, nil
}

// NewContour returns a contour of segs with uniform cuts.
func NewContour(segs []Bezier) Contour {
	return NewPiecewise[Vec2, Bezier](segs)
}

// NewGlyph returns a glyph of contours with uniform cuts.
func NewGlyph(contours []Contour) Glyph {
	return NewPiecewise[Vec2, Contour](contours)
}

func uniformCuts(n int) []float64 {
	cuts := make([]float64, n+1)
	for i := 1; i <= n; i++ {
		cuts[i] = float64(i) / float64(n)
	}
	return cuts
}

func validateCuts(nsegs int, cuts []float64) error {
	if len(cuts) != nsegs+1 {
		return &CutsError{Index: -1, Reason: fmt.Sprintf("got %d cuts for %d segments, want %d", len(cuts), nsegs, nsegs+1)}
	}
	for i, c := range cuts {
		if math.IsNaN(c) {
			return &CutsError{Index: i, Reason: "NaN"}
		}
		if i > 0 && c < cuts[i-1] {
			return &CutsError{Index: i, Reason: fmt.Sprintf("%g is less than the previous cut %g", c, cuts[i-1])}
		}
	}
	if cuts[0] != 0 {
		return &CutsError{Index: 0, Reason: fmt.Sprintf("got %g, want 0", cuts[0])}
	}
	if nsegs > 0 && cuts[nsegs] != 1 {
		return &CutsError{Index: nsegs, Reason: fmt.Sprintf("got %g, want 1", cuts[nsegs])}
	}
	return nil
}

// Len returns the number of segments.
func (pw Piecewise[C, T]) Len() int {
	return len(pw.segs)
}

// Segment returns the i'th segment.
func (pw Piecewise[C, T]) Segment(i int) T {
	return pw.segs[i]
}

// Segs returns a copy of the segments.
func (pw Piecewise[C, T]) Segs() []T {
	return slices.Clone(pw.segs)
}

// Cuts returns a copy of the cut table.
func (pw Piecewise[C, T]) Cuts() []float64 {
	if pw.cuts == nil {
		return []float64{0}
	}
	return slices.Clone(pw.cuts)
}

// Segments returns an iterator over the segment indices, the segments, and
// the parameter range each one covers.
func (pw Piecewise[C, T]) Segments() iter.Seq2[int, Segment[T]] {
	return func(yield func(int, Segment[T]) bool) {
		for i, seg := range pw.segs {
			if !yield(i, Segment[T]{seg, pw.cuts[i], pw.cuts[i+1]}) {
				return
			}
		}
	}
}

// SegN returns the index of the segment whose range [cuts[i], cuts[i+1])
// contains t. Segments of zero width are never returned; t = 1 belongs to
// the last segment of non-zero width. Values of t below 0 or above 1 map to
// the first and last segment respectively, which extrapolates them.
//
// SegN panics if pw has no segments.
func (pw Piecewise[C, T]) SegN(t float64) int {
	i, st := Search(pw.cuts, t)
	switch st {
	case Found, Before, After:
		return i
	case Unbracketed:
		// NaN propagates through the segment's own evaluation.
		return 0
	case Empty:
		panic("piecewise has no segments")
	default:
		panic(fmt.Sprintf("cannot locate t = %g in cut table: %s", t, st))
	}
}

// SegT maps the global parameter t into the local parameter of the segment
// returned by [Piecewise.SegN].
func (pw Piecewise[C, T]) SegT(t float64) float64 {
	_, lt := pw.locate(t)
	return lt
}

func (pw Piecewise[C, T]) locate(t float64) (int, float64) {
	i := pw.SegN(t)
	return i, (t - pw.cuts[i]) / (pw.cuts[i+1] - pw.cuts[i])
}

// At evaluates the curve at the global parameter t.
func (pw Piecewise[C, T]) At(t float64) C {
	i, lt := pw.locate(t)
	return pw.segs[i].At(lt)
}

// TangentAt returns the tangent of the segment containing t, evaluated at
// the segment's local parameter. It is not scaled by the width of the
// segment's range.
func (pw Piecewise[C, T]) TangentAt(t float64) C {
	i, lt := pw.locate(t)
	return pw.segs[i].TangentAt(lt)
}

// Bounds returns the union of the bounds of all segments. It panics if pw
// has no segments.
func (pw Piecewise[C, T]) Bounds() Rect {
	if len(pw.segs) == 0 {
		panic("bounds of empty piecewise")
	}
	r := pw.segs[0].Bounds()
	for _, seg := range pw.segs[1:] {
		r = r.Union(seg.Bounds())
	}
	return r
}

// ApplyTransform maps every segment through f, keeping the cut table.
func (pw Piecewise[C, T]) ApplyTransform(f func(C) C) Piecewise[C, T] {
	segs := make([]T, len(pw.segs))
	for i, seg := range pw.segs {
		segs[i] = seg.ApplyTransform(f)
	}
	return Piecewise[C, T]{segs: segs, cuts: pw.cuts}
}

// StartPoint returns the start of the first segment. It panics if pw has no
// segments.
func (pw Piecewise[C, T]) StartPoint() C {
	if len(pw.segs) == 0 {
		panic("start point of empty piecewise")
	}
	return pw.segs[0].StartPoint()
}

// EndPoint returns the end of the last segment. It panics if pw has no
// segments.
func (pw Piecewise[C, T]) EndPoint() C {
	if len(pw.segs) == 0 {
		panic("end point of empty piecewise")
	}
	return pw.segs[len(pw.segs)-1].EndPoint()
}

// IsClosed reports whether the start and end points lie within
// tol.SmallDistance of each other. It panics if pw has no segments.
func (pw Piecewise[C, T]) IsClosed(tol Tolerance) bool {
	return Distance(pw.StartPoint(), pw.EndPoint()) <= tol.SmallDistance
}

func splitSegment[T any](seg T, t float64) (T, T, bool) {
	if s, ok := any(seg).(Splitter[T]); ok {
		return s.Split(t)
	}
	var zero T
	return zero, zero, false
}

// Split divides the curve at the global parameter t into two curves whose
// parameters each run from 0 to 1 again. Split reports false if t is not
// strictly between 0 and 1, or if the segment containing t cannot be split.
func (pw Piecewise[C, T]) Split(t float64) (Piecewise[C, T], Piecewise[C, T], bool) {
	if len(pw.segs) == 0 || !(t > 0 && t < 1) {
		return Piecewise[C, T]{}, Piecewise[C, T]{}, false
	}
	i, lt := pw.locate(t)

	var leftSegs, rightSegs []T
	var leftCuts, rightCuts []float64
	switch {
	case lt <= 0:
		// t falls on the cut that starts segment i.
		leftSegs = slices.Clone(pw.segs[:i])
		rightSegs = slices.Clone(pw.segs[i:])
		leftCuts = slices.Clone(pw.cuts[:i+1])
		rightCuts = slices.Clone(pw.cuts[i:])
	case lt >= 1:
		leftSegs = slices.Clone(pw.segs[:i+1])
		rightSegs = slices.Clone(pw.segs[i+1:])
		leftCuts = slices.Clone(pw.cuts[:i+2])
		rightCuts = slices.Clone(pw.cuts[i+1:])
	default:
		l, r, ok := splitSegment(pw.segs[i], lt)
		if !ok {
			return Piecewise[C, T]{}, Piecewise[C, T]{}, false
		}
		leftSegs = append(slices.Clone(pw.segs[:i]), l)
		rightSegs = append([]T{r}, pw.segs[i+1:]...)
		leftCuts = append(slices.Clone(pw.cuts[:i+1]), t)
		rightCuts = append([]float64{t}, pw.cuts[i+1:]...)
	}
	if len(leftSegs) == 0 || len(rightSegs) == 0 {
		return Piecewise[C, T]{}, Piecewise[C, T]{}, false
	}

	lo, hi := leftCuts[0], leftCuts[len(leftCuts)-1]
	for j, c := range leftCuts {
		leftCuts[j] = (c - lo) / (hi - lo)
	}
	lo, hi = rightCuts[0], rightCuts[len(rightCuts)-1]
	for j, c := range rightCuts {
		rightCuts[j] = (c - lo) / (hi - lo)
	}
	return Piecewise[C, T]{leftSegs, leftCuts}, Piecewise[C, T]{rightSegs, rightCuts}, true
}

// SplitAtMultipleT splits the curve at every global parameter in ts, which
// may be given in any order. Parameters that cannot split the remaining
// curve, such as 0, 1, or repeats, are skipped, so the result holds at most
// len(ts)+1 pieces.
func (pw Piecewise[C, T]) SplitAtMultipleT(ts []float64) []Piecewise[C, T] {
	sorted := slices.Clone(ts)
	slices.Sort(sorted)

	var out []Piecewise[C, T]
	rest := pw
	last := 0.0
	for _, t := range sorted {
		if !(t > last && t < 1) {
			continue
		}
		left, right, ok := rest.Split((t - last) / (1 - last))
		if !ok {
			continue
		}
		out = append(out, left)
		rest = right
		last = t
	}
	return append(out, rest)
}

// Subdivide splits the segment containing the global parameter t in two and
// inserts t into the cut table. All other segments are passed through. If t
// is not strictly inside a segment, or the segment cannot be split, pw is
// returned unchanged.
func (pw Piecewise[C, T]) Subdivide(t float64) Piecewise[C, T] {
	if len(pw.segs) == 0 || !(t > 0 && t < 1) {
		return pw
	}
	i, lt := pw.locate(t)
	if !(lt > 0 && lt < 1) {
		return pw
	}
	l, r, ok := splitSegment(pw.segs[i], lt)
	if !ok {
		return pw
	}
	segs := make([]T, 0, len(pw.segs)+1)
	segs = append(segs, pw.segs[:i]...)
	segs = append(segs, l, r)
	segs = append(segs, pw.segs[i+1:]...)

	cuts := make([]float64, 0, len(pw.cuts)+1)
	cuts = append(cuts, pw.cuts[:i+1]...)
	cuts = append(cuts, t)
	cuts = append(cuts, pw.cuts[i+1:]...)
	return Piecewise[C, T]{segs: segs, cuts: cuts}
}

// SubdivideEach splits every segment at its own local parameter t. The new
// cuts keep their global positions: segment i contributes a cut at
// cuts[i] + t·(cuts[i+1] − cuts[i]).
func (pw Piecewise[C, T]) SubdivideEach(t float64) Piecewise[C, T] {
	segs := make([]T, 0, 2*len(pw.segs))
	cuts := make([]float64, 1, 2*len(pw.segs)+1)
	for i, seg := range pw.segs {
		lo, hi := pw.cuts[i], pw.cuts[i+1]
		if l, r, ok := splitSegment(seg, t); ok && t > 0 && t < 1 {
			segs = append(segs, l, r)
			cuts = append(cuts, lo+t*(hi-lo), hi)
		} else {
			segs = append(segs, seg)
			cuts = append(cuts, hi)
		}
	}
	return Piecewise[C, T]{segs: segs, cuts: cuts}
}

type cutter[T any] interface {
	CutAtT(t float64) T
}

// CutAtT splits exactly one leaf segment at the global parameter t.
//
// For a flat Piecewise this is the same as [Piecewise.Subdivide]. When the
// segments are themselves piecewise, as the contours of a [Glyph] are, the
// cut is made inside the segment containing t at its local parameter, and
// the outer cut table stays as it is, since the number of segments does not
// change.
func (pw Piecewise[C, T]) CutAtT(t float64) Piecewise[C, T] {
	if len(pw.segs) == 0 || !(t > 0 && t < 1) {
		return pw
	}
	i, lt := pw.locate(t)
	if c, ok := any(pw.segs[i]).(cutter[T]); ok {
		segs := slices.Clone(pw.segs)
		segs[i] = c.CutAtT(lt)
		return Piecewise[C, T]{segs: segs, cuts: pw.cuts}
	}
	return pw.Subdivide(t)
}

type reverser[T any] interface {
	Reverse() T
}

// Reverse returns the curve traversed from end to start. Each segment is
// reversed and the cut table is mirrored. It panics if the segment type has
// no Reverse method.
func (pw Piecewise[C, T]) Reverse() Piecewise[C, T] {
	n := len(pw.segs)
	if n == 0 {
		return pw
	}
	segs := make([]T, n)
	for i, seg := range pw.segs {
		r, ok := any(seg).(reverser[T])
		if !ok {
			panic(fmt.Sprintf("segment type %T cannot be reversed", seg))
		}
		segs[n-1-i] = r.Reverse()
	}
	cuts := make([]float64, n+1)
	for i := range cuts {
		cuts[i] = 1 - pw.cuts[n-i]
	}
	return Piecewise[C, T]{segs: segs, cuts: cuts}
}

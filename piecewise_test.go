package glyphcurve

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		if recover() == nil {
			t.Errorf("%s didn't panic", name)
		}
	}()
	fn()
}

// square returns a closed contour of four lines, anti-clockwise in a y-up
// space.
func square(size float64) Contour {
	p0, p1, p2, p3 := Vec(0, 0), Vec(size, 0), Vec(size, size), Vec(0, size)
	return NewContour([]Bezier{
		NewLine(p0, p1),
		NewLine(p1, p2),
		NewLine(p2, p3),
		NewLine(p3, p0),
	})
}

// wave returns an open contour of curved segments.
func wave() Contour {
	return NewContour([]Bezier{
		{Vec(0, 0), Vec(1, 2), Vec(2, 2), Vec(3, 0)},
		{Vec(3, 0), Vec(4, -2), Vec(5, -2), Vec(6, 0)},
		{Vec(6, 0), Vec(7, 3), Vec(8, 1), Vec(9, 1)},
		{Vec(9, 1), Vec(10, 1), Vec(11, 0), Vec(12, 0)},
	})
}

func TestNewPiecewise(t *testing.T) {
	c := wave()
	diff(t, 4, c.Len())
	diff(t, []float64{0, 0.25, 0.5, 0.75, 1}, c.Cuts())

	empty := NewContour(nil)
	diff(t, 0, empty.Len())
	diff(t, []float64{0}, empty.Cuts())
	diff(t, []float64{0}, Contour{}.Cuts())

	// Accessors return copies.
	cuts := c.Cuts()
	cuts[1] = 0.9
	segs := c.Segs()
	segs[0] = Bezier{}
	diff(t, 0.25, c.Cuts()[1])
	diff(t, Vec(0, 0), c.Segment(0).P0)
	diff(t, Vec(1, 2), c.Segment(0).P1)
}

func TestNewPiecewiseCuts(t *testing.T) {
	segs := wave().Segs()
	tests := []struct {
		name  string
		cuts  []float64
		index int
	}{
		{"length", []float64{0, 0.5, 1}, -1},
		{"first", []float64{0.1, 0.2, 0.5, 0.7, 1}, 0},
		{"last", []float64{0, 0.2, 0.5, 0.7, 0.9}, 4},
		{"decreasing", []float64{0, 0.5, 0.4, 0.7, 1}, 2},
		{"nan", []float64{0, 0.2, math.NaN(), 0.7, 1}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPiecewiseCuts[Vec2, Bezier](segs, tt.cuts)
			if !errors.Is(err, ErrCuts) {
				t.Fatalf("got error %v, want %v", err, ErrCuts)
			}
			var cerr *CutsError
			if !errors.As(err, &cerr) {
				t.Fatalf("got error of type %T, want *CutsError", err)
			}
			diff(t, tt.index, cerr.Index)
		})
	}

	c, err := NewPiecewiseCuts[Vec2, Bezier](segs, []float64{0, 0.1, 0.1, 0.6, 1})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []float64{0, 0.1, 0.1, 0.6, 1}, c.Cuts())
}

func TestPiecewiseDomain(t *testing.T) {
	c := wave()
	segs := c.Segs()
	diff(t, segs[0].P0, c.At(0))
	diff(t, segs[3].P3, c.At(1))
	diff(t, segs[0].P0, c.StartPoint())
	diff(t, segs[3].P3, c.EndPoint())
	for i, cut := range c.Cuts()[:4] {
		diff(t, segs[i].P0, c.At(cut))
	}
	assertNear(t, c.At(0.125), segs[0].At(0.5), 1e-12)
	assertNear(t, c.At(0.6), segs[2].At(0.4), 1e-12)
	diff(t, segs[2].TangentAt(0.4), c.TangentAt(0.6), cmpopts.EquateApprox(0, 1e-12))

	// Outside of [0, 1], the first and last segments extrapolate.
	assertNear(t, c.At(-0.25), segs[0].At(-1), 1e-12)
	assertNear(t, c.At(1.25), segs[3].At(2), 1e-12)
}

func TestPiecewiseSegN(t *testing.T) {
	c, err := NewPiecewiseCuts[Vec2, Bezier](wave().Segs()[:3], []float64{0, 0.5, 0.5, 1})
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		t    float64
		n    int
		segT float64
	}{
		{-1, 0, -2},
		{0, 0, 0},
		{0.25, 0, 0.5},
		{0.5, 2, 0},
		{0.75, 2, 0.5},
		{1, 2, 1},
		{2, 2, 3},
	}
	for _, tt := range tests {
		if n := c.SegN(tt.t); n != tt.n {
			t.Errorf("SegN(%g) = %d, want %d", tt.t, n, tt.n)
		}
		if st := c.SegT(tt.t); st != tt.segT {
			t.Errorf("SegT(%g) = %g, want %g", tt.t, st, tt.segT)
		}
	}

	if p := c.At(math.NaN()); !p.IsNaN() {
		t.Errorf("got %s for NaN, want NaN", p)
	}
}

func TestPiecewiseEmptyPanics(t *testing.T) {
	empty := NewContour(nil)
	mustPanic(t, "SegN", func() { empty.SegN(0.5) })
	mustPanic(t, "At", func() { empty.At(0.5) })
	mustPanic(t, "Bounds", func() { empty.Bounds() })
	mustPanic(t, "StartPoint", func() { empty.StartPoint() })
	mustPanic(t, "EndPoint", func() { empty.EndPoint() })
}

func TestPiecewiseBounds(t *testing.T) {
	diff(t, Rect{0, 0, 10, 10}, square(10).Bounds(), cmpopts.EquateApprox(0, 1e-12))
	b := wave().Bounds()
	for i := range 101 {
		if p := wave().At(float64(i) / 100); !b.Inflate(1e-12, 1e-12).Contains(p) {
			t.Errorf("bounds %v don't contain %s", b, p)
		}
	}
}

func TestPiecewiseIsClosed(t *testing.T) {
	tol := DefaultTolerance()
	if !square(10).IsClosed(tol) {
		t.Errorf("square isn't closed")
	}
	if wave().IsClosed(tol) {
		t.Errorf("wave is closed")
	}

	perturb := func(d float64) Contour {
		segs := square(10).Segs()
		segs[3].P3 = segs[3].P3.Add(Vec(d, 0))
		return NewContour(segs)
	}
	if !perturb(tol.SmallDistance / 2).IsClosed(tol) {
		t.Errorf("square perturbed by less than SmallDistance isn't closed")
	}
	if perturb(tol.SmallDistance * 10).IsClosed(tol) {
		t.Errorf("square perturbed by more than SmallDistance is closed")
	}
}

func TestPiecewiseSplit(t *testing.T) {
	c := wave()
	check := func(ts float64) {
		t.Helper()
		left, right, ok := c.Split(ts)
		if !ok {
			t.Fatalf("couldn't split at %g", ts)
		}
		diff(t, 0.0, left.Cuts()[0])
		diff(t, 1.0, left.Cuts()[left.Len()])
		diff(t, 0.0, right.Cuts()[0])
		diff(t, 1.0, right.Cuts()[right.Len()])
		for i := range 21 {
			u := float64(i) / 20
			assertNear(t, left.At(u), c.At(u*ts), 1e-9)
			assertNear(t, right.At(u), c.At(ts+u*(1-ts)), 1e-9)
		}
	}
	check(0.5)
	check(0.3)
	check(0.9)

	left, right, _ := c.Split(0.5)
	diff(t, 2, left.Len())
	diff(t, 2, right.Len())
	left, right, _ = c.Split(0.3)
	diff(t, 2, left.Len())
	diff(t, 3, right.Len())

	for _, ts := range []float64{0, 1, -1, math.NaN()} {
		if _, _, ok := c.Split(ts); ok {
			t.Errorf("split at %g succeeded", ts)
		}
	}
}

func TestPiecewiseSplitAtMultipleT(t *testing.T) {
	c := wave()
	pieces := c.SplitAtMultipleT([]float64{0.6, 0.1, 0.5, 0.5, 1})
	if len(pieces) != 4 {
		t.Fatalf("got %d pieces, want 4", len(pieces))
	}
	diff(t, c.StartPoint(), pieces[0].StartPoint())
	diff(t, c.EndPoint(), pieces[3].EndPoint())
	for i, want := range []float64{0.1, 0.5, 0.6} {
		assertNear(t, pieces[i].EndPoint(), c.At(want), 1e-9)
		assertNear(t, pieces[i+1].StartPoint(), c.At(want), 1e-9)
	}
}

func TestPiecewiseSubdivide(t *testing.T) {
	c := wave()
	s := c.Subdivide(0.3)
	diff(t, 5, s.Len())
	diff(t, []float64{0, 0.25, 0.3, 0.5, 0.75, 1}, s.Cuts())
	for i := range 41 {
		tt := float64(i) / 40
		assertNear(t, s.At(tt), c.At(tt), 1e-9)
	}

	// Boundaries and the ends don't split anything.
	for _, tt := range []float64{0, 0.5, 1} {
		diff(t, 4, c.Subdivide(tt).Len())
	}
}

func TestPiecewiseSubdivideEach(t *testing.T) {
	c := wave()
	s := c.SubdivideEach(0.5)
	diff(t, 8, s.Len())
	diff(t, []float64{0, 0.125, 0.25, 0.375, 0.5, 0.625, 0.75, 0.875, 1}, s.Cuts())
	for i := range 41 {
		tt := float64(i) / 40
		assertNear(t, s.At(tt), c.At(tt), 1e-9)
	}
}

func leaves(g Glyph) int {
	n := 0
	for _, seg := range g.Segments() {
		n += seg.Seg.Len()
	}
	return n
}

func TestPiecewiseCutAtT(t *testing.T) {
	c := wave()
	diff(t, c.Subdivide(0.3).Cuts(), c.CutAtT(0.3).Cuts())

	g := NewGlyph([]Contour{wave(), square(10)})
	// 0.15 is at 0.3 in the first contour, which is inside its second
	// segment.
	cut := g.CutAtT(0.15)
	diff(t, g.Cuts(), cut.Cuts())
	diff(t, leaves(g)+1, leaves(cut))
	diff(t, 5, cut.Segment(0).Len())
	diff(t, 4, cut.Segment(1).Len())
	for i := range 41 {
		tt := float64(i) / 40
		assertNear(t, cut.At(tt), g.At(tt), 1e-9)
	}
}

func TestPiecewiseReverse(t *testing.T) {
	c, err := NewPiecewiseCuts[Vec2, Bezier](wave().Segs(), []float64{0, 0.1, 0.5, 0.6, 1})
	if err != nil {
		t.Fatal(err)
	}
	r := c.Reverse()
	diff(t, []float64{0, 0.4, 0.5, 0.9, 1}, r.Cuts(), cmpopts.EquateApprox(0, 1e-15))
	for i := range 21 {
		tt := float64(i) / 20
		assertNear(t, r.At(tt), c.At(1-tt), 1e-9)
	}

	g := NewGlyph([]Contour{wave(), square(10)})
	gr := g.Reverse()
	diff(t, g.StartPoint(), gr.EndPoint())
	diff(t, g.EndPoint(), gr.StartPoint())

	diff(t, []float64{0}, NewContour(nil).Reverse().Cuts())
	if n := (Contour{}).Reverse().Len(); n != 0 {
		t.Errorf("reversed zero contour has %d segments", n)
	}
}

func TestPiecewiseApplyTransform(t *testing.T) {
	c, err := NewPiecewiseCuts[Vec2, Bezier](wave().Segs(), []float64{0, 0.1, 0.5, 0.6, 1})
	if err != nil {
		t.Fatal(err)
	}
	moved := c.ApplyTransform(func(p Vec2) Vec2 { return p.Add(Vec(1, 2)) })
	diff(t, c.Cuts(), moved.Cuts())
	assertNear(t, moved.At(0.3), c.At(0.3).Add(Vec(1, 2)), 1e-12)
}

func TestPiecewiseSegments(t *testing.T) {
	c := wave()
	var starts, ends []float64
	for i, seg := range c.Segments() {
		diff(t, c.Segment(i), seg.Seg)
		starts = append(starts, seg.Start)
		ends = append(ends, seg.End)
	}
	diff(t, []float64{0, 0.25, 0.5, 0.75}, starts)
	diff(t, []float64{0.25, 0.5, 0.75, 1}, ends)
}

func TestPiecewiseGlyph(t *testing.T) {
	a, b := wave(), square(10)
	g := NewGlyph([]Contour{a, b})
	diff(t, a.StartPoint(), g.At(0))
	assertNear(t, g.At(0.25), a.At(0.5), 1e-12)
	assertNear(t, g.At(0.875), b.At(0.75), 1e-12)
	diff(t, a.Bounds().Union(b.Bounds()), g.Bounds())
}

func TestPiecewiseScalar(t *testing.T) {
	width := NewPiecewise[Scalar, Interpolator]([]Interpolator{
		{Start: 10, End: 20, Kind: InterpolateLinear},
		{Start: 20, End: 20, Kind: InterpolateNone},
		{Start: 20, End: 0, Kind: InterpolateExponential},
	})
	diff(t, Scalar(10), width.At(0))
	diff(t, 15.0, float64(width.At(1.0/6.0)), cmpopts.EquateApprox(0, 1e-12))
	diff(t, Scalar(20), width.At(0.5))
	diff(t, Scalar(0), width.At(1))
	diff(t, Rect{0, 0, 20, 0}, width.Bounds())

	s := width.Subdivide(1.0 / 6.0)
	diff(t, 4, s.Len())
	// Exponential spans can't be split.
	diff(t, 3, width.Subdivide(0.9).Len())
}

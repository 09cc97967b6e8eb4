package glyphcurve

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestFuseNearbyEnds(t *testing.T) {
	c := NewContour([]Bezier{
		NewLine(Vec(0, 0), Vec(10, 0)),
		NewLine(Vec(10.005, 0), Vec(10, 10)),
		NewLine(Vec(11, 11), Vec(0, 10)),
	})
	fused := FuseNearbyEnds(c, 0.01)
	diff(t, 3, fused.Len())
	diff(t, c.Cuts(), fused.Cuts())
	diff(t, Vec(10.005, 0), fused.Segment(0).P3)
	diff(t, c.Segment(1), fused.Segment(1))
	diff(t, c.Segment(2), fused.Segment(2))
	// The first segment's handles are kept.
	diff(t, c.Segment(0).P1, fused.Segment(0).P1)
}

func TestRemoveShortSegments(t *testing.T) {
	c := NewContour([]Bezier{
		NewLine(Vec(0, 0), Vec(10, 0)),
		NewLine(Vec(10, 0), Vec(10, 0.001)),
		NewLine(Vec(10, 0.001), Vec(10, 10)),
	})
	got := RemoveShortSegments(c, 0.01, 10)
	diff(t, 2, got.Len())
	diff(t, []float64{0, 0.5, 1}, got.Cuts())
	diff(t, c.Segment(2), got.Segment(1))
	diff(t, 3, RemoveShortSegments(c, 0.0001, 10).Len())
}

func TestSplitAtDiscontinuities(t *testing.T) {
	c := NewContour([]Bezier{
		NewLine(Vec(0, 0), Vec(10, 0)),
		NewLine(Vec(10, 0), Vec(10, 10)),
		NewLine(Vec(20, 10), Vec(20, 20)),
	})
	g := SplitAtDiscontinuities(c, 0.01)
	diff(t, 2, g.Len())
	diff(t, 2, g.Segment(0).Len())
	diff(t, 1, g.Segment(1).Len())
	diff(t, Vec(20, 10), g.Segment(1).StartPoint())

	diff(t, 1, SplitAtDiscontinuities(c, 100).Len())
	diff(t, 0, SplitAtDiscontinuities(NewContour(nil), 1).Len())
}

func TestSplitAtTangentDiscontinuities(t *testing.T) {
	tol := DefaultTolerance()
	diff(t, 4, SplitAtTangentDiscontinuities(square(10), tol).Len())
	diff(t, 1, SplitAtTangentDiscontinuities(Circle{Vec(0, 0), 10}.Contour(0.01), tol).Len())
}

func TestSignedArea(t *testing.T) {
	diff(t, 100.0, SignedArea(square(10)), cmpopts.EquateApprox(0, 1e-9))
	diff(t, -100.0, SignedArea(square(10).Reverse()), cmpopts.EquateApprox(0, 1e-9))
}

func TestContourArclen(t *testing.T) {
	diff(t, 40.0, Arclen(square(10), DefaultAccuracy), cmpopts.EquateApprox(0, 1e-9))
	diff(t, 0.0, Arclen(NewContour(nil), DefaultAccuracy))

	c := wave()
	sampled := NewArclenParam(c, 1000).Total()
	diff(t, Arclen(c, DefaultAccuracy), sampled, cmpopts.EquateApprox(1e-4, 0))
}

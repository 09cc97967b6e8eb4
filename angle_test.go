package glyphcurve

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func quarterArc() Contour {
	return Arc{
		Radii:      Vec(100, 100),
		SweepAngle: math.Pi / 2,
	}.Contour(0.1)
}

func TestAngleParamQuarterArc(t *testing.T) {
	c := quarterArc()
	if c.Len() != 1 {
		t.Fatalf("got %d segments, want 1", c.Len())
	}
	p := NewAngleParam(c, 1000)
	diff(t, math.Pi/2, p.Total(), cmpopts.EquateApprox(0, 1e-9))

	params, err := p.IntervalParams(p.Total() / 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(params) != 3 {
		t.Fatalf("got %d parameters, want 3: %v", len(params), params)
	}
	for i, tt := range params {
		if i > 0 && tt <= params[i-1] {
			t.Errorf("parameters aren't increasing: %v", params)
		}
		diff(t, float64(i+1)*p.Total()/4, p.AngleAt(tt), cmpopts.EquateApprox(0, 1e-9))
	}
	// The arc is symmetric about its middle.
	diff(t, 0.5, params[1], cmpopts.EquateApprox(0, 1e-6))
	diff(t, 1.0, params[0]+params[2], cmpopts.EquateApprox(0, 1e-6))

	inRange, err := p.IntervalParamsInRange(p.Total()/4, 0.5, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(inRange) != 1 {
		t.Fatalf("got %d parameters in range, want 1: %v", len(inRange), inRange)
	}
	diff(t, params[2], inRange[0], cmpopts.EquateApprox(0, 1e-6))

	u, err := p.Parameterize(0.5)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 0.5, u, cmpopts.EquateApprox(0, 1e-6))
}

func TestAngleParamEveryCrossing(t *testing.T) {
	// With few samples, a single sample interval holds several crossings.
	p := NewAngleParam(quarterArc(), 2)
	params, err := p.IntervalParams(p.Total() / 10)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 9, len(params))
}

func TestAngleParamStepTooFine(t *testing.T) {
	p := NewAngleParam(quarterArc(), 10)
	if _, err := p.IntervalParams(1e-12); !errors.Is(err, ErrInvalidStep) {
		t.Errorf("got error %v, want %v", err, ErrInvalidStep)
	}
	if _, err := p.IntervalParamsInRange(1e-12, 0.25, 0.75); !errors.Is(err, ErrInvalidStep) {
		t.Errorf("got error %v, want %v", err, ErrInvalidStep)
	}
	// Many crossings per interval are fine up to the limit.
	params, err := p.IntervalParams(p.Total() / 600)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 599, len(params))

	// A curve that does not turn accepts any positive step.
	line := NewAngleParam(NewContour([]Bezier{NewLine(Vec(0, 0), Vec(10, 0))}), 10)
	params, err = line.IntervalParams(1e-12)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 0, len(params))
}

func TestAngleParamSCurve(t *testing.T) {
	// Two quarter arcs turning in opposite directions.
	a := Arc{Radii: Vec(100, 100), SweepAngle: math.Pi / 2}.Contour(0.1)
	b := Arc{
		Center:     Vec(0, 200),
		Radii:      Vec(100, 100),
		StartAngle: -math.Pi / 2,
		SweepAngle: -math.Pi / 2,
	}.Contour(0.1)
	c := NewContour(append(a.Segs(), b.Segs()...))
	assertNear(t, a.EndPoint(), b.StartPoint(), 1e-9)

	p := NewAngleParam(c, 1000)
	diff(t, math.Pi, p.Total(), cmpopts.EquateApprox(0, 1e-9))
	diff(t, math.Pi/2, p.AngleAt(0.5), cmpopts.EquateApprox(0, 1e-9))
}

func TestAngleParamStraight(t *testing.T) {
	p := NewAngleParam(NewLine(Vec(0, 0), Vec(10, 0)), 100)
	diff(t, 0.0, p.Total())
	params, err := p.IntervalParams(0.1)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 0, len(params))
	u, err := p.Parameterize(0.3)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 0.3, u)
}

func TestAngleParamErrors(t *testing.T) {
	p := NewAngleParam(quarterArc(), 100)
	for _, step := range []float64{0, -1, math.NaN()} {
		if _, err := p.IntervalParams(step); !errors.Is(err, ErrInvalidStep) {
			t.Errorf("step %g: got error %v, want %v", step, err, ErrInvalidStep)
		}
	}
	ranges := [][2]float64{{0.6, 0.4}, {-0.1, 0.5}, {0.5, 1.1}, {math.NaN(), 1}}
	for _, r := range ranges {
		if _, err := p.IntervalParamsInRange(0.1, r[0], r[1]); !errors.Is(err, ErrInvalidRange) {
			t.Errorf("range %v: got error %v, want %v", r, err, ErrInvalidRange)
		}
	}
}

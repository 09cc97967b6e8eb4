package glyphcurve

import (
	"fmt"
	"math"
)

// Continuity is the geometric continuity order of a joint between two
// segments.
type Continuity int

const (
	// G0 joints share a position.
	G0 Continuity = iota
	// G1 joints additionally share a tangent direction.
	G1
	// G2 joints additionally share a curvature.
	G2
)

func (c Continuity) String() string {
	switch c {
	case G0:
		return "G0"
	case G1:
		return "G1"
	case G2:
		return "G2"
	default:
		return fmt.Sprintf("Continuity(%d)", int(c))
	}
}

func (c Continuity) validate() error {
	if c < G0 || c > G2 {
		return fmt.Errorf("%w: %s", ErrInvalidContinuity, c)
	}
	return nil
}

// ContinuousAt reports whether the joint between the end of a and the start
// of b is continuous of the given order.
//
// Tangents are taken from [Bezier.Tangents], so a retracted handle does not
// break G1 continuity on its own.
func ContinuousAt(a, b Bezier, order Continuity, tol Tolerance) (bool, error) {
	if err := order.validate(); err != nil {
		return false, err
	}
	if a.P3.Distance(b.P0) > tol.CloseDistance {
		return false, nil
	}
	if order == G0 {
		return true, nil
	}
	_, exit := a.Tangents()
	entry, _ := b.Tangents()
	if math.Abs(exit.AngleTo(entry)) > tol.Angle {
		return false, nil
	}
	if order == G1 {
		return true, nil
	}
	ka, kb := a.Curvature(1), b.Curvature(0)
	return math.Abs(ka-kb) <= tol.Curvature*(1+max(math.Abs(ka), math.Abs(kb))), nil
}

// ContinuityGroups is the result of [ContinuousRuns].
type ContinuityGroups struct {
	// Groups[i] lists the indices of the segments of the input contour that
	// make up Runs.Segment(i).
	Groups [][]int
	// Runs holds one contour per maximal continuous run.
	Runs Glyph
}

// ContinuousRuns splits c into maximal runs of segments whose joints are
// continuous of the given order. Runs do not wrap around the closing joint
// of a closed contour. An invalid order is an error even for contours
// without joints.
func ContinuousRuns(c Contour, order Continuity, tol Tolerance) (ContinuityGroups, error) {
	if err := order.validate(); err != nil {
		return ContinuityGroups{}, err
	}
	var groups [][]int
	var runs []Contour
	var cur []Bezier
	var curIdx []int
	flush := func() {
		if len(cur) > 0 {
			runs = append(runs, NewContour(cur))
			groups = append(groups, curIdx)
		}
		cur, curIdx = nil, nil
	}
	for i, seg := range c.segs {
		if i > 0 {
			ok, err := ContinuousAt(c.segs[i-1], seg, order, tol)
			if err != nil {
				return ContinuityGroups{}, err
			}
			if !ok {
				flush()
			}
		}
		cur = append(cur, seg)
		curIdx = append(curIdx, i)
	}
	flush()
	Logger().Debug("grouped contour by continuity", "order", order, "segments", c.Len(), "runs", len(runs))
	return ContinuityGroups{Groups: groups, Runs: NewGlyph(runs)}, nil
}

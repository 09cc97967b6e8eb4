package glyphcurve

// FuseNearbyEnds closes small gaps between consecutive segments of c. When a
// segment ends within distance of the next segment's start, its end point is
// moved onto that start. The last segment is kept as it is, and so is the
// cut table.
func FuseNearbyEnds(c Contour, distance float64) Contour {
	segs := c.Segs()
	for i := 0; i < len(segs)-1; i++ {
		next := segs[i+1].P0
		if segs[i].P3.Distance(next) <= distance {
			segs[i].P3 = next
		}
	}
	return Contour{segs: segs, cuts: c.Cuts()}
}

// RemoveShortSegments drops every segment whose sampled arc length is at most
// length. iterations is the number of samples per segment, as in
// [NewArclenParam]. The result has uniform cuts.
func RemoveShortSegments(c Contour, length float64, iterations int) Contour {
	var segs []Bezier
	for _, seg := range c.segs {
		if NewArclenParam(seg, iterations).Total() > length {
			segs = append(segs, seg)
		}
	}
	return NewContour(segs)
}

// SplitAtDiscontinuities breaks c into runs of segments at every joint whose
// gap is distance or larger. Each run becomes a contour with uniform cuts.
func SplitAtDiscontinuities(c Contour, distance float64) Glyph {
	return splitRuns(c, func(a, b Bezier) bool {
		return a.P3.Distance(b.P0) < distance
	})
}

// SplitAtTangentDiscontinuities breaks c into runs of segments that are G1
// continuous under tol.
func SplitAtTangentDiscontinuities(c Contour, tol Tolerance) Glyph {
	return splitRuns(c, func(a, b Bezier) bool {
		ok, _ := ContinuousAt(a, b, G1, tol)
		return ok
	})
}

func splitRuns(c Contour, joined func(a, b Bezier) bool) Glyph {
	var runs []Contour
	var cur []Bezier
	for i, seg := range c.segs {
		if i > 0 && !joined(c.segs[i-1], seg) {
			runs = append(runs, NewContour(cur))
			cur = nil
		}
		cur = append(cur, seg)
	}
	if len(cur) > 0 {
		runs = append(runs, NewContour(cur))
	}
	return NewGlyph(runs)
}

// SignedArea returns the area enclosed by a closed contour, positive for
// anti-clockwise contours in a y-up space.
func SignedArea(c Contour) float64 {
	var area float64
	for _, seg := range c.segs {
		area += seg.SignedArea()
	}
	return area
}

// Arclen returns the arc length of c, summing [Bezier.Arclen] over its
// segments. Unlike [ArclenParam], the error is bounded by accuracy, for
// which [DefaultAccuracy] is a reasonable choice.
func Arclen(c Contour, accuracy float64) float64 {
	var l float64
	for _, seg := range c.segs {
		l += seg.Arclen(accuracy)
	}
	return l
}

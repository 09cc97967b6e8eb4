package glyphcurve

// Rect is an axis-aligned rectangle, such as the bounding box of a glyph.
// Rectangles built by this package have X0 ≤ X1 and Y0 ≤ Y1.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns the rectangle spanned by the corners p0 and p1.
func NewRectFromPoints(p0, p1 Vec2) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// NewRectFromPointSet returns the smallest rectangle enclosing pts, or the
// zero rectangle if there are no points.
func NewRectFromPointSet(pts ...Vec2) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := NewRectFromPoints(pts[0], pts[0])
	for _, pt := range pts[1:] {
		r = r.UnionPoint(pt)
	}
	return r
}

// Abs swaps coordinates as needed so that width and height are
// non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

func (r Rect) Width() float64  { return r.X1 - r.X0 }
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }
func (r Rect) Area() float64   { return r.Width() * r.Height() }

// Contains reports whether pt lies within r or on its edge.
func (r Rect) Contains(pt Vec2) bool {
	return pt.X >= r.X0 && pt.X <= r.X1 && pt.Y >= r.Y0 && pt.Y <= r.Y1
}

// Union returns the smallest rectangle enclosing r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// UnionPoint grows r to include pt. Starting from a zero-area rectangle at
// the first point, successive calls yield the bounds of a point set.
func (r Rect) UnionPoint(pt Vec2) Rect {
	return r.Union(Rect{pt.X, pt.Y, pt.X, pt.Y})
}

// Inflate grows r by width on the left and right and by height at the top
// and bottom.
func (r Rect) Inflate(width, height float64) Rect {
	r = r.Abs()
	return Rect{r.X0 - width, r.Y0 - height, r.X1 + width, r.Y1 + height}
}

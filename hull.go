package glyphcurve

// ConvexHull returns the convex hull of points using the quickhull
// algorithm. The hull starts at the leftmost point (the lowest one, on ties)
// and runs anti-clockwise in a y-up space. Points that lie on an edge of the
// hull are not included. ConvexHull returns nil for no points.
func ConvexHull(points []Vec2) []Vec2 {
	if len(points) == 0 {
		return nil
	}
	left, right := points[0], points[0]
	for _, p := range points[1:] {
		if p.X < left.X || (p.X == left.X && p.Y < left.Y) {
			left = p
		}
		if p.X > right.X || (p.X == right.X && p.Y > right.Y) {
			right = p
		}
	}
	if left == right {
		return []Vec2{left}
	}
	hull := []Vec2{left}
	hull = appendHullSide(hull, left, right, points)
	hull = append(hull, right)
	hull = appendHullSide(hull, right, left, points)
	return hull
}

// appendHullSide appends the hull vertices strictly to the right of the
// directed line a→b, ordered from a to b.
func appendHullSide(hull []Vec2, a, b Vec2, points []Vec2) []Vec2 {
	ab := b.Sub(a)
	var outside []Vec2
	var far Vec2
	farDist := 0.0
	for _, p := range points {
		// Negative cross products are to the right of a→b.
		d := -ab.Cross(p.Sub(a))
		if d <= 0 {
			continue
		}
		outside = append(outside, p)
		if d > farDist {
			far, farDist = p, d
		}
	}
	if len(outside) == 0 {
		return hull
	}
	hull = appendHullSide(hull, a, far, outside)
	hull = append(hull, far)
	return appendHullSide(hull, far, b, outside)
}

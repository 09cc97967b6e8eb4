package glyphcurve

// QuadBez is a quadratic Bézier segment. It describes TrueType outlines and
// the derivative of a [Bezier].
type QuadBez struct {
	P0 Vec2
	P1 Vec2
	P2 Vec2
}

// Raise the order by 1.
//
// Returns a cubic Bézier segment that exactly represents this quadratic.
func (q QuadBez) Raise() Bezier {
	return Bezier{
		q.P0,
		q.P0.Add(q.P1.Sub(q.P0).Mul(2.0 / 3.0)),
		q.P2.Add(q.P1.Sub(q.P2).Mul(2.0 / 3.0)),
		q.P2,
	}
}

func (q QuadBez) Eval(t float64) Vec2 {
	mt := 1.0 - t
	return q.P0.Mul(mt * mt).Add(q.P1.Mul(mt * 2.0).Add(q.P2.Mul(t)).Mul(t))
}

func (q QuadBez) Start() Vec2 {
	return q.P0
}

func (q QuadBez) End() Vec2 {
	return q.P2
}

func (q QuadBez) Transform(aff Affine) QuadBez {
	return QuadBez{
		P0: q.P0.Transform(aff),
		P1: q.P1.Transform(aff),
		P2: q.P2.Transform(aff),
	}
}

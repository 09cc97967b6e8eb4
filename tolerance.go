package glyphcurve

// Tolerance collects the distance and angle thresholds used by operations
// that have to decide whether two values are "the same". It is passed
// explicitly so callers can tighten or loosen it per call.
type Tolerance struct {
	// SmallDistance is the distance below which a contour's start and end
	// points coincide, making it closed.
	SmallDistance float64 `toml:"small_distance"`
	// CloseDistance is the largest gap between adjacent segments that still
	// counts as a positional (G0) joint.
	CloseDistance float64 `toml:"close_distance"`
	// SmallT is the smallest parameter difference considered distinct.
	SmallT float64 `toml:"small_t"`
	// Angle is the largest angle, in radians, between adjacent tangents at a
	// G1 joint.
	Angle float64 `toml:"angle"`
	// Curvature is the largest relative curvature difference at a G2 joint.
	Curvature float64 `toml:"curvature"`
}

// DefaultTolerance returns tolerances suited to glyph outlines in font units.
func DefaultTolerance() Tolerance {
	return Tolerance{
		SmallDistance: 0.001,
		CloseDistance: 0.01,
		SmallT:        1e-6,
		Angle:         0.01,
		Curvature:     0.01,
	}
}

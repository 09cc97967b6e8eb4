// Package sfntglyph loads glyph outlines from TrueType and OpenType fonts
// as glyphcurve glyphs.
package sfntglyph

import (
	"errors"
	"fmt"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"honnef.co/go/glyphcurve"
)

// ErrMissingGlyph is returned for runes that the font has no glyph for.
var ErrMissingGlyph = errors.New("font has no glyph for rune")

// Font is a parsed font. It is not safe for concurrent use.
type Font struct {
	font *sfnt.Font
	buf  sfnt.Buffer
}

// Glyph is a glyph's outline in font units, with the Y axis pointing up.
type Glyph struct {
	Rune    rune
	Advance float64
	Outline glyphcurve.Glyph
}

// Parse parses a TrueType or OpenType font.
func Parse(data []byte) (*Font, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Font{font: f}, nil
}

// UnitsPerEm returns the number of font units per em.
func (f *Font) UnitsPerEm() int {
	return int(f.font.UnitsPerEm())
}

// LoadGlyph loads the outline of the glyph for r. Quadratic segments are
// raised to cubic ones, and every contour is closed.
func (f *Font) LoadGlyph(r rune) (*Glyph, error) {
	idx, err := f.font.GlyphIndex(&f.buf, r)
	if err != nil {
		return nil, fmt.Errorf("load glyph %q: %w", r, err)
	}
	if idx == 0 {
		return nil, fmt.Errorf("load glyph %q: %w", r, ErrMissingGlyph)
	}

	// A ppem equal to the units per em yields coordinates in font units.
	ppem := fixed.Int26_6(f.font.UnitsPerEm()) << 6
	segments, err := f.font.LoadGlyph(&f.buf, idx, ppem, nil)
	if err != nil {
		return nil, fmt.Errorf("load glyph %q: %w", r, err)
	}
	advance, err := f.font.GlyphAdvance(&f.buf, idx, ppem, 0)
	if err != nil {
		return nil, fmt.Errorf("load glyph %q: %w", r, err)
	}

	var contours []glyphcurve.Contour
	var segs []glyphcurve.Bezier
	var start, cur glyphcurve.Vec2
	flush := func() {
		if len(segs) == 0 {
			return
		}
		if cur != start {
			segs = append(segs, glyphcurve.NewLine(cur, start))
		}
		contours = append(contours, glyphcurve.NewContour(segs))
		segs = nil
	}
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			flush()
			start = toVec(seg.Args[0])
			cur = start
		case sfnt.SegmentOpLineTo:
			to := toVec(seg.Args[0])
			segs = append(segs, glyphcurve.NewLine(cur, to))
			cur = to
		case sfnt.SegmentOpQuadTo:
			to := toVec(seg.Args[1])
			q := glyphcurve.QuadBez{P0: cur, P1: toVec(seg.Args[0]), P2: to}
			segs = append(segs, q.Raise())
			cur = to
		case sfnt.SegmentOpCubeTo:
			to := toVec(seg.Args[2])
			segs = append(segs, glyphcurve.NewBezier(cur, toVec(seg.Args[0]), toVec(seg.Args[1]), to))
			cur = to
		}
	}
	flush()

	glyphcurve.Logger().Debug("loaded glyph", "rune", string(r), "index", int(idx), "contours", len(contours))
	return &Glyph{
		Rune:    r,
		Advance: float64(advance) / 64,
		Outline: glyphcurve.NewGlyph(contours),
	}, nil
}

// toVec converts a point from sfnt's Y-down 26.6 fixed point space.
func toVec(p fixed.Point26_6) glyphcurve.Vec2 {
	return glyphcurve.Vec(float64(p.X)/64, -float64(p.Y)/64)
}

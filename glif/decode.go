package glif

import (
	"errors"
	"io"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/strconv"
	"github.com/tdewolff/parse/v2/xml"
	"honnef.co/go/glyphcurve"
)

type rawPoint struct {
	pos  glyphcurve.Vec2
	typ  PointType
	name string
}

// Decode reads a .glif file. It understands the glyph name, the advance
// width, unicode code points, anchors, and the outline's contours. A contour
// made of a single move point is an anchor and is not added to the outline.
// Components, guidelines and lib data are skipped. Quadratic contours are
// converted to cubic ones with [ResolveQuad].
//
// Errors in the document are returned as [*parse.Error], which records the
// line and column.
func Decode(r io.Reader) (*Glyph, error) {
	z := parse.NewInput(r)
	defer z.Restore()
	l := xml.NewLexer(z)

	g := &Glyph{}
	var seenGlyph, inOutline, inContour bool
	var points []rawPoint
	for {
		tt, _ := l.Next()
		switch tt {
		case xml.ErrorToken:
			if l.Err() != io.EOF {
				return nil, l.Err()
			}
			if !seenGlyph {
				return nil, errors.New("expected glyph element")
			}
			glyphcurve.Logger().Debug("decoded glif", "name", g.Name, "contours", len(g.Outline), "anchors", len(g.Anchors))
			return g, nil
		case xml.StartTagToken:
			tag := string(l.Text())
			attrs := map[string][]byte{}
			for {
				tt, _ = l.Next()
				if tt != xml.AttributeToken {
					break
				}
				val := l.AttrVal()
				if len(val) > 1 && (val[0] == '\'' || val[0] == '"') && val[0] == val[len(val)-1] {
					val = val[1 : len(val)-1]
				}
				attrs[string(l.Text())] = val
			}
			void := tt == xml.StartTagCloseVoidToken

			switch tag {
			case "glyph":
				seenGlyph = true
				g.Name = string(attrs["name"])
			case "advance":
				if v, ok := attrs["width"]; ok {
					width, err := parseNumber(v)
					if err != nil {
						return nil, parse.NewErrorLexer(z, "bad advance width: %s", v)
					}
					g.Advance = width
				}
			case "unicode":
				r, err := parseUnicode(string(attrs["hex"]))
				if err != nil {
					return nil, parse.NewErrorLexer(z, "bad unicode: %v", err)
				}
				g.Unicodes = append(g.Unicodes, r)
			case "anchor":
				x, err := parseNumber(attrs["x"])
				if err != nil {
					return nil, parse.NewErrorLexer(z, "bad anchor x coordinate: %s", attrs["x"])
				}
				y, err := parseNumber(attrs["y"])
				if err != nil {
					return nil, parse.NewErrorLexer(z, "bad anchor y coordinate: %s", attrs["y"])
				}
				g.Anchors = append(g.Anchors, Anchor{Name: string(attrs["name"]), X: x, Y: y})
			case "outline":
				inOutline = !void
			case "contour":
				if !inOutline {
					return nil, parse.NewErrorLexer(z, "contour outside of outline")
				}
				inContour = !void
				points = points[:0]
			case "point":
				if !inContour {
					return nil, parse.NewErrorLexer(z, "point outside of contour")
				}
				x, err := parseNumber(attrs["x"])
				if err != nil {
					return nil, parse.NewErrorLexer(z, "bad x coordinate: %s", attrs["x"])
				}
				y, err := parseNumber(attrs["y"])
				if err != nil {
					return nil, parse.NewErrorLexer(z, "bad y coordinate: %s", attrs["y"])
				}
				typ, ok := parsePointType(string(attrs["type"]))
				if !ok {
					return nil, parse.NewErrorLexer(z, "unknown point type: %s", attrs["type"])
				}
				points = append(points, rawPoint{glyphcurve.Vec(x, y), typ, string(attrs["name"])})
			}
		case xml.EndTagToken:
			switch string(l.Text()) {
			case "contour":
				if len(points) == 1 && points[0].typ == Move {
					p := points[0]
					g.Anchors = append(g.Anchors, Anchor{Name: p.name, X: p.pos.X, Y: p.pos.Y})
					inContour = false
					continue
				}
				c, err := buildContour(points)
				if err != nil {
					return nil, parse.NewErrorLexer(z, "bad contour: %v", err)
				}
				if len(c) > 0 {
					g.Outline = append(g.Outline, c)
				}
				inContour = false
			case "outline":
				inOutline = false
			}
		}
	}
}

func parseNumber(b []byte) (float64, error) {
	f, n := strconv.ParseFloat(b)
	if n == 0 || n != len(b) {
		return 0, errors.New("invalid number")
	}
	return f, nil
}

// buildContour assigns the off-curve points of a UFO contour to the handles
// of the on-curve points around them.
func buildContour(raw []rawPoint) (Contour, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	open := raw[0].typ == Move
	for _, p := range raw {
		if p.typ != QCurve {
			continue
		}
		if open {
			return nil, errors.New("open quadratic contours are not supported")
		}
		qc := make(QContour, len(raw))
		for i, p := range raw {
			qc[i] = QPoint{X: p.pos.X, Y: p.pos.Y, OnCurve: p.typ != OffCurve}
		}
		return ResolveQuad(qc), nil
	}

	start := -1
	for i, p := range raw {
		if p.typ != OffCurve {
			start = i
			break
		}
	}
	if start == -1 {
		return nil, errors.New("contour has no on-curve points")
	}
	if !open {
		raw = append(raw[start:len(raw):len(raw)], raw[:start]...)
	}

	connect := func(p, q *Point, offs []glyphcurve.Vec2) error {
		switch len(offs) {
		case 0:
		case 1:
			p.A, q.B = At(offs[0]), At(offs[0])
		case 2:
			p.A, q.B = At(offs[0]), At(offs[1])
		default:
			return errors.New("more than two off-curve points in a cubic segment")
		}
		return nil
	}

	var out Contour
	var offs []glyphcurve.Vec2
	for _, p := range raw {
		if p.typ == OffCurve {
			offs = append(offs, p.pos)
			continue
		}
		out = append(out, NewPoint(p.pos, p.typ))
		if len(out) > 1 {
			if err := connect(&out[len(out)-2], &out[len(out)-1], offs); err != nil {
				return nil, err
			}
		}
		offs = offs[:0]
	}
	if open {
		if len(offs) > 0 {
			return nil, errors.New("open contour ends in off-curve points")
		}
		return out, nil
	}
	if err := connect(&out[len(out)-1], &out[0], offs); err != nil {
		return nil, err
	}
	return out, nil
}

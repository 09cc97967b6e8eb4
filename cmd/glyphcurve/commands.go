package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/tdewolff/argp"
	"golang.org/x/image/font/gofont/goregular"
	"honnef.co/go/glyphcurve"
	"honnef.co/go/glyphcurve/glif"
	"honnef.co/go/glyphcurve/sfntglyph"
)

// Info prints per-contour statistics. It is the root command.
type Info struct {
	Char       string  `short:"c" desc:"Character to load from a font file"`
	Config     string  `desc:"TOML configuration file"`
	Iterations int     `short:"n" desc:"Samples per parameterization table, overrides the config file"`
	Continuity string  `desc:"Continuity order G0, G1 or G2, overrides the config file"`
	Distance   float64 `short:"d" desc:"Largest gap between the ends of a closed contour, overrides the config file"`
	Verbose    bool    `short:"v" desc:"Log debug output to stderr"`
	Input      string  `index:"0" desc:"Input .glif, .ttf or .otf file; the Go font if empty"`
}

type Angles struct {
	Char       string  `short:"c" desc:"Character to load from a font file"`
	Config     string  `desc:"TOML configuration file"`
	Iterations int     `short:"n" desc:"Samples per parameterization table, overrides the config file"`
	Verbose    bool    `short:"v" desc:"Log debug output to stderr"`
	Step       float64 `short:"s" default:"15" desc:"Turning step in degrees"`
	Input      string  `index:"0" desc:"Input .glif, .ttf or .otf file; the Go font if empty"`
}

type SVG struct {
	Char      string  `short:"c" desc:"Character to load from a font file"`
	Config    string  `desc:"TOML configuration file"`
	Distance  float64 `short:"d" desc:"Largest gap between the ends of a closed contour, overrides the config file"`
	Verbose   bool    `short:"v" desc:"Log debug output to stderr"`
	Precision int     `short:"p" default:"0" desc:"Maximum number of decimals, 0 for as many as needed"`
	Input     string  `index:"0" desc:"Input .glif, .ttf or .otf file; the Go font if empty"`
}

type Fmt struct {
	Char     string  `short:"c" desc:"Character to load from a font file"`
	Config   string  `desc:"TOML configuration file"`
	Distance float64 `short:"d" desc:"Largest gap between the ends of a closed contour, overrides the config file"`
	Verbose  bool    `short:"v" desc:"Log debug output to stderr"`
	Output   string  `short:"o" desc:"Output file, stdout if empty"`
	Input    string  `index:"0" desc:"Input .glif, .ttf or .otf file; the Go font if empty"`
}

func (cmd *Info) Run() error {
	setup(cmd.Verbose)
	cfg, err := configure(cmd.Config, Overrides{
		Iterations:    cmd.Iterations,
		Continuity:    cmd.Continuity,
		SmallDistance: cmd.Distance,
	})
	if err != nil {
		return err
	}
	g, err := load(cmd.Input, cmd.Char)
	if err != nil {
		return err
	}
	return writeInfo(os.Stdout, g, cfg)
}

func (cmd *Angles) Run() error {
	setup(cmd.Verbose)
	cfg, err := configure(cmd.Config, Overrides{Iterations: cmd.Iterations})
	if err != nil {
		return err
	}
	g, err := load(cmd.Input, cmd.Char)
	if err != nil {
		return err
	}
	return writeAngles(os.Stdout, g, cmd.Step*math.Pi/180, cfg)
}

func (cmd *SVG) Run() error {
	setup(cmd.Verbose)
	cfg, err := configure(cmd.Config, Overrides{SmallDistance: cmd.Distance})
	if err != nil {
		return err
	}
	g, err := load(cmd.Input, cmd.Char)
	if err != nil {
		return err
	}
	opts := glyphcurve.SVGOptions{MaxPrecision: cmd.Precision, Closed: &cfg.Tolerance}
	if err := glyphcurve.WriteSVG(os.Stdout, g.Outline, opts); err != nil {
		return err
	}
	fmt.Println()
	return nil
}

func (cmd *Fmt) Run() error {
	setup(cmd.Verbose)
	cfg, err := configure(cmd.Config, Overrides{SmallDistance: cmd.Distance})
	if err != nil {
		return err
	}
	g, err := load(cmd.Input, cmd.Char)
	if err != nil {
		return err
	}
	w := io.Writer(os.Stdout)
	if cmd.Output != "" {
		f, err := os.Create(cmd.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return glif.Encode(w, g.toGlif(cfg))
}

func setup(verbose bool) {
	if verbose {
		glyphcurve.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
}

// loaded is a glyph read from any of the supported inputs.
type loaded struct {
	Name     string
	Advance  float64
	Unicodes []rune
	Outline  glyphcurve.Glyph
	// source is set for .glif input, so fmt can keep its points as they
	// were.
	source *glif.Glyph
}

func (l *loaded) toGlif(cfg Config) *glif.Glyph {
	if l.source != nil {
		return l.source
	}
	return &glif.Glyph{
		Name:     l.Name,
		Advance:  l.Advance,
		Unicodes: l.Unicodes,
		Outline:  glif.GlyphToOutline(l.Outline, cfg.Tolerance),
	}
}

func load(input, char string) (*loaded, error) {
	if strings.EqualFold(filepath.Ext(input), ".glif") {
		f, err := os.Open(input)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		g, err := glif.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", input, err)
		}
		return &loaded{
			Name:     g.Name,
			Advance:  g.Advance,
			Unicodes: g.Unicodes,
			Outline:  glif.OutlineToGlyph(g.Outline),
			source:   g,
		}, nil
	}

	r, n := utf8.DecodeRuneInString(char)
	if n == 0 || n != len(char) {
		fmt.Fprintln(os.Stderr, "ERROR: must specify a single character with -c for font input")
		return nil, argp.ShowUsage
	}
	data := goregular.TTF
	if input != "" {
		var err error
		data, err = os.ReadFile(input)
		if err != nil {
			return nil, err
		}
	}
	font, err := sfntglyph.Parse(data)
	if err != nil {
		return nil, err
	}
	g, err := font.LoadGlyph(r)
	if err != nil {
		return nil, err
	}
	return &loaded{
		Name:     char,
		Advance:  g.Advance,
		Unicodes: []rune{r},
		Outline:  g.Outline,
	}, nil
}

type contourInfo struct {
	segments int
	closed   bool
	length   float64
	turning  float64
	runs     int
	err      error
}

// writeInfo measures every contour concurrently and prints one line per
// contour.
func writeInfo(w io.Writer, g *loaded, cfg Config) error {
	order, err := cfg.Order()
	if err != nil {
		return err
	}
	contours := g.Outline.Segs()
	infos := make([]contourInfo, len(contours))
	var wg sync.WaitGroup
	for i, c := range contours {
		wg.Add(1)
		go func() {
			defer wg.Done()
			info := contourInfo{segments: c.Len()}
			if c.Len() > 0 {
				info.closed = c.IsClosed(cfg.Tolerance)
				info.length = glyphcurve.Arclen(c, glyphcurve.DefaultAccuracy)
				info.turning = glyphcurve.NewAngleParam(c, cfg.Iterations).Total()
			}
			runs, err := glyphcurve.ContinuousRuns(c, order, cfg.Tolerance)
			info.runs, info.err = len(runs.Groups), err
			infos[i] = info
		}()
	}
	wg.Wait()

	fmt.Fprintf(w, "glyph %q: %d contours, advance %g\n", g.Name, len(contours), g.Advance)
	for i, info := range infos {
		if info.err != nil {
			return fmt.Errorf("contour %d: %w", i, info.err)
		}
		fmt.Fprintf(w, "contour %d: %d segments, closed %t, length %.2f, turning %.1f°, %d %s runs\n",
			i, info.segments, info.closed, info.length, info.turning*180/math.Pi, info.runs, order)
	}
	return nil
}

func writeAngles(w io.Writer, g *loaded, step float64, cfg Config) error {
	for i, c := range g.Outline.Segs() {
		if c.Len() == 0 {
			continue
		}
		params, err := glyphcurve.NewAngleParam(c, cfg.Iterations).IntervalParams(step)
		if err != nil {
			return fmt.Errorf("contour %d: %w", i, err)
		}
		fmt.Fprintf(w, "contour %d:", i)
		for _, t := range params {
			fmt.Fprintf(w, " %.4f", t)
		}
		fmt.Fprintln(w)
	}
	return nil
}

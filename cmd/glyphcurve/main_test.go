package main

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdewolff/argp"
	"honnef.co/go/glyphcurve"
	"honnef.co/go/glyphcurve/glif"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	path := writeFile(t, "config.toml", `
iterations = 200
continuity = "g2"

[tolerance]
angle = 0.05
`)
	cfg, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 200, cfg.Iterations)
	assert.Equal(t, 0.05, cfg.Tolerance.Angle)
	// Unset keys keep their defaults.
	assert.Equal(t, glyphcurve.DefaultTolerance().CloseDistance, cfg.Tolerance.CloseDistance)
	order, err := cfg.Order()
	require.NoError(t, err)
	assert.Equal(t, glyphcurve.G2, order)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(writeFile(t, "unknown.toml", "colour = \"red\"\n"))
	var strict *toml.StrictMissingError
	assert.True(t, errors.As(err, &strict), "got %v", err)

	_, err = LoadConfig(writeFile(t, "order.toml", "continuity = \"G3\"\n"))
	assert.ErrorIs(t, err, glyphcurve.ErrInvalidContinuity)

	_, err = LoadConfig(writeFile(t, "iterations.toml", "iterations = 0\n"))
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfigureOverrides(t *testing.T) {
	cfg, err := configure("", Overrides{})
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	path := writeFile(t, "config.toml", `
iterations = 200
continuity = "G2"

[tolerance]
small_distance = 0.25
`)
	cfg, err = configure(path, Overrides{Iterations: 50})
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Iterations)
	assert.Equal(t, "G2", cfg.Continuity)
	assert.Equal(t, 0.25, cfg.Tolerance.SmallDistance)

	cfg, err = configure(path, Overrides{Continuity: "g0", SmallDistance: 2})
	require.NoError(t, err)
	assert.Equal(t, 200, cfg.Iterations)
	order, err := cfg.Order()
	require.NoError(t, err)
	assert.Equal(t, glyphcurve.G0, order)
	assert.Equal(t, 2.0, cfg.Tolerance.SmallDistance)

	_, err = configure(path, Overrides{Continuity: "G9"})
	assert.ErrorIs(t, err, glyphcurve.ErrInvalidContinuity)
	_, err = configure("", Overrides{Iterations: -1})
	assert.Error(t, err)
	_, err = configure("", Overrides{SmallDistance: -1})
	assert.Error(t, err)
}

func TestInfoDefaultFont(t *testing.T) {
	g, err := load("", "O")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeInfo(&buf, g, DefaultConfig()))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], `glyph "O": 2 contours`)
	assert.Contains(t, lines[1], "closed true")
	assert.Contains(t, lines[2], "closed true")
}

func TestAnglesGlif(t *testing.T) {
	path := writeFile(t, "square.glif", `<?xml version="1.0" encoding="UTF-8"?>
<glyph name="square" format="2">
  <advance width="100"/>
  <outline>
    <contour>
      <point x="0" y="0" type="line"/>
      <point x="100" y="0" type="line"/>
      <point x="100" y="100" type="line"/>
      <point x="0" y="100" type="line"/>
    </contour>
  </outline>
</glyph>
`)
	g, err := load(path, "")
	require.NoError(t, err)
	assert.Equal(t, "square", g.Name)
	require.Equal(t, 1, g.Outline.Len())

	var buf bytes.Buffer
	require.NoError(t, writeInfo(&buf, g, DefaultConfig()))
	assert.Contains(t, buf.String(), "4 segments")
	assert.Contains(t, buf.String(), "length 400.00")

	// The three sampled corners turn by 270° in total, which is crossed
	// five times in steps of 45°.
	buf.Reset()
	require.NoError(t, writeAngles(&buf, g, math.Pi/4, DefaultConfig()))
	assert.Len(t, strings.Fields(buf.String()), 7)

	var out bytes.Buffer
	require.NoError(t, glif.Encode(&out, g.toGlif(DefaultConfig())))
	assert.Contains(t, out.String(), `<glyph name="square" format="2">`)
}

func TestAnglesSkipsAnchors(t *testing.T) {
	path := writeFile(t, "anchored.glif", `<glyph name="a" format="1"><outline>
  <contour>
    <point x="0" y="0" type="line"/>
    <point x="500" y="0" type="line"/>
    <point x="250" y="400" type="line"/>
  </contour>
  <contour>
    <point x="250" y="700" type="move" name="top"/>
  </contour>
</outline></glyph>`)
	g, err := load(path, "")
	require.NoError(t, err)
	require.Equal(t, 1, g.Outline.Len())

	var buf bytes.Buffer
	require.NoError(t, writeAngles(&buf, g, math.Pi/4, DefaultConfig()))
	assert.True(t, strings.HasPrefix(buf.String(), "contour 0:"))
	buf.Reset()
	require.NoError(t, writeInfo(&buf, g, DefaultConfig()))
	assert.Contains(t, buf.String(), "1 contours")

	var out bytes.Buffer
	require.NoError(t, glif.Encode(&out, g.toGlif(DefaultConfig())))
	assert.Contains(t, out.String(), `<anchor x="250" y="700" name="top"/>`)
}

func TestLoadNeedsChar(t *testing.T) {
	_, err := load("", "")
	assert.ErrorIs(t, err, argp.ShowUsage)
	_, err = load("", "ab")
	assert.ErrorIs(t, err, argp.ShowUsage)
}

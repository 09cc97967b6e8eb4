package main

import (
	"github.com/tdewolff/argp"
)

func main() {
	root := argp.NewCmd(&Info{}, "Inspect glyph outlines as piecewise Bézier curves")
	root.AddCmd(&Angles{}, "angles", "Print parameters at which contours have turned by another step")
	root.AddCmd(&SVG{}, "svg", "Print SVG path data")
	root.AddCmd(&Fmt{}, "fmt", "Rewrite as a .glif file")
	root.Parse()
	root.PrintHelp()
}

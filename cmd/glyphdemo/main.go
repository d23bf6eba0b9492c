// Command glyphdemo runs the glyph vertex stage over a row of glyph quads
// laid out in pixel space and prints the clip-space result.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/math/fixed"

	"github.com/gogpu/glyph"
	"github.com/gogpu/glyph/gpu"
)

func main() {
	var (
		width    = flag.Int("width", 800, "viewport width in pixels")
		height   = flag.Int("height", 600, "viewport height in pixels")
		textLen  = flag.Int("text-len", 4, "number of glyph quads")
		size     = flag.Int("size", 16, "glyph cell size in pixels")
		tint     = flag.String("tint", "1,0,0", "tint color as r,g,b")
		validate = flag.Bool("validate", false, "compile the glyph shader to SPIR-V")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		glyph.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	color, err := parseRGB(*tint)
	if err != nil {
		log.Fatalf("Invalid -tint: %v", err)
	}
	if *textLen <= 0 || *textLen > glyph.MaxQuads {
		log.Fatalf("-text-len must be in 1..%d", glyph.MaxQuads)
	}

	if *validate {
		words, err := gpu.CompileSPIRV()
		if err != nil {
			log.Fatalf("Shader validation failed: %v", err)
		}
		log.Printf("Glyph shader OK: %d SPIR-V words\n", len(words))
	}

	quads := layoutRow(*textLen, *size)
	vertices := glyph.QuadVertices(quads)

	vp := glyph.Viewport{Width: *width, Height: *height}
	model := glyph.Translate(float32(*size), float32(*size))
	draw := vp.DrawTransform(model)

	d := glyph.NewDispatcher(glyph.NewStage(glyph.WithTint(color)))
	defer d.Close()

	out := make([]glyph.Output, len(vertices))
	if err := d.Run(context.Background(), draw, vertices, out); err != nil {
		log.Fatalf("Dispatch failed: %v", err)
	}

	for i, o := range out {
		fmt.Printf("v%-3d pos=(%8.4f, %8.4f, %g, %g) color=(%g, %g, %g) uv=(%g, %g)\n",
			i, o.Position.X, o.Position.Y, o.Position.Z, o.Position.W,
			o.Color.R, o.Color.G, o.Color.B, o.TexCoord.X, o.TexCoord.Y)
	}
}

// layoutRow places n glyph cells on one baseline, each sampling its own
// cell of a square atlas.
func layoutRow(n, size int) []glyph.Quad {
	cols := 1
	for cols*cols < n {
		cols++
	}
	atlas := image.Pt(cols*size, cols*size)

	bounds := fixed.Rectangle26_6{
		Min: fixed.P(0, -size),
		Max: fixed.P(size, 0),
	}
	quads := make([]glyph.Quad, n)
	dot := fixed.P(0, size)
	for i := range quads {
		cell := image.Rect(0, 0, size, size).Add(image.Pt((i%cols)*size, (i/cols)*size))
		quads[i] = glyph.QuadFromGlyph(dot, bounds, cell, atlas)
		dot.X += fixed.I(size)
	}
	return quads
}

func parseRGB(s string) (glyph.RGB, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return glyph.RGB{}, fmt.Errorf("want r,g,b, got %q", s)
	}
	var c [3]float32
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return glyph.RGB{}, fmt.Errorf("component %d: %w", i, err)
		}
		c[i] = float32(v)
	}
	return glyph.RGB{R: c[0], G: c[1], B: c[2]}, nil
}

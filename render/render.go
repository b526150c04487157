// Package render draws a computed gradient stop sequence to raster (PNG)
// or vector (SVG) form. It consumes the core's output; it never computes
// stops itself.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	colorful "github.com/lucasb-eyer/go-colorful"
	xdraw "golang.org/x/image/draw"

	"github.com/al-siv/gradstop"
)

// rgba8 converts a Lab color to 8-bit sRGB, clamping out-of-gamut values.
func rgba8(c gradstop.Color) color.NRGBA {
	r, g, b := colorful.Lab(c.L/100, c.A/100, c.B/100).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

// hex formats a Lab color as an sRGB hex string for SVG attributes.
func hex(c gradstop.Color) string {
	return colorful.Lab(c.L/100, c.A/100, c.B/100).Clamped().Hex()
}

// PNG writes a horizontal gradient strip of the given size. Colors
// between stops are resolved with gradstop.ColorAt; the one-pixel-tall
// strip is then scaled to the requested height.
func PNG(w io.Writer, stops []gradstop.Stop, width, height int) error {
	if len(stops) == 0 {
		return fmt.Errorf("render: no stops")
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("render: invalid size %dx%d", width, height)
	}

	strip := image.NewNRGBA(image.Rect(0, 0, width, 1))
	for x := 0; x < width; x++ {
		t := 0.0
		if width > 1 {
			t = float64(x) / float64(width-1)
		}
		strip.SetNRGBA(x, 0, rgba8(gradstop.ColorAt(stops, t)))
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.NearestNeighbor.Scale(img, img.Bounds(), strip, strip.Bounds(), xdraw.Src, nil)
	return png.Encode(w, img)
}

// SVG writes the stop sequence as a linearGradient filling a rect.
// Stop offsets are emitted as the integer percent positions the
// sequencer computed.
func SVG(w io.Writer, stops []gradstop.Stop, width, height int) error {
	if len(stops) == 0 {
		return fmt.Errorf("render: no stops")
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("render: invalid size %dx%d", width, height)
	}

	if _, err := fmt.Fprintf(w,
		"<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\">\n"+
			"  <defs>\n    <linearGradient id=\"g\" x1=\"0%%\" y1=\"0%%\" x2=\"100%%\" y2=\"0%%\">\n",
		width, height); err != nil {
		return err
	}
	for _, s := range stops {
		if _, err := fmt.Fprintf(w,
			"      <stop offset=\"%d%%\" stop-color=\"%s\"/>\n",
			s.Position, hex(s.Color)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w,
		"    </linearGradient>\n  </defs>\n"+
			"  <rect width=\"%d\" height=\"%d\" fill=\"url(#g)\"/>\n</svg>\n",
		width, height)
	return err
}

// Package parse converts textual color specifications into the Lab
// coordinates the gradstop core works in, and matches colors against
// named-color tables.
//
// The core itself never parses text; every gradstop.Color handed to it
// comes through this package or equivalent caller code.
package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jkl1337/go-chromath"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/al-siv/gradstop"
)

// sRGB to Lab pipeline with an explicit D65 illuminant. The transformers
// are stateless after construction and safe for concurrent use.
var (
	rgb2xyz = chromath.NewRGBTransformer(&chromath.SpaceSRGB, nil, nil, nil, 1.0, nil)
	lab2xyz = chromath.NewLabTransformer(&chromath.IlluminantRefD65)
)

// Parse converts a textual color into Lab coordinates. Accepted forms:
//
//   - hex: "#RGB", "#RGBA", "#RRGGBB", "#RRGGBBAA" (alpha digits are
//     accepted and discarded; Lab carries no alpha)
//   - functional: "rgb(r, g, b)" with channels in 0..255
//   - a color name looked up in names (may be nil to disable names)
func Parse(s string, names *Names) (gradstop.Color, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return gradstop.Color{}, fmt.Errorf("parse: empty color")
	case s[0] == '#':
		return Hex(s)
	case strings.HasPrefix(strings.ToLower(s), "rgb(") && strings.HasSuffix(s, ")"):
		return parseRGBFunc(s)
	}
	if names != nil {
		if c, ok := names.Lookup(s); ok {
			return c, nil
		}
	}
	return gradstop.Color{}, fmt.Errorf("parse: unrecognized color %q", s)
}

// Hex parses a hex color specification into Lab.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without
// a leading '#'. Alpha digits are discarded.
func Hex(s string) (gradstop.Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")

	// Normalize to RRGGBB for go-colorful, dropping alpha.
	switch len(h) {
	case 4:
		h = h[:3]
	case 8:
		h = h[:6]
	}
	switch len(h) {
	case 3:
		h = h[0:1] + h[0:1] + h[1:2] + h[1:2] + h[2:3] + h[2:3]
	case 6:
	default:
		return gradstop.Color{}, fmt.Errorf("parse: invalid hex color %q", s)
	}

	c, err := colorful.Hex("#" + strings.ToLower(h))
	if err != nil {
		return gradstop.Color{}, fmt.Errorf("parse: invalid hex color %q: %w", s, err)
	}
	l, a, b := c.Lab()
	return gradstop.Lab(l*100, a*100, b*100), nil
}

// RGB8 converts 8-bit sRGB channels into Lab via an explicit
// sRGB -> XYZ -> Lab transform under D65.
func RGB8(r, g, b uint8) gradstop.Color {
	rgb := chromath.RGB{float64(r) / 255, float64(g) / 255, float64(b) / 255}
	xyz := rgb2xyz.Convert(rgb)
	lab := lab2xyz.Invert(xyz)
	return gradstop.Lab(lab[0], lab[1], lab[2])
}

// parseRGBFunc parses "rgb(r, g, b)" with integer channels in 0..255.
func parseRGBFunc(s string) (gradstop.Color, error) {
	inner := s[strings.Index(s, "(")+1 : len(s)-1]
	parts := strings.Split(inner, ",")
	if len(parts) != 3 {
		return gradstop.Color{}, fmt.Errorf("parse: rgb() needs three channels, got %q", s)
	}

	var ch [3]uint8
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v < 0 || v > 255 {
			return gradstop.Color{}, fmt.Errorf("parse: rgb() channel %q out of range in %q", p, s)
		}
		ch[i] = uint8(v)
	}
	return RGB8(ch[0], ch[1], ch[2]), nil
}

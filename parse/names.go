package parse

import (
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"

	"github.com/al-siv/gradstop"
)

// Names is an explicit, read-only named-color table. Callers construct
// one (usually via DefaultNames) and pass it by reference wherever name
// lookup is needed; there is no ambient global table.
type Names struct {
	table map[string]gradstop.Color
	order []string // canonical names in deterministic order
	fold  cases.Caser
}

// DefaultNames returns a table of the SVG 1.1 named colors.
func DefaultNames() *Names {
	n := &Names{
		table: make(map[string]gradstop.Color, len(colornames.Names)),
		order: colornames.Names,
		fold:  cases.Fold(),
	}
	for _, name := range colornames.Names {
		c := colornames.Map[name]
		n.table[name] = RGB8(c.R, c.G, c.B)
	}
	return n
}

// normalize case-folds a name and strips separators, so "Rebecca Purple"
// and "rebecca-purple" both find "rebeccapurple".
func (n *Names) normalize(name string) string {
	folded := n.fold.String(name)
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, folded)
}

// Lookup finds a named color. Matching is case-insensitive and ignores
// spaces, hyphens and underscores.
func (n *Names) Lookup(name string) (gradstop.Color, bool) {
	c, ok := n.table[n.normalize(name)]
	return c, ok
}

// Len returns the number of named colors in the table.
func (n *Names) Len() int { return len(n.order) }

// Nearest returns the named color perceptually closest to c under
// metric, along with its name and distance. Ties resolve to the name
// that sorts first, so results are deterministic.
func (n *Names) Nearest(c gradstop.Color, metric gradstop.Metric) (string, gradstop.Color, float64) {
	bestName := ""
	var bestColor gradstop.Color
	bestDist := -1.0
	for _, name := range n.order {
		candidate := n.table[name]
		d := metric.Calculate(c, candidate)
		if bestDist < 0 || d < bestDist {
			bestName, bestColor, bestDist = name, candidate, d
		}
	}
	return bestName, bestColor, bestDist
}

// HexString formats a Lab color as an sRGB hex string, clamping colors
// outside the sRGB gamut. The inverse of Hex, up to gamut clamping and
// 8-bit quantization.
func HexString(c gradstop.Color) string {
	return colorful.Lab(c.L/100, c.A/100, c.B/100).Clamped().Hex()
}

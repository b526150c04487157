// Package emit serializes a computed gradient stop sequence for human
// and machine consumption: JSON records, a styled terminal table, and a
// terminal color ramp. The core exposes no format-specific encoding;
// that is this package's job.
package emit

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/al-siv/gradstop"
)

// stopRecord is the JSON shape of one gradient stop.
type stopRecord struct {
	Position   int     `json:"position"`
	Hex        string  `json:"hex"`
	L          float64 `json:"l"`
	A          float64 `json:"a"`
	B          float64 `json:"b"`
	GeometricT float64 `json:"geometric_t"`
	EasedT     float64 `json:"eased_t"`
}

// hex formats a Lab color as an sRGB hex string, clamped to gamut.
func hex(c gradstop.Color) string {
	return colorful.Lab(c.L/100, c.A/100, c.B/100).Clamped().Hex()
}

// JSON writes the stop sequence as an indented JSON array.
func JSON(w io.Writer, stops []gradstop.Stop) error {
	records := make([]stopRecord, len(stops))
	for i, s := range stops {
		records[i] = stopRecord{
			Position:   s.Position,
			Hex:        hex(s.Color),
			L:          s.Color.L,
			A:          s.Color.A,
			B:          s.Color.B,
			GeometricT: s.GeometricT,
			EasedT:     s.EasedT,
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// Table renders the stop sequence as a bordered terminal table with a
// color swatch per row.
func Table(stops []gradstop.Stop) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == 0 {
				return headerStyle.Copy().Padding(0, 1)
			}
			return cellStyle
		}).
		Headers("POS", "HEX", "LAB", "EASED T", "")

	for _, s := range stops {
		h := hex(s.Color)
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(h)).Render("    ")
		t.Row(
			fmt.Sprintf("%d%%", s.Position),
			h,
			fmt.Sprintf("%.2f %.2f %.2f", s.Color.L, s.Color.A, s.Color.B),
			fmt.Sprintf("%.4f", s.EasedT),
			swatch,
		)
	}
	return t.Render()
}

// Ramp renders the gradient as a single line of colored blocks, width
// cells wide, resolving intermediate colors with gradstop.ColorAt.
func Ramp(stops []gradstop.Stop, width int) string {
	if width <= 0 || len(stops) == 0 {
		return ""
	}
	var b strings.Builder
	for i := 0; i < width; i++ {
		t := 0.0
		if width > 1 {
			t = float64(i) / float64(width-1)
		}
		h := hex(gradstop.ColorAt(stops, t))
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(h)).Render("█"))
	}
	return b.String()
}

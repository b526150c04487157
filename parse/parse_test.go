package parse

import (
	"math"
	"testing"

	"github.com/al-siv/gradstop"
)

func labClose(a, b gradstop.Color, eps float64) bool {
	return math.Abs(a.L-b.L) < eps && math.Abs(a.A-b.A) < eps && math.Abs(a.B-b.B) < eps
}

func TestHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    gradstop.Color
		wantErr bool
	}{
		{"red long", "#ff0000", gradstop.Lab(53.24, 80.09, 67.20), false},
		{"red short", "#f00", gradstop.Lab(53.24, 80.09, 67.20), false},
		{"red with alpha", "#ff0000cc", gradstop.Lab(53.24, 80.09, 67.20), false},
		{"red short alpha", "#f00c", gradstop.Lab(53.24, 80.09, 67.20), false},
		{"no hash", "ff0000", gradstop.Lab(53.24, 80.09, 67.20), false},
		{"uppercase", "#FF0000", gradstop.Lab(53.24, 80.09, 67.20), false},
		{"white", "#ffffff", gradstop.Lab(100, 0, 0), false},
		{"bad length", "#ff000", gradstop.Color{}, true},
		{"bad digits", "#zzzzzz", gradstop.Color{}, true},
		{"empty", "", gradstop.Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Hex(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Hex(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && !labClose(got, tt.want, 0.05) {
				t.Errorf("Hex(%q) = %+v, want ~%+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRGB8MatchesHex(t *testing.T) {
	// The chromath pipeline and the go-colorful hex path must agree on
	// the same sRGB input (both are D65 sRGB to Lab).
	inputs := []struct {
		hex     string
		r, g, b uint8
	}{
		{"#ff0000", 255, 0, 0},
		{"#336699", 0x33, 0x66, 0x99},
		{"#ffffff", 255, 255, 255},
	}
	for _, in := range inputs {
		viaHex, err := Hex(in.hex)
		if err != nil {
			t.Fatalf("Hex(%q): %v", in.hex, err)
		}
		viaRGB := RGB8(in.r, in.g, in.b)
		if !labClose(viaHex, viaRGB, 0.5) {
			t.Errorf("%s: hex path %+v, rgb path %+v", in.hex, viaHex, viaRGB)
		}
	}
}

func TestParse(t *testing.T) {
	names := DefaultNames()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"hex", "#00ff00", false},
		{"rgb func", "rgb(0, 255, 0)", false},
		{"rgb func uppercase", "RGB(12, 34, 56)", false},
		{"named", "darkslategray", false},
		{"named spaced", "Dark Slate Gray", false},
		{"named hyphen", "dark-slate-gray", false},
		{"unknown", "notacolor", true},
		{"empty", "   ", true},
		{"rgb bad channel", "rgb(300, 0, 0)", true},
		{"rgb missing channel", "rgb(1, 2)", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input, names)
			if (err != nil) != tt.wantErr {
				t.Errorf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}

	// Equivalent spellings land on the same color.
	a, _ := Parse("darkslategray", names)
	b, _ := Parse("Dark Slate Gray", names)
	if a != b {
		t.Errorf("name normalization: %+v != %+v", a, b)
	}
}

func TestParse_NilNames(t *testing.T) {
	if _, err := Parse("red", nil); err == nil {
		t.Error("Parse with nil names resolved a name, want error")
	}
	if _, err := Parse("#ff0000", nil); err != nil {
		t.Errorf("Parse hex with nil names: %v", err)
	}
}

func TestNames_Nearest(t *testing.T) {
	names := DefaultNames()

	red, err := Hex("#ff0000")
	if err != nil {
		t.Fatal(err)
	}
	name, _, dist := names.Nearest(red, gradstop.DeltaE2000)
	if name != "red" {
		t.Errorf("Nearest(#ff0000) = %q, want \"red\"", name)
	}
	if dist > 0.1 {
		t.Errorf("Nearest distance = %v, want ~0", dist)
	}
}

func TestHexString_RoundTrip(t *testing.T) {
	for _, h := range []string{"#336699", "#ff0000", "#abcdef"} {
		c, err := Hex(h)
		if err != nil {
			t.Fatal(err)
		}
		if got := HexString(c); got != h {
			t.Errorf("HexString(Hex(%q)) = %q", h, got)
		}
	}
}

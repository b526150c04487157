package emit

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/al-siv/gradstop"
)

func testStops() []gradstop.Stop {
	return []gradstop.Stop{
		{Position: 0, Color: gradstop.Black, GeometricT: 0, EasedT: 0},
		{Position: 50, Color: gradstop.Lab(50, 0, 0), GeometricT: 0.5, EasedT: 0.5},
		{Position: 100, Color: gradstop.White, GeometricT: 1, EasedT: 1},
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, testStops()); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var records []struct {
		Position int     `json:"position"`
		Hex      string  `json:"hex"`
		L        float64 `json:"l"`
		EasedT   float64 `json:"eased_t"`
	}
	if err := json.Unmarshal(buf.Bytes(), &records); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	if records[0].Position != 0 || records[2].Position != 100 {
		t.Errorf("boundary positions = %d, %d", records[0].Position, records[2].Position)
	}
	if records[0].Hex != "#000000" || records[2].Hex != "#ffffff" {
		t.Errorf("boundary hex = %q, %q", records[0].Hex, records[2].Hex)
	}
	if records[1].L != 50 {
		t.Errorf("middle L = %v, want 50", records[1].L)
	}
}

func TestTable(t *testing.T) {
	out := Table(testStops())

	for _, want := range []string{"POS", "0%", "50%", "100%", "#000000", "#ffffff"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestRamp(t *testing.T) {
	out := Ramp(testStops(), 16)
	if !strings.Contains(out, "█") {
		t.Errorf("ramp missing blocks: %q", out)
	}

	if got := Ramp(nil, 16); got != "" {
		t.Errorf("Ramp(no stops) = %q, want empty", got)
	}
	if got := Ramp(testStops(), 0); got != "" {
		t.Errorf("Ramp(width 0) = %q, want empty", got)
	}
}

package iconbuilder

import (
	"image"
	"testing"
)

func TestHasBlockGlyph(t *testing.T) {
	for _, r := range "P2EX" {
		if !HasBlockGlyph(r) {
			t.Errorf("HasBlockGlyph(%q) = false", r)
		}
	}
	for _, r := range "Qa " {
		if HasBlockGlyph(r) {
			t.Errorf("HasBlockGlyph(%q) = true", r)
		}
	}
}

func TestGlyphMaskP(t *testing.T) {
	m, ok := GlyphMask(200, 320, 'P', image.Rect(0, 0, 180, 300))
	if !ok {
		t.Fatal("P not drawn")
	}
	tests := []struct {
		x, y int
		want uint8
	}{
		{10, 150, 255}, // stem
		{150, 5, 255},  // top bar
		{150, 80, 255}, // bowl
		{90, 80, 0},    // counter
		{100, 250, 0},  // open below the bowl
		{190, 150, 0},  // outside the box
	}
	for _, tt := range tests {
		if got := m.At(tt.x, tt.y); got != tt.want {
			t.Errorf("At(%d,%d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestGlyphMaskUnknown(t *testing.T) {
	m, ok := GlyphMask(10, 10, 'Q', image.Rect(0, 0, 10, 10))
	if ok {
		t.Error("Q reported as drawn")
	}
	for _, v := range m.Pix {
		if v != 0 {
			t.Fatal("unknown glyph left marks")
		}
	}
}

func TestGlyphMaskX(t *testing.T) {
	m, _ := GlyphMask(40, 40, 'X', image.Rect(0, 0, 40, 40))
	if m.At(0, 0) != 255 || m.At(20, 20) != 255 {
		t.Error("X misses its diagonal")
	}
	if m.At(20, 2) != 0 {
		t.Error("X covers the top middle")
	}
}

func TestBlockTextAdvances(t *testing.T) {
	m := BlockText(100, 20, "E E", image.Pt(0, 0), 10, 15, 20)
	if m.At(0, 0) != 255 {
		t.Error("first E missing")
	}
	if m.At(20, 0) != 0 {
		t.Error("space drew something")
	}
	if m.At(40, 0) != 255 {
		t.Error("second E not advanced by two pitches")
	}
}

func TestGlyphBarsIncludeFarEdge(t *testing.T) {
	m, _ := GlyphMask(200, 320, 'P', image.Rect(0, 0, 180, 300))
	if m.At(60, 200) != 255 || m.At(61, 200) != 0 {
		t.Errorf("stem edge = %d,%d, want 255,0 (stem spans x 0..60)", m.At(60, 200), m.At(61, 200))
	}
	if m.At(10, 300) != 255 || m.At(10, 301) != 0 {
		t.Error("stem does not end on the box's bottom row")
	}
}

package iconbuilder

import (
	"image"
	"math"
)

// rect in glyph-box units, x0,y0,x1,y1 in [0,1].
type unitRect [4]float64

// blockGlyphs are the bar-built letters used for monograms. They need no font
// and scale to any box.
var blockGlyphs = map[rune][]unitRect{
	'P': {
		{0, 0, 60.0 / 180, 1},
		{0, 0, 1, 60.0 / 300},
		{0, 100.0 / 300, 140.0 / 180, 160.0 / 300},
		{120.0 / 180, 0, 1, 160.0 / 300},
	},
	'2': {
		{0, 0, 1, 35.0 / 120},
		{85.0 / 120, 0, 1, 80.0 / 120},
		{0, 45.0 / 120, 1, 80.0 / 120},
		{0, 80.0 / 120, 35.0 / 120, 1},
		{0, 85.0 / 120, 1, 1},
	},
	'E': {
		{0, 0, 1, 10.0 / 60},
		{0, 0, 10.0 / 40, 1},
		{0, 25.0 / 60, 30.0 / 40, 35.0 / 60},
		{0, 50.0 / 60, 1, 1},
	},
}

// xStroke is the stroke width of 'X' relative to the glyph width.
const xStroke = 8.0 / 40

// HasBlockGlyph reports whether r is in the built-in block glyph set.
func HasBlockGlyph(r rune) bool {
	_, ok := blockGlyphs[r]
	return ok || r == 'X'
}

// GlyphMask draws block glyph r into box on a w×h mask. Runes outside the
// built-in set leave the mask empty and return false.
func GlyphMask(w, h int, r rune, box image.Rectangle) (*Mask, bool) {
	m := NewMask(w, h)
	ok := m.addGlyph(r, box)
	return m, ok
}

func (m *Mask) addGlyph(r rune, box image.Rectangle) bool {
	bw, bh := float64(box.Dx()), float64(box.Dy())
	if r == 'X' {
		t := int(math.Round(bw * xStroke))
		for i := range box.Dy() {
			ratio := float64(i) / bh
			left := box.Min.X + int(ratio*bw)
			right := box.Min.X + int(bw-ratio*bw)
			y := box.Min.Y + i
			m.addRect(image.Rect(left, y, left+t, y+t))
			m.addRect(image.Rect(right, y, right+t, y+t))
		}
		return true
	}
	rects, ok := blockGlyphs[r]
	if !ok {
		return false
	}
	// Bars include their far edge, so Max gets one extra pixel.
	for _, u := range rects {
		m.addRect(image.Rect(
			box.Min.X+int(math.Round(u[0]*bw)),
			box.Min.Y+int(math.Round(u[1]*bh)),
			box.Min.X+int(math.Round(u[2]*bw))+1,
			box.Min.Y+int(math.Round(u[3]*bh))+1,
		))
	}
	return true
}

// BlockText lays out s left to right starting at origin, each glyph in a
// glyphW×glyphH box advanced by pitch. Spaces and unknown runes advance
// without drawing.
func BlockText(w, h int, s string, origin image.Point, glyphW, glyphH, pitch int) *Mask {
	m := NewMask(w, h)
	x := origin.X
	for _, r := range s {
		m.addGlyph(r, image.Rect(x, origin.Y, x+glyphW, origin.Y+glyphH))
		x += pitch
	}
	return m
}

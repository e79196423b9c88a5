package iconbuilder

import (
	"errors"
	"path/filepath"
	"testing"
)

type fakeFont struct {
	w, h  int
	err   error
	calls int
}

func (f *fakeFont) RenderText(s string, size float64) (*Mask, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	m := NewMask(f.w, f.h)
	for i := range m.Pix {
		m.Pix[i] = 255
	}
	return m, nil
}

func TestGoFontRenders(t *testing.T) {
	m, err := GoFont().RenderText("Hi", 24)
	if err != nil {
		t.Fatal(err)
	}
	if m.W <= 0 || m.H <= 0 || len(m.Pix) != m.W*m.H {
		t.Fatalf("mask %dx%d with %d samples", m.W, m.H, len(m.Pix))
	}
	inked := 0
	for _, v := range m.Pix {
		if v > 0 {
			inked++
		}
	}
	if inked == 0 {
		t.Error("rendered text has no coverage")
	}
	if _, err := GoFont().RenderText("Hi", 0); err == nil {
		t.Error("size 0: want error")
	}
}

func TestTextRendererFallback(t *testing.T) {
	broken := &fakeFont{err: errors.New("no glyphs")}
	good := &fakeFont{w: 3, h: 2}
	m, err := TextRenderer{Primary: broken, Fallback: good}.RenderText("x", 12)
	if err != nil {
		t.Fatal(err)
	}
	if m.W != 3 || broken.calls != 1 || good.calls != 1 {
		t.Errorf("mask width %d, primary calls %d, fallback calls %d", m.W, broken.calls, good.calls)
	}

	if _, err := (TextRenderer{Primary: broken}).RenderText("x", 12); err == nil {
		t.Error("primary failure without fallback: want error")
	}
	if _, err := (TextRenderer{}).RenderText("x", 12); err == nil {
		t.Error("no fonts: want error")
	}
}

func TestSystemFontsMissingPath(t *testing.T) {
	fonts := SystemFonts(filepath.Join(t.TempDir(), "missing.ttf"))
	m, err := fonts.RenderText("Install", 18)
	if err != nil {
		t.Fatalf("fallback font failed: %v", err)
	}
	if m.W == 0 {
		t.Error("empty mask from fallback font")
	}
}

func TestLoadFontErrors(t *testing.T) {
	if _, err := LoadFont(filepath.Join(t.TempDir(), "nope.ttc")); err == nil {
		t.Error("missing file: want error")
	}
}

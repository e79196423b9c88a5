package utils

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/setanarut/iconbuilder"
)

func TestReadImageErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := ReadImage(filepath.Join(dir, "missing.png")); !errors.Is(err, iconbuilder.ErrInputNotFound) {
		t.Errorf("missing file err = %v, want ErrInputNotFound", err)
	}
	garbage := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadImage(garbage); !errors.Is(err, iconbuilder.ErrUnsupportedFormat) {
		t.Errorf("garbage err = %v, want ErrUnsupportedFormat", err)
	}
}

func TestSaveAndReadBuffer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icon.png")
	src := iconbuilder.Solid(5, 3, color.NRGBA{10, 200, 30, 128})
	if err := SaveBuffer(src, path); err != nil {
		t.Fatal(err)
	}
	got, err := ReadBuffer(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.W != 5 || got.H != 3 {
		t.Fatalf("size = %dx%d", got.W, got.H)
	}
	if c := got.At(4, 2); c != (color.NRGBA{10, 200, 30, 128}) {
		t.Errorf("pixel = %v", c)
	}
}

func TestSaveRamp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ramp.png")
	if err := SaveRamp(iconbuilder.RedBlackRamp(), 0, path); err != nil {
		t.Fatal(err)
	}
	img, err := ReadImage(path)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 256 || b.Dy() != 32 {
		t.Errorf("ramp strip is %v", b)
	}
}

func TestSavePalette(t *testing.T) {
	dir := t.TempDir()
	if err := SavePalette(nil, 8, filepath.Join(dir, "empty.png")); err == nil {
		t.Error("empty palette: want error")
	}
	palette := []colorful.Color{{R: 1}, {G: 1}, {B: 1}}
	if err := SavePalette(palette, 8, filepath.Join(dir, "p.png")); err != nil {
		t.Fatal(err)
	}
	img, err := ReadImage(filepath.Join(dir, "p.png"))
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 24 || b.Dy() != 8 {
		t.Errorf("swatches are %v", b)
	}
}

func gradientImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, color.NRGBA{uint8(x * 255 / w), uint8(y * 255 / h), 90, 255})
		}
	}
	return img
}

package iconbuilder

import (
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// FontService rasterizes a string at a point size into a tightly cropped
// coverage mask.
type FontService interface {
	RenderText(s string, size float64) (*Mask, error)
}

// OpenTypeFont renders text with a parsed TrueType/OpenType font.
type OpenTypeFont struct {
	Name string
	font *opentype.Font
}

// LoadFont parses a .ttf, .otf or .ttc file. For collections the first face
// is used.
func LoadFont(path string) (*OpenTypeFont, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading font: %w", err)
	}
	var f *opentype.Font
	if strings.EqualFold(filepath.Ext(path), ".ttc") {
		coll, err := opentype.ParseCollection(data)
		if err != nil {
			return nil, fmt.Errorf("parsing font collection %s: %w", path, err)
		}
		f, err = coll.Font(0)
		if err != nil {
			return nil, fmt.Errorf("font collection %s: %w", path, err)
		}
	} else {
		f, err = opentype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parsing font %s: %w", path, err)
		}
	}
	return &OpenTypeFont{Name: filepath.Base(path), font: f}, nil
}

// GoFont is the built-in Go Bold face, always available.
func GoFont() *OpenTypeFont {
	f, err := opentype.Parse(gobold.TTF)
	if err != nil {
		panic(err)
	}
	return &OpenTypeFont{Name: "gobold", font: f}
}

func (f *OpenTypeFont) RenderText(s string, size float64) (*Mask, error) {
	if size <= 0 {
		return nil, fmt.Errorf("font size %v must be positive", size)
	}
	face, err := opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	defer face.Close()

	bounds, _ := font.BoundString(face, s)
	w := (bounds.Max.X - bounds.Min.X).Ceil()
	h := (bounds.Max.Y - bounds.Min.Y).Ceil()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("text %q has no visible glyphs in %s", s, f.Name)
	}

	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.P(-bounds.Min.X.Floor(), -bounds.Min.Y.Floor()),
	}
	d.DrawString(s)
	return &Mask{W: w, H: h, Pix: dst.Pix}, nil
}

// TextRenderer tries Primary and degrades to Fallback when it fails or is
// missing.
type TextRenderer struct {
	Primary  FontService
	Fallback FontService
}

func (t TextRenderer) RenderText(s string, size float64) (*Mask, error) {
	if t.Primary != nil {
		m, err := t.Primary.RenderText(s, size)
		if err == nil {
			return m, nil
		}
		if t.Fallback == nil {
			return nil, err
		}
		log.Printf("font warning: %v, using fallback font", err)
	}
	if t.Fallback == nil {
		return nil, fmt.Errorf("no font available for %q", s)
	}
	return t.Fallback.RenderText(s, size)
}

// SystemFonts loads the font at path and falls back to GoFont. A missing or
// unreadable path is logged, not returned.
func SystemFonts(path string) FontService {
	fallback := GoFont()
	if path == "" {
		return TextRenderer{Fallback: fallback}
	}
	f, err := LoadFont(path)
	if err != nil {
		log.Printf("font warning: %v, using built-in font", err)
		return TextRenderer{Fallback: fallback}
	}
	return TextRenderer{Primary: f, Fallback: fallback}
}

// Place copies m onto a w×h mask with its top-left corner at at. Parts
// outside the canvas are dropped.
func (m *Mask) Place(w, h int, at image.Point) *Mask {
	out := NewMask(w, h)
	for y := range m.H {
		cy := at.Y + y
		if cy < 0 || cy >= h {
			continue
		}
		for x := range m.W {
			cx := at.X + x
			if cx < 0 || cx >= w {
				continue
			}
			out.Pix[cy*w+cx] = m.Pix[y*m.W+x]
		}
	}
	return out
}

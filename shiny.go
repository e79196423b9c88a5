package iconbuilder

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// MetallicPalette names the tones used by the metallic scenes.
type MetallicPalette struct {
	DeepBlack     colorful.Color
	MetallicBlack colorful.Color
	DarkRed       colorful.Color
	MetallicRed   colorful.Color
	BrightRed     colorful.Color
	ShineRed      colorful.Color
	Highlight     colorful.Color
}

func RedMetallicIconPalette() MetallicPalette {
	return MetallicPalette{
		DeepBlack:     rgb8(15, 15, 15),
		MetallicBlack: rgb8(40, 40, 40),
		DarkRed:       rgb8(120, 20, 20),
		MetallicRed:   rgb8(200, 30, 30),
		BrightRed:     rgb8(255, 60, 60),
		ShineRed:      rgb8(255, 120, 120),
		Highlight:     rgb8(255, 255, 255),
	}
}

func RedMetallicBackgroundPalette() MetallicPalette {
	return MetallicPalette{
		DeepBlack:     rgb8(8, 8, 8),
		MetallicBlack: rgb8(25, 25, 25),
		DarkRed:       rgb8(80, 15, 15),
		MetallicRed:   rgb8(150, 25, 25),
		BrightRed:     rgb8(200, 40, 40),
		ShineRed:      rgb8(255, 80, 80),
		Highlight:     rgb8(255, 255, 255),
	}
}

// ============ ICON ============

type ShinyIconConfig struct {
	// Canvas side in pixels. Geometry is laid out for 1024 and scaled.
	Size    int
	Palette MetallicPalette
	// Monogram is drawn with block glyphs in the center of the disc. The first
	// rune takes the tall slot, the second the small one.
	Monogram string
	// Label is drawn with block glyphs below the monogram.
	Label string
	// Optional shine bands on the red disc.
	DiscShine *Shine
	Post      PostOptions
}

func DefaultShinyIconConfig() ShinyIconConfig {
	return ShinyIconConfig{
		Size:     1024,
		Palette:  RedMetallicIconPalette(),
		Monogram: "P2",
		Label:    "EXE",
		Post:     ShinyPost(),
	}
}

// ShinyIconConfigFromSize returns the default config for a size×size canvas.
func ShinyIconConfigFromSize(size int) ShinyIconConfig {
	cfg := DefaultShinyIconConfig()
	if size > 0 {
		cfg.Size = size
	}
	return cfg
}

// ShinyIcon synthesizes a metallic disc icon: a dark radial disc, an inner red
// radial disc, a gradient-filled monogram and label, and highlight arcs.
func ShinyIcon(cfg ShinyIconConfig) (*PixelBuffer, error) {
	size := cfg.Size
	if err := checkSize(size, size); err != nil {
		return nil, err
	}
	s := float64(size) / 1024
	px := func(v float64) int { return int(math.Round(v * s)) }
	c := size / 2
	center := image.Pt(c, c)
	p := cfg.Palette

	baseR := float64(c) - 20*s
	base, err := RadialGradient(p.MetallicBlack, p.DeepBlack, center, baseR).Render(size, size)
	if err != nil {
		return nil, fmt.Errorf("base disc: %w", err)
	}

	innerR := baseR - 60*s
	disc := RadialGradient(p.BrightRed, p.DarkRed, center, innerR)
	disc.Shine = cfg.DiscShine
	red, err := disc.Render(size, size)
	if err != nil {
		return nil, fmt.Errorf("red disc: %w", err)
	}

	monogram := NewMask(size, size)
	slots := []image.Rectangle{
		image.Rect(c-px(90), c-px(150), c+px(90), c+px(150)),
		image.Rect(c+px(40), c-px(80), c+px(160), c+px(40)),
	}
	for i, r := range []rune(cfg.Monogram) {
		if i >= len(slots) {
			break
		}
		if !monogram.addGlyph(r, slots[i]) {
			log.Printf("icon warning: no block glyph for %q", r)
		}
	}
	monoFill, err := LinearGradient(p.ShineRed, p.MetallicRed, Vertical).Render(size, size)
	if err != nil {
		return nil, err
	}

	label := BlockText(size, size, cfg.Label, image.Pt(c-px(90), c+px(120)), px(40), px(60), px(60))
	labelFill, err := LinearGradient(p.Highlight, p.ShineRed, Vertical).Render(size, size)
	if err != nil {
		return nil, err
	}

	hr := baseR - 120*s
	topArc := ArcMask(size, size,
		image.Rect(c-int(hr), c-int(hr)-px(200), c+int(hr), c+int(hr)-px(200)),
		-60, 60, 15*s)
	ring := image.Rect(c-int(baseR)+px(50), c-int(baseR)+px(50), c+int(baseR)-px(50), c+int(baseR)-px(50))
	sideArcs, err := Union(
		ArcMask(size, size, ring, 120, 180, 8*s),
		ArcMask(size, size, ring, -60, 0, 8*s),
	)
	if err != nil {
		return nil, err
	}

	scene := NewScene(size, size).
		Add(base, CircleMask(size, size, center, baseR), BlendOver).
		Add(red, CircleMask(size, size, center, innerR), BlendOver).
		Add(monoFill, monogram, BlendOver).
		Add(labelFill, label, BlendOver).
		Add(Solid(size, size, color.NRGBA{255, 255, 255, 180}), topArc, BlendOver).
		Add(Solid(size, size, color.NRGBA{255, 200, 200, 120}), sideArcs, BlendOver)
	img, err := scene.Compose()
	if err != nil {
		return nil, err
	}
	return PostProcess(img, cfg.Post), nil
}

// ============ BACKGROUND ============

type BackgroundConfig struct {
	W, H     int
	Palette  MetallicPalette
	Title    string
	Subtitle string
	// Point sizes of the title and subtitle.
	TitleSize    float64
	SubtitleSize float64
	// Shine of the vertical base gradient, the radial glow and the center band.
	BaseShine   Shine
	RadialShine Shine
	// Weight of the radial glow when mixed over the base gradient.
	RadialMix float64
	// Weight of the sine shine pattern mixed into the center band.
	BandMix       float64
	BandHeight    int
	StripeSpacing int
	StreakSpacing int
	Post          PostOptions
}

func DefaultBackgroundConfig() BackgroundConfig {
	return BackgroundConfig{
		W:             600,
		H:             400,
		Palette:       RedMetallicBackgroundPalette(),
		Title:         "Python2Exe",
		Subtitle:      "Drag to Applications to Install",
		TitleSize:     52,
		SubtitleSize:  28,
		BaseShine:     Shine{Amplitude: 0.3, Frequency: 8},
		RadialShine:   Shine{Amplitude: 0.4, Frequency: 4},
		RadialMix:     0.6,
		BandMix:       0.4,
		BandHeight:    80,
		StripeSpacing: 40,
		StreakSpacing: 60,
		Post:          BackgroundPost(),
	}
}

// ShinyBackground synthesizes an installer window background: a metallic
// gradient with a radial glow, stripes, a shiny center band, title text with
// shadow and glow, and diagonal shine streaks. Text is skipped with a warning
// when fonts is nil or cannot render.
func ShinyBackground(cfg BackgroundConfig, fonts FontService) (*PixelBuffer, error) {
	w, h := cfg.W, cfg.H
	if err := checkSize(w, h); err != nil {
		return nil, err
	}
	p := cfg.Palette

	base, err := LinearGradient(p.MetallicBlack, p.DeepBlack, Vertical).WithShine(cfg.BaseShine).Render(w, h)
	if err != nil {
		return nil, fmt.Errorf("base gradient: %w", err)
	}
	glow, err := RadialGradient(p.BrightRed, p.DarkRed, image.Pt(w/2, h/2-50), float64(min(w, h)/2)).
		WithShine(cfg.RadialShine).Render(w, h)
	if err != nil {
		return nil, fmt.Errorf("radial glow: %w", err)
	}
	bg, err := Mix(base, glow, cfg.RadialMix)
	if err != nil {
		return nil, err
	}

	if cfg.StripeSpacing > 0 {
		for y := 0; y < h; y += cfg.StripeSpacing {
			v := int(40 + 20*math.Sin(float64(y)/50))
			fillRow(bg, y, color.NRGBA{uint8(v), uint8(v / 4), uint8(v / 4), 255})
			fillRow(bg, y+1, color.NRGBA{uint8(v / 2), 0, 0, 255})
		}
	}

	if cfg.BandHeight > 0 {
		band, err := shinyBand(w, cfg.BandHeight, p, cfg.BaseShine, cfg.BandMix)
		if err != nil {
			return nil, err
		}
		bg.Paste(band, 0, h/2-cfg.BandHeight/2)
	}

	scene := NewScene(w, h).Add(bg, nil, BlendOver)
	if fonts == nil {
		log.Println("background warning: no font service, skipping text")
	} else {
		addText(scene, fonts, cfg)
	}
	if cfg.StreakSpacing > 0 {
		scene.Add(diagonalStreaks(w, h, cfg.StreakSpacing), nil, BlendOver)
	}
	img, err := scene.Compose()
	if err != nil {
		return nil, err
	}
	return PostProcess(img, cfg.Post), nil
}

func fillRow(b *PixelBuffer, y int, c color.NRGBA) {
	if y < 0 || y >= b.H {
		return
	}
	for x := range b.W {
		b.setNRGBA(x, y, c)
	}
}

func shinyBand(w, h int, p MetallicPalette, shine Shine, mix float64) (*PixelBuffer, error) {
	grad, err := LinearGradient(p.ShineRed, p.DarkRed, Vertical).WithShine(shine).Render(w, h)
	if err != nil {
		return nil, fmt.Errorf("band gradient: %w", err)
	}
	pattern := NewPixelBuffer(w, h)
	pattern.Map(func(x, _ int) color.NRGBA {
		v := int(100 + 60*math.Sin(float64(x)/30))
		return color.NRGBA{uint8(min(255, v)), uint8(min(255, v/3)), uint8(min(255, v/3)), 255}
	})
	return Mix(grad, pattern, mix)
}

type textPass struct {
	dx, dy int
	c      color.NRGBA
}

func addText(scene *Scene, fonts FontService, cfg BackgroundConfig) {
	w, h := scene.W, scene.H
	draw := func(s string, size float64, y int, passes []textPass) {
		if s == "" {
			return
		}
		m, err := fonts.RenderText(s, size)
		if err != nil {
			log.Printf("background warning: text %q skipped: %v", s, err)
			return
		}
		x := (w - m.W) / 2
		for _, tp := range passes {
			scene.Add(Solid(w, h, tp.c), m.Place(w, h, image.Pt(x+tp.dx, y+tp.dy)), BlendOver)
		}
	}

	draw(cfg.Title, cfg.TitleSize, 40, []textPass{
		{4, 4, color.NRGBA{20, 5, 5, 200}},
		{3, 3, color.NRGBA{20, 5, 5, 200}},
		{2, 2, color.NRGBA{20, 5, 5, 200}},
		{0, 0, color.NRGBA{180, 50, 50, 255}},
		{-1, -1, color.NRGBA{255, 120, 120, 200}},
		{-2, -2, color.NRGBA{255, 200, 200, 150}},
	})

	var glow []textPass
	for _, off := range []int{3, 2, 1} {
		a := uint8(100 - off*30)
		glow = append(glow,
			textPass{off, off, color.NRGBA{100, 20, 20, a}},
			textPass{-off, -off, color.NRGBA{100, 20, 20, a}},
		)
	}
	glow = append(glow, textPass{0, 0, color.NRGBA{220, 220, 220, 255}})
	draw(cfg.Subtitle, cfg.SubtitleSize, h-70, glow)
}

// diagonalStreaks draws 45° shine lines every spacing pixels. Each line is a
// stack of five 2px strokes whose alpha fades with distance from the line.
func diagonalStreaks(w, h, spacing int) *PixelBuffer {
	out := NewPixelBuffer(w, h)
	out.Map(func(x, y int) color.NRGBA {
		k := x - y + h
		d := ((k % spacing) + spacing) % spacing
		off := -1
		switch {
		case d == spacing-1:
			off = 0
		case d+1 <= 4:
			off = d + 1
		case d <= 4:
			off = d
		}
		if off < 0 {
			return color.NRGBA{}
		}
		return color.NRGBA{255, 150, 150, uint8(80 - off*15)}
	})
	return out
}

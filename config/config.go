// Package config loads the tunable constants of the icon pipeline from a
// JSON file: ramp bands, shine parameters, post-processing and output sizes.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/setanarut/iconbuilder"
)

type BandConfig struct {
	Lo    int    `json:"lo"`
	Hi    int    `json:"hi"`
	Color string `json:"color"` // "#rrggbb"
}

type ShineConfig struct {
	Amplitude float64 `json:"amplitude"`
	Frequency float64 `json:"frequency"`
	Phase     float64 `json:"phase"`
}

func (s ShineConfig) Shine() iconbuilder.Shine {
	return iconbuilder.Shine{Amplitude: s.Amplitude, Frequency: s.Frequency, Phase: s.Phase}
}

type PostConfig struct {
	Contrast         float64 `json:"contrast"`
	Pivot            string  `json:"pivot"` // "midgray" or "mean"
	BlurRadius       float64 `json:"blur_radius"`
	SharpenRadius    float64 `json:"sharpen_radius"`
	SharpenPercent   float64 `json:"sharpen_percent"`
	SharpenThreshold float64 `json:"sharpen_threshold"`
}

func (p PostConfig) Options() iconbuilder.PostOptions {
	opt := iconbuilder.PostOptions{
		Contrast:         p.Contrast,
		BlurRadius:       p.BlurRadius,
		SharpenRadius:    p.SharpenRadius,
		SharpenPercent:   p.SharpenPercent,
		SharpenThreshold: p.SharpenThreshold,
	}
	if p.Pivot == "mean" {
		opt.ContrastPivot = iconbuilder.PivotMean
	}
	return opt
}

func postConfig(o iconbuilder.PostOptions) PostConfig {
	pivot := "midgray"
	if o.ContrastPivot == iconbuilder.PivotMean {
		pivot = "mean"
	}
	return PostConfig{
		Contrast:         o.Contrast,
		Pivot:            pivot,
		BlurRadius:       o.BlurRadius,
		SharpenRadius:    o.SharpenRadius,
		SharpenPercent:   o.SharpenPercent,
		SharpenThreshold: o.SharpenThreshold,
	}
}

type IconConfig struct {
	Size      int          `json:"size"`
	Monogram  string       `json:"monogram"`
	Label     string       `json:"label"`
	DiscShine *ShineConfig `json:"disc_shine,omitempty"`
	Post      PostConfig   `json:"post"`
}

type BackgroundConfig struct {
	Width       int         `json:"width"`
	Height      int         `json:"height"`
	Title       string      `json:"title"`
	Subtitle    string      `json:"subtitle"`
	BaseShine   ShineConfig `json:"base_shine"`
	RadialShine ShineConfig `json:"radial_shine"`
	Post        PostConfig  `json:"post"`
}

// Config holds every tuned constant of the pipeline.
type Config struct {
	Ramp        []BandConfig     `json:"ramp"`
	RecolorPost PostConfig       `json:"recolor_post"`
	Icon        IconConfig       `json:"icon"`
	Background  BackgroundConfig `json:"background"`
	Filter      string           `json:"filter"` // "lanczos", "catmullrom", "lanczos3"
	Sizes       string           `json:"sizes"`  // "mac" or "windows"
	FontPath    string           `json:"font_path"`
}

// Default returns the configuration of the red and black metallic theme.
func Default() *Config {
	icon := iconbuilder.DefaultShinyIconConfig()
	bg := iconbuilder.DefaultBackgroundConfig()

	bands := iconbuilder.RedBlackRamp().Bands()
	ramp := make([]BandConfig, len(bands))
	for i, b := range bands {
		ramp[i] = BandConfig{Lo: b.Lo, Hi: b.Hi, Color: b.Color.Hex()}
	}

	return &Config{
		Ramp:        ramp,
		RecolorPost: postConfig(iconbuilder.RecolorPost()),
		Icon: IconConfig{
			Size:     icon.Size,
			Monogram: icon.Monogram,
			Label:    icon.Label,
			Post:     postConfig(icon.Post),
		},
		Background: BackgroundConfig{
			Width:       bg.W,
			Height:      bg.H,
			Title:       bg.Title,
			Subtitle:    bg.Subtitle,
			BaseShine:   ShineConfig{bg.BaseShine.Amplitude, bg.BaseShine.Frequency, bg.BaseShine.Phase},
			RadialShine: ShineConfig{bg.RadialShine.Amplitude, bg.RadialShine.Frequency, bg.RadialShine.Phase},
			Post:        postConfig(bg.Post),
		},
		Filter:   iconbuilder.FilterLanczos.String(),
		Sizes:    "mac",
		FontPath: "/System/Library/Fonts/Helvetica.ttc",
	}
}

// Load reads a JSON file on top of the defaults, so a file only needs the
// keys it changes.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// ColorRamp parses and validates the configured bands.
func (c *Config) ColorRamp() (*iconbuilder.ColorRamp, error) {
	bands := make([]iconbuilder.Band, len(c.Ramp))
	for i, b := range c.Ramp {
		col, err := colorful.Hex(b.Color)
		if err != nil {
			return nil, fmt.Errorf("%w: band %d color %q: %v", iconbuilder.ErrInvalidRamp, i, b.Color, err)
		}
		bands[i] = iconbuilder.Band{Lo: b.Lo, Hi: b.Hi, Color: col}
	}
	return iconbuilder.NewColorRamp(bands)
}

func (c *Config) SizeSet() (iconbuilder.IconSizeSet, error) {
	switch c.Sizes {
	case "", "mac":
		return iconbuilder.MacIconSet(), nil
	case "windows":
		return iconbuilder.WindowsIconSet(), nil
	default:
		return nil, fmt.Errorf("unknown size set %q", c.Sizes)
	}
}

func (c *Config) ResampleFilter() (iconbuilder.ResampleFilter, error) {
	if c.Filter == "" {
		return iconbuilder.FilterLanczos, nil
	}
	return iconbuilder.ParseFilter(c.Filter)
}

func (c *Config) ShinyIcon() iconbuilder.ShinyIconConfig {
	cfg := iconbuilder.ShinyIconConfigFromSize(c.Icon.Size)
	cfg.Monogram = c.Icon.Monogram
	cfg.Label = c.Icon.Label
	cfg.Post = c.Icon.Post.Options()
	if c.Icon.DiscShine != nil {
		s := c.Icon.DiscShine.Shine()
		cfg.DiscShine = &s
	}
	return cfg
}

func (c *Config) ShinyBackground() iconbuilder.BackgroundConfig {
	cfg := iconbuilder.DefaultBackgroundConfig()
	if c.Background.Width > 0 {
		cfg.W = c.Background.Width
	}
	if c.Background.Height > 0 {
		cfg.H = c.Background.Height
	}
	cfg.Title = c.Background.Title
	cfg.Subtitle = c.Background.Subtitle
	cfg.BaseShine = c.Background.BaseShine.Shine()
	cfg.RadialShine = c.Background.RadialShine.Shine()
	cfg.Post = c.Background.Post.Options()
	return cfg
}

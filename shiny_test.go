package iconbuilder

import (
	"errors"
	"testing"
)

func TestShinyIcon(t *testing.T) {
	icon, err := ShinyIcon(ShinyIconConfigFromSize(96))
	if err != nil {
		t.Fatal(err)
	}
	if icon.W != 96 || icon.H != 96 {
		t.Fatalf("size = %dx%d, want 96x96", icon.W, icon.H)
	}
	if a := icon.At(0, 0).A; a != 0 {
		t.Errorf("corner alpha = %d, want transparent outside the disc", a)
	}
	if a := icon.At(48, 48).A; a != 255 {
		t.Errorf("center alpha = %d, want opaque", a)
	}
	c := icon.At(48, 20)
	if c.R <= c.G || c.R <= c.B {
		t.Errorf("disc at (48,20) = %v, want red dominant", c)
	}
}

func TestShinyIconRejectsBadSize(t *testing.T) {
	cfg := DefaultShinyIconConfig()
	cfg.Size = 0
	if _, err := ShinyIcon(cfg); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("err = %v, want ErrDimensionMismatch", err)
	}
}

func smallBackground() BackgroundConfig {
	cfg := DefaultBackgroundConfig()
	cfg.W, cfg.H = 150, 100
	cfg.BandHeight = 20
	return cfg
}

func TestShinyBackgroundOpaque(t *testing.T) {
	fonts := &fakeFont{w: 30, h: 8}
	bg, err := ShinyBackground(smallBackground(), fonts)
	if err != nil {
		t.Fatal(err)
	}
	if bg.W != 150 || bg.H != 100 {
		t.Fatalf("size = %dx%d", bg.W, bg.H)
	}
	if fonts.calls != 2 {
		t.Errorf("font calls = %d, want title and subtitle", fonts.calls)
	}
	for i := 3; i < len(bg.Pix); i += 4 {
		if bg.Pix[i] != 255 {
			t.Fatalf("pixel %d alpha = %d, want opaque", i/4, bg.Pix[i])
		}
	}
}

func TestShinyBackgroundWithoutText(t *testing.T) {
	cfg := smallBackground()
	withFailingFont, err := ShinyBackground(cfg, &fakeFont{err: errors.New("boom")})
	if err != nil {
		t.Fatal(err)
	}
	withoutFonts, err := ShinyBackground(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	equalBuffers(t, withFailingFont, withoutFonts)
}

func TestDiagonalStreaksPeriodic(t *testing.T) {
	s := diagonalStreaks(120, 60, 40)
	for y := range 20 {
		for x := range 60 {
			if s.At(x, y) != s.At(x+40, y) {
				t.Fatalf("streaks not periodic at (%d,%d)", x, y)
			}
		}
	}
}

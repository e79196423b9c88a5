package iconbuilder

import (
	"image/color"
	"math"
	"testing"
)

func stepBuffer(w, h int, left, right uint8) *PixelBuffer {
	b := NewPixelBuffer(w, h)
	b.Map(func(x, _ int) color.NRGBA {
		v := left
		if x >= w/2 {
			v = right
		}
		return color.NRGBA{v, v, v, uint8(50 + x)}
	})
	return b
}

func TestContrastIdentity(t *testing.T) {
	src := stepBuffer(10, 4, 30, 220)
	equalBuffers(t, Contrast(src, 1, 128), src)
	out := PostProcess(src, PostOptions{Contrast: 1})
	equalBuffers(t, out, src)
	if &out.Pix[0] == &src.Pix[0] {
		t.Error("PostProcess returned its input buffer")
	}
}

func TestContrastAroundPivot(t *testing.T) {
	src := solidBuffer(1, 1, color.NRGBA{100, 128, 250, 77})
	got := Contrast(src, 2, 128).At(0, 0)
	want := color.NRGBA{72, 128, 255, 77}
	if got != want {
		t.Errorf("Contrast = %v, want %v", got, want)
	}
}

func TestMeanLuminance(t *testing.T) {
	b := NewPixelBuffer(2, 1)
	b.Set(0, 0, color.NRGBA{0, 0, 0, 255})
	b.Set(1, 0, color.NRGBA{255, 255, 255, 255})
	if got := MeanLuminance(b); got != 127.5 {
		t.Errorf("MeanLuminance = %v, want 127.5", got)
	}
}

func TestBlurUniformUnchanged(t *testing.T) {
	src := solidBuffer(9, 7, color.NRGBA{200, 13, 77, 180})
	equalBuffers(t, GaussianBlur(src, 2), src)
}

func TestBlurSmoothsEdge(t *testing.T) {
	src := stepBuffer(20, 3, 0, 255)
	out := GaussianBlur(src, 1.5)
	if got := out.At(9, 1).R; got == 0 || got == 255 {
		t.Errorf("pixel left of edge = %d, want an intermediate value", got)
	}
	if src.At(9, 1).R != 0 {
		t.Error("GaussianBlur modified its input")
	}
}

func TestUnsharpMaskIncreasesEdgeContrast(t *testing.T) {
	src := stepBuffer(20, 3, 100, 200)
	out := UnsharpMask(src, 1, 120, 3)
	if got := out.At(9, 1).R; got >= 100 {
		t.Errorf("dark side of edge = %d, want < 100", got)
	}
	if got := out.At(10, 1).R; got <= 200 {
		t.Errorf("bright side of edge = %d, want > 200", got)
	}
	if got := out.At(0, 1).R; got != 100 {
		t.Errorf("flat region = %d, want 100", got)
	}
	for x := range src.W {
		if out.At(x, 1).A != src.At(x, 1).A {
			t.Fatalf("alpha changed at x=%d", x)
		}
	}
}

func TestPostProcessPresetsKeepAlpha(t *testing.T) {
	src := stepBuffer(16, 16, 40, 180)
	for name, opt := range map[string]PostOptions{
		"recolor": RecolorPost(),
		"shiny":   ShinyPost(),
		"mean":    {Contrast: 1.5, ContrastPivot: PivotMean},
	} {
		out := PostProcess(src, opt)
		for y := range src.H {
			for x := range src.W {
				if out.At(x, y).A != src.At(x, y).A {
					t.Fatalf("%s: alpha changed at (%d,%d)", name, x, y)
				}
			}
		}
	}
}

func TestUnsharpMaskThresholdIsExclusive(t *testing.T) {
	src := stepBuffer(20, 3, 100, 200)
	blurred := GaussianBlur(src, 1)
	diff := math.Abs(float64(src.At(9, 1).R) - float64(blurred.At(9, 1).R))
	if diff == 0 {
		t.Fatal("edge pixel not changed by blur")
	}
	if got := UnsharpMask(src, 1, 120, diff).At(9, 1).R; got != 100 {
		t.Errorf("difference equal to threshold sharpened: %d, want 100", got)
	}
	if got := UnsharpMask(src, 1, 120, diff-1).At(9, 1).R; got == 100 {
		t.Error("difference above threshold left unsharpened")
	}
}

func TestPostProcessOrder(t *testing.T) {
	src := stepBuffer(24, 12, 60, 190)
	opt := PostOptions{
		Contrast:         1.3,
		BlurRadius:       0.8,
		SharpenRadius:    1,
		SharpenPercent:   120,
		SharpenThreshold: 3,
	}
	want := UnsharpMask(GaussianBlur(Contrast(src, 1.3, 128), 0.8), 1, 120, 3)
	equalBuffers(t, PostProcess(src, opt), want)
}

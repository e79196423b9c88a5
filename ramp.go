package iconbuilder

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// Band maps the luminance interval [Lo, Hi) to a single output color.
type Band struct {
	Lo, Hi int
	Color  colorful.Color
}

// ColorRamp is an immutable, contiguous set of bands covering [0, 256).
type ColorRamp struct {
	bands []Band
	rgb   [][3]uint8
}

// NewColorRamp validates bands and returns a ramp. Bands must be ordered,
// non-empty, contiguous and cover luminance 0 through 255.
func NewColorRamp(bands []Band) (*ColorRamp, error) {
	if len(bands) == 0 {
		return nil, fmt.Errorf("%w: no bands", ErrInvalidRamp)
	}
	if bands[0].Lo != 0 {
		return nil, fmt.Errorf("%w: first band starts at %d, want 0", ErrInvalidRamp, bands[0].Lo)
	}
	for i, b := range bands {
		if b.Hi <= b.Lo {
			return nil, fmt.Errorf("%w: band %d [%d,%d) is empty", ErrInvalidRamp, i, b.Lo, b.Hi)
		}
		if i > 0 && b.Lo != bands[i-1].Hi {
			return nil, fmt.Errorf("%w: band %d starts at %d but band %d ends at %d",
				ErrInvalidRamp, i, b.Lo, i-1, bands[i-1].Hi)
		}
	}
	if last := bands[len(bands)-1]; last.Hi != 256 {
		return nil, fmt.Errorf("%w: last band ends at %d, want 256", ErrInvalidRamp, last.Hi)
	}

	r := &ColorRamp{
		bands: slices.Clone(bands),
		rgb:   make([][3]uint8, len(bands)),
	}
	for i, b := range r.bands {
		cr, cg, cb := b.Color.Clamped().RGB255()
		r.rgb[i] = [3]uint8{cr, cg, cb}
	}
	return r, nil
}

func (r *ColorRamp) Bands() []Band {
	return slices.Clone(r.bands)
}

func (r *ColorRamp) Len() int {
	return len(r.bands)
}

// Lookup returns the 8-bit color of the band containing luminance l.
// Values outside [0,255] are clamped.
func (r *ColorRamp) Lookup(l int) (uint8, uint8, uint8) {
	l = clampInt(l, 0, 255)
	i := sort.Search(len(r.bands), func(i int) bool { return r.bands[i].Hi > l })
	c := r.rgb[i]
	return c[0], c[1], c[2]
}

func rgb8(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255.0, G: float64(g) / 255.0, B: float64(b) / 255.0}
}

// RedBlackRamp is the crimson five-band ramp: shadows go black, highlights
// go through dark, medium and bright red up to crimson.
func RedBlackRamp() *ColorRamp {
	r, err := NewColorRamp([]Band{
		{0, 60, rgb8(0, 0, 0)},
		{60, 120, rgb8(80, 0, 0)},
		{120, 180, rgb8(160, 20, 20)},
		{180, 220, rgb8(220, 40, 40)},
		{220, 256, rgb8(255, 60, 60)},
	})
	if err != nil {
		panic(err)
	}
	return r
}

// Swatch is a palette color with the share of the source image it stands
// for.
type Swatch struct {
	Color  colorful.Color
	Weight float64
}

// RampFromPalette spreads palette colors over equal-width luminance bands,
// darkest color first. The palette is not modified.
func RampFromPalette(palette []colorful.Color) (*ColorRamp, error) {
	swatches := make([]Swatch, len(palette))
	for i, c := range palette {
		swatches[i] = Swatch{Color: c, Weight: 1}
	}
	return RampFromSwatches(swatches)
}

// RampFromSwatches orders swatches dark to bright and gives each a band whose
// width is proportional to its weight, at least one luminance level wide.
// Non-positive weights count as zero; if every weight is zero the bands are
// equal.
func RampFromSwatches(swatches []Swatch) (*ColorRamp, error) {
	if len(swatches) == 0 {
		return nil, fmt.Errorf("%w: empty palette", ErrInvalidRamp)
	}
	sorted := slices.Clone(swatches)
	slices.SortStableFunc(sorted, func(a, b Swatch) int {
		return cmp.Compare(relativeLuminance(a.Color), relativeLuminance(b.Color))
	})
	if len(sorted) > 256 {
		sorted = sorted[len(sorted)-256:]
	}

	n := len(sorted)
	total := 0.0
	for _, s := range sorted {
		total += max(0, s.Weight)
	}
	spare := float64(256 - n)
	bands := make([]Band, n)
	cum := 0.0
	lo := 0
	for i, s := range sorted {
		if total > 0 {
			cum += max(0, s.Weight) / total
		} else {
			cum = float64(i+1) / float64(n)
		}
		hi := i + 1 + int(math.Round(spare*cum))
		if i == n-1 {
			hi = 256
		}
		bands[i] = Band{Lo: lo, Hi: hi, Color: s.Color}
		lo = hi
	}
	return NewColorRamp(bands)
}

// relativeLuminance is CIE Y, which orders colors the same way as Lab L.
func relativeLuminance(c colorful.Color) float64 {
	_, y, _ := c.Xyz()
	return y
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

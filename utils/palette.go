package utils

import (
	"cmp"
	"image"
	"image/color"
	"log"
	"math"
	"slices"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
	"github.com/setanarut/iconbuilder"
)

type PaletteMethod int

const (
	PaletteMethodDominantColor PaletteMethod = iota
	PaletteMethodKMeans
)

func (m PaletteMethod) String() string {
	switch m {
	case PaletteMethodKMeans:
		return "kmeans"
	default:
		return "dominantcolor"
	}
}

func ParsePaletteMethod(name string) PaletteMethod {
	if name == PaletteMethodKMeans.String() {
		return PaletteMethodKMeans
	}
	return PaletteMethodDominantColor
}

// ExtractSwatches returns up to k well separated colors of img, ordered dark
// to bright, with weights summing to 1. Every candidate color found in the
// image contributes its share to the nearest picked swatch, so a swatch's
// weight is the part of the image it represents and can size its ramp band.
// Fully transparent pixels are ignored by the kmeans method, which falls back
// to dominantcolor when it finds nothing.
func ExtractSwatches(img image.Image, k int, method PaletteMethod) []iconbuilder.Swatch {
	if k <= 0 {
		return nil
	}
	var cands []iconbuilder.Swatch
	if method == PaletteMethodKMeans {
		cands = kmeansCandidates(img, k)
		if len(cands) == 0 {
			log.Println("palette warning: kmeans returned empty palette, falling back to dominantcolor")
		}
	}
	if len(cands) == 0 {
		cands = dominantCandidates(img, k)
	}
	return pickSwatches(cands, k)
}

// Colors drops the weights.
func Colors(swatches []iconbuilder.Swatch) []colorful.Color {
	out := make([]colorful.Color, len(swatches))
	for i, s := range swatches {
		out[i] = s.Color
	}
	return out
}

// RampFromImage builds a ramp whose bands follow the palette of img, each
// band as wide as the share of the image its color covers.
func RampFromImage(img image.Image, k int, method PaletteMethod) (*iconbuilder.ColorRamp, []iconbuilder.Swatch, error) {
	swatches := ExtractSwatches(img, k, method)
	ramp, err := iconbuilder.RampFromSwatches(swatches)
	if err != nil {
		return nil, nil, err
	}
	return ramp, swatches, nil
}

func dominantCandidates(img image.Image, k int) []iconbuilder.Swatch {
	found := dominantcolor.FindWeight(img, max(24, k*8))
	if len(found) == 0 {
		// Keep ramps buildable on blank input.
		found = append(found, dominantcolor.Color{
			RGBA:   color.RGBA{R: 128, G: 128, B: 128, A: 255},
			Weight: 1.0,
		})
	}
	cands := make([]iconbuilder.Swatch, 0, len(found))
	for _, c := range found {
		col, _ := colorful.MakeColor(c.RGBA)
		cands = append(cands, iconbuilder.Swatch{Color: col.Clamped(), Weight: c.Weight})
	}
	return cands
}

func kmeansCandidates(img image.Image, k int) []iconbuilder.Swatch {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	if width == 0 || height == 0 {
		return nil
	}

	// Subsample large icons, 1024² would make kmeans crawl.
	maxSamples := 12000
	step := 1
	if width*height > maxSamples {
		step = int(math.Sqrt(float64(width*height)/float64(maxSamples))) + 1
	}

	dataset := make(clusters.Observations, 0, min(width*height, maxSamples))
	for y := b.Min.Y; y < b.Max.Y; y += step {
		for x := b.Min.X; x < b.Max.X; x += step {
			r16, g16, b16, a16 := img.At(x, y).RGBA()
			if a16 == 0 {
				continue
			}
			// Un-premultiply so semi-transparent edges keep their hue.
			dataset = append(dataset, clusters.Coordinates{
				float64(r16) / float64(a16),
				float64(g16) / float64(a16),
				float64(b16) / float64(a16),
			})
		}
	}
	if len(dataset) == 0 {
		return nil
	}

	cc, err := kmeans.New().Partition(dataset, min(max(k*4, k+2), len(dataset)))
	if err != nil {
		return nil
	}
	cands := make([]iconbuilder.Swatch, 0, len(cc))
	for _, c := range cc {
		if len(c.Center) < 3 || len(c.Observations) == 0 {
			continue
		}
		col := colorful.Color{R: c.Center[0], G: c.Center[1], B: c.Center[2]}.Clamped()
		cands = append(cands, iconbuilder.Swatch{Color: col, Weight: float64(len(c.Observations))})
	}
	return cands
}

// pickSwatches greedily picks k candidates, starting from the heaviest and
// then maximizing Lab distance to the picks so far, biased by weight. The
// weight of every candidate is then folded into its nearest pick and the
// result normalized and sorted by luminance.
func pickSwatches(cands []iconbuilder.Swatch, k int) []iconbuilder.Swatch {
	if k <= 0 || len(cands) == 0 {
		return nil
	}
	type item struct {
		col colorful.Color
		lab [3]float64
		w   float64
	}
	items := make([]item, 0, len(cands))
	maxW := 0.0
	for _, c := range cands {
		col := c.Color.Clamped()
		l, a, b := col.Lab()
		w := max(c.Weight, 1e-6)
		maxW = max(maxW, w)
		items = append(items, item{col: col, lab: [3]float64{l, a, b}, w: w})
	}
	k = min(k, len(items))
	dist2 := func(i, j int) float64 {
		d0 := items[i].lab[0] - items[j].lab[0]
		d1 := items[i].lab[1] - items[j].lab[1]
		d2 := items[i].lab[2] - items[j].lab[2]
		return d0*d0 + d1*d1 + d2*d2
	}

	picked := make([]int, 0, k)
	isPicked := make([]bool, len(items))
	seed := 0
	for i := range items {
		if items[i].w > items[seed].w {
			seed = i
		}
	}
	picked = append(picked, seed)
	isPicked[seed] = true

	for len(picked) < k {
		best, bestScore := -1, -1.0
		for i := range items {
			if isPicked[i] {
				continue
			}
			minD2 := math.MaxFloat64
			for _, s := range picked {
				minD2 = min(minD2, dist2(i, s))
			}
			score := math.Sqrt(minD2) * (0.55 + 0.45*math.Sqrt(items[i].w/maxW))
			if score > bestScore {
				best, bestScore = i, score
			}
		}
		if best < 0 {
			break
		}
		isPicked[best] = true
		picked = append(picked, best)
	}

	weights := make([]float64, len(picked))
	total := 0.0
	for i := range items {
		nearest := 0
		for j, s := range picked {
			if dist2(i, s) < dist2(i, picked[nearest]) {
				nearest = j
			}
		}
		weights[nearest] += items[i].w
		total += items[i].w
	}

	out := make([]iconbuilder.Swatch, len(picked))
	for j, s := range picked {
		out[j] = iconbuilder.Swatch{Color: items[s].col, Weight: weights[j] / total}
	}
	slices.SortStableFunc(out, func(a, b iconbuilder.Swatch) int {
		_, ya, _ := a.Color.Xyz()
		_, yb, _ := b.Color.Xyz()
		return cmp.Compare(ya, yb)
	})
	return out
}

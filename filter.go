package iconbuilder

import (
	"math"

	"github.com/disintegration/imaging"
	"gonum.org/v1/gonum/stat"
)

type ContrastPivot int

const (
	// PivotMidGray scales channels around 128.
	PivotMidGray ContrastPivot = iota
	// PivotMean scales channels around the mean luminance of the image.
	PivotMean
)

type PostOptions struct {
	// Contrast factor. 1 (or 0) leaves the image untouched, >1 pushes channels
	// away from the pivot.
	Contrast      float64
	ContrastPivot ContrastPivot
	// Gaussian blur standard deviation in pixels. 0 disables the blur.
	BlurRadius float64
	// Unsharp mask radius in pixels. 0 disables sharpening.
	SharpenRadius float64
	// Unsharp mask strength in percent of the high-pass signal.
	SharpenPercent float64
	// Minimum per-channel difference before sharpening applies.
	SharpenThreshold float64
}

// RecolorPost is the finish applied after recoloring an icon.
func RecolorPost() PostOptions {
	return PostOptions{
		Contrast:         1.2,
		SharpenRadius:    1,
		SharpenPercent:   120,
		SharpenThreshold: 3,
	}
}

// ShinyPost is the finish applied to synthesized metallic icons.
func ShinyPost() PostOptions {
	return PostOptions{
		Contrast:         1.3,
		SharpenRadius:    2,
		SharpenPercent:   150,
		SharpenThreshold: 3,
	}
}

// BackgroundPost smooths and re-sharpens installer backgrounds.
func BackgroundPost() PostOptions {
	return PostOptions{
		Contrast:         1.2,
		BlurRadius:       0.5,
		SharpenRadius:    1,
		SharpenPercent:   120,
		SharpenThreshold: 3,
	}
}

// PostProcess runs contrast, blur and sharpening in that order, skipping the
// disabled stages. Blurring after sharpening would undo it, so the order is
// fixed.
func PostProcess(buf *PixelBuffer, opt PostOptions) *PixelBuffer {
	out := buf
	if opt.Contrast != 0 && opt.Contrast != 1 {
		pivot := 128.0
		if opt.ContrastPivot == PivotMean {
			pivot = MeanLuminance(out)
		}
		out = Contrast(out, opt.Contrast, pivot)
	}
	if opt.BlurRadius > 0 {
		out = GaussianBlur(out, opt.BlurRadius)
	}
	if opt.SharpenRadius > 0 && opt.SharpenPercent != 0 {
		out = UnsharpMask(out, opt.SharpenRadius, opt.SharpenPercent, opt.SharpenThreshold)
	}
	if out == buf {
		out = buf.Clone()
	}
	return out
}

// Contrast scales RGB around pivot by factor. Alpha is copied.
func Contrast(buf *PixelBuffer, factor, pivot float64) *PixelBuffer {
	if factor == 1 {
		return buf.Clone()
	}
	out := NewPixelBuffer(buf.W, buf.H)
	for i := 0; i < len(buf.Pix); i += 4 {
		for c := range 3 {
			v := float64(buf.Pix[i+c])
			out.Pix[i+c] = clamp255(pivot + (v-pivot)*factor + 0.5)
		}
		out.Pix[i+3] = buf.Pix[i+3]
	}
	return out
}

// MeanLuminance averages Luminance over all pixels.
func MeanLuminance(buf *PixelBuffer) float64 {
	n := buf.W * buf.H
	if n == 0 {
		return 0
	}
	lum := make([]float64, n)
	for i := range n {
		p := buf.Pix[i*4 : i*4+3]
		lum[i] = float64(Luminance(p[0], p[1], p[2]))
	}
	return stat.Mean(lum, nil)
}

// GaussianBlur convolves all four channels with a Gaussian of standard
// deviation radius. Color is weighted by alpha and the kernel is
// renormalized at the edges. The result is a new buffer.
func GaussianBlur(buf *PixelBuffer, radius float64) *PixelBuffer {
	if radius <= 0 {
		return buf.Clone()
	}
	return FromImage(imaging.Blur(buf.Image(), radius))
}

// UnsharpMask adds percent/100 of (original - blurred) to each RGB channel
// whose difference exceeds threshold. Alpha is copied.
func UnsharpMask(buf *PixelBuffer, radius, percent, threshold float64) *PixelBuffer {
	blurred := GaussianBlur(buf, radius)
	out := NewPixelBuffer(buf.W, buf.H)
	amount := percent / 100
	for i := 0; i < len(buf.Pix); i += 4 {
		for c := range 3 {
			v := float64(buf.Pix[i+c])
			diff := v - float64(blurred.Pix[i+c])
			if math.Abs(diff) <= threshold {
				out.Pix[i+c] = buf.Pix[i+c]
				continue
			}
			out.Pix[i+c] = clamp255(v + diff*amount + 0.5)
		}
		out.Pix[i+3] = buf.Pix[i+3]
	}
	return out
}

package iconbuilder

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	xdraw "golang.org/x/image/draw"
)

// IconSize is one required rendition of an icon container.
type IconSize struct {
	Pixels int
	Tag    string
}

// Filename is the name the packaging tool expects for this rendition.
func (s IconSize) Filename() string {
	return "icon_" + s.Tag + ".png"
}

type IconSizeSet []IconSize

// MacIconSet is the ten-entry set required by iconutil. 32, 256 and 512
// appear twice: once as a standard rendition and once as the @2x rendition of
// the next smaller size.
func MacIconSet() IconSizeSet {
	return IconSizeSet{
		{16, "16x16"},
		{32, "16x16@2x"},
		{32, "32x32"},
		{64, "32x32@2x"},
		{128, "128x128"},
		{256, "128x128@2x"},
		{256, "256x256"},
		{512, "256x256@2x"},
		{512, "512x512"},
		{1024, "512x512@2x"},
	}
}

func WindowsIconSet() IconSizeSet {
	return IconSizeSet{
		{16, "16x16"},
		{32, "32x32"},
		{48, "48x48"},
		{256, "256x256"},
	}
}

// Largest returns the entry with the most pixels.
func (s IconSizeSet) Largest() IconSize {
	var best IconSize
	for _, e := range s {
		if e.Pixels > best.Pixels {
			best = e
		}
	}
	return best
}

type ResampleFilter int

const (
	FilterLanczos ResampleFilter = iota
	FilterCatmullRom
	FilterLanczos3
)

func (f ResampleFilter) String() string {
	switch f {
	case FilterCatmullRom:
		return "catmullrom"
	case FilterLanczos3:
		return "lanczos3"
	default:
		return "lanczos"
	}
}

// ParseFilter maps a filter name back to its ResampleFilter.
func ParseFilter(name string) (ResampleFilter, error) {
	for _, f := range []ResampleFilter{FilterLanczos, FilterCatmullRom, FilterLanczos3} {
		if f.String() == name {
			return f, nil
		}
	}
	return FilterLanczos, fmt.Errorf("unknown resample filter %q", name)
}

// Rendition is a resampled copy of the source for one size entry.
type Rendition struct {
	Size   IconSize
	Buffer *PixelBuffer
}

// Resample produces one rendition per entry of set, in order. The source must
// be square. Repeated dimensions are resampled once; every rendition still
// owns its own buffer.
func Resample(src *PixelBuffer, set IconSizeSet, filter ResampleFilter) ([]Rendition, error) {
	if src.W != src.H {
		return nil, fmt.Errorf("%w: resample source is %dx%d, want square", ErrDimensionMismatch, src.W, src.H)
	}
	if err := checkSize(src.W, src.H); err != nil {
		return nil, err
	}
	img := src.Image()
	cache := make(map[int]*PixelBuffer, len(set))
	out := make([]Rendition, 0, len(set))
	for _, size := range set {
		if size.Pixels <= 0 {
			return nil, fmt.Errorf("%w: icon size %q has %d pixels", ErrDimensionMismatch, size.Tag, size.Pixels)
		}
		buf, ok := cache[size.Pixels]
		if ok {
			buf = buf.Clone()
		} else {
			buf = scaleTo(img, size.Pixels, filter)
			cache[size.Pixels] = buf
		}
		out = append(out, Rendition{Size: size, Buffer: buf})
	}
	return out, nil
}

func scaleTo(img *image.NRGBA, n int, filter ResampleFilter) *PixelBuffer {
	switch filter {
	case FilterCatmullRom:
		dst := image.NewNRGBA(image.Rect(0, 0, n, n))
		xdraw.CatmullRom.Scale(dst, dst.Rect, img, img.Bounds(), xdraw.Src, nil)
		return FromImage(dst)
	case FilterLanczos3:
		return FromImage(resize.Resize(uint(n), uint(n), img, resize.Lanczos3))
	default:
		return FromImage(imaging.Resize(img, n, n, imaging.Lanczos))
	}
}

// SquareCrop cuts the largest centered square out of buf. Square input is
// returned as a copy.
func SquareCrop(buf *PixelBuffer) *PixelBuffer {
	if buf.W == buf.H {
		return buf.Clone()
	}
	side := min(buf.W, buf.H)
	return FromImage(imaging.CropCenter(buf.Image(), side, side))
}

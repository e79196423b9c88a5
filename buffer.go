package iconbuilder

import (
	"fmt"
	"image"
	"image/color"
	"runtime"
	"sync"
)

// PixelBuffer holds non-premultiplied RGBA samples in row-major order.
// len(Pix) == W*H*4.
type PixelBuffer struct {
	W, H int
	Pix  []uint8
}

func NewPixelBuffer(w, h int) *PixelBuffer {
	return &PixelBuffer{
		W:   w,
		H:   h,
		Pix: make([]uint8, w*h*4),
	}
}

// FromImage copies any image into a new buffer. Sources without an alpha
// channel come out fully opaque.
func FromImage(img image.Image) *PixelBuffer {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	buf := NewPixelBuffer(w, h)
	if src, ok := img.(*image.NRGBA); ok {
		for y := range h {
			i := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(buf.Pix[y*w*4:(y+1)*w*4], src.Pix[i:i+w*4])
		}
		return buf
	}
	parallelRows(h, func(y int) {
		for x := range w {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			buf.setNRGBA(x, y, c)
		}
	})
	return buf
}

func (b *PixelBuffer) offset(x, y int) int {
	return (y*b.W + x) * 4
}

func (b *PixelBuffer) At(x, y int) color.NRGBA {
	i := b.offset(x, y)
	p := b.Pix[i : i+4 : i+4]
	return color.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
}

func (b *PixelBuffer) Set(x, y int, c color.NRGBA) {
	b.setNRGBA(x, y, c)
}

func (b *PixelBuffer) setNRGBA(x, y int, c color.NRGBA) {
	i := b.offset(x, y)
	p := b.Pix[i : i+4 : i+4]
	p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
}

func (b *PixelBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.W, b.H)
}

// Image returns an *image.NRGBA view sharing Pix with the buffer.
func (b *PixelBuffer) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.Pix,
		Stride: b.W * 4,
		Rect:   b.Bounds(),
	}
}

func (b *PixelBuffer) Clone() *PixelBuffer {
	out := &PixelBuffer{W: b.W, H: b.H, Pix: make([]uint8, len(b.Pix))}
	copy(out.Pix, b.Pix)
	return out
}

func (b *PixelBuffer) Fill(c color.NRGBA) {
	for i := 0; i < len(b.Pix); i += 4 {
		b.Pix[i], b.Pix[i+1], b.Pix[i+2], b.Pix[i+3] = c.R, c.G, c.B, c.A
	}
}

// Map evaluates fn for every coordinate and stores the result. Rows are
// processed concurrently, so fn must not depend on evaluation order.
func (b *PixelBuffer) Map(fn func(x, y int) color.NRGBA) {
	parallelRows(b.H, func(y int) {
		for x := range b.W {
			b.setNRGBA(x, y, fn(x, y))
		}
	})
}

func (b *PixelBuffer) sameSize(w, h int) error {
	if b.W != w || b.H != h {
		return fmt.Errorf("%w: buffer is %dx%d, want %dx%d", ErrDimensionMismatch, b.W, b.H, w, h)
	}
	return nil
}

func checkSize(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: non-positive size %dx%d", ErrDimensionMismatch, w, h)
	}
	return nil
}

// parallelRows calls fn once per row in [0,h), spreading rows over
// GOMAXPROCS workers.
func parallelRows(h int, fn func(y int)) {
	workers := min(runtime.GOMAXPROCS(0), h)
	if workers <= 1 {
		for y := range h {
			fn(y)
		}
		return
	}
	var wg sync.WaitGroup
	chunk := (h + workers - 1) / workers
	for start := 0; start < h; start += chunk {
		end := min(start+chunk, h)
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			for y := y0; y < y1; y++ {
				fn(y)
			}
		}(start, end)
	}
	wg.Wait()
}

func clamp255(v float64) uint8 {
	return uint8(max(0, min(255, v)))
}

// Solid returns a w×h buffer filled with c.
func Solid(w, h int, c color.NRGBA) *PixelBuffer {
	b := NewPixelBuffer(w, h)
	b.Fill(c)
	return b
}

// Paste copies src into b with its top-left corner at (x0, y0), clipped to b.
func (b *PixelBuffer) Paste(src *PixelBuffer, x0, y0 int) {
	for y := range src.H {
		dy := y0 + y
		if dy < 0 || dy >= b.H {
			continue
		}
		for x := range src.W {
			dx := x0 + x
			if dx < 0 || dx >= b.W {
				continue
			}
			copy(b.Pix[b.offset(dx, dy):b.offset(dx, dy)+4], src.Pix[src.offset(x, y):src.offset(x, y)+4])
		}
	}
}

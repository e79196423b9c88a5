package iconbuilder

import (
	"errors"
	"image"
	"math"
)

// Mask is a single-channel coverage buffer gating a layer's alpha.
type Mask struct {
	W, H int
	Pix  []uint8
}

func NewMask(w, h int) *Mask {
	return &Mask{W: w, H: h, Pix: make([]uint8, w*h)}
}

func (m *Mask) At(x, y int) uint8 {
	return m.Pix[y*m.W+x]
}

func (m *Mask) Set(x, y int, v uint8) {
	m.Pix[y*m.W+x] = v
}

// fill sets every pixel for which inside reports true to 255.
func (m *Mask) fill(inside func(x, y int) bool) {
	parallelRows(m.H, func(y int) {
		row := m.Pix[y*m.W : (y+1)*m.W]
		for x := range m.W {
			if inside(x, y) {
				row[x] = 255
			}
		}
	})
}

// CircleMask covers every pixel whose distance to center is at most radius.
func CircleMask(w, h int, center image.Point, radius float64) *Mask {
	m := NewMask(w, h)
	r2 := radius * radius
	m.fill(func(x, y int) bool {
		dx := float64(x - center.X)
		dy := float64(y - center.Y)
		return dx*dx+dy*dy <= r2
	})
	return m
}

// RectMask covers r clipped to the canvas.
func RectMask(w, h int, r image.Rectangle) *Mask {
	m := NewMask(w, h)
	m.addRect(r)
	return m
}

func (m *Mask) addRect(r image.Rectangle) {
	r = r.Intersect(image.Rect(0, 0, m.W, m.H))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := m.Pix[y*m.W : (y+1)*m.W]
		for x := r.Min.X; x < r.Max.X; x++ {
			row[x] = 255
		}
	}
}

// ArcMask covers a stroke of the given width along the ellipse inscribed in
// bbox, between startDeg and endDeg. Angles are in degrees, measured
// clockwise from 3 o'clock; the stroke grows inward from the ellipse edge.
func ArcMask(w, h int, bbox image.Rectangle, startDeg, endDeg, width float64) *Mask {
	m := NewMask(w, h)
	rx := float64(bbox.Dx()) / 2
	ry := float64(bbox.Dy()) / 2
	if rx <= 0 || ry <= 0 {
		return m
	}
	cx := float64(bbox.Min.X) + rx
	cy := float64(bbox.Min.Y) + ry
	irx, iry := rx-width, ry-width
	span := endDeg - startDeg
	full := span >= 360
	if !full {
		span = math.Mod(math.Mod(span, 360)+360, 360)
	}

	m.fill(func(x, y int) bool {
		dx := float64(x) - cx
		dy := float64(y) - cy
		if (dx*dx)/(rx*rx)+(dy*dy)/(ry*ry) > 1 {
			return false
		}
		if irx > 0 && iry > 0 && (dx*dx)/(irx*irx)+(dy*dy)/(iry*iry) < 1 {
			return false
		}
		if full {
			return true
		}
		a := math.Atan2(dy, dx) * 180 / math.Pi
		a = math.Mod(math.Mod(a-startDeg, 360)+360, 360)
		return a <= span
	})
	return m
}

// MaskFromAlpha extracts the alpha channel of b.
func MaskFromAlpha(b *PixelBuffer) *Mask {
	m := NewMask(b.W, b.H)
	for i := range m.Pix {
		m.Pix[i] = b.Pix[i*4+3]
	}
	return m
}

// Union combines equally sized masks by taking the per-pixel maximum. At
// least one mask is required, since a nil mask means full coverage.
func Union(masks ...*Mask) (*Mask, error) {
	if len(masks) == 0 {
		return nil, errors.New("union of no masks")
	}
	out := NewMask(masks[0].W, masks[0].H)
	for _, m := range masks {
		if m.W != out.W || m.H != out.H {
			return nil, maskSizeError(m, out.W, out.H)
		}
		for i, v := range m.Pix {
			out.Pix[i] = max(out.Pix[i], v)
		}
	}
	return out, nil
}

// Scale returns a copy of m with every value multiplied by alpha/255.
func (m *Mask) Scale(alpha uint8) *Mask {
	out := NewMask(m.W, m.H)
	for i, v := range m.Pix {
		out.Pix[i] = uint8((uint32(v)*uint32(alpha) + 127) / 255)
	}
	return out
}

package iconbuilder

import (
	"fmt"
)

type BlendMode int

const (
	// BlendOver is standard source-over alpha compositing.
	BlendOver BlendMode = iota
	// BlendScreen screens source color onto the destination, weighted by
	// destination alpha, then composites over.
	BlendScreen
	// BlendAdd adds source color to the destination (saturating), weighted by
	// destination alpha, then composites over.
	BlendAdd
)

func (m BlendMode) String() string {
	switch m {
	case BlendScreen:
		return "screen"
	case BlendAdd:
		return "add"
	default:
		return "over"
	}
}

// Layer is one entry of a Scene. A nil Mask leaves the buffer's own alpha
// untouched; otherwise alpha is multiplied by Mask/255.
type Layer struct {
	Buffer *PixelBuffer
	Mask   *Mask
	Mode   BlendMode
}

// Scene is an ordered stack of layers on a W×H canvas. Layers[0] is painted
// first, later layers cover earlier ones.
type Scene struct {
	W, H   int
	Layers []Layer
}

func NewScene(w, h int) *Scene {
	return &Scene{W: w, H: h}
}

// Add appends a layer on top of the stack and returns the scene for chaining.
func (s *Scene) Add(buf *PixelBuffer, mask *Mask, mode BlendMode) *Scene {
	s.Layers = append(s.Layers, Layer{Buffer: buf, Mask: mask, Mode: mode})
	return s
}

func (s *Scene) validate() error {
	if err := checkSize(s.W, s.H); err != nil {
		return err
	}
	for i, l := range s.Layers {
		if l.Buffer == nil {
			return fmt.Errorf("layer %d has no buffer", i)
		}
		if err := l.Buffer.sameSize(s.W, s.H); err != nil {
			return fmt.Errorf("layer %d: %w", i, err)
		}
		if l.Mask != nil && (l.Mask.W != s.W || l.Mask.H != s.H) {
			return fmt.Errorf("layer %d: %w", i, maskSizeError(l.Mask, s.W, s.H))
		}
	}
	return nil
}

// Compose paints all layers bottom to top onto a transparent canvas.
func (s *Scene) Compose() (*PixelBuffer, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	canvas := NewPixelBuffer(s.W, s.H)
	for _, l := range s.Layers {
		overInto(canvas, l.Buffer, l.Mask, l.Mode)
	}
	return canvas, nil
}

// Over composites src onto a copy of dst.
func Over(dst, src *PixelBuffer, mask *Mask, mode BlendMode) (*PixelBuffer, error) {
	if err := src.sameSize(dst.W, dst.H); err != nil {
		return nil, err
	}
	if mask != nil && (mask.W != dst.W || mask.H != dst.H) {
		return nil, maskSizeError(mask, dst.W, dst.H)
	}
	out := dst.Clone()
	overInto(out, src, mask, mode)
	return out, nil
}

func overInto(dst, src *PixelBuffer, mask *Mask, mode BlendMode) {
	w := dst.W
	parallelRows(dst.H, func(y int) {
		for x := range w {
			i := (y*w + x) * 4
			sa := float64(src.Pix[i+3]) / 255.0
			if mask != nil {
				sa *= float64(mask.Pix[y*w+x]) / 255.0
			}
			if sa == 0 {
				continue
			}
			d := dst.Pix[i : i+4 : i+4]
			da := float64(d[3]) / 255.0
			oneMinusA := 1 - sa
			outA := sa + da*oneMinusA
			for c := range 3 {
				dc := float64(d[c])
				sc := float64(src.Pix[i+c])
				if mode != BlendOver {
					// Blend only where the destination has coverage.
					sc = (1-da)*sc + da*blendChannel(mode, sc, dc)
				}
				d[c] = clamp255((sc*sa+dc*da*oneMinusA)/outA + 0.5)
			}
			d[3] = clamp255(outA*255 + 0.5)
		}
	})
}

func blendChannel(mode BlendMode, s, d float64) float64 {
	switch mode {
	case BlendScreen:
		return 255 - (255-s)*(255-d)/255
	case BlendAdd:
		return min(255, s+d)
	default:
		return s
	}
}

// Mix linearly interpolates every channel: a*(1-alpha) + b*alpha.
func Mix(a, b *PixelBuffer, alpha float64) (*PixelBuffer, error) {
	if err := b.sameSize(a.W, a.H); err != nil {
		return nil, err
	}
	out := NewPixelBuffer(a.W, a.H)
	for i := range a.Pix {
		va, vb := float64(a.Pix[i]), float64(b.Pix[i])
		out.Pix[i] = clamp255(va + (vb-va)*alpha + 0.5)
	}
	return out, nil
}

func maskSizeError(m *Mask, w, h int) error {
	return fmt.Errorf("%w: mask is %dx%d, want %dx%d", ErrDimensionMismatch, m.W, m.H, w, h)
}

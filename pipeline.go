package iconbuilder

import (
	"fmt"
	"image"
)

// RecolorIcon crops src to a centered square, remaps it through ramp and
// applies the post-processing finish.
func RecolorIcon(src image.Image, ramp *ColorRamp, post PostOptions) (*PixelBuffer, error) {
	if ramp == nil {
		return nil, fmt.Errorf("%w: nil ramp", ErrInvalidRamp)
	}
	buf := FromImage(src)
	if err := checkSize(buf.W, buf.H); err != nil {
		return nil, err
	}
	return PostProcess(Recolor(SquareCrop(buf), ramp), post), nil
}

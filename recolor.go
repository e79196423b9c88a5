package iconbuilder

// Luminance returns the perceptual brightness 0.299R + 0.587G + 0.114B,
// truncated to an integer. Fixed-point weights keep white at exactly 255.
func Luminance(r, g, b uint8) int {
	return (299*int(r) + 587*int(g) + 114*int(b)) / 1000
}

// Recolor replaces the RGB of every pixel with the ramp color for its
// luminance. Alpha is copied from src unchanged.
func Recolor(src *PixelBuffer, ramp *ColorRamp) *PixelBuffer {
	out := NewPixelBuffer(src.W, src.H)
	rowLen := src.W * 4
	parallelRows(src.H, func(y int) {
		row := src.Pix[y*rowLen : (y+1)*rowLen]
		dst := out.Pix[y*rowLen : (y+1)*rowLen]
		for i := 0; i < rowLen; i += 4 {
			r, g, b := ramp.Lookup(Luminance(row[i], row[i+1], row[i+2]))
			dst[i], dst[i+1], dst[i+2], dst[i+3] = r, g, b, row[i+3]
		}
	})
	return out
}

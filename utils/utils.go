package utils

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io/fs"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/setanarut/iconbuilder"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ReadImage decodes any registered raster format (png, jpeg, gif, bmp, tiff,
// webp), honoring EXIF orientation.
func ReadImage(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", iconbuilder.ErrInputNotFound, path)
		}
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return nil, fmt.Errorf("opening %s: %w", path, err)
		}
		return nil, fmt.Errorf("%w: %s: %v", iconbuilder.ErrUnsupportedFormat, path, err)
	}
	return img, nil
}

// ReadBuffer reads path into an RGBA pixel buffer.
func ReadBuffer(path string) (*iconbuilder.PixelBuffer, error) {
	img, err := ReadImage(path)
	if err != nil {
		return nil, err
	}
	return iconbuilder.FromImage(img), nil
}

// SaveImage encodes img in the format implied by the file extension.
func SaveImage(img image.Image, filename string) error {
	return imaging.Save(img, filename)
}

func SaveBuffer(buf *iconbuilder.PixelBuffer, filename string) error {
	return SaveImage(buf.Image(), filename)
}

// SavePalette writes one tileSize square per palette color, left to right.
func SavePalette(palette []colorful.Color, tileSize int, filename string) error {
	if len(palette) == 0 {
		return fmt.Errorf("empty palette")
	}
	if tileSize <= 0 {
		tileSize = 64
	}
	img := image.NewNRGBA(image.Rect(0, 0, tileSize*len(palette), tileSize))
	for i, c := range palette {
		r, g, b := c.Clamped().RGB255()
		fillRect(img, image.Rect(i*tileSize, 0, (i+1)*tileSize, tileSize), color.NRGBA{r, g, b, 255})
	}
	return SaveImage(img, filename)
}

// SaveRamp writes a 256×height strip: column x shows the ramp color for
// luminance x.
func SaveRamp(ramp *iconbuilder.ColorRamp, height int, filename string) error {
	if height <= 0 {
		height = 32
	}
	img := image.NewNRGBA(image.Rect(0, 0, 256, height))
	for x := range 256 {
		r, g, b := ramp.Lookup(x)
		fillRect(img, image.Rect(x, 0, x+1, height), color.NRGBA{r, g, b, 255})
	}
	return SaveImage(img, filename)
}

func fillRect(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

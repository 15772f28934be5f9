package bitmap

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"golang.org/x/image/bmp"
)

// Gray levels used by Image.
const (
	grayMark     = 0x00
	grayBlank    = 0xff
	grayConsumed = 0x80
)

// Image renders b as an 8-bit grayscale image where every cell becomes a
// scale×scale block. Mark is black, Blank is white and Consumed is mid-gray.
func (b *Bitmap) Image(scale int) (*image.Gray, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("%w: scale %d", ErrInvalidDimensions, scale)
	}
	img := image.NewGray(image.Rect(0, 0, b.cols*scale, b.rows*scale))
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			v := color.Gray{Y: grayBlank}
			switch b.data[b.indexOf(r, c)] {
			case Mark:
				v.Y = grayMark
			case Consumed:
				v.Y = grayConsumed
			}
			for y := r * scale; y < (r+1)*scale; y++ {
				for x := c * scale; x < (c+1)*scale; x++ {
					img.SetGray(x, y, v)
				}
			}
		}
	}

	return img, nil
}

// WriteBMP encodes b as a BMP file.
func (b *Bitmap) WriteBMP(w io.Writer, scale int) error {
	img, err := b.Image(scale)
	if err != nil {
		return err
	}
	if err = bmp.Encode(w, img); err != nil {
		return fmt.Errorf("bitmap: encode bmp: %w", err)
	}

	return nil
}

package grid

import (
	"fmt"
	"image"
)

// FromGray converts an 8-bit grayscale image to a grid with samples
// rescaled to [0, 1] by dividing by 255.
func FromGray(img *image.Gray) (Grid, error) {
	b := img.Bounds()
	g, err := New(b.Dy(), b.Dx())
	if err != nil {
		return Grid{}, err
	}
	for r := 0; r < g.Rows; r++ {
		src := img.Pix[r*img.Stride : r*img.Stride+g.Cols]
		dst := g.Row(r)
		for c, v := range src {
			dst[c] = float64(v) / 255
		}
	}
	return g, nil
}

// FromGray16 converts a 16-bit grayscale image to a grid with samples
// rescaled to [0, 1] by dividing by 65535.
func FromGray16(img *image.Gray16) (Grid, error) {
	b := img.Bounds()
	g, err := New(b.Dy(), b.Dx())
	if err != nil {
		return Grid{}, err
	}
	for r := 0; r < g.Rows; r++ {
		src := img.Pix[r*img.Stride : r*img.Stride+2*g.Cols]
		dst := g.Row(r)
		for c := 0; c < g.Cols; c++ {
			v := uint16(src[2*c])<<8 | uint16(src[2*c+1])
			dst[c] = float64(v) / 65535
		}
	}
	return g, nil
}

// FromImage converts a single-channel image to a normalized grid.
// Only *image.Gray and *image.Gray16 are accepted; anything else carries
// more than one channel and fails with [ErrUnsupportedShape].
func FromImage(img image.Image) (Grid, error) {
	switch im := img.(type) {
	case *image.Gray:
		return FromGray(im)
	case *image.Gray16:
		return FromGray16(im)
	default:
		return Grid{}, fmt.Errorf("%w: %T", ErrUnsupportedShape, img)
	}
}

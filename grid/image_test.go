package grid

import (
	"errors"
	"image"
	"math"
	"testing"
)

func TestFromGray(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 3, 2))
	pix := []uint8{0, 128, 255, 51, 102, 204}
	copy(img.Pix, pix)

	g, err := FromGray(img)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Rows != 2 || g.Cols != 3 {
		t.Fatalf("got shape %dx%d, expected 2x3", g.Rows, g.Cols)
	}
	for i, p := range pix {
		want := float64(p) / 255
		if math.Abs(g.Data[i]-want) > 1e-15 {
			t.Errorf("sample %d: got %v, expected %v", i, g.Data[i], want)
		}
	}
}

func TestFromGray16(t *testing.T) {
	img := image.NewGray16(image.Rect(0, 0, 2, 2))
	values := []uint16{0, 65535, 257, 32768}
	for i, v := range values {
		img.Pix[2*i] = uint8(v >> 8)
		img.Pix[2*i+1] = uint8(v)
	}

	g, err := FromGray16(img)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, v := range values {
		want := float64(v) / 65535
		if math.Abs(g.Data[i]-want) > 1e-15 {
			t.Errorf("sample %d: got %v, expected %v", i, g.Data[i], want)
		}
	}
}

func TestFromImageDispatch(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	gray.Pix[3] = 255
	g, err := FromImage(gray)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Data[3] != 1 {
		t.Errorf("got %v, expected 1", g.Data[3])
	}

	gray16 := image.NewGray16(image.Rect(0, 0, 2, 2))
	if _, err := FromImage(gray16); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFromImageMultiChannel(t *testing.T) {
	tests := []struct {
		name string
		img  image.Image
	}{
		{"rgba", image.NewRGBA(image.Rect(0, 0, 4, 4))},
		{"nrgba", image.NewNRGBA(image.Rect(0, 0, 4, 4))},
		{"cmyk", image.NewCMYK(image.Rect(0, 0, 4, 4))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromImage(tt.img); !errors.Is(err, ErrUnsupportedShape) {
				t.Errorf("expected ErrUnsupportedShape, got %v", err)
			}
		})
	}
}

func TestFromGrayOffsetBounds(t *testing.T) {
	img := image.NewGray(image.Rect(5, 7, 8, 9))
	for i := range img.Pix {
		img.Pix[i] = uint8(10 * (i + 1))
	}

	g, err := FromGray(img)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Rows != 2 || g.Cols != 3 {
		t.Fatalf("got shape %dx%d, expected 2x3", g.Rows, g.Cols)
	}
	for i := range img.Pix {
		want := float64(img.Pix[i]) / 255
		if math.Abs(g.Data[i]-want) > 1e-15 {
			t.Errorf("sample %d: got %v, expected %v", i, g.Data[i], want)
		}
	}
}

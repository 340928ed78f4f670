package grid

import (
	"errors"
	"math"
	"testing"
)

func TestResizeInvalidDimensions(t *testing.T) {
	g, _ := New(4, 4)

	tests := []struct {
		name       string
		rows, cols int
	}{
		{"zero rows", 0, 4},
		{"zero cols", 4, 0},
		{"negative rows", -1, 4},
		{"negative cols", 4, -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Resize(g, tt.rows, tt.cols, InterpCubic); !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("expected ErrInvalidDimensions, got %v", err)
			}
		})
	}
}

func TestResizeIdentity(t *testing.T) {
	g, _ := New(5, 7)
	fillPattern(g)

	out, err := Resize(g, 5, 7, InterpCubic)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range g.Data {
		if out.Data[i] != g.Data[i] {
			t.Fatalf("sample %d: got %v, expected %v", i, out.Data[i], g.Data[i])
		}
	}

	// Must be a copy, not a view.
	out.Data[0] = 123
	if g.Data[0] == 123 {
		t.Error("identity resize aliases the source data")
	}
}

func TestResizeConstant(t *testing.T) {
	g, _ := New(9, 9)
	for i := range g.Data {
		g.Data[i] = 4.25
	}

	for _, method := range []Interp{InterpCubic, InterpNearest} {
		for _, shape := range [][2]int{{3, 3}, {6, 13}, {20, 20}, {1, 1}} {
			out, err := Resize(g, shape[0], shape[1], method)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for i, v := range out.Data {
				if math.Abs(v-4.25) > 1e-12 {
					t.Fatalf("method %d shape %v sample %d: got %v, expected 4.25", method, shape, i, v)
				}
			}
		}
	}
}

func TestResizeNearestDownsample(t *testing.T) {
	g, _ := New(4, 4)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			g.Set(r, c, float64(10*r+c))
		}
	}

	// Half-pixel mapping picks source index int((dst+0.5)*2) = 1, 3.
	out, err := Resize(g, 2, 2, InterpNearest)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{11, 13, 31, 33}
	for i := range want {
		if out.Data[i] != want[i] {
			t.Errorf("sample %d: got %v, expected %v", i, out.Data[i], want[i])
		}
	}
}

func TestResizeCubicRampDown(t *testing.T) {
	g := Grid{Rows: 1, Cols: 8, Data: []float64{0, 1, 2, 3, 4, 5, 6, 7}}

	out, err := Resize(g, 1, 4, InterpCubic)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Interior samples fall on the linear ramp; the border taps are clamped,
	// which bends the first and last values off the ramp.
	want := []float64{0.4375, 2.5, 4.5, 6.5625}
	for i := range want {
		if math.Abs(out.Data[i]-want[i]) > 1e-12 {
			t.Errorf("sample %d: got %v, expected %v", i, out.Data[i], want[i])
		}
	}
}

func TestResizeCubicRampUp(t *testing.T) {
	g := Grid{Rows: 1, Cols: 8, Data: []float64{0, 1, 2, 3, 4, 5, 6, 7}}

	out, err := Resize(g, 1, 16, InterpCubic)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Cols != 16 {
		t.Fatalf("got %d columns, expected 16", out.Cols)
	}
	// Away from the clamped borders the cubic reproduces the ramp exactly.
	// At columns 2 and 13 one tap of the 4-point neighborhood still reads a
	// clamped border sample, so the ramp holds only on 3..12.
	for c := 3; c < 13; c++ {
		want := (float64(c)+0.5)*0.5 - 0.5
		if math.Abs(out.Data[c]-want) > 1e-12 {
			t.Errorf("sample %d: got %v, expected %v", c, out.Data[c], want)
		}
	}
	// Values bent off the ramp by the clamped neighborhood.
	borders := []struct {
		c    int
		want float64
	}{
		{0, -0.0703125},
		{2, 0.7265625},
		{13, 6.2734375},
		{15, 7.0703125},
	}
	for _, b := range borders {
		if math.Abs(out.Data[b.c]-b.want) > 1e-12 {
			t.Errorf("sample %d: got %v, expected %v", b.c, out.Data[b.c], b.want)
		}
	}
}

func TestResizeCubicSeparable(t *testing.T) {
	g, _ := New(10, 12)
	fillPattern(g)

	// Resizing both axes at once matches resizing one axis at a time.
	both, err := Resize(g, 6, 7, InterpCubic)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	colsFirst, err := Resize(g, 10, 7, InterpCubic)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	staged, err := Resize(colsFirst, 6, 7, InterpCubic)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range both.Data {
		if math.Abs(both.Data[i]-staged.Data[i]) > 1e-12 {
			t.Fatalf("sample %d: got %v, expected %v", i, both.Data[i], staged.Data[i])
		}
	}
}

func TestHermite4(t *testing.T) {
	tests := []struct {
		name            string
		t               float64
		xm1, x0, x1, x2 float64
		want            float64
	}{
		{"endpoint start", 0, 3, 5, 7, 9, 5},
		{"endpoint end", 1, 3, 5, 7, 9, 7},
		{"linear midpoint", 0.5, 1, 2, 3, 4, 2.5},
		{"constant", 0.3, 2, 2, 2, 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hermite4(tt.t, tt.xm1, tt.x0, tt.x1, tt.x2); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("got %v, expected %v", got, tt.want)
			}
		})
	}
}

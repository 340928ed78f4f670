package grid

import (
	"fmt"
	"math"
)

// Interp selects the resampling method used by [Resize].
type Interp int

const (
	// InterpCubic uses separable 4-point Catmull-Rom interpolation.
	InterpCubic Interp = iota

	// InterpNearest picks the nearest source sample. Use this for maps whose
	// values must not be blended, such as wrapped angles.
	InterpNearest
)

// Resize resamples g to the given target shape.
//
// Source coordinates are mapped with half-pixel centers
// (src = (dst+0.5)*scale - 0.5) and clamped at the borders, so constant
// grids stay constant under any resizing.
func Resize(g Grid, rows, cols int, method Interp) (Grid, error) {
	if rows <= 0 || cols <= 0 {
		return Grid{}, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	if rows == g.Rows && cols == g.Cols {
		return g.Clone(), nil
	}

	switch method {
	case InterpNearest:
		return resizeNearest(g, rows, cols), nil
	default:
		return resizeCubic(g, rows, cols), nil
	}
}

func resizeNearest(g Grid, rows, cols int) Grid {
	out := Grid{Rows: rows, Cols: cols, Data: make([]float64, rows*cols)}
	scaleR := float64(g.Rows) / float64(rows)
	scaleC := float64(g.Cols) / float64(cols)

	for r := 0; r < rows; r++ {
		sr := clampIndex(int((float64(r)+0.5)*scaleR), g.Rows)
		srcRow := g.Row(sr)
		dst := out.Row(r)
		for c := 0; c < cols; c++ {
			sc := clampIndex(int((float64(c)+0.5)*scaleC), g.Cols)
			dst[c] = srcRow[sc]
		}
	}
	return out
}

// resizeCubic resamples in two separable passes: columns first, then rows.
func resizeCubic(g Grid, rows, cols int) Grid {
	mid := Grid{Rows: g.Rows, Cols: cols, Data: make([]float64, g.Rows*cols)}
	scaleC := float64(g.Cols) / float64(cols)
	for r := 0; r < g.Rows; r++ {
		srcRow := g.Row(r)
		dst := mid.Row(r)
		for c := 0; c < cols; c++ {
			pos := (float64(c)+0.5)*scaleC - 0.5
			base := int(math.Floor(pos))
			frac := pos - float64(base)
			dst[c] = hermite4(frac,
				srcRow[clampIndex(base-1, g.Cols)],
				srcRow[clampIndex(base, g.Cols)],
				srcRow[clampIndex(base+1, g.Cols)],
				srcRow[clampIndex(base+2, g.Cols)])
		}
	}

	out := Grid{Rows: rows, Cols: cols, Data: make([]float64, rows*cols)}
	scaleR := float64(g.Rows) / float64(rows)
	for r := 0; r < rows; r++ {
		pos := (float64(r)+0.5)*scaleR - 0.5
		base := int(math.Floor(pos))
		frac := pos - float64(base)
		rm1 := mid.Row(clampIndex(base-1, mid.Rows))
		r0 := mid.Row(clampIndex(base, mid.Rows))
		r1 := mid.Row(clampIndex(base+1, mid.Rows))
		r2 := mid.Row(clampIndex(base+2, mid.Rows))
		dst := out.Row(r)
		for c := 0; c < cols; c++ {
			dst[c] = hermite4(frac, rm1[c], r0[c], r1[c], r2[c])
		}
	}
	return out
}

// hermite4 computes cubic 4-point (Catmull-Rom) interpolation from x0 to x1
// at fraction t, using neighbor points xm1 and x2.
func hermite4(t, xm1, x0, x1, x2 float64) float64 {
	c0 := x0
	c1 := 0.5 * (x1 - xm1)
	c2 := xm1 - 2.5*x0 + 2*x1 - 0.5*x2
	c3 := 0.5*(x2-xm1) + 1.5*(x0-x1)
	return ((c3*t+c2)*t+c1)*t + c0
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

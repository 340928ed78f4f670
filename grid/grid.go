package grid

import (
	"errors"
	"fmt"

	vecmath "github.com/cwbudde/algo-vecmath"
)

// Errors returned by grid constructors and operations.
var (
	ErrInvalidDimensions = errors.New("grid: invalid dimensions")
	ErrShapeMismatch     = errors.New("grid: shape mismatch")
	ErrUnsupportedShape  = errors.New("grid: not a single-channel image")
)

// Grid is a dense 2-D raster of float64 samples in row-major order.
// Data has length Rows*Cols; sample (r, c) lives at Data[r*Cols+c].
type Grid struct {
	Rows int
	Cols int
	Data []float64
}

// New returns a zero-filled grid of the given shape.
// Rows and cols must be positive.
func New(rows, cols int) (Grid, error) {
	if rows <= 0 || cols <= 0 {
		return Grid{}, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	return Grid{Rows: rows, Cols: cols, Data: make([]float64, rows*cols)}, nil
}

// FromSamples wraps an existing row-major slice without copying.
// The slice length must equal rows*cols.
func FromSamples(data []float64, rows, cols int) (Grid, error) {
	if rows <= 0 || cols <= 0 {
		return Grid{}, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	if len(data) != rows*cols {
		return Grid{}, fmt.Errorf("%w: %d samples for %dx%d", ErrShapeMismatch, len(data), rows, cols)
	}
	return Grid{Rows: rows, Cols: cols, Data: data}, nil
}

// At returns the sample at row r, column c. Bounds are not checked.
func (g Grid) At(r, c int) float64 {
	return g.Data[r*g.Cols+c]
}

// Set stores v at row r, column c. Bounds are not checked.
func (g Grid) Set(r, c int, v float64) {
	g.Data[r*g.Cols+c] = v
}

// Row returns the r-th row as a subslice of the backing data.
func (g Grid) Row(r int) []float64 {
	return g.Data[r*g.Cols : (r+1)*g.Cols]
}

// Clone returns a deep copy of g.
func (g Grid) Clone() Grid {
	out := Grid{Rows: g.Rows, Cols: g.Cols, Data: make([]float64, len(g.Data))}
	copy(out.Data, g.Data)
	return out
}

// SameShape reports whether g and h have identical dimensions.
func (g Grid) SameShape(h Grid) bool {
	return g.Rows == h.Rows && g.Cols == h.Cols
}

// Sub computes dst = a - b element-wise. All grids must share one shape.
func Sub(dst, a, b Grid) error {
	if !dst.SameShape(a) || !a.SameShape(b) {
		return ErrShapeMismatch
	}
	for i := range dst.Data {
		dst.Data[i] = a.Data[i] - b.Data[i]
	}
	return nil
}

// Mul computes dst = a * b element-wise. All grids must share one shape.
func Mul(dst, a, b Grid) error {
	if !dst.SameShape(a) || !a.SameShape(b) {
		return ErrShapeMismatch
	}
	vecmath.MulBlock(dst.Data, a.Data, b.Data)
	return nil
}

// AddInPlace computes dst += src element-wise.
func AddInPlace(dst, src Grid) error {
	if !dst.SameShape(src) {
		return ErrShapeMismatch
	}
	vecmath.AddBlockInPlace(dst.Data, src.Data)
	return nil
}

// AddScaledInPlace computes dst += src * scale element-wise, using a caller
// supplied scratch slice of the same length to stage the scaled block.
func AddScaledInPlace(dst, src Grid, scale float64, scratch []float64) error {
	if !dst.SameShape(src) || len(scratch) != len(src.Data) {
		return ErrShapeMismatch
	}
	vecmath.ScaleBlock(scratch, src.Data, scale)
	vecmath.AddBlockInPlace(dst.Data, scratch)
	return nil
}

// MaxAbs returns the largest absolute sample value in g, or 0 for an empty grid.
func (g Grid) MaxAbs() float64 {
	if len(g.Data) == 0 {
		return 0
	}
	return vecmath.MaxAbs(g.Data)
}

// Sum returns the sum of all samples in g.
func (g Grid) Sum() float64 {
	if len(g.Data) == 0 {
		return 0
	}
	return vecmath.Sum(g.Data)
}

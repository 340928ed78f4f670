package grid

import (
	"errors"
	"sync"

	vecmath "github.com/cwbudde/algo-vecmath"
)

// ErrEmptyKernel is returned when a filtering kernel has no taps.
var ErrEmptyKernel = errors.New("grid: empty kernel")

// scratchBuf holds pooled scratch memory for filtering passes.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (s []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	if cap(buf.data) < n {
		buf.data = make([]float64, n)
	} else {
		buf.data = buf.data[:n]
	}
	return buf.data, buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// reflect101 folds index i into [0, n) by mirroring about the edges without
// repeating the edge sample (the BORDER_REFLECT_101 convention: for n=4,
// indices ... 2 1 | 0 1 2 3 | 2 1 ...). The folding is iterative through the
// modular form, so kernels wider than the grid remain well defined.
func reflect101(i, n int) int {
	if n == 1 {
		return 0
	}
	period := 2 * (n - 1)
	i %= period
	if i < 0 {
		i += period
	}
	if i >= n {
		i = period - i
	}
	return i
}

// SepFilter applies a separable filter to g: kx along each row, then ky down
// each column, correlating with reflect-101 border handling. This is the
// cross-correlation convention of image filtering; for the symmetric kernels
// used throughout this module it coincides with convolution.
//
// The kernels are treated as centered: each must have odd length.
func SepFilter(g Grid, kx, ky []float64) (Grid, error) {
	if len(kx) == 0 || len(ky) == 0 {
		return Grid{}, ErrEmptyKernel
	}

	mid, err := New(g.Rows, g.Cols)
	if err != nil {
		return Grid{}, err
	}
	filterRows(mid, g, kx)

	out, err := New(g.Rows, g.Cols)
	if err != nil {
		return Grid{}, err
	}
	filterCols(out, mid, ky)

	return out, nil
}

// filterRows correlates every row of src with k, writing into dst.
func filterRows(dst, src Grid, k []float64) {
	n := src.Cols
	half := len(k) / 2

	padded, padBuf := getScratch(n + len(k) - 1)
	defer putScratch(padBuf)
	tmp, tmpBuf := getScratch(n)
	defer putScratch(tmpBuf)

	for r := 0; r < src.Rows; r++ {
		row := src.Row(r)
		for i := range padded {
			padded[i] = row[reflect101(i-half, n)]
		}

		out := dst.Row(r)
		for i := range out {
			out[i] = 0
		}
		// Accumulate one shifted, scaled copy of the padded row per tap.
		for i, kv := range k {
			if kv == 0 {
				continue
			}
			vecmath.ScaleBlock(tmp, padded[i:i+n], kv)
			vecmath.AddBlockInPlace(out, tmp)
		}
	}
}

// filterCols correlates every column of src with k, writing into dst.
// Columns are processed a full row at a time so the inner loops stay
// contiguous in memory.
func filterCols(dst, src Grid, k []float64) {
	half := len(k) / 2

	tmp, tmpBuf := getScratch(src.Cols)
	defer putScratch(tmpBuf)

	for r := 0; r < src.Rows; r++ {
		out := dst.Row(r)
		for i := range out {
			out[i] = 0
		}
		for i, kv := range k {
			if kv == 0 {
				continue
			}
			srcRow := src.Row(reflect101(r-half+i, src.Rows))
			vecmath.ScaleBlock(tmp, srcRow, kv)
			vecmath.AddBlockInPlace(out, tmp)
		}
	}
}

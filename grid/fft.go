package grid

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// FilterFFT convolves g with a full 2-D kernel in the frequency domain and
// returns the centered "same" portion, matching the shape of g. The kernel
// must have odd dimensions in both axes.
//
// The transform is separable row-column FFT on zero-padded power-of-two
// buffers. For the kernel sizes produced by a filter bank this is much
// cheaper than direct 2-D correlation.
func FilterFFT(g, kernel Grid) (Grid, error) {
	if len(kernel.Data) == 0 {
		return Grid{}, ErrEmptyKernel
	}

	padRows := nextPowerOf2(g.Rows + kernel.Rows - 1)
	padCols := nextPowerOf2(g.Cols + kernel.Cols - 1)

	rowPlan, err := algofft.NewPlan64(padCols)
	if err != nil {
		return Grid{}, fmt.Errorf("grid: failed to create FFT plan: %w", err)
	}
	colPlan, err := algofft.NewPlan64(padRows)
	if err != nil {
		return Grid{}, fmt.Errorf("grid: failed to create FFT plan: %w", err)
	}

	imgSpec, err := forward2D(g, padRows, padCols, rowPlan, colPlan)
	if err != nil {
		return Grid{}, err
	}
	kerSpec, err := forward2D(kernel, padRows, padCols, rowPlan, colPlan)
	if err != nil {
		return Grid{}, err
	}

	// Pointwise spectral product, then invert back to the spatial domain.
	for i := range imgSpec {
		imgSpec[i] *= kerSpec[i]
	}
	if err := inverse2D(imgSpec, padRows, padCols, rowPlan, colPlan); err != nil {
		return Grid{}, err
	}

	// Extract the centered same-size region of the full linear convolution.
	out, err := New(g.Rows, g.Cols)
	if err != nil {
		return Grid{}, err
	}
	rOff := (kernel.Rows - 1) / 2
	cOff := (kernel.Cols - 1) / 2
	for r := 0; r < g.Rows; r++ {
		dst := out.Row(r)
		src := imgSpec[(r+rOff)*padCols+cOff:]
		for c := 0; c < g.Cols; c++ {
			dst[c] = real(src[c])
		}
	}
	return out, nil
}

// forward2D zero-pads g into a padRows x padCols complex buffer and applies
// the forward transform along rows, then columns.
func forward2D(g Grid, padRows, padCols int, rowPlan, colPlan *algofft.Plan[complex128]) ([]complex128, error) {
	buf := make([]complex128, padRows*padCols)
	for r := 0; r < g.Rows; r++ {
		src := g.Row(r)
		dst := buf[r*padCols:]
		for c, v := range src {
			dst[c] = complex(v, 0)
		}
	}

	for r := 0; r < padRows; r++ {
		row := buf[r*padCols : (r+1)*padCols]
		if err := rowPlan.Forward(row, row); err != nil {
			return nil, fmt.Errorf("grid: forward FFT failed: %w", err)
		}
	}

	col := make([]complex128, padRows)
	for c := 0; c < padCols; c++ {
		for r := 0; r < padRows; r++ {
			col[r] = buf[r*padCols+c]
		}
		if err := colPlan.Forward(col, col); err != nil {
			return nil, fmt.Errorf("grid: forward FFT failed: %w", err)
		}
		for r := 0; r < padRows; r++ {
			buf[r*padCols+c] = col[r]
		}
	}
	return buf, nil
}

// inverse2D applies the inverse transform along columns, then rows, in place.
func inverse2D(buf []complex128, padRows, padCols int, rowPlan, colPlan *algofft.Plan[complex128]) error {
	col := make([]complex128, padRows)
	for c := 0; c < padCols; c++ {
		for r := 0; r < padRows; r++ {
			col[r] = buf[r*padCols+c]
		}
		if err := colPlan.Inverse(col, col); err != nil {
			return fmt.Errorf("grid: inverse FFT failed: %w", err)
		}
		for r := 0; r < padRows; r++ {
			buf[r*padCols+c] = col[r]
		}
	}

	for r := 0; r < padRows; r++ {
		row := buf[r*padCols : (r+1)*padCols]
		if err := rowPlan.Inverse(row, row); err != nil {
			return fmt.Errorf("grid: inverse FFT failed: %w", err)
		}
	}
	return nil
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}

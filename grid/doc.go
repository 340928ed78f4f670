// Package grid provides dense 2-D float64 rasters and the filtering
// primitives used by multiscale image analysis.
//
// A [Grid] stores samples in row-major order and is the 2-D counterpart of
// the []float64 signal convention used across the algo-* modules.
//
// Three filtering strategies are provided:
//
//   - [SepFilter]: separable correlation with two 1-D kernels and
//     reflect-101 border handling, for Gaussian smoothing and separable
//     derivative filters
//   - [FilterFFT]: full 2-D frequency-domain convolution returning the
//     centered "same" portion, for non-separable kernels
//   - [Resize]: cubic (Catmull-Rom) or nearest-neighbor resampling with
//     half-pixel center mapping
//
// Integer grayscale images bridge in via [FromGray], [FromGray16], and
// [FromImage], which rescale 8-bit and 16-bit samples to [0, 1]. Inputs that
// are not single-channel fail with [ErrUnsupportedShape].
package grid

package singularity

import (
	"fmt"
	"image"
	"math"
	"sync"

	"github.com/cwbudde/algo-ridge/grid"
	vecmath "github.com/cwbudde/algo-vecmath"
)

// Response holds the three output maps of the multiscale singularity index,
// all with the shape of the input image.
type Response struct {
	// Index is the singularity response: non-negative, unbounded above, and
	// zero where no ridge-like structure was detected. Responses from all
	// scales combine as an L2 norm, so structures detected consistently at
	// several scales outrank single-scale spikes.
	Index grid.Grid

	// Width estimates the local structure width, in the units of the bank's
	// minimum scale (pixels at the input resolution).
	Width grid.Grid

	// Orientation is the dominant local orientation in radians, in
	// (-pi/2, pi/2]. It is meaningful only where Index is non-trivial.
	Orientation grid.Grid
}

// Respond computes the multiscale singularity index of a single-channel
// image. Samples are expected in a normalized range; use [RespondImage] or
// the grid package adapters for 8-bit and 16-bit integer rasters.
//
// The input grid is treated as read-only.
func Respond(img grid.Grid, fb *FilterBank, opts ...Option) (*Response, error) {
	if fb == nil {
		return nil, fmt.Errorf("%w: nil filter bank", ErrInvalidParameter)
	}
	if img.Rows <= 0 || img.Cols <= 0 || len(img.Data) != img.Rows*img.Cols {
		return nil, ErrEmptyImage
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	pyramid, err := buildPyramid(img, fb.nrScales)
	if err != nil {
		return nil, err
	}

	agg := newAggregate(fb, img.Rows, img.Cols)

	if cfg.workers > 1 && fb.nrScales > 1 {
		results := make([]scaleResult, fb.nrScales)
		errs := make([]error, fb.nrScales)
		sem := make(chan struct{}, cfg.workers)
		var wg sync.WaitGroup
		for s := 0; s < fb.nrScales; s++ {
			wg.Add(1)
			go func(s int) {
				defer wg.Done()
				sem <- struct{}{}
				defer func() { <-sem }()
				if cfg.progress != nil {
					cfg.progress(s)
				}
				results[s], errs[s] = scalePass(pyramid[s], fb, img.Rows, img.Cols, s)
			}(s)
		}
		wg.Wait()
		for _, err := range errs {
			if err != nil {
				return nil, err
			}
		}
		// The reduction is commutative up to argmax ties; folding in
		// ascending scale order resolves ties to the lowest scale and keeps
		// parallel output identical to sequential output.
		for s, r := range results {
			if cfg.scalePass != nil {
				cfg.scalePass(s, r.index, r.orient)
			}
			agg.merge(s, r)
		}
		return agg.finalize(), nil
	}

	for s := 0; s < fb.nrScales; s++ {
		if cfg.progress != nil {
			cfg.progress(s)
		}
		r, err := scalePass(pyramid[s], fb, img.Rows, img.Cols, s)
		if err != nil {
			return nil, err
		}
		if cfg.scalePass != nil {
			cfg.scalePass(s, r.index, r.orient)
		}
		agg.merge(s, r)
	}
	return agg.finalize(), nil
}

// RespondImage normalizes an integer grayscale image and computes its
// multiscale singularity index. Inputs that are not single-channel fail with
// [ErrUnsupportedShape].
func RespondImage(img image.Image, fb *FilterBank, opts ...Option) (*Response, error) {
	g, err := grid.FromImage(img)
	if err != nil {
		return nil, err
	}
	return Respond(g, fb, opts...)
}

// buildPyramid returns the working image per scale. Level 0 is the input
// itself; level s is level s-1 resized to the dimensions the original shape
// prescribes for scale s. Downsampling the image instead of enlarging the
// kernels keeps the convolution cost fixed per scale.
func buildPyramid(img grid.Grid, nrScales int) ([]grid.Grid, error) {
	pyramid := make([]grid.Grid, nrScales)
	pyramid[0] = img
	for s := 1; s < nrScales; s++ {
		f := math.Pow(math.Sqrt2, float64(s))
		rows := int(float64(img.Rows) / f)
		cols := int(float64(img.Cols) / f)
		if rows < 1 {
			rows = 1
		}
		if cols < 1 {
			cols = 1
		}
		p, err := grid.Resize(pyramid[s-1], rows, cols, grid.InterpCubic)
		if err != nil {
			return nil, err
		}
		pyramid[s] = p
	}
	return pyramid, nil
}

// scaleResult is one scale's contribution at the input resolution.
type scaleResult struct {
	index  grid.Grid
	orient grid.Grid
}

// scalePass runs the per-scale filtering body: debias, directional
// derivatives, orientation estimation, the singularity formula, and the
// resize back to the input resolution.
func scalePass(work grid.Grid, fb *FilterBank, rows, cols, s int) (scaleResult, error) {
	// Remove slow illumination trends so the derivative responses measure
	// local structure only.
	mu, err := grid.SepFilter(work, fb.debias, fb.debias)
	if err != nil {
		return scaleResult{}, err
	}
	debiased := mu // reuse: debiased = work - mu
	if err := grid.Sub(debiased, work, mu); err != nil {
		return scaleResult{}, err
	}

	// Second-order responses along the three basis orientations.
	j20, err := grid.FilterFFT(debiased, fb.secondDeriv[0])
	if err != nil {
		return scaleResult{}, err
	}
	j260, err := grid.FilterFFT(debiased, fb.secondDeriv[1])
	if err != nil {
		return scaleResult{}, err
	}
	j2120, err := grid.FilterFFT(debiased, fb.secondDeriv[2])
	if err != nil {
		return scaleResult{}, err
	}

	// Dominant local orientation: the closed form extremizing the steered
	// second-derivative response.
	angles, err := grid.New(debiased.Rows, debiased.Cols)
	if err != nil {
		return scaleResult{}, err
	}
	sqrt3 := math.Sqrt(3)
	for i := range angles.Data {
		a := j20.Data[i]
		b := j260.Data[i]
		c := j2120.Data[i]
		nr := sqrt3 * (b*b - c*c + a*b - a*c)
		dr := 2*a*a - b*b - c*c + a*b - 2*b*c + a*c
		angles.Data[i] = math.Atan2(nr, dr) / 2
	}

	// First-order responses along the image axes.
	j0u, err := grid.SepFilter(debiased, fb.firstDeriv, fb.firstSmooth)
	if err != nil {
		return scaleResult{}, err
	}
	j90u, err := grid.SepFilter(debiased, fb.firstSmooth, fb.firstDeriv)
	if err != nil {
		return scaleResult{}, err
	}

	// Zeroth-order response: base-scale Gaussian smoothing.
	j0, err := grid.SepFilter(debiased, fb.gaussian0, fb.gaussian0)
	if err != nil {
		return scaleResult{}, err
	}

	// Project the derivatives onto the estimated orientation and evaluate
	// the singularity formula. |J0| rewards amplitude, J2 rewards curvature
	// along the structure, and the |J1|^2 term suppresses step edges.
	psi := j0u // reuse
	for i := range psi.Data {
		theta := angles.Data[i]
		sin, cos := math.Sincos(theta)
		j1 := j0u.Data[i]*cos + j90u.Data[i]*sin
		sin2, cos2 := math.Sincos(2 * theta)
		j2 := ((1+2*cos2)*j20.Data[i] +
			(1-cos2+sqrt3*sin2)*j260.Data[i] +
			(1-cos2-sqrt3*sin2)*j2120.Data[i]) / 3
		v := math.Abs(j0.Data[i]) * j2 / (1 + j1*j1)
		// Dark, valley-like structures curve upward across the estimated
		// orientation and come out positive; bright ridges come out
		// negative and are suppressed.
		if v < 0 {
			psi.Data[i] = 0
		} else {
			psi.Data[i] = v
		}
	}

	if s > 0 {
		psi, err = grid.Resize(psi, rows, cols, grid.InterpCubic)
		if err != nil {
			return scaleResult{}, err
		}
		// Orientation wraps at +-pi/2; nearest sampling avoids blending
		// across the wrap.
		angles, err = grid.Resize(angles, rows, cols, grid.InterpNearest)
		if err != nil {
			return scaleResult{}, err
		}
	}
	return scaleResult{index: psi, orient: angles}, nil
}

// aggregate folds per-scale results into the running cross-scale state.
type aggregate struct {
	fb      *FilterBank
	max     grid.Grid // per-pixel best response seen so far
	orient  grid.Grid // orientation of the scale that set max
	sum     grid.Grid // running response sum
	sumSq   grid.Grid // running sum of squared responses
	width   grid.Grid // response-weighted sum of scale bandwidths
	scratch []float64
}

func newAggregate(fb *FilterBank, rows, cols int) *aggregate {
	return &aggregate{fb: fb, scratch: make([]float64, rows*cols)}
}

// merge folds scale s into the aggregate. The aggregate takes ownership of
// the result's grids at s == 0.
func (a *aggregate) merge(s int, r scaleResult) {
	if s == 0 {
		a.max = r.index
		a.orient = r.orient
		a.sum = r.index.Clone()
		a.sumSq = grid.Grid{Rows: r.index.Rows, Cols: r.index.Cols, Data: make([]float64, len(r.index.Data))}
		vecmath.MulBlock(a.sumSq.Data, r.index.Data, r.index.Data)
		a.width = grid.Grid{Rows: r.index.Rows, Cols: r.index.Cols, Data: make([]float64, len(r.index.Data))}
		vecmath.ScaleBlock(a.width.Data, r.index.Data, a.fb.Sigma(0))
		return
	}

	// Winner-take-all orientation: strictly greater, so ties keep the
	// lowest scale index.
	for i, v := range r.index.Data {
		if v > a.max.Data[i] {
			a.max.Data[i] = v
			a.orient.Data[i] = r.orient.Data[i]
		}
	}

	vecmath.AddBlockInPlace(a.sum.Data, r.index.Data)
	vecmath.MulBlock(a.scratch, r.index.Data, r.index.Data)
	vecmath.AddBlockInPlace(a.sumSq.Data, a.scratch)
	vecmath.ScaleBlock(a.scratch, r.index.Data, a.fb.Sigma(s))
	vecmath.AddBlockInPlace(a.width.Data, a.scratch)
}

// finalize turns the running state into the output maps. The width divide is
// guarded: pixels with no accumulated response keep their accumulated
// near-zero width instead of faulting.
func (a *aggregate) finalize() *Response {
	for i, sum := range a.sum.Data {
		if sum > 0 {
			a.width.Data[i] /= sum
		}
	}
	index := a.sumSq
	for i, v := range index.Data {
		index.Data[i] = math.Sqrt(v)
	}
	return &Response{Index: index, Width: a.width, Orientation: a.orient}
}

package singularity

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-ridge/grid"
)

// Default filter bank parameters, in pixels.
const (
	DefaultMinScale = 1.5
	DefaultNrScales = 15
)

// firstDerivSigmaRatio relates the first-derivative filter scale to the
// base scale so that both derivative orders respond maximally to the same
// structure width.
const firstDerivSigmaRatio = 1.7754

// Steerable basis orientations for the second derivative: 0, 60, 120 degrees.
var basisAngles = [3]float64{0, math.Pi / 3, 2 * math.Pi / 3}

// FilterBank holds the precomputed kernels of the multiscale singularity
// index. A bank is immutable after construction: build it once and reuse it
// for every image and every scale.
//
// All kernels derive deterministically from the minimum scale; the scale
// count only sets how many octave steps [Respond] walks.
type FilterBank struct {
	minScale float64
	nrScales int

	debias      []float64    // 1-D Gaussian, sigma = 5*minScale
	gaussian0   []float64    // 1-D Gaussian, sigma = minScale
	secondDeriv [3]grid.Grid // steerable second derivatives of G0 at 0, 60, 120 degrees
	firstSmooth []float64    // 1-D Gaussian, sigma = minScale*1.7754
	firstDeriv  []float64    // first derivative of firstSmooth along one axis
}

// NewFilterBank builds the kernel set for the given minimum scale (sigma of
// the finest analysis scale, in pixels) and number of scales. Both must be
// positive; anything else fails with [ErrInvalidParameter].
func NewFilterBank(minScale float64, nrScales int) (*FilterBank, error) {
	if minScale <= 0 {
		return nil, fmt.Errorf("%w: minScale %v", ErrInvalidParameter, minScale)
	}
	if nrScales <= 0 {
		return nil, fmt.Errorf("%w: nrScales %d", ErrInvalidParameter, nrScales)
	}

	fb := &FilterBank{
		minScale: minScale,
		nrScales: nrScales,
	}

	// Debiasing filter: a wide Gaussian that estimates the local mean.
	sigmaD := 5 * minScale
	halfD := int(3 * sigmaD)
	fb.debias = gaussianKernel(2*halfD+1, sigmaD)

	// Base Gaussian for the zeroth-order response and the second derivatives.
	sigma2 := minScale
	half2 := int(3*sigma2) + 1
	fb.gaussian0 = gaussianKernel(2*half2+1, sigma2)

	// Second partial derivatives of the isotropic Gaussian along the three
	// basis orientations, on a shared coordinate frame:
	//   ((u^2/sigma^4) - 1/sigma^2) * G0(x, y),  u = x*cos(t) - y*sin(t)
	size2 := 2*half2 + 1
	for i, theta := range basisAngles {
		k, err := grid.New(size2, size2)
		if err != nil {
			return nil, err
		}
		cos := math.Cos(theta)
		sin := math.Sin(theta)
		for r := 0; r < size2; r++ {
			y := float64(r - half2)
			row := k.Row(r)
			for c := 0; c < size2; c++ {
				x := float64(c - half2)
				u := x*cos - y*sin
				g0 := fb.gaussian0[r] * fb.gaussian0[c]
				row[c] = (u*u/(sigma2*sigma2*sigma2*sigma2) - 1/(sigma2*sigma2)) * g0
			}
		}
		fb.secondDeriv[i] = k
	}

	// Separable basis for the first derivative: the derivative kernel along
	// one axis, its matching Gaussian along the other.
	sigma1 := minScale * firstDerivSigmaRatio
	half1 := int(3*sigma1) + 1
	fb.firstSmooth = gaussianKernel(2*half1+1, sigma1)
	fb.firstDeriv = make([]float64, 2*half1+1)
	for i := range fb.firstDeriv {
		x := float64(i - half1)
		fb.firstDeriv[i] = -(1 / (sigma1 * sigma1)) * x * fb.firstSmooth[i]
	}

	return fb, nil
}

// NewDefaultFilterBank builds a bank with [DefaultMinScale] and
// [DefaultNrScales].
func NewDefaultFilterBank() (*FilterBank, error) {
	return NewFilterBank(DefaultMinScale, DefaultNrScales)
}

// MinScale returns the sigma of the finest analysis scale, in pixels.
func (fb *FilterBank) MinScale() float64 { return fb.minScale }

// NrScales returns the number of octave steps walked by [Respond].
func (fb *FilterBank) NrScales() int { return fb.nrScales }

// Sigma returns the analysis scale at scale index s: minScale * sqrt(2)^s.
func (fb *FilterBank) Sigma(s int) float64 {
	return fb.minScale * math.Pow(math.Sqrt2, float64(s))
}

// Debias returns the 1-D local-mean estimation kernel. Read-only.
func (fb *FilterBank) Debias() []float64 { return fb.debias }

// Gaussian0 returns the 1-D base-scale Gaussian kernel. Read-only.
func (fb *FilterBank) Gaussian0() []float64 { return fb.gaussian0 }

// SecondDerivative returns the 2-D steerable second-derivative kernel for
// basis index i (orientations 0, 60, 120 degrees). Read-only.
func (fb *FilterBank) SecondDerivative(i int) grid.Grid { return fb.secondDeriv[i] }

// FirstDerivative returns the 1-D first-derivative-of-Gaussian kernel.
// Read-only.
func (fb *FilterBank) FirstDerivative() []float64 { return fb.firstDeriv }

// FirstSmooth returns the Gaussian kernel paired with [FilterBank.FirstDerivative]
// on the orthogonal axis. Read-only.
func (fb *FilterBank) FirstSmooth() []float64 { return fb.firstSmooth }

// gaussianKernel returns a normalized 1-D Gaussian of the given odd size.
// Coefficients sum to 1.
func gaussianKernel(size int, sigma float64) []float64 {
	k := make([]float64, size)
	center := float64(size-1) / 2
	sum := 0.0
	for i := range k {
		x := float64(i) - center
		k[i] = math.Exp(-x * x / (2 * sigma * sigma))
		sum += k[i]
	}
	for i := range k {
		k[i] /= sum
	}
	return k
}

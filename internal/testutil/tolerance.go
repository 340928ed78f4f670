package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-ridge/grid"
)

// RequireGridNearlyEqual fails t if got and want differ in shape or if any
// sample pair exceeds eps (absolute tolerance).
func RequireGridNearlyEqual(t *testing.T, got, want grid.Grid, eps float64) {
	t.Helper()
	if !got.SameShape(want) {
		t.Fatalf("shape mismatch: got %dx%d, want %dx%d", got.Rows, got.Cols, want.Rows, want.Cols)
	}
	for i := range got.Data {
		diff := math.Abs(got.Data[i] - want.Data[i])
		if diff > eps {
			r, c := i/got.Cols, i%got.Cols
			t.Fatalf("sample (%d,%d): got %v, want %v (diff %v > eps %v)",
				r, c, got.Data[i], want.Data[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any sample is NaN or Inf.
func RequireFinite(t *testing.T, g grid.Grid) {
	t.Helper()
	for i, v := range g.Data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("sample (%d,%d): non-finite value %v", i/g.Cols, i%g.Cols, v)
		}
	}
}

// RequireNonNegative fails t if any sample is below zero.
func RequireNonNegative(t *testing.T, g grid.Grid) {
	t.Helper()
	for i, v := range g.Data {
		if v < 0 {
			t.Fatalf("sample (%d,%d): negative value %v", i/g.Cols, i%g.Cols, v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute sample difference between two
// grids. Returns an error if the shapes differ.
func MaxAbsDiff(a, b grid.Grid) (float64, error) {
	if !a.SameShape(b) {
		return 0, fmt.Errorf("shape mismatch: %dx%d vs %dx%d", a.Rows, a.Cols, b.Rows, b.Cols)
	}
	maxDiff := 0.0
	for i := range a.Data {
		d := math.Abs(a.Data[i] - b.Data[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}

// AngularDiff returns the distance between two orientations in radians,
// folded into [0, pi/2] so that angles wrapping at +-pi/2 compare equal.
func AngularDiff(a, b float64) float64 {
	d := math.Mod(a-b, math.Pi)
	if d < 0 {
		d += math.Pi
	}
	if d > math.Pi/2 {
		d = math.Pi - d
	}
	return d
}

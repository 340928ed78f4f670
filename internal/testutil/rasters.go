package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-ridge/grid"
)

// Uniform returns a constant-valued grid.
func Uniform(rows, cols int, value float64) grid.Grid {
	g, _ := grid.New(rows, cols)
	for i := range g.Data {
		g.Data[i] = value
	}
	return g
}

// Impulse returns a zero grid with a single unit sample at (r, c).
func Impulse(rows, cols, r, c int) grid.Grid {
	g, _ := grid.New(rows, cols)
	if r >= 0 && r < rows && c >= 0 && c < cols {
		g.Set(r, c, 1)
	}
	return g
}

// HorizontalLine returns a bright grid of the given background value with a
// dark horizontal band of the given width (in rows) centered vertically.
func HorizontalLine(rows, cols, width int, background, line float64) grid.Grid {
	g := Uniform(rows, cols, background)
	start := (rows - width) / 2
	for r := start; r < start+width && r < rows; r++ {
		if r < 0 {
			continue
		}
		row := g.Row(r)
		for c := range row {
			row[c] = line
		}
	}
	return g
}

// VerticalLine returns a bright grid with a dark vertical band of the given
// width (in columns) centered horizontally.
func VerticalLine(rows, cols, width int, background, line float64) grid.Grid {
	g := Uniform(rows, cols, background)
	start := (cols - width) / 2
	for r := 0; r < rows; r++ {
		row := g.Row(r)
		for c := start; c < start+width && c < cols; c++ {
			if c < 0 {
				continue
			}
			row[c] = line
		}
	}
	return g
}

// DiagonalLine returns a bright grid with a dark band of the given
// perpendicular width along the main diagonal (45 degrees).
func DiagonalLine(rows, cols, width int, background, line float64) grid.Grid {
	g := Uniform(rows, cols, background)
	halfBand := float64(width) / 2 * math.Sqrt2
	for r := 0; r < rows; r++ {
		row := g.Row(r)
		for c := range row {
			if math.Abs(float64(r-c)) <= halfBand {
				row[c] = line
			}
		}
	}
	return g
}

// DeterministicNoise returns a grid of uniform noise in [-amplitude,
// amplitude] with a fixed seed for reproducibility.
func DeterministicNoise(rows, cols int, seed int64, amplitude float64) grid.Grid {
	g, _ := grid.New(rows, cols)
	rng := rand.New(rand.NewSource(seed))
	for i := range g.Data {
		g.Data[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return g
}

// Rotate90 returns g rotated a quarter turn counter-clockwise: sample (r, c)
// of the result is sample (c, cols-1-r) of the input.
func Rotate90(g grid.Grid) grid.Grid {
	out, _ := grid.New(g.Cols, g.Rows)
	for r := 0; r < out.Rows; r++ {
		row := out.Row(r)
		for c := 0; c < out.Cols; c++ {
			row[c] = g.At(c, g.Cols-1-r)
		}
	}
	return out
}

package singularity

import (
	"errors"

	"github.com/cwbudde/algo-ridge/grid"
)

// Errors returned by this package.
var (
	// ErrInvalidParameter reports a non-positive minimum scale or scale count.
	ErrInvalidParameter = errors.New("singularity: invalid parameter")

	// ErrUnsupportedShape reports an input that is not a single-channel
	// 2-D raster. It aliases the grid package sentinel so callers can match
	// either package.
	ErrUnsupportedShape = grid.ErrUnsupportedShape

	// ErrEmptyImage reports an input grid with no samples.
	ErrEmptyImage = errors.New("singularity: empty image")
)

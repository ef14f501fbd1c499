// Package scoregrid defines options, constants, and sentinel errors for the
// scoregrid subpackage of github.com/katalvlaran/sketchscore.
package scoregrid

import "errors"

// Default aggregation parameters, matching the original 500×500 canvas:
// a 10×10 grid of 50×50 blocks, scores normalized by 5.0.
const (
	// DefaultGridSize is the number of blocks per axis.
	DefaultGridSize = 10
	// DefaultBlockSize is the canvas extent of one block, per axis.
	DefaultBlockSize = 50
	// DefaultDivisor is the score normalization constant. It is a
	// calibration value tied to the expected maximum meaningful distance,
	// not a function of grid geometry.
	DefaultDivisor = 5.0
)

// Sentinel errors for aggregation options.
var (
	// ErrBadGridSize indicates a non-positive grid size.
	ErrBadGridSize = errors.New("scoregrid: grid size must be positive")
	// ErrBadBlockSize indicates a non-positive block size.
	ErrBadBlockSize = errors.New("scoregrid: block size must be positive")
	// ErrBadDivisor indicates a non-positive normalization divisor.
	ErrBadDivisor = errors.New("scoregrid: divisor must be positive")
)

// Options configures an Aggregator.
//
// Fields:
//   - GridSize  — blocks per axis (K in the K×K aggregation grid).
//   - BlockSize — canvas cells per block, per axis. Pixels whose block index
//     falls outside the grid are skipped (cannot happen when the canvas is
//     an exact multiple of BlockSize×GridSize).
//   - Divisor   — normalization constant for TopK and Mean.
type Options struct {
	GridSize  int
	BlockSize int
	Divisor   float64
}

// DefaultOptions returns the documented default configuration:
// GridSize=10, BlockSize=50, Divisor=5.0.
func DefaultOptions() Options {
	return Options{
		GridSize:  DefaultGridSize,
		BlockSize: DefaultBlockSize,
		Divisor:   DefaultDivisor,
	}
}

// validate checks the option invariants.
func (o Options) validate() error {
	if o.GridSize <= 0 {
		return ErrBadGridSize
	}
	if o.BlockSize <= 0 {
		return ErrBadBlockSize
	}
	if o.Divisor <= 0 {
		return ErrBadDivisor
	}
	return nil
}

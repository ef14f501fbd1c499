// Package evaluate defines options, sentinel errors, and result types for
// the evaluate subpackage of github.com/katalvlaran/sketchscore.
package evaluate

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sketchscore/distfield"
	"github.com/katalvlaran/sketchscore/pixel"
	"github.com/katalvlaran/sketchscore/scoregrid"
)

// DefaultCanvasSize is the canvas edge length the scoring scale was
// calibrated for.
const DefaultCanvasSize = 500

// DefaultTopK is the number of worst blocks summed into the primary metric.
const DefaultTopK = 5

// Sentinel errors for session construction and scoring.
var (
	// ErrEmptyReference indicates session construction with a reference that
	// has no in-bounds drawn pixels.
	ErrEmptyReference = errors.New("evaluate: reference contains no drawn pixels")
	// ErrEmptyObservation indicates FullResult was requested before any
	// observation pixel was added.
	ErrEmptyObservation = errors.New("evaluate: no observation pixels to evaluate")
	// ErrBadCanvasSize indicates a canvas size that is non-positive or
	// smaller than the aggregation grid.
	ErrBadCanvasSize = errors.New("evaluate: canvas size must be positive and at least the grid size")
	// ErrBadTopK indicates a non-positive top-K count.
	ErrBadTopK = errors.New("evaluate: top-K count must be positive")
)

// Options configures a Session.
//
// Fields:
//   - CanvasSize    — edge length N of the square N×N canvas.
//   - GridSize      — blocks per axis of the aggregation grid (K).
//   - TopK          — number of worst blocks summed into the primary score.
//   - Divisor       — score normalization constant; a calibration value, not
//     derived from geometry.
//   - TransparentBG — which channel marked a pixel as drawn when the inputs
//     were extracted (alpha for transparent canvases, luma otherwise).
//     Recorded so exported state reproduces the extraction mode.
type Options struct {
	CanvasSize    int
	GridSize      int
	TopK          int
	Divisor       float64
	TransparentBG bool
}

// DefaultOptions returns the documented defaults: a 500×500 canvas, a 10×10
// grid, top-5 scoring with divisor 5.0, white background.
func DefaultOptions() Options {
	return Options{
		CanvasSize: DefaultCanvasSize,
		GridSize:   scoregrid.DefaultGridSize,
		TopK:       DefaultTopK,
		Divisor:    scoregrid.DefaultDivisor,
	}
}

// validate checks option invariants. Grid and divisor invariants are
// enforced by scoregrid at aggregator construction.
func (o Options) validate() error {
	if o.CanvasSize <= 0 || (o.GridSize > 0 && o.CanvasSize < o.GridSize) {
		return ErrBadCanvasSize
	}
	if o.TopK <= 0 {
		return ErrBadTopK
	}
	return nil
}

// ErrorMetrics is the immutable result of a full evaluation.
type ErrorMetrics struct {
	// TopK is the primary accuracy metric: the sum of the K worst block
	// maxima, normalized. Percentage-like, nominally 0–100.
	TopK float64 `json:"top5_error"`
	// Mean is the normalized average cross distance over both directions.
	Mean float64 `json:"mean_error"`
	// PixelCount is the number of reference pixels, the drawing-size
	// denominator used by callers.
	PixelCount int `json:"pixel_count"`
	// Grid holds the per-block maxima the top-K score was derived from.
	Grid [][]int `json:"grid"`
}

// Summary renders the human-readable report.
func (m ErrorMetrics) Summary() string {
	return fmt.Sprintf("Top 5 error: %.1f%%\nMean error: %.1f%%\nPixel count: %d",
		m.TopK, m.Mean, m.PixelCount)
}

// SessionState is the serializable reference-side state of a Session:
// sufficient to reconstruct one without rerunning the reference flood fill,
// with bit-identical heatmap values.
type SessionState struct {
	ReferenceHeatmap distfield.Flat `json:"reference_heatmap"`
	ReferencePixels  []pixel.Coord  `json:"reference_pixels"`
	TransparentBG    bool           `json:"background_mode"`
}

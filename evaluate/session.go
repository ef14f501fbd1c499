package evaluate

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/sketchscore/distfield"
	"github.com/katalvlaran/sketchscore/pixel"
	"github.com/katalvlaran/sketchscore/scoregrid"
)

// Session scores a streamed observation against a fixed reference drawing.
//
// The reference field and pixel list are computed (or restored) once at
// construction and never change for the session's lifetime. The observation
// side starts empty and is mutated only by AddObservation, or wiped by
// ResetObservation. Not safe for concurrent use.
type Session struct {
	id   string
	opts Options

	// Immutable after construction.
	refField  *distfield.Field
	refPixels []pixel.Coord

	// Live observation state.
	obsField *distfield.Field
	obsSet   *pixel.Set

	// Derived cache, rebuilt in full on every add/reset.
	agg  *scoregrid.Aggregator
	grid *scoregrid.Grid
	topK float64
}

// NewSession builds a session from the reference pixel set, running the
// reference flood fill once. Out-of-bounds reference pixels are dropped;
// returns ErrEmptyReference when none survive.
// Complexity: O(canvas²) for the fill.
func NewSession(reference []pixel.Coord, opts Options) (*Session, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	n := opts.CanvasSize
	refPixels := pixel.Filter(reference, n, n)
	if len(refPixels) == 0 {
		return nil, ErrEmptyReference
	}
	refField, err := distfield.Build(n, n, refPixels)
	if err != nil {
		return nil, fmt.Errorf("evaluate: reference fill: %w", err)
	}
	s, err := assemble(opts, refField, refPixels)
	if err != nil {
		return nil, err
	}
	logger().Debug("session built",
		"session", s.id, "canvas", n, "reference_pixels", len(refPixels))
	return s, nil
}

// Restore reconstructs a session from previously exported state, skipping
// the reference flood fill. The heatmap shape must match opts.CanvasSize;
// a disagreement surfaces distfield.ErrShapeMismatch (corrupt or mismatched
// cache). The restored reference heatmap is bit-identical to the exported
// one.
// Complexity: O(canvas²) to copy the heatmap.
func Restore(state SessionState, opts Options) (*Session, error) {
	opts.TransparentBG = state.TransparentBG
	if err := opts.validate(); err != nil {
		return nil, err
	}
	refField, err := distfield.Unflatten(state.ReferenceHeatmap)
	if err != nil {
		return nil, fmt.Errorf("evaluate: restore heatmap: %w", err)
	}
	n := opts.CanvasSize
	if refField.Rows() != n || refField.Cols() != n {
		return nil, fmt.Errorf("evaluate: restored heatmap is %d×%d, canvas is %d: %w",
			refField.Rows(), refField.Cols(), n, distfield.ErrShapeMismatch)
	}
	refPixels := pixel.Filter(state.ReferencePixels, n, n)
	if len(refPixels) == 0 {
		return nil, ErrEmptyReference
	}
	s, err := assemble(opts, refField, refPixels)
	if err != nil {
		return nil, err
	}
	logger().Debug("session restored",
		"session", s.id, "canvas", n, "reference_pixels", len(refPixels))
	return s, nil
}

// assemble wires the observation-side state around a ready reference.
func assemble(opts Options, refField *distfield.Field, refPixels []pixel.Coord) (*Session, error) {
	agg, err := scoregrid.New(scoregrid.Options{
		GridSize:  opts.GridSize,
		BlockSize: opts.CanvasSize / opts.GridSize,
		Divisor:   opts.Divisor,
	})
	if err != nil {
		return nil, err
	}
	obsField, err := distfield.NewEmpty(opts.CanvasSize, opts.CanvasSize)
	if err != nil {
		return nil, err
	}
	return &Session{
		id:        uuid.NewString(),
		opts:      opts,
		refField:  refField,
		refPixels: refPixels,
		obsField:  obsField,
		obsSet:    pixel.NewSet(),
		agg:       agg,
		grid:      agg.NewGrid(),
	}, nil
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Options returns the session's configuration.
func (s *Session) Options() Options { return s.opts }

// ReferencePixelCount returns the number of in-bounds reference pixels.
func (s *Session) ReferencePixelCount() int { return len(s.refPixels) }

// ObservationPixelCount returns the number of distinct observation pixels
// accumulated so far.
func (s *Session) ObservationPixelCount() int { return s.obsSet.Len() }

// AddObservation feeds one stroke batch into the session and returns the
// updated top-K error.
//
// The batch is filtered to in-bounds, not-yet-seen pixels; when nothing
// survives, the call is a no-op returning the cached score (idempotent
// under pixel repetition). Otherwise the observation field is extended
// incrementally and the aggregation grid is rebuilt in full from the
// current pixel sets — O(drawn pixels), never O(canvas).
//
// Never fails once the session is constructed.
func (s *Session) AddObservation(batch []pixel.Coord) (float64, error) {
	n := s.opts.CanvasSize
	fresh := s.obsSet.InsertNew(pixel.Filter(batch, n, n))
	if len(fresh) == 0 {
		return s.topK, nil
	}

	s.obsField.Extend(fresh)
	s.agg.AggregateInto(s.grid, s.obsSet.Coords(), s.refField, s.refPixels, s.obsField)
	s.topK = s.agg.TopK(s.grid, s.opts.TopK)

	logger().Debug("observation extended",
		"session", s.id, "new_pixels", len(fresh), "total_pixels", s.obsSet.Len(), "topk", s.topK)
	return s.topK, nil
}

// TopKError returns the current top-K error without recomputation.
func (s *Session) TopKError() float64 { return s.topK }

// ResetObservation clears the observation pixel set, the observation field,
// and the aggregation grid, restoring the empty initial state. The
// reference side is untouched.
func (s *Session) ResetObservation() {
	s.obsSet.Clear()
	s.obsField.Reset()
	s.grid.Reset()
	s.topK = 0
	logger().Debug("observation reset", "session", s.id)
}

// FullResult computes the complete error metrics for the current
// observation: the cached top-K score plus the mean error over the union of
// both cross-distance directions (observation pixels against the reference
// field, reference pixels against the observation field).
//
// Returns ErrEmptyObservation when nothing has been drawn yet.
func (s *Session) FullResult() (ErrorMetrics, error) {
	if s.obsSet.Len() == 0 {
		return ErrorMetrics{}, ErrEmptyObservation
	}
	dists := s.refField.Distances(s.obsSet.Coords())
	dists = append(dists, s.obsField.Distances(s.refPixels)...)

	return ErrorMetrics{
		TopK:       s.topK,
		Mean:       s.agg.Mean(dists),
		PixelCount: len(s.refPixels),
		Grid:       s.grid.Rows(),
	}, nil
}

// ExportState serializes the immutable reference-side state. It always
// succeeds: the export is a pure, total function of data fixed at
// construction.
func (s *Session) ExportState() SessionState {
	refPixels := make([]pixel.Coord, len(s.refPixels))
	copy(refPixels, s.refPixels)
	return SessionState{
		ReferenceHeatmap: s.refField.Flatten(),
		ReferencePixels:  refPixels,
		TransparentBG:    s.opts.TransparentBG,
	}
}

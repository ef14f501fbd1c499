// Package distfield defines core types and sentinel errors for the distfield
// subpackage of github.com/katalvlaran/sketchscore.
package distfield

import "errors"

// Unvisited is the sentinel distance for a cell no propagation has reached.
const Unvisited = -1

// Sentinel errors for distance-field operations.
var (
	// ErrNoSources indicates a fill was requested with zero in-bounds source
	// pixels; "distance to the nearest source" is undefined without one.
	ErrNoSources = errors.New("distfield: source set must contain at least one in-bounds pixel")
	// ErrBadShape indicates non-positive field dimensions.
	ErrBadShape = errors.New("distfield: rows and cols must be positive")
	// ErrShapeMismatch indicates serialized data whose length does not match
	// its declared (rows, cols) shape — a corrupt or mismatched cache.
	ErrShapeMismatch = errors.New("distfield: flat data length does not match declared shape")
)

// neighborOffsets enumerates 4-connectivity: N, S, W, E.
// The engine is defined over orthogonal adjacency only.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

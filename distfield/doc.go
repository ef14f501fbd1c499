// Package distfield computes shortest-distance fields ("heatmaps") over a
// fixed rectangular canvas: every cell holds the 4-connected step count to
// the nearest pixel in a source set.
//
// What:
//
//   - Field wraps a dense rows×cols grid of int distances, with the sentinel
//     Unvisited (−1) marking cells no propagation has reached.
//   - Build runs a multi-source breadth-first flood fill from a source set,
//     producing exact shortest distances for every cell.
//   - Extend relaxes an existing field in place after new sources arrive,
//     touching only cells whose distance strictly improves — O(new pixels)
//     amortized rather than O(canvas) per stroke.
//   - Flatten/Unflatten convert a field to and from a flat, JSON-friendly
//     form so precomputed fields survive process boundaries bit-identically.
//
// Why:
//
//   - Drawing-accuracy scoring asks "how far is each drawn pixel from the
//     nearest pixel of the other image" — precisely a distance-field lookup.
//   - Live drawing needs the incremental path: recomputing a 500×500 fill on
//     every stroke is wasteful when distances can only decrease.
//
// Determinism: for any source set S and any partition of S into batches, the
// converged field is identical whether produced by one Build or by a chain
// of Extend calls. Distances never increase across an Extend.
//
// Complexity:
//
//   - Build:   O(rows×cols) time, O(rows×cols) memory.
//   - Extend:  O(improved cells) time, bounded by O(rows×cols).
//
// Errors:
//
//   - ErrNoSources: a fill was requested with zero in-bounds sources.
//   - ErrBadShape: non-positive field dimensions.
//   - ErrShapeMismatch: flat data length disagrees with its declared shape.
package distfield

// Package pixel provides the coordinate primitives shared by the scoring
// engine: a value-typed canvas coordinate and a deduplicating, insertion-
// ordered set of drawn pixels.
//
// What:
//
//   - Coord is a (row, column) pair, compared and hashed by value.
//   - Set accumulates the pixels drawn so far in an observation. It grows
//     monotonically within a session and only shrinks on an explicit Clear.
//   - InsertNew filters a stroke batch down to the pixels not seen before,
//     preserving the caller-supplied order so downstream processing stays
//     deterministic.
//
// Why:
//
//   - Live drawing streams repeat pixels constantly (overlapping strokes,
//     re-traced lines); the engine must pay for each pixel only once.
//   - Membership and insertion are O(1) amortized, so dedup never dominates
//     an interactive update loop.
//
// Out-of-range coordinates are not this package's concern: consumers drop
// them silently when accumulating into fields and grids.
package pixel

// Package evaluate composes the distance-field engine into the two public
// scoring modes: full evaluation (reference and observation both supplied at
// once) and streaming evaluation (reference fixed, observation fed
// incrementally stroke by stroke).
//
// 🚀 What is a Session?
//
//	A Session owns one precomputed reference distance field plus the live
//	observation state. Construction runs the expensive reference flood fill
//	exactly once; after that, each stroke batch costs O(new pixels):
//	  • AddObservation — dedup, incremental field relaxation, grid rebuild,
//	    fresh top-K score.
//	  • ResetObservation — wipe the drawing, keep the reference.
//	  • FullResult — the complete ErrorMetrics (top-K, mean, pixel count,
//	    aggregation grid) once something has been drawn.
//	  • ExportState / Restore — serialize the immutable reference side so a
//	    later process skips the flood fill and restores bit-identically.
//
// ✨ Guarantees:
//
//   - Scores are numerically identical whether the observation arrives in
//     one batch or many, in any batching.
//   - AddObservation is idempotent under pixel repetition.
//   - After ResetObservation, a replayed observation reproduces exactly what
//     a fresh session would report.
//
// A Session is exclusively owned by one caller: every operation runs to
// completion synchronously and there is no internal locking. Run independent
// sessions for parallel evaluation; they share no mutable state.
//
// Errors:
//
//   - ErrEmptyReference: construction with no in-bounds reference pixels.
//   - ErrEmptyObservation: FullResult before any pixel was drawn.
//   - ErrBadCanvasSize, ErrBadTopK: invalid options.
//
// Logging is silent by default; see SetLogger.
package evaluate

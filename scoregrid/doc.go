// Package scoregrid turns two distance fields into a stable, cheaply
// recomputable error metric by aggregating pixel-level distances over a
// coarse K×K partition of the canvas.
//
// What:
//
//   - Grid is a K×K array of non-negative ints; cell (i,j) holds the worst
//     cross-field distance among the drawn pixels that fall in the
//     corresponding canvas block.
//   - Aggregator reduces both directions at once: each image's own pixels
//     are looked up in the other image's field, so a cell reflects the worst
//     local mismatch contributed by either drawing.
//   - TopK sums the K largest cells and normalizes by a fixed calibration
//     constant; Mean normalizes the average cross distance to a percentage.
//
// Why:
//
//   - Per-pixel worst case is noisy and per-canvas mean is too forgiving;
//     block-level maxima localize the error while staying O(drawn pixels)
//     to recompute on every stroke — never O(canvas).
//
// The normalization divisor (default 5.0) is a calibration constant carried
// over from the original scoring scale. It is deliberately not derived from
// the grid or canvas geometry; treat it as configuration, not math.
//
// Errors:
//
//   - ErrBadGridSize, ErrBadBlockSize, ErrBadDivisor: invalid options.
package scoregrid

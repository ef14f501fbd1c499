// Package report renders scoring results as self-contained HTML charts for
// quick visual inspection: the 10×10 aggregation grid as a block heatmap,
// and a distance field as a downsampled canvas heatmap.
//
// These are debugging and review surfaces, not part of the scoring engine;
// the engine's outputs stay plain values.
package report

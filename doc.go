// Package sketchscore scores how accurately a drawing reproduces a
// reference image, pixel by pixel, while the drawing is still in progress.
//
// 🚀 What is sketchscore?
//
//	A streaming drawing-accuracy engine built around BFS distance fields:
//		• pixel/     — canvas coordinates and insertion-ordered pixel sets
//		• distfield/ — multi-source flood fill with incremental extension
//		• scoregrid/ — block aggregation into top-K and mean error scores
//		• evaluate/  — the session API: build, stream strokes, export state
//		• canvas/    — sheet image decoding (reference left, drawing right)
//		• observe/   — stroke timing and speed statistics
//		• report/    — HTML heatmaps of error grids and distance fields
//		• store/     — SQLite cache for reference states and result history
//
// ✨ Why choose sketchscore?
//
//   - Incremental – each stroke batch costs O(new pixels), not O(canvas)
//   - Deterministic – identical pixel sets score identically, in any batching
//   - Resumable – export the reference fill once, restore it anywhere
//
// Quick usage:
//
//	sess, err := evaluate.NewSession(referencePixels, evaluate.DefaultOptions())
//	if err != nil { ... }
//	score, _ := sess.AddObservation(strokePixels) // running top-5 error
//	metrics, _ := sess.FullResult()               // full grid, mean, summary
//
// See each subpackage's doc.go for the details of its layer.
package sketchscore

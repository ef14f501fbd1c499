// File: evaluate/example_test.go
package evaluate_test

import (
	"fmt"

	"github.com/katalvlaran/sketchscore/evaluate"
	"github.com/katalvlaran/sketchscore/pixel"
)

////////////////////////////////////////////////////////////////////////////////
// Example: streaming evaluation
////////////////////////////////////////////////////////////////////////////////

// ExampleSession demonstrates the live-drawing loop: the reference is
// flood-filled once at construction, then each stroke batch updates the
// score in O(new pixels).
// Scenario:
//
//   - Reference: the single pixel (1,1) on a 3×3 canvas.
//   - First stroke hits the far corner (worst case), the second lands on
//     the reference pixel itself; the score never worsens as pixels land
//     closer.
func ExampleSession() {
	opts := evaluate.DefaultOptions()
	opts.CanvasSize = 3
	opts.GridSize = 3

	sess, _ := evaluate.NewSession([]pixel.Coord{{Row: 1, Col: 1}}, opts)

	score, _ := sess.AddObservation([]pixel.Coord{{Row: 0, Col: 0}})
	fmt.Printf("after stroke 1: %.2f\n", score)

	score, _ = sess.AddObservation([]pixel.Coord{{Row: 1, Col: 1}})
	fmt.Printf("after stroke 2: %.2f\n", score)

	metrics, _ := sess.FullResult()
	fmt.Println(metrics.Summary())

	// Output:
	// after stroke 1: 0.16
	// after stroke 2: 0.08
	// Top 5 error: 0.1%
	// Mean error: 13.3%
	// Pixel count: 1
}

////////////////////////////////////////////////////////////////////////////////
// Example: state export and restore
////////////////////////////////////////////////////////////////////////////////

// ExampleSession_ExportState shows caching the expensive reference fill:
// a restored session skips the flood fill and scores identically.
func ExampleSession_ExportState() {
	opts := evaluate.DefaultOptions()
	opts.CanvasSize = 3
	opts.GridSize = 3

	first, _ := evaluate.NewSession([]pixel.Coord{{Row: 1, Col: 1}}, opts)
	state := first.ExportState()

	resumed, _ := evaluate.Restore(state, opts)
	score, _ := resumed.AddObservation([]pixel.Coord{{Row: 0, Col: 0}})
	fmt.Printf("restored session score: %.2f\n", score)

	// Output:
	// restored session score: 0.16
}

// File: scoregrid/example_test.go
package scoregrid_test

import (
	"fmt"

	"github.com/katalvlaran/sketchscore/distfield"
	"github.com/katalvlaran/sketchscore/pixel"
	"github.com/katalvlaran/sketchscore/scoregrid"
)

// ExampleAggregator demonstrates the full reduction on a 4×4 canvas split
// into 2×2 blocks: cross distances are folded into per-block maxima, then
// collapsed into the top-K and mean statistics.
func ExampleAggregator() {
	refPixels := []pixel.Coord{{Row: 0, Col: 0}}
	obsPixels := []pixel.Coord{{Row: 3, Col: 3}}

	refField, _ := distfield.Build(4, 4, refPixels)
	obsField, _ := distfield.Build(4, 4, obsPixels)

	agg, _ := scoregrid.New(scoregrid.Options{GridSize: 2, BlockSize: 2, Divisor: 5})
	g := agg.Aggregate(obsPixels, refField, refPixels, obsField)

	for _, row := range g.Rows() {
		fmt.Println(row)
	}
	fmt.Printf("top-2: %.2f\n", agg.TopK(g, 2))

	dists := append(refField.Distances(obsPixels), obsField.Distances(refPixels)...)
	fmt.Printf("mean: %.0f%%\n", agg.Mean(dists))

	// Output:
	// [6 0]
	// [0 6]
	// top-2: 1.20
	// mean: 120%
}

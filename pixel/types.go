// Package pixel defines core types for the pixel subpackage of
// github.com/katalvlaran/sketchscore.
package pixel

import "fmt"

// Coord identifies a single canvas cell by (row, column).
// Equality and map hashing are by value.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// In reports whether c lies inside a rows×cols canvas.
// Complexity: O(1).
func (c Coord) In(rows, cols int) bool {
	return c.Row >= 0 && c.Row < rows && c.Col >= 0 && c.Col < cols
}

// String renders the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Filter returns the subset of batch that lies inside a rows×cols canvas,
// preserving order. The engine's policy for out-of-bounds pixels is to drop
// them silently rather than reject the batch.
// Complexity: O(len(batch)).
func Filter(batch []Coord, rows, cols int) []Coord {
	kept := make([]Coord, 0, len(batch))
	for _, c := range batch {
		if c.In(rows, cols) {
			kept = append(kept, c)
		}
	}
	return kept
}

package distfield

import "github.com/katalvlaran/sketchscore/pixel"

// Field is a dense rows×cols grid of shortest 4-connected distances,
// stored row-major. Cells hold either Unvisited or a non-negative distance
// to the nearest source pixel recorded so far.
//
// A Field is exclusively owned by its creator; it is not safe for
// concurrent use.
type Field struct {
	rows, cols int
	cells      []int
}

// NewEmpty returns an all-Unvisited field of the given shape.
// Returns ErrBadShape if rows or cols is non-positive.
// Complexity: O(rows×cols).
func NewEmpty(rows, cols int) (*Field, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	f := &Field{rows: rows, cols: cols, cells: make([]int, rows*cols)}
	f.Reset()
	return f, nil
}

// Rows returns the number of grid rows.
func (f *Field) Rows() int { return f.rows }

// Cols returns the number of grid columns.
func (f *Field) Cols() int { return f.cols }

// InBounds reports whether (row, col) lies within the field.
// Complexity: O(1).
func (f *Field) InBounds(row, col int) bool {
	return row >= 0 && row < f.rows && col >= 0 && col < f.cols
}

// At returns the stored distance at (row, col).
// The coordinate must be in bounds.
// Complexity: O(1).
func (f *Field) At(row, col int) int {
	return f.cells[row*f.cols+col]
}

// index maps (row, col) to a row-major offset.
func (f *Field) index(row, col int) int {
	return row*f.cols + col
}

// coordinate converts a row-major offset back to (row, col).
func (f *Field) coordinate(idx int) (row, col int) {
	return idx / f.cols, idx % f.cols
}

// Reset restores every cell to Unvisited, keeping the allocation.
// Complexity: O(rows×cols).
func (f *Field) Reset() {
	for i := range f.cells {
		f.cells[i] = Unvisited
	}
}

// Clone returns a deep copy of the field.
// Complexity: O(rows×cols).
func (f *Field) Clone() *Field {
	cells := make([]int, len(f.cells))
	copy(cells, f.cells)
	return &Field{rows: f.rows, cols: f.cols, cells: cells}
}

// Equal reports whether two fields have identical shape and cell values.
// Complexity: O(rows×cols).
func (f *Field) Equal(other *Field) bool {
	if other == nil || f.rows != other.rows || f.cols != other.cols {
		return false
	}
	for i, v := range f.cells {
		if v != other.cells[i] {
			return false
		}
	}
	return true
}

// Distances looks up the stored distance for each in-bounds coordinate in
// coords, in order. Out-of-bounds coordinates are skipped.
// Complexity: O(len(coords)).
func (f *Field) Distances(coords []pixel.Coord) []int {
	out := make([]int, 0, len(coords))
	for _, c := range coords {
		if f.InBounds(c.Row, c.Col) {
			out = append(out, f.At(c.Row, c.Col))
		}
	}
	return out
}

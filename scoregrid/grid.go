package scoregrid

// Grid is a size×size array of per-block maximum cross distances,
// stored row-major. The zero cell value means "no drawn pixel mapped here
// yet" — indistinguishable, by design, from a block whose worst distance is
// genuinely zero.
type Grid struct {
	size  int
	cells []int
}

// NewGrid returns an all-zero size×size grid.
// Returns ErrBadGridSize for non-positive sizes.
func NewGrid(size int) (*Grid, error) {
	if size <= 0 {
		return nil, ErrBadGridSize
	}
	return &Grid{size: size, cells: make([]int, size*size)}, nil
}

// Size returns the number of blocks per axis.
func (g *Grid) Size() int { return g.size }

// At returns the running maximum for block (i, j).
// The block index must be in range.
// Complexity: O(1).
func (g *Grid) At(i, j int) int {
	return g.cells[i*g.size+j]
}

// record folds a distance into block (i, j) via running maximum.
// Out-of-range block indexes are skipped silently.
func (g *Grid) record(i, j, dist int) {
	if i < 0 || i >= g.size || j < 0 || j >= g.size {
		return
	}
	if idx := i*g.size + j; dist > g.cells[idx] {
		g.cells[idx] = dist
	}
}

// Reset zeroes every cell, keeping the allocation.
// Complexity: O(size²).
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = 0
	}
}

// Cells returns a copy of the cells in row-major order.
// Complexity: O(size²).
func (g *Grid) Cells() []int {
	out := make([]int, len(g.cells))
	copy(out, g.cells)
	return out
}

// Rows returns the grid as a size×size matrix, row by row.
// Complexity: O(size²).
func (g *Grid) Rows() [][]int {
	out := make([][]int, g.size)
	for i := 0; i < g.size; i++ {
		row := make([]int, g.size)
		copy(row, g.cells[i*g.size:(i+1)*g.size])
		out[i] = row
	}
	return out
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]int, len(g.cells))
	copy(cells, g.cells)
	return &Grid{size: g.size, cells: cells}
}

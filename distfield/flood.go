package distfield

import "github.com/katalvlaran/sketchscore/pixel"

// Build — multi-source shortest-distance flood fill
//
// Description:
//
//	Computes, for every cell of a rows×cols canvas, the exact shortest
//	4-connected step count to the nearest pixel in sources.
//
// Algorithm Outline:
//  1. Initialize every cell to Unvisited.
//  2. Set each in-bounds source cell to distance 0 and enqueue it.
//  3. Pop cells FIFO; for each of the 4 orthogonal in-bounds neighbors that
//     is still Unvisited, store distance+1 and enqueue.
//
// FIFO order equals increasing-distance order here because every enqueued
// distance is exactly one more than its parent's (unit-weight expansion),
// so each cell is finalized the first time it is written.
//
// Postcondition: a finite grid is fully 4-connected, so with at least one
// source every cell is reachable and no Unvisited cell survives.
//
// Complexity: O(rows×cols) time, O(rows×cols) memory.
//
// Errors:
//   - ErrBadShape  — rows or cols non-positive.
//   - ErrNoSources — sources contains no in-bounds pixel; out-of-bounds
//     entries are dropped silently, but a fill needs at least one survivor.
func Build(rows, cols int, sources []pixel.Coord) (*Field, error) {
	f, err := NewEmpty(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(pixel.Filter(sources, rows, cols)) == 0 {
		return nil, ErrNoSources
	}
	f.Extend(sources)
	return f, nil
}

// Extend relaxes the field in place with newly observed source pixels.
//
// Each in-bounds source is forced to distance 0 and enqueued regardless of
// its prior value (re-adding a pixel is harmless — the same distances
// result). Propagation then overwrites a neighbor only when it is Unvisited
// or the candidate distance is strictly smaller than its stored value.
//
// Single-pass relaxation is sound because all edges have unit weight, the
// queue drains in non-decreasing distance order, and adding sources can
// only decrease a cell's distance, never increase it. A source already
// implied by existing pixels produces zero enqueue work beyond its own
// neighborhood; the call is then a cheap no-op.
//
// Out-of-bounds sources are dropped silently. Extending the all-Unvisited
// field produced by NewEmpty is exactly equivalent to Build.
//
// Complexity: O(improved cells) time, bounded by O(rows×cols).
func (f *Field) Extend(sources []pixel.Coord) {
	// Slice-backed FIFO; the cursor walk avoids per-pop reslicing.
	queue := make([]int, 0, len(sources))
	for _, c := range sources {
		if !f.InBounds(c.Row, c.Col) {
			continue
		}
		i := f.index(c.Row, c.Col)
		f.cells[i] = 0
		queue = append(queue, i)
	}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		row, col := f.coordinate(u)
		next := f.cells[u] + 1
		for _, d := range neighborOffsets {
			nr, nc := row+d[0], col+d[1]
			if !f.InBounds(nr, nc) {
				continue
			}
			v := f.index(nr, nc)
			if f.cells[v] == Unvisited || next < f.cells[v] {
				f.cells[v] = next
				queue = append(queue, v)
			}
		}
	}
}

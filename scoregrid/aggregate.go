package scoregrid

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/sketchscore/distfield"
	"github.com/katalvlaran/sketchscore/pixel"
)

// Aggregator reduces pixel-level cross distances into block-level maxima and
// derives the top-K and mean error statistics. It is stateless apart from
// its configuration; one Aggregator may serve many grids.
type Aggregator struct {
	gridSize  int
	blockSize int
	divisor   float64
}

// New constructs an Aggregator from opts, validating them.
func New(opts Options) (*Aggregator, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &Aggregator{
		gridSize:  opts.GridSize,
		blockSize: opts.BlockSize,
		divisor:   opts.Divisor,
	}, nil
}

// NewGrid allocates an all-zero grid matching the aggregator's size.
func (a *Aggregator) NewGrid() *Grid {
	g, _ := NewGrid(a.gridSize) // gridSize validated at construction
	return g
}

// AggregateInto recomputes g in full from the current pixel sets:
// every pixel of image A is looked up in B's field ("how far is this A-drawn
// pixel from the nearest B pixel") and folded into its block via running
// maximum, and symmetrically for B against A's field. Out-of-bounds pixels
// are skipped silently.
//
// Cost is O(len(ownA)+len(ownB)) — proportional to drawn pixels, never to
// canvas size — which is what keeps per-stroke recomputation cheap.
func (a *Aggregator) AggregateInto(g *Grid, ownA []pixel.Coord, crossA *distfield.Field, ownB []pixel.Coord, crossB *distfield.Field) {
	g.Reset()
	a.fold(g, ownA, crossA)
	a.fold(g, ownB, crossB)
}

// Aggregate is AggregateInto with a freshly allocated grid.
func (a *Aggregator) Aggregate(ownA []pixel.Coord, crossA *distfield.Field, ownB []pixel.Coord, crossB *distfield.Field) *Grid {
	g := a.NewGrid()
	a.AggregateInto(g, ownA, crossA, ownB, crossB)
	return g
}

// fold records one image's pixels against the other image's field.
func (a *Aggregator) fold(g *Grid, own []pixel.Coord, cross *distfield.Field) {
	for _, c := range own {
		if !cross.InBounds(c.Row, c.Col) {
			continue
		}
		g.record(c.Row/a.blockSize, c.Col/a.blockSize, cross.At(c.Row, c.Col))
	}
}

// TopK returns the sum of the k largest cell values divided by k×Divisor.
// The requested k stays the normalizer even when it exceeds the cell count:
// a small grid then contributes fewer summands against the same divisor,
// keeping scores comparable across grid sizes.
//
// An entirely zero grid scores 0.0. Note the accepted ambiguity: "nothing
// drawn anywhere" and "every block's worst distance is zero" are
// indistinguishable at this level; callers that care must check pixel
// counts before scoring.
//
// Complexity: O(size² log size²) for the sort.
func (a *Aggregator) TopK(g *Grid, k int) float64 {
	if k <= 0 {
		return 0
	}
	cells := g.Cells()
	sort.Sort(sort.Reverse(sort.IntSlice(cells)))
	n := k
	if n > len(cells) {
		n = len(cells)
	}
	sum := 0
	for _, v := range cells[:n] {
		sum += v
	}
	return float64(sum) / (float64(k) * a.divisor)
}

// Mean returns the average of dists, normalized by Divisor and scaled to a
// percentage. Returns 0.0 for an empty sequence.
// Complexity: O(len(dists)).
func (a *Aggregator) Mean(dists []int) float64 {
	if len(dists) == 0 {
		return 0
	}
	xs := make([]float64, len(dists))
	for i, d := range dists {
		xs[i] = float64(d)
	}
	return stat.Mean(xs, nil) / a.divisor * 100.0
}

package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	// Decoder registrations for the sheet formats in the wild.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/katalvlaran/sketchscore/pixel"
)

// Sheet layout constants. A sheet holds the reference drawing at columns
// [0,500) and the observation at columns [510,1010), both spanning rows
// [0,500); the 10-column gutter keeps the halves visually separate.
const (
	// RegionSize is the edge length of each square drawing region.
	RegionSize = 500
	// ObservationOffset is the column where the observation region begins.
	ObservationOffset = 510
	// MinWidth and MinHeight bound the smallest decodable sheet.
	MinWidth  = ObservationOffset + RegionSize
	MinHeight = RegionSize
)

// Channel background values: white paper reads 255 on the luma channel,
// an untouched transparent canvas reads 0 on alpha.
const (
	whiteBackground       uint8 = 255
	transparentBackground uint8 = 0
)

// ErrBadDimensions indicates a decoded image too small for the sheet layout.
var ErrBadDimensions = errors.New("canvas: image smaller than the 1010×500 sheet layout")

// Sheet is one decoded drawing sheet reduced to a single channel.
type Sheet struct {
	vals        [][]uint8
	transparent bool
}

// Load decodes the image file at path into a Sheet.
// transparent selects the extracted channel: alpha when true, luma (red)
// when false.
func Load(path string, transparent bool) (*Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("canvas: open sheet: %w", err)
	}
	defer f.Close()
	return Decode(f, transparent)
}

// Decode reads one image from r and reduces it to a Sheet.
func Decode(r io.Reader, transparent bool) (*Sheet, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("canvas: decode sheet: %w", err)
	}
	return FromImage(img, transparent)
}

// FromImage reduces an already-decoded image to a Sheet.
// Returns ErrBadDimensions when the image cannot hold both regions.
func FromImage(img image.Image, transparent bool) (*Sheet, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < MinWidth || h < MinHeight {
		return nil, fmt.Errorf("canvas: got %d×%d: %w", w, h, ErrBadDimensions)
	}

	vals := make([][]uint8, h)
	for y := 0; y < h; y++ {
		row := make([]uint8, w)
		for x := 0; x < w; x++ {
			c := color.RGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.RGBA)
			if transparent {
				row[x] = c.A
			} else {
				row[x] = c.R
			}
		}
		vals[y] = row
	}
	return &Sheet{vals: vals, transparent: transparent}, nil
}

// Transparent reports which channel the sheet was extracted from.
func (s *Sheet) Transparent() bool { return s.transparent }

// Reference returns the left 500×500 region as a presence grid.
func (s *Sheet) Reference() *Grid {
	return s.region(0)
}

// Observation returns the right 500×500 region as a presence grid.
func (s *Sheet) Observation() *Grid {
	return s.region(ObservationOffset)
}

// region reduces one 500×500 window, starting at colOffset, to a Grid.
func (s *Sheet) region(colOffset int) *Grid {
	bg := whiteBackground
	if s.transparent {
		bg = transparentBackground
	}
	g := &Grid{
		rows:        RegionSize,
		cols:        RegionSize,
		present:     make([]bool, RegionSize*RegionSize),
		colorCounts: make(map[uint8]int),
	}
	for r := 0; r < RegionSize; r++ {
		for c := 0; c < RegionSize; c++ {
			v := s.vals[r][colOffset+c]
			g.colorCounts[v]++
			if v != bg {
				g.present[r*RegionSize+c] = true
				g.drawn++
			}
		}
	}
	return g
}

// Grid is one drawing region reduced to pixel presence.
type Grid struct {
	rows, cols  int
	present     []bool
	drawn       int
	colorCounts map[uint8]int
}

// Rows returns the region height.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the region width.
func (g *Grid) Cols() int { return g.cols }

// Drawn reports whether (row, col) holds a non-background pixel.
func (g *Grid) Drawn(row, col int) bool {
	return g.present[row*g.cols+col]
}

// DrawnCount returns the number of non-background pixels.
func (g *Grid) DrawnCount() int { return g.drawn }

// ColorCounts returns the per-channel-value histogram of the region,
// background included. The map is shared; callers must not mutate it.
func (g *Grid) ColorCounts() map[uint8]int { return g.colorCounts }

// Pixels extracts the drawn coordinates in row-major order — the exact
// input shape the scoring engine expects.
// Complexity: O(rows×cols).
func (g *Grid) Pixels() []pixel.Coord {
	out := make([]pixel.Coord, 0, g.drawn)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.present[r*g.cols+c] {
				out = append(out, pixel.Coord{Row: r, Col: c})
			}
		}
	}
	return out
}

package tilemap

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Grid is a dense W x H array of tile categories, backed by a single
// contiguous buffer. W and H must both be >= 10.
type Grid struct {
	width, height int
	cells         []Category
}

// NewGrid allocates a width x height grid, every cell Empty. It panics if
// either dimension is below the map-size minimum of 10.
func NewGrid(width, height int) *Grid {
	if width < 10 || height < 10 {
		panic(fmt.Sprintf("tilemap: grid dimensions must be >= 10, got %dx%d", width, height))
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Category, width*height),
	}
}

// Width returns the grid's width.
func (g *Grid) Width() int { return g.width }

// Height returns the grid's height.
func (g *Grid) Height() int { return g.height }

// IsValidPosition reports whether (x, y) lies within [0, W) x [0, H).
func (g *Grid) IsValidPosition(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the category at (x, y). Accessing an out-of-bounds cell is
// a programming error and panics.
func (g *Grid) Get(x, y int) Category {
	if !g.IsValidPosition(x, y) {
		panic(fmt.Sprintf("tilemap: Get out of bounds (%d, %d) in %dx%d grid", x, y, g.width, g.height))
	}
	return g.cells[y*g.width+x]
}

// Set writes the category at (x, y). Accessing an out-of-bounds cell is a
// programming error and panics.
func (g *Grid) Set(x, y int, c Category) {
	if !g.IsValidPosition(x, y) {
		panic(fmt.Sprintf("tilemap: Set out of bounds (%d, %d) in %dx%d grid", x, y, g.width, g.height))
	}
	g.cells[y*g.width+x] = c
}

// Checksum returns a fast, non-cryptographic content fingerprint of the
// grid, usable to assert that two grids are identical without a
// cell-by-cell comparison.
func (g *Grid) Checksum() uint64 {
	buf := make([]byte, len(g.cells))
	for i, c := range g.cells {
		buf[i] = byte(c)
	}
	return xxhash.Sum64(buf)
}

// ASCII renders a human-readable diagnostic dump: one line per row,
// Category.Rune() per cell.
func (g *Grid) ASCII() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			b.WriteRune(g.Get(x, y).Rune())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Package dungeon implements the generator driver: it orchestrates
// split -> room generation -> rasterization -> connect, and owns the
// resulting tree, rooms array, and tile grid for the duration of one run.
package dungeon

import (
	"github.com/mrasmith/dungeonforge/internal/geom"
	"github.com/mrasmith/dungeonforge/internal/tilemap"
)

// Map is the read-only surface a generation run produces: a tile grid
// plus, for debugging/visualization, the rooms and leaf region rects
// that produced it.
type Map struct {
	grid        *tilemap.Grid
	rooms       []geom.Rect
	leafRegions []geom.Rect
}

// Width returns the map's width in cells.
func (m *Map) Width() int { return m.grid.Width() }

// Height returns the map's height in cells.
func (m *Map) Height() int { return m.grid.Height() }

// IsValidPosition reports whether (x, y) lies within the map bounds.
func (m *Map) IsValidPosition(x, y int) bool { return m.grid.IsValidPosition(x, y) }

// Get returns the tile category at (x, y).
func (m *Map) Get(x, y int) tilemap.Category { return m.grid.Get(x, y) }

// Rooms returns the rects of every room placed during generation.
func (m *Map) Rooms() []geom.Rect {
	out := make([]geom.Rect, len(m.rooms))
	copy(out, m.rooms)
	return out
}

// LeafRegions returns the bounds of every BSP leaf, filled or not —
// provided for debugging/visualization.
func (m *Map) LeafRegions() []geom.Rect {
	out := make([]geom.Rect, len(m.leafRegions))
	copy(out, m.leafRegions)
	return out
}

// Checksum returns a content fingerprint of the tile grid, usable to
// assert that two runs produced a bit-identical grid.
func (m *Map) Checksum() uint64 { return m.grid.Checksum() }

// ASCII renders a human-readable diagnostic dump of the tile grid.
func (m *Map) ASCII() string { return m.grid.ASCII() }

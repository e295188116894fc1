// Package roomwriter rasterizes a sampled room rect into the tile grid,
// painting interior cells floor and border cells wall or floor depending
// on the door-aware wall-omission test.
package roomwriter

import (
	"fmt"

	"github.com/mrasmith/dungeonforge/internal/geom"
	"github.com/mrasmith/dungeonforge/internal/tilemap"
)

// Write paints room into grid: interior cells become Floor; border cells
// become Wall, unless the three cells immediately outside that border
// are all already Wall or Door, in which case the border cell is omitted
// (painted Floor instead) for a seamless join with an earlier room or
// corridor.
func Write(grid *tilemap.Grid, room geom.Rect) {
	for y := room.Top; y < room.Bottom; y++ {
		for x := room.Left; x < room.Right; x++ {
			if !grid.IsValidPosition(x, y) {
				continue
			}
			onLeft := x == room.Left
			onRight := x == room.Right-1
			onTop := y == room.Top
			onBottom := y == room.Bottom-1

			if !onLeft && !onRight && !onTop && !onBottom {
				grid.Set(x, y, tilemap.Floor)
				continue
			}

			// Rooms are at least 2x2, so no cell sits on both borders of
			// one axis. A cell on a single border is decided by that
			// border's omission test; a corner cell (one border on each
			// axis) falls through to the default branch below.
			onX := onLeft || onRight
			onY := onTop || onBottom
			omit := false
			switch {
			case onTop && !onBottom && !onX:
				omit = omitsWall(grid, x, y, 0, -1)
			case onBottom && !onTop && !onX:
				omit = omitsWall(grid, x, y, 0, 1)
			case onLeft && !onRight && !onY:
				omit = omitsWall(grid, x, y, -1, 0)
			case onRight && !onLeft && !onY:
				omit = omitsWall(grid, x, y, 1, 0)
			default:
				// A genuine corner cell: both axes border. Evaluate both
				// borders' outside triples; omit only if both agree,
				// preserving the mutual-exclusion invariant that a
				// corner never omits into a half-open wall.
				var dxs, dys []int
				if onLeft {
					dxs = append(dxs, -1)
				}
				if onRight {
					dxs = append(dxs, 1)
				}
				if onTop {
					dys = append(dys, -1)
				}
				if onBottom {
					dys = append(dys, 1)
				}
				if len(dxs) != 1 || len(dys) != 1 {
					panic(fmt.Sprintf("roomwriter: corner cell (%d,%d) borders more than one edge per axis", x, y))
				}
				omit = omitsWall(grid, x, y, dxs[0], 0) && omitsWall(grid, x, y, 0, dys[0])
			}

			if omit {
				grid.Set(x, y, tilemap.Floor)
			} else {
				grid.Set(x, y, tilemap.Wall)
			}
		}
	}
}

// omitsWall implements the three-cell wall-omission test for a border
// cell at (x, y) whose outward normal is (dx, dy): the three cells
// outside the room along that border are the normal-direction neighbor
// and its two lateral neighbors (e.g. for a top border: NW, N, NE). If
// all three are already Wall or Door, the border is omitted.
func omitsWall(grid *tilemap.Grid, x, y, dx, dy int) bool {
	var neighbors [3][2]int
	if dx == 0 {
		// horizontal border (top/bottom): lateral axis is x
		neighbors = [3][2]int{{x - 1, y + dy}, {x, y + dy}, {x + 1, y + dy}}
	} else {
		// vertical border (left/right): lateral axis is y
		neighbors = [3][2]int{{x + dx, y - 1}, {x + dx, y}, {x + dx, y + 1}}
	}

	for _, n := range neighbors {
		if !grid.IsValidPosition(n[0], n[1]) {
			return false
		}
		c := grid.Get(n[0], n[1])
		if c != tilemap.Wall && c != tilemap.Door {
			return false
		}
	}
	return true
}

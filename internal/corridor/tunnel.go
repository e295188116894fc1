package corridor

import (
	"github.com/mrasmith/dungeonforge/internal/geom"
	"github.com/mrasmith/dungeonforge/internal/tilemap"
)

// tunnelable evaluates the three-cell tunnelability predicate at p for a
// step in dir:
//
//   - ahead out-of-bounds -> no.
//   - ahead is not wall -> yes.
//   - else if either left or right is out-of-bounds -> no.
//   - else if both left and right are wall -> maybe: look one further
//     step ahead and apply the rule afresh there; the current step is
//     yes only if that triple is yes (a second maybe counts as no, and
//     nothing beyond it is examined).
//   - else -> no.
func tunnelable(grid *tilemap.Grid, p geom.Point, dir direction) bool {
	ahead := p.Add(dir.step)
	if !grid.IsValidPosition(ahead.X, ahead.Y) {
		return false
	}
	if grid.Get(ahead.X, ahead.Y) != tilemap.Wall {
		return true
	}

	left := p.Add(dir.left)
	right := p.Add(dir.right)
	if !grid.IsValidPosition(left.X, left.Y) || !grid.IsValidPosition(right.X, right.Y) {
		return false
	}

	if grid.Get(left.X, left.Y) == tilemap.Wall && grid.Get(right.X, right.Y) == tilemap.Wall {
		// The triple one step further is yes only when its ahead cell is
		// in bounds and not Wall; every other outcome there is not yes.
		beyond := ahead.Add(dir.step)
		return grid.IsValidPosition(beyond.X, beyond.Y) && grid.Get(beyond.X, beyond.Y) != tilemap.Wall
	}
	return false
}

// makeConnectionTunnel walks in unit steps along the sign of whichever of
// dx, dy is nonzero on entry (exactly one must be), carving as it goes,
// until the tunnelability predicate yields no or the remaining delta
// reaches zero. It returns the final position reached.
//
// At each step where the predicate yields yes, the target cell's
// category transforms Empty -> Corridor, Wall -> Door, and is otherwise
// left unchanged, then p advances and the remaining delta is decremented
// toward zero.
func makeConnectionTunnel(grid *tilemap.Grid, p geom.Point, dx, dy int) geom.Point {
	dir := axisDirection(dx, dy)
	remaining := dx
	if dx == 0 {
		remaining = dy
	}

	for remaining != 0 {
		if !tunnelable(grid, p, dir) {
			break
		}
		next := p.Add(dir.step)
		switch grid.Get(next.X, next.Y) {
		case tilemap.Empty:
			grid.Set(next.X, next.Y, tilemap.Corridor)
		case tilemap.Wall:
			grid.Set(next.X, next.Y, tilemap.Door)
		}
		p = next
		if remaining > 0 {
			remaining--
		} else {
			remaining++
		}
	}
	return p
}

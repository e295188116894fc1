// Package corridor routes a corridor between the rooms of two sibling
// BSP subtrees: connect() recurses the tree bottom-up, doConnect()
// walks a segmented, randomized path between two rects, and
// makeConnectionTunnel() (tunnel.go) carves that path cell by cell,
// gated by the tunnelability predicate.
package corridor

import (
	"context"
	"math"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/mrasmith/dungeonforge/internal/bsptree"
	"github.com/mrasmith/dungeonforge/internal/geom"
	"github.com/mrasmith/dungeonforge/internal/params"
	"github.com/mrasmith/dungeonforge/internal/rng"
	"github.com/mrasmith/dungeonforge/internal/tilemap"
)

// maxAttempts is the soft-failure cap on doConnect's segment loop.
const maxAttempts = 100

// resetEvery loosens progress deadlocks by resetting the walk back to
// its starting point every this-many attempts.
const resetEvery = 20

// Connect recursively connects the rooms under node:
//
//   - Leaf: (true, room) if the leaf owns a room; else (false, bounds).
//   - Internal: recurse both children. If both report a room, carve a
//     corridor between their representative rects and return one of the
//     two by a fair coin. If exactly one has a room, propagate it
//     upward uncarved. If neither does, propagate (false, bounds).
func Connect(ctx context.Context, tree *bsptree.Tree, rooms []geom.Rect, nodeIdx int, grid *tilemap.Grid, p params.Params, src rng.Source, log *logrus.Logger) (bool, geom.Rect) {
	node := tree.Nodes[nodeIdx]

	if node.IsLeaf() {
		if node.HasRoom() {
			return true, rooms[node.Second]
		}
		return false, node.Bounds
	}

	aHas, aRect := Connect(ctx, tree, rooms, node.First, grid, p, src, log)
	bHas, bRect := Connect(ctx, tree, rooms, node.Second, grid, p, src, log)

	switch {
	case aHas && bHas:
		doConnect(ctx, node.Bounds, aRect, bRect, grid, p, src, log)
		if src.FairBool() {
			return true, aRect
		}
		return true, bRect
	case aHas:
		return true, aRect
	case bHas:
		return true, bRect
	default:
		return false, node.Bounds
	}
}

// doConnect routes a corridor from center(first) to center(second) by
// iterated random segments. bounds is unused by the routing itself
// (corridors may legitimately cross into sibling territory); it is
// accepted to keep the call shape symmetric with Connect and is
// available for future geometric sanity checks.
func doConnect(ctx context.Context, bounds, first, second geom.Rect, grid *tilemap.Grid, p params.Params, src rng.Source, log *logrus.Logger) {
	start := first.Center()
	target := second.Center()
	cur := start
	n := 0

	for !second.Contains(cur) {
		r := int(math.Round(float64(n) * p.CorridorRandomness))
		jitterX := 0
		jitterY := 0
		if r > 0 {
			jitterX = src.UniformInt(-r, r)
			jitterY = src.UniformInt(-r, r)
		}
		v := geom.Vector{X: (target.X - cur.X) + jitterX, Y: (target.Y - cur.Y) + jitterY}

		segLen := src.UniformInt(p.CorridorSegmentLengthRange.Lower, p.CorridorSegmentLengthRange.Upper)
		v = v.Clamp(segLen)

		if src.FairBool() {
			cur = makeConnectionTunnel(grid, cur, v.X, 0)
			cur = makeConnectionTunnel(grid, cur, 0, v.Y)
		} else {
			cur = makeConnectionTunnel(grid, cur, 0, v.Y)
			cur = makeConnectionTunnel(grid, cur, v.X, 0)
		}

		n++
		if n == maxAttempts {
			if log != nil {
				log.WithFields(logrus.Fields{
					"attempts": n,
					"from":     start,
					"to":       target,
				}).Warn("corridor: gave up reaching target after max attempts")
			}
			trace.SpanFromContext(ctx).AddEvent("corridor.stall", trace.WithAttributes(
				attribute.Int("corridor.attempts", n),
				attribute.Int("corridor.from.x", start.X),
				attribute.Int("corridor.from.y", start.Y),
				attribute.Int("corridor.to.x", target.X),
				attribute.Int("corridor.to.y", target.Y),
			))
			return
		}
		if n%resetEvery == 0 {
			cur = start
		}
	}
}

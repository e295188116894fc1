package dungeon

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/mrasmith/dungeonforge/internal/bsptree"
	"github.com/mrasmith/dungeonforge/internal/corridor"
	"github.com/mrasmith/dungeonforge/internal/geom"
	"github.com/mrasmith/dungeonforge/internal/params"
	"github.com/mrasmith/dungeonforge/internal/restrict"
	"github.com/mrasmith/dungeonforge/internal/rng"
	"github.com/mrasmith/dungeonforge/internal/roomgen"
	"github.com/mrasmith/dungeonforge/internal/roomwriter"
	"github.com/mrasmith/dungeonforge/internal/tilemap"
)

// Generator is an opaque generation driver: construct it, then call
// Generate — no other state is exposed. One Generator can run many
// generations; each run clears and rebuilds its owned tree, rooms
// array, and grid from scratch, never carrying state between runs.
type Generator struct {
	tracer trace.Tracer
	log    *logrus.Logger

	tree  *bsptree.Tree
	rooms []geom.Rect
	grid  *tilemap.Grid
}

// NewGenerator builds a Generator. tracer and log may both be nil — a
// nil tracer falls back to a no-op tracer, a nil log silences
// the soft corridor-stall warning.
func NewGenerator(tracer trace.Tracer, log *logrus.Logger) *Generator {
	if tracer == nil {
		tracer = trace.NewNoopTracerProvider().Tracer("dungeonforge/noop")
	}
	return &Generator{tracer: tracer, log: log}
}

// Generate runs one full pipeline:
//
//	clear tree, rooms, grid
//	push root node with full map bounds
//	for i from 0 while i < len(nodes): split_node(nodes[i])
//	for each leaf node: maybe generate room
//	for each filled leaf: rasterize room
//	connect(root)
//
// src is borrowed, not owned: the caller controls its lifetime and seed.
// The same (seed, params) pair reproduces a bit-identical Map;
// Report.RunID is the one draw that happens outside that guarantee (see
// report.go).
func (g *Generator) Generate(ctx context.Context, src rng.Source, mapWidth, mapHeight int, p params.Params) (*Map, Report) {
	mw := restrict.NewMapSize(mapWidth)
	mh := restrict.NewMapSize(mapHeight)
	p = p.Validate()

	ctx, span := g.tracer.Start(ctx, "dungeon.generate")
	defer span.End()
	start := time.Now()

	root := geom.NewRect(0, 0, mw.Int(), mh.Int())
	if g.tree == nil {
		g.tree = bsptree.NewTree(root)
	} else {
		g.tree.Reset(root)
	}
	g.rooms = g.rooms[:0]
	g.grid = tilemap.NewGrid(mw.Int(), mh.Int())

	g.splitTree(p, src)
	g.generateRooms(p, src)
	g.rasterizeRooms()
	corridor.Connect(ctx, g.tree, g.rooms, 0, g.grid, p, src, g.log)

	leafIdxs := g.tree.Leaves()
	leafRegions := make([]geom.Rect, len(leafIdxs))
	for i, idx := range leafIdxs {
		leafRegions[i] = g.tree.Nodes[idx].Bounds
	}

	report := Report{
		RunID:     uuid.New(),
		Duration:  time.Since(start),
		RoomCount: len(g.rooms),
		LeafCount: len(leafIdxs),
	}

	span.SetAttributes(
		attribute.Int("dungeon.width", mw.Int()),
		attribute.Int("dungeon.height", mh.Int()),
		attribute.Int("dungeon.room_count", report.RoomCount),
		attribute.Int("dungeon.leaf_count", report.LeafCount),
		attribute.Int64("dungeon.generation_ms", report.Duration.Milliseconds()),
		attribute.String("dungeon.run_id", report.RunID.String()),
	)

	rooms := make([]geom.Rect, len(g.rooms))
	copy(rooms, g.rooms)

	return &Map{grid: g.grid, rooms: rooms, leafRegions: leafRegions}, report
}

// splitTree performs an index-based breadth-first split sweep: it
// appends at most two children per split, and since the loop bound is
// re-read each iteration, newly appended children are themselves
// visited for further splitting.
func (g *Generator) splitTree(p params.Params, src rng.Source) {
	minW := p.RegionWidthRange.Lower
	minH := p.RegionHeightRange.Lower
	maxW := p.RegionWidthRange.Upper
	maxH := p.RegionHeightRange.Upper
	threshold := p.SplitAspect.Float64()
	limitAspect := p.SplitLimitAspect.Float64()
	chance := p.RegionSplitChance.Int()

	for i := 0; i < len(g.tree.Nodes); i++ {
		node := g.tree.Nodes[i]
		if !node.IsLeaf() {
			continue
		}
		if !bsptree.DoSplit(node.Bounds, maxW, maxH, limitAspect, chance, src) {
			continue
		}
		t := bsptree.GetSplitType(node.Bounds, minW, minH, threshold, src)
		if t == bsptree.None {
			continue
		}
		_, first, second := bsptree.SplitRect(node.Bounds, t, minW, minH, src)
		g.tree.AppendChildren(i, first, second)
	}
}

// generateRooms decides and samples a room for every leaf, recording
// each accepted room in the rooms array and wiring its index back onto
// the owning leaf.
func (g *Generator) generateRooms(p params.Params, src rng.Source) {
	for _, idx := range g.tree.Leaves() {
		leaf := g.tree.Nodes[idx]
		room, ok := roomgen.Generate(leaf.Bounds, p, src)
		if !ok {
			continue
		}
		roomIdx := len(g.rooms)
		g.rooms = append(g.rooms, room)
		g.tree.SetRoom(idx, roomIdx)
	}
}

// rasterizeRooms paints every filled leaf's room into the grid.
func (g *Generator) rasterizeRooms() {
	for _, idx := range g.tree.Leaves() {
		node := g.tree.Nodes[idx]
		if !node.HasRoom() {
			continue
		}
		roomwriter.Write(g.grid, g.rooms[node.Second])
	}
}

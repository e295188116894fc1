package dungeon

import (
	"context"
	"testing"

	"github.com/mrasmith/dungeonforge/internal/geom"
	"github.com/mrasmith/dungeonforge/internal/params"
	"github.com/mrasmith/dungeonforge/internal/restrict"
	"github.com/mrasmith/dungeonforge/internal/rng"
	"github.com/mrasmith/dungeonforge/internal/tilemap"
)

// TestGenerateDeterministic covers the determinism contract: the same
// (seed, params) pair reproduces a bit-identical grid and leaf list.
func TestGenerateDeterministic(t *testing.T) {
	p := params.Default()
	ctx := context.Background()

	g1 := NewGenerator(nil, nil)
	m1, _ := g1.Generate(ctx, rng.NewSeeded(99), 64, 64, p)

	g2 := NewGenerator(nil, nil)
	m2, _ := g2.Generate(ctx, rng.NewSeeded(99), 64, 64, p)

	if m1.Checksum() != m2.Checksum() {
		t.Fatal("identical seed and params should produce identical grids")
	}

	l1, l2 := m1.LeafRegions(), m2.LeafRegions()
	if len(l1) != len(l2) {
		t.Fatalf("leaf region count differs: %d vs %d", len(l1), len(l2))
	}
	for i := range l1 {
		if l1[i] != l2[i] {
			t.Fatalf("leaf region %d differs: %+v vs %+v", i, l1[i], l2[i])
		}
	}
}

// TestGenerateDimensionsMatchParams covers that the grid dimensions
// match the requested width and height exactly.
func TestGenerateDimensionsMatchParams(t *testing.T) {
	g := NewGenerator(nil, nil)
	m, _ := g.Generate(context.Background(), rng.NewSeeded(1), 40, 30, params.Default())
	if m.Width() != 40 || m.Height() != 30 {
		t.Fatalf("expected 40x30, got %dx%d", m.Width(), m.Height())
	}
}

// TestGenerateLeavesPartitionRoot covers the partition invariant: every
// leaf lies inside the root, the union of leaves equals the root, and
// leaf interiors are pairwise disjoint. Checked here by rasterizing
// leaf coverage onto a counting grid.
func TestGenerateLeavesPartitionRoot(t *testing.T) {
	g := NewGenerator(nil, nil)
	m, _ := g.Generate(context.Background(), rng.NewSeeded(7), 50, 40, params.Default())

	counts := make([][]int, m.Height())
	for y := range counts {
		counts[y] = make([]int, m.Width())
	}

	root := geom.NewRect(0, 0, m.Width(), m.Height())
	for _, leaf := range m.LeafRegions() {
		if leaf.Left < root.Left || leaf.Top < root.Top || leaf.Right > root.Right || leaf.Bottom > root.Bottom {
			t.Fatalf("leaf %+v escapes root bounds %+v", leaf, root)
		}
		for y := leaf.Top; y < leaf.Bottom; y++ {
			for x := leaf.Left; x < leaf.Right; x++ {
				counts[y][x]++
			}
		}
	}

	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if counts[y][x] != 1 {
				t.Fatalf("cell (%d,%d) covered by %d leaves, expected exactly 1", x, y, counts[y][x])
			}
		}
	}
}

// TestGenerateRoomInteriorIsFloor covers that every room's interior
// cells rasterize to Floor.
func TestGenerateRoomInteriorIsFloor(t *testing.T) {
	g := NewGenerator(nil, nil)
	m, _ := g.Generate(context.Background(), rng.NewSeeded(3), 64, 64, params.Default())

	for _, room := range m.Rooms() {
		for y := room.Top + 1; y < room.Bottom-1; y++ {
			for x := room.Left + 1; x < room.Right-1; x++ {
				if m.Get(x, y) != tilemap.Floor {
					t.Fatalf("room %+v interior cell (%d,%d) is %v, want Floor", room, x, y, m.Get(x, y))
				}
			}
		}
	}
}

// TestGenerateWallsAdjacentToOpenCell covers that no wall cell floats
// disconnected from every open cell.
func TestGenerateWallsAdjacentToOpenCell(t *testing.T) {
	g := NewGenerator(nil, nil)
	m, _ := g.Generate(context.Background(), rng.NewSeeded(1984), 64, 64, params.Default())

	offsets := [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if m.Get(x, y) != tilemap.Wall {
				continue
			}
			open := false
			for _, o := range offsets {
				nx, ny := x+o[0], y+o[1]
				if m.IsValidPosition(nx, ny) && (m.Get(nx, ny) == tilemap.Floor || m.Get(nx, ny) == tilemap.Door) {
					open = true
					break
				}
			}
			if !open {
				t.Fatalf("wall at (%d,%d) has no adjacent floor/door cell", x, y)
			}
		}
	}
}

// TestGenerateSmallMapProducesNoRooms covers that a zero
// room-generation chance produces an entirely empty grid whose leaf
// regions still cover the map exactly.
func TestGenerateSmallMapProducesNoRooms(t *testing.T) {
	p := params.Default()
	p.RoomGenerationChance = restrict.NewPercentage(0)

	g := NewGenerator(nil, nil)
	m, _ := g.Generate(context.Background(), rng.NewSeeded(1), 10, 10, p)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if m.Get(x, y) != tilemap.Empty {
				t.Fatalf("expected an entirely Empty grid, found %v at (%d,%d)", m.Get(x, y), x, y)
			}
		}
	}

	area := 0
	for _, leaf := range m.LeafRegions() {
		area += leaf.Width() * leaf.Height()
	}
	if area != 100 {
		t.Fatalf("expected leaf regions to cover exactly 100 cells, got %d", area)
	}
}

// TestGenerateSingleRoomWhenSplitChanceIsZero covers that with a zero
// region-split chance on a map under the split-limit aspect, the root
// never splits, so a guaranteed room yields exactly one room and no
// corridors.
func TestGenerateSingleRoomWhenSplitChanceIsZero(t *testing.T) {
	p := params.Default()
	p.RegionSplitChance = restrict.NewPercentage(0)
	p.RoomGenerationChance = restrict.NewPercentage(100)

	g := NewGenerator(nil, nil)
	m, _ := g.Generate(context.Background(), rng.NewSeeded(1), 10, 10, p)

	rooms := m.Rooms()
	if len(rooms) != 1 {
		t.Fatalf("expected exactly one room, got %d", len(rooms))
	}

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			c := m.Get(x, y)
			if c == tilemap.Corridor || c == tilemap.Door {
				t.Fatalf("expected no corridor carving with a single room, found %v at (%d,%d)", c, x, y)
			}
		}
	}
}

// TestGenerateAllRoomsAreMutuallyReachable covers that with defaults on
// a 64x64 map, every room is reachable from every other via
// floor/door/corridor cells.
func TestGenerateAllRoomsAreMutuallyReachable(t *testing.T) {
	g := NewGenerator(nil, nil)
	m, _ := g.Generate(context.Background(), rng.NewSeeded(1984), 64, 64, params.Default())

	rooms := m.Rooms()
	if len(rooms) < 2 {
		t.Fatalf("expected more than one room, got %d", len(rooms))
	}

	reachable := bfsPassable(m, rooms[0].Center())
	for i, r := range rooms {
		if !reachable[r.Center()] {
			t.Fatalf("room %d center %+v is not reachable from room 0", i, r.Center())
		}
	}
}

func bfsPassable(m *Map, start geom.Point) map[geom.Point]bool {
	visited := map[geom.Point]bool{start: true}
	queue := []geom.Point{start}
	offsets := [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, o := range offsets {
			n := geom.Point{X: p.X + o[0], Y: p.Y + o[1]}
			if visited[n] || !m.IsValidPosition(n.X, n.Y) {
				continue
			}
			if !m.Get(n.X, n.Y).IsPassable() {
				continue
			}
			visited[n] = true
			queue = append(queue, n)
		}
	}
	return visited
}

package roomwriter

import (
	"testing"

	"github.com/mrasmith/dungeonforge/internal/geom"
	"github.com/mrasmith/dungeonforge/internal/tilemap"
)

// TestWriteInteriorIsFloor covers the invariant that every interior cell
// of a rasterized room is Floor.
func TestWriteInteriorIsFloor(t *testing.T) {
	grid := tilemap.NewGrid(20, 20)
	room := geom.NewRect(2, 2, 10, 10)
	Write(grid, room)

	for y := room.Top + 1; y < room.Bottom-1; y++ {
		for x := room.Left + 1; x < room.Right-1; x++ {
			if grid.Get(x, y) != tilemap.Floor {
				t.Fatalf("expected Floor at interior cell (%d,%d)", x, y)
			}
		}
	}
}

func TestWriteBorderIsWallWithNoPriorContext(t *testing.T) {
	grid := tilemap.NewGrid(20, 20)
	room := geom.NewRect(2, 2, 10, 10)
	Write(grid, room)

	if grid.Get(room.Left, room.Top) != tilemap.Wall {
		t.Fatal("expected Wall on an isolated room's border")
	}
	if grid.Get(room.Right-1, room.Bottom-1) != tilemap.Wall {
		t.Fatal("expected Wall on an isolated room's border")
	}
}

// TestWriteOmitsWallAgainstPriorRoom covers the wall-omission rule: a
// border cell whose three outside neighbors are already Wall/Door is
// omitted (painted Floor) for a seamless join.
func TestWriteOmitsWallAgainstPriorRoom(t *testing.T) {
	grid := tilemap.NewGrid(30, 30)
	left := geom.NewRect(2, 2, 10, 10)
	Write(grid, left)

	// A second room placed directly against the first room's right wall,
	// so its own left border's outside triple sits entirely on that
	// existing wall column.
	right := geom.NewRect(10, 3, 16, 9)
	Write(grid, right)

	if grid.Get(right.Left, 5) != tilemap.Floor {
		t.Fatalf("expected the shared border to be omitted into Floor, got %v", grid.Get(right.Left, 5))
	}
}

// TestWriteCornerMutualExclusion covers the corner assertion: the
// rasterizer never panics on a genuine corner cell.
func TestWriteCornerMutualExclusion(t *testing.T) {
	grid := tilemap.NewGrid(20, 20)
	room := geom.NewRect(2, 2, 8, 8)
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("unexpected panic rasterizing a corner cell: %v", r)
		}
	}()
	Write(grid, room)
}

// TestWriteOutOfBoundsCellsSkipped ensures a room partially outside the
// grid doesn't panic on out-of-bounds cells.
func TestWriteOutOfBoundsCellsSkipped(t *testing.T) {
	grid := tilemap.NewGrid(10, 10)
	room := geom.NewRect(5, 5, 15, 15)
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	Write(grid, room)
}

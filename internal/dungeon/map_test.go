package dungeon

import (
	"context"
	"strings"
	"testing"

	"github.com/mrasmith/dungeonforge/internal/params"
	"github.com/mrasmith/dungeonforge/internal/rng"
)

func TestMapRoomsReturnsDefensiveCopy(t *testing.T) {
	g := NewGenerator(nil, nil)
	m, _ := g.Generate(context.Background(), rng.NewSeeded(1), 64, 64, params.Default())

	rooms := m.Rooms()
	if len(rooms) == 0 {
		t.Skip("no rooms generated for this seed")
	}
	original := rooms[0]
	rooms[0].Left = -999

	again := m.Rooms()
	if again[0] != original {
		t.Fatal("mutating a returned Rooms() slice must not affect the map's internal state")
	}
}

func TestMapASCIIProducesOneRowPerLine(t *testing.T) {
	g := NewGenerator(nil, nil)
	m, _ := g.Generate(context.Background(), rng.NewSeeded(1), 20, 15, params.Default())

	lines := strings.Split(strings.TrimRight(m.ASCII(), "\n"), "\n")
	if len(lines) != 15 {
		t.Fatalf("expected 15 rows, got %d", len(lines))
	}
	for i, l := range lines {
		if len([]rune(l)) != 20 {
			t.Fatalf("row %d has width %d, want 20", i, len([]rune(l)))
		}
	}
}

func TestReportFieldsPopulated(t *testing.T) {
	g := NewGenerator(nil, nil)
	_, report := g.Generate(context.Background(), rng.NewSeeded(1), 64, 64, params.Default())

	if report.RunID.String() == "" {
		t.Fatal("expected a non-empty run id")
	}
	if report.LeafCount == 0 {
		t.Fatal("expected at least one leaf region")
	}
}

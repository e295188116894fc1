package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/mrasmith/dungeonforge/internal/dungeon"
	"github.com/mrasmith/dungeonforge/internal/tilemap"
)

// View opens a full-screen, read-only pager over m's tile grid and
// blocks until the user presses any key. It never carves and never
// accepts movement input; it only reads and renders a finished map.
func View(m *dungeon.Map, seed int64) error {
	screen, err := NewScreen()
	if err != nil {
		return fmt.Errorf("ui: failed to open screen: %w", err)
	}
	defer screen.Close()

	render(screen, m, seed)
	screen.Show()
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}
		if _, ok := ev.(*tcell.EventKey); ok {
			return nil
		}
	}
}

func render(screen *Screen, m *dungeon.Map, seed int64) {
	screen.Clear()
	sw, sh := screen.Size()

	for y := 0; y < m.Height() && y < sh; y++ {
		for x := 0; x < m.Width() && x < sw; x++ {
			r := m.Get(x, y).Rune()
			screen.SetContent(x, y, r, styleFor(m.Get(x, y)))
		}
	}

	label := fmt.Sprintf("seed:%d  %dx%d  rooms:%d", seed, m.Width(), m.Height(), len(m.Rooms()))
	style := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	for i, ch := range label {
		if i >= sw {
			break
		}
		screen.SetContent(i, 0, ch, style)
	}
}

func styleFor(c tilemap.Category) tcell.Style {
	switch c {
	case tilemap.Wall:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case tilemap.Floor:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	case tilemap.Door:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	case tilemap.Corridor:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case tilemap.Stair:
		return tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	default:
		return tcell.StyleDefault
	}
}

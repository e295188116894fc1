// Package roomgen decides, for one BSP leaf, whether to place a room in
// it and samples that room's rect.
package roomgen

import (
	"github.com/mrasmith/dungeonforge/internal/geom"
	"github.com/mrasmith/dungeonforge/internal/params"
	"github.com/mrasmith/dungeonforge/internal/restrict"
	"github.com/mrasmith/dungeonforge/internal/rng"
)

// Generate decides whether leaf gets a room and, if so, samples its
// rect. It returns (room, true) or (zero Rect, false).
//
// Skip if the leaf is smaller than the minimum room size on either axis.
// Otherwise roll room_generation_chance. On success, inset the leaf by
// border_size on every side (skipping if that inset rect is below the
// minimum room size), sample width/height via rng.WeightedRange over
// [room range lower, inset leaf dimension], then place the room at a
// uniformly chosen offset within the remaining slack of the inset rect.
func Generate(leaf geom.Rect, p params.Params, src rng.Source) (geom.Rect, bool) {
	if leaf.Width() < p.RoomWidthRange.Lower || leaf.Height() < p.RoomHeightRange.Lower {
		return geom.Rect{}, false
	}

	if src.UniformInt(1, 100) > p.RoomGenerationChance.Int() {
		return geom.Rect{}, false
	}

	bordered := leaf.Inset(p.BorderSize.Int())
	if bordered.Width() < p.RoomWidthRange.Lower || bordered.Height() < p.RoomHeightRange.Lower {
		return geom.Rect{}, false
	}

	widthRange := restrict.NewPositiveRange(p.RoomWidthRange.Lower, bordered.Width())
	heightRange := restrict.NewPositiveRange(p.RoomHeightRange.Lower, bordered.Height())

	w := rng.WeightedRange(src, widthRange, p.RoomSizeWeight, p.RoomSizeVariance)
	h := rng.WeightedRange(src, heightRange, p.RoomSizeWeight, p.RoomSizeVariance)

	slackX := bordered.Width() - w
	slackY := bordered.Height() - h
	offX := 0
	if slackX > 0 {
		offX = src.UniformInt(0, slackX)
	}
	offY := 0
	if slackY > 0 {
		offY = src.UniformInt(0, slackY)
	}

	left := bordered.Left + offX
	top := bordered.Top + offY
	return geom.NewRect(left, top, left+w, top+h), true
}

// Package params bundles the inputs to one generation run.
package params

import "github.com/mrasmith/dungeonforge/internal/restrict"

// Params is the parameter bundle consumed by a single generate() call.
// All restricted fields are validated at construction by their
// restrict.* constructors; Params itself is a plain struct so it can be
// built incrementally (e.g. by JSON decoding a preset) and then checked
// once via Validate.
type Params struct {
	RoomWidthRange             restrict.IntRange
	RoomHeightRange            restrict.IntRange
	BorderSize                 restrict.Positive
	RegionWidthRange           restrict.IntRange
	RegionHeightRange          restrict.IntRange
	CorridorSegmentLengthRange restrict.IntRange
	RoomGenerationChance       restrict.Percentage
	RegionSplitChance          restrict.Percentage
	SplitAspect                restrict.AspectRatio
	SplitLimitAspect           restrict.AspectRatio
	CorridorRandomness         float64
	RoomSizeWeight             int // [-100, 100]
	RoomSizeVariance           int // [-100, 100]
}

// Default returns the documented default parameter bundle.
func Default() Params {
	roomW := restrict.NewPositiveRange(4, 25)
	roomH := restrict.NewPositiveRange(4, 25)
	border := restrict.NewPositive(0)
	return Params{
		RoomWidthRange:             roomW,
		RoomHeightRange:            roomH,
		BorderSize:                 border,
		RegionWidthRange:           restrict.NewPositiveRange(roomW.Lower+border.Int(), roomW.Upper),
		RegionHeightRange:          restrict.NewPositiveRange(roomH.Lower+border.Int(), roomH.Upper),
		CorridorSegmentLengthRange: restrict.NewPositiveRange(2, 10),
		RoomGenerationChance:       restrict.NewPercentage(30),
		RegionSplitChance:          restrict.NewPercentage(25),
		SplitAspect:                restrict.NewAspectRatio(5.0 / 4.0),
		SplitLimitAspect:           restrict.NewAspectRatio(16.0 / 10.0),
		CorridorRandomness:         0.25,
		RoomSizeWeight:             0,
		RoomSizeVariance:           0,
	}
}

// Validate checks the RoomSizeWeight/RoomSizeVariance/CorridorRandomness
// invariants; it panics on violation, matching the restricted-value
// types' own construction-time panics.
func (p Params) Validate() Params {
	if p.RoomSizeWeight < -100 || p.RoomSizeWeight > 100 {
		panic("params: RoomSizeWeight must be in [-100, 100]")
	}
	if p.RoomSizeVariance < -100 || p.RoomSizeVariance > 100 {
		panic("params: RoomSizeVariance must be in [-100, 100]")
	}
	if p.CorridorRandomness < 0 {
		panic("params: CorridorRandomness must be >= 0")
	}
	return p
}

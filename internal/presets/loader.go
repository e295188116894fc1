package presets

import (
	"encoding/json"
	"fmt"

	"github.com/mrasmith/dungeonforge/internal/params"
	"github.com/mrasmith/dungeonforge/internal/restrict"
)

// Names lists the presets shipped with this build.
var Names = []string{"small", "default", "cavernous", "warren"}

// intRangeDTO is the JSON-friendly shape of a restrict.IntRange — the
// restrict types themselves keep their fields unexported to protect
// their invariants, so decoding goes through this plain struct first.
type intRangeDTO struct {
	Lower int `json:"lower"`
	Upper int `json:"upper"`
}

type paramsDTO struct {
	RoomWidthRange             intRangeDTO `json:"room_width_range"`
	RoomHeightRange            intRangeDTO `json:"room_height_range"`
	BorderSize                 int         `json:"border_size"`
	RegionWidthRange           intRangeDTO `json:"region_width_range"`
	RegionHeightRange          intRangeDTO `json:"region_height_range"`
	CorridorSegmentLengthRange intRangeDTO `json:"corridor_segment_length_range"`
	RoomGenerationChance       int         `json:"room_generation_chance"`
	RegionSplitChance          int         `json:"region_split_chance"`
	SplitAspect                float64     `json:"split_aspect"`
	SplitLimitAspect           float64     `json:"split_limit_aspect"`
	CorridorRandomness         float64     `json:"corridor_randomness"`
	RoomSizeWeight             int         `json:"room_size_weight"`
	RoomSizeVariance           int         `json:"room_size_variance"`
}

func (d paramsDTO) toParams() params.Params {
	return params.Params{
		RoomWidthRange:             restrict.NewPositiveRange(d.RoomWidthRange.Lower, d.RoomWidthRange.Upper),
		RoomHeightRange:            restrict.NewPositiveRange(d.RoomHeightRange.Lower, d.RoomHeightRange.Upper),
		BorderSize:                 restrict.NewPositive(d.BorderSize),
		RegionWidthRange:           restrict.NewPositiveRange(d.RegionWidthRange.Lower, d.RegionWidthRange.Upper),
		RegionHeightRange:          restrict.NewPositiveRange(d.RegionHeightRange.Lower, d.RegionHeightRange.Upper),
		CorridorSegmentLengthRange: restrict.NewPositiveRange(d.CorridorSegmentLengthRange.Lower, d.CorridorSegmentLengthRange.Upper),
		RoomGenerationChance:       restrict.NewPercentage(d.RoomGenerationChance),
		RegionSplitChance:          restrict.NewPercentage(d.RegionSplitChance),
		SplitAspect:                restrict.NewAspectRatio(d.SplitAspect),
		SplitLimitAspect:           restrict.NewAspectRatio(d.SplitLimitAspect),
		CorridorRandomness:         d.CorridorRandomness,
		RoomSizeWeight:             d.RoomSizeWeight,
		RoomSizeVariance:           d.RoomSizeVariance,
	}
}

// Load reads and unmarshals a preset by name from the embedded
// filesystem, returning the fully validated params.Params.
func Load(name string) (params.Params, error) {
	content, err := dataFS.ReadFile("data/" + name + ".json")
	if err != nil {
		return params.Params{}, fmt.Errorf("presets: failed to read preset %q: %w", name, err)
	}

	var dto paramsDTO
	if err := json.Unmarshal(content, &dto); err != nil {
		return params.Params{}, fmt.Errorf("presets: failed to parse preset %q: %w", name, err)
	}

	return dto.toParams().Validate(), nil
}

// MustLoad loads a preset, panicking on error. Use for presets that must
// be present for the host to function.
func MustLoad(name string) params.Params {
	p, err := Load(name)
	if err != nil {
		panic(err)
	}
	return p
}

// Package bsptree implements the binary-space-partition split decision,
// the split execution, and the arena-indexed tree that the generator
// driver builds across one run.
package bsptree

import (
	"github.com/mrasmith/dungeonforge/internal/geom"
	"github.com/mrasmith/dungeonforge/internal/rng"
)

// SplitType is the axis (if any) a rect should be split along.
type SplitType int

const (
	// None means the rect cannot or should not be split further.
	None SplitType = iota
	// Vertical splits the rect into a left and a right half.
	Vertical
	// Horizontal splits the rect into a top and a bottom half.
	Horizontal
)

// GetSplitType decides a rect's split axis:
//
//  1. canV := width >= 2*minW; canH := height >= 2*minH.
//  2. Neither possible -> None. Exactly one possible -> that one.
//  3. Both possible: ratio := max(w,h)/min(w,h); split along the long
//     dimension when ratio exceeds threshold.
//  4. Otherwise flip a fair coin.
func GetSplitType(r geom.Rect, minW, minH int, threshold float64, src rng.Source) SplitType {
	canV := r.Width() >= 2*minW
	canH := r.Height() >= 2*minH

	switch {
	case !canV && !canH:
		return None
	case canV && !canH:
		return Vertical
	case canH && !canV:
		return Horizontal
	}

	isWider := r.Width() >= r.Height()
	ratio := r.AspectRatio()
	if ratio > threshold {
		if isWider {
			return Vertical
		}
		return Horizontal
	}

	if src.FairBool() {
		return Vertical
	}
	return Horizontal
}

// DoSplit decides whether a region should even attempt a split: it
// always returns true if the region exceeds the maximum region
// dimensions or its aspect ratio exceeds the forced-split limit;
// otherwise it returns true with probability splitChancePercent/100.
func DoSplit(r geom.Rect, maxW, maxH int, splitLimitAspect float64, splitChancePercent int, src rng.Source) bool {
	if r.Width() > maxW || r.Height() > maxH {
		return true
	}
	if r.AspectRatio() > splitLimitAspect {
		return true
	}
	return src.UniformInt(1, 100) <= splitChancePercent
}

// SplitRect executes a split decided by GetSplitType, returning the
// (possibly downgraded) split type actually performed and the two child
// rects. For Vertical, it samples the split x uniformly in
// [left+minW, right-minW]; Horizontal is the y-analogue. If the
// requested split would violate the minimum dimension, it returns
// (None, r, r) unchanged: each child must have at least the minimum
// dimension.
func SplitRect(r geom.Rect, t SplitType, minW, minH int, src rng.Source) (SplitType, geom.Rect, geom.Rect) {
	switch t {
	case Vertical:
		if r.Width() < 2*minW {
			return None, r, r
		}
		splitX := src.UniformInt(r.Left+minW, r.Right-minW)
		first := geom.NewRect(r.Left, r.Top, splitX, r.Bottom)
		second := geom.NewRect(splitX, r.Top, r.Right, r.Bottom)
		return Vertical, first, second

	case Horizontal:
		if r.Height() < 2*minH {
			return None, r, r
		}
		splitY := src.UniformInt(r.Top+minH, r.Bottom-minH)
		first := geom.NewRect(r.Left, r.Top, r.Right, splitY)
		second := geom.NewRect(r.Left, splitY, r.Right, r.Bottom)
		return Horizontal, first, second

	default:
		return None, r, r
	}
}

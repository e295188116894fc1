package corridor

import "github.com/mrasmith/dungeonforge/internal/geom"

// direction is one of the four cardinal walk directions a tunnel step
// moves in. ahead/left/right are the offsets of the three-cell
// tunnelability triple relative to the walker's current position:
// N: NW,N,NE; S: SW,S,SE; E: NE,E,SE; W: NW,W,SW.
type direction struct {
	step  geom.Vector
	left  geom.Vector
	right geom.Vector
}

var (
	dirNorth = direction{step: geom.Vector{X: 0, Y: -1}, left: geom.Vector{X: -1, Y: -1}, right: geom.Vector{X: 1, Y: -1}}
	dirSouth = direction{step: geom.Vector{X: 0, Y: 1}, left: geom.Vector{X: -1, Y: 1}, right: geom.Vector{X: 1, Y: 1}}
	dirEast  = direction{step: geom.Vector{X: 1, Y: 0}, left: geom.Vector{X: 1, Y: -1}, right: geom.Vector{X: 1, Y: 1}}
	dirWest  = direction{step: geom.Vector{X: -1, Y: 0}, left: geom.Vector{X: -1, Y: -1}, right: geom.Vector{X: -1, Y: 1}}
)

// axisDirection returns the direction a unit walk takes when exactly one
// of dx, dy is nonzero on entry to makeConnectionTunnel.
func axisDirection(dx, dy int) direction {
	switch {
	case dx > 0:
		return dirEast
	case dx < 0:
		return dirWest
	case dy > 0:
		return dirSouth
	default:
		return dirNorth
	}
}

package dungeon

import (
	"time"

	"github.com/google/uuid"
)

// Report carries per-run diagnostics alongside the Map itself: the same
// counts and timing recorded as span attributes, returned directly so a
// caller with no telemetry wired up still gets them.
//
// RunID is drawn from crypto/rand via uuid.New() strictly after the
// generation run's RNG-ordered draws complete, so it never perturbs
// determinism: the same (seed, params) still reproduce the same Map, and
// only RunID itself differs run to run.
type Report struct {
	RunID     uuid.UUID
	Duration  time.Duration
	RoomCount int
	LeafCount int
}

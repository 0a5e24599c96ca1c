package racer

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// checkpoints is the number of sectors a lap is split into.
const checkpoints = 4

// LapCounter counts laps around a centre point. The circle around the
// centre is cut into four sectors starting at the spawn position. Moving
// into the next sector counter-clockwise, seen from above, is one step of
// progress and moving back into the previous one takes a step away, so a
// lap is four net steps. Positions inside the infield are ignored.
type LapCounter struct {
	center     mgl64.Vec3
	infieldLo  mgl64.Vec2
	infieldHi  mgl64.Vec2
	hasInfield bool
	startAngle float64
	current    int // Sector the car was last seen in
	progress   int // Net sectors advanced in the running lap, may go negative
	lapStart   int // Tick the running lap started at
	laps       []int
}

// NewLapCounter creates a counter for laps around center starting at pos.
func NewLapCounter(center, pos mgl64.Vec3) *LapCounter {
	lc := &LapCounter{center: center}
	lc.Reset(pos)
	return lc
}

// Reset clears all laps and restarts from pos at tick 0.
func (lc *LapCounter) Reset(pos mgl64.Vec3) {
	lc.startAngle = lc.angle(pos)
	lc.current = 0
	lc.progress = 0
	lc.lapStart = 0
	lc.laps = lc.laps[:0]
}

// SetInfield marks the ground rectangle the lane runs around. Positions
// inside it never count towards a lap.
func (lc *LapCounter) SetInfield(lo, hi mgl64.Vec2) {
	lc.infieldLo, lc.infieldHi = lo, hi
	lc.hasInfield = true
}

func (lc *LapCounter) inInfield(pos mgl64.Vec3) bool {
	return lc.hasInfield &&
		pos.X() > lc.infieldLo.X() && pos.X() < lc.infieldHi.X() &&
		pos.Z() > lc.infieldLo.Y() && pos.Z() < lc.infieldHi.Y()
}

// angle returns the bearing of pos around the centre on the ground plane.
func (lc *LapCounter) angle(pos mgl64.Vec3) float64 {
	return math.Atan2(pos.Z()-lc.center.Z(), pos.X()-lc.center.X())
}

// sector returns which quarter of the circle pos is in, counted from the
// start bearing.
func (lc *LapCounter) sector(pos mgl64.Vec3) int {
	rel := math.Mod(lc.angle(pos)-lc.startAngle, 2*math.Pi)
	if rel < 0 {
		rel += 2 * math.Pi
	}
	return int(rel/(math.Pi/2)) % checkpoints
}

// Update records the car position at tick. It returns the lap time in ticks
// when this update completed a lap.
func (lc *LapCounter) Update(pos mgl64.Vec3, tick int) (lapTicks int, completed bool) {
	if lc.inInfield(pos) {
		return 0, false
	}
	s := lc.sector(pos)
	switch s {
	case lc.current:
		return 0, false
	case (lc.current + 1) % checkpoints:
		lc.progress++
	case (lc.current + checkpoints - 1) % checkpoints:
		lc.progress--
	default:
		// Jumped across the circle without passing the sector between.
		lc.current = s
		return 0, false
	}
	lc.current = s
	if lc.progress < checkpoints {
		return 0, false
	}

	lapTicks = tick - lc.lapStart
	lc.laps = append(lc.laps, lapTicks)
	lc.lapStart = tick
	lc.progress = 0
	return lapTicks, true
}

// Count returns the number of completed laps.
func (lc *LapCounter) Count() int {
	return len(lc.laps)
}

// Laps returns the completed lap times in ticks.
func (lc *LapCounter) Laps() []int {
	return append([]int(nil), lc.laps...)
}

// Last returns the most recent lap time, or 0 before the first lap.
func (lc *LapCounter) Last() int {
	if len(lc.laps) == 0 {
		return 0
	}
	return lc.laps[len(lc.laps)-1]
}

// Best returns the fastest lap time, or 0 before the first lap.
func (lc *LapCounter) Best() int {
	best := 0
	for _, l := range lc.laps {
		if best == 0 || l < best {
			best = l
		}
	}
	return best
}

// Progress returns how many sectors of the running lap are done. Sectors
// driven the wrong way must be made up before progress shows again.
func (lc *LapCounter) Progress() int {
	return max(lc.progress, 0)
}

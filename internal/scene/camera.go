package scene

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Projection defaults.
var (
	DefaultFovY = mgl64.DegToRad(45)
	DefaultNear = 0.1
	DefaultFar  = 2000.0
)

// tracksidePosition is the fixed eye of the trackside camera.
var tracksidePosition = mgl64.Vec3{10, 5, 10}

// Mode selects how the camera follows the car.
type Mode int

const (
	ModeChase     Mode = iota // Behind and above the car, looking ahead of it
	ModeOverhead              // High above the track centre, looking straight down
	ModeTrackside             // Fixed post beside the track, tracking the car
)

// String returns the mode name used in config files and the HUD.
func (m Mode) String() string {
	switch m {
	case ModeChase:
		return "chase"
	case ModeOverhead:
		return "overhead"
	case ModeTrackside:
		return "trackside"
	default:
		return "unknown"
	}
}

// Next cycles to the following mode.
func (m Mode) Next() Mode {
	return (m + 1) % 3
}

// ParseMode maps a config name to a mode. Unknown names fall back to chase.
func ParseMode(name string) Mode {
	switch name {
	case "overhead":
		return ModeOverhead
	case "trackside":
		return ModeTrackside
	default:
		return ModeChase
	}
}

// Anchors is what a camera needs from the thing it follows.
type Anchors interface {
	PositionBehind() mgl64.Vec3
	PositionAhead() mgl64.Vec3
}

// Camera is a perspective camera.
type Camera struct {
	Mode     Mode
	Position mgl64.Vec3
	Target   mgl64.Vec3
	Up       mgl64.Vec3

	FovY   float64 // Vertical field of view in radians
	Aspect float64 // Width over height of the viewport
	Near   float64
	Far    float64

	OverheadCenter mgl64.Vec3 // Point the overhead view looks down on
	OverheadHeight float64
}

// NewCamera creates a chase camera over the given track.
func NewCamera(track *Track, overheadHeight float64) *Camera {
	if overheadHeight <= 0 {
		overheadHeight = 110
	}
	return &Camera{
		Mode:           ModeChase,
		Up:             mgl64.Vec3{0, 1, 0},
		FovY:           DefaultFovY,
		Aspect:         1,
		Near:           DefaultNear,
		Far:            DefaultFar,
		OverheadCenter: track.Center(),
		OverheadHeight: overheadHeight,
	}
}

// Follow moves the camera for the current mode.
func (c *Camera) Follow(a Anchors) {
	switch c.Mode {
	case ModeOverhead:
		// Looking straight down: world +X is screen up.
		c.Position = c.OverheadCenter.Add(mgl64.Vec3{0, c.OverheadHeight, 0})
		c.Target = c.OverheadCenter
		c.Up = mgl64.Vec3{1, 0, 0}
	case ModeTrackside:
		c.Position = tracksidePosition
		c.Target = a.PositionAhead()
		c.Up = mgl64.Vec3{0, 1, 0}
	default:
		c.Position = a.PositionBehind()
		c.Target = a.PositionAhead()
		c.Up = mgl64.Vec3{0, 1, 0}
	}
}

// SetViewport sets the aspect ratio for a viewport of w by h terminal cells.
// Cells are roughly twice as tall as they are wide.
func (c *Camera) SetViewport(w, h int) {
	if w <= 0 || h <= 0 {
		c.Aspect = 1
		return
	}
	c.Aspect = float64(w) / (2 * float64(h))
}

// View returns the world-to-eye matrix.
func (c *Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position, c.Target, c.Up)
}

// Projection returns the perspective matrix.
func (c *Camera) Projection() mgl64.Mat4 {
	return mgl64.Perspective(c.FovY, c.Aspect, c.Near, c.Far)
}

// ViewProjection returns Projection * View.
func (c *Camera) ViewProjection() mgl64.Mat4 {
	return c.Projection().Mul4(c.View())
}

// Package scene holds the static race track, the cameras that follow the car
// and a small wireframe renderer that projects both into a character screen.
package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Billboard dimensions in world units.
const (
	BillboardWidth  = 4.0
	BillboardHeight = 1.0
)

// groundExtent is the half size of the square ground slab.
const groundExtent = 100.0

// Ring tells which barrier a billboard belongs to.
type Ring int

const (
	RingOuter Ring = iota
	RingInner
)

// Billboard is one upright quad of the track barrier. Its local quad spans
// [0,1] on X and Y and is scaled to BillboardWidth by BillboardHeight.
type Billboard struct {
	Ring     Ring
	Position mgl64.Vec3 // Bottom-left corner on the ground
	Yaw      float64    // Rotation about +Y, 0 runs along +X
}

// Transform returns the instance world matrix.
func (b Billboard) Transform() mgl64.Mat4 {
	return mgl64.Translate3D(b.Position.X(), b.Position.Y(), b.Position.Z()).
		Mul4(mgl64.HomogRotate3DY(b.Yaw)).
		Mul4(mgl64.Scale3D(BillboardWidth, BillboardHeight, 1))
}

// Corners returns the quad corners in world space: bottom-left,
// bottom-right, top-right, top-left.
func (b Billboard) Corners() [4]mgl64.Vec3 {
	m := b.Transform()
	local := [4]mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}
	var out [4]mgl64.Vec3
	for i, p := range local {
		out[i] = mgl64.TransformCoordinate(p, m)
	}
	return out
}

// Center returns the middle of the quad.
func (b Billboard) Center() mgl64.Vec3 {
	c := b.Corners()
	return c[0].Add(c[2]).Mul(0.5)
}

// Track is the static scene: a ground slab ringed by two barriers.
type Track struct {
	GroundMin  mgl64.Vec2 // X/Z of the slab's low corner
	GroundMax  mgl64.Vec2 // X/Z of the slab's high corner
	Billboards []Billboard
}

// NewTrack lays out the stock track.
func NewTrack() *Track {
	t := &Track{
		GroundMin: mgl64.Vec2{-groundExtent, -groundExtent},
		GroundMax: mgl64.Vec2{groundExtent, groundExtent},
	}
	t.addRing(RingOuter, 20, -50, -50, 30, 28, -52, -48)
	t.addRing(RingInner, 14, -38, -38, 18, 16, -40, -36)
	return t
}

// addRing places count billboards on each side. The near and far rows start
// at (x0, zNear) and (x0, zFar); the side columns sit at xRight and xLeft
// starting from z0.
func (t *Track) addRing(r Ring, count int, x0, zNear, zFar, xRight, xLeft, z0 float64) {
	for i := 0; i < count; i++ {
		step := BillboardWidth * float64(i)
		t.Billboards = append(t.Billboards,
			Billboard{Ring: r, Position: mgl64.Vec3{x0 + step, 0, zNear}},
			Billboard{Ring: r, Position: mgl64.Vec3{x0 + step, 0, zFar}},
			Billboard{Ring: r, Position: mgl64.Vec3{xRight, 0, z0 + step}, Yaw: -math.Pi / 2},
			Billboard{Ring: r, Position: mgl64.Vec3{xLeft, 0, z0 + step}, Yaw: -math.Pi / 2},
		)
	}
}

// Ring returns the billboards of one barrier.
func (t *Track) Ring(r Ring) []Billboard {
	var out []Billboard
	for _, b := range t.Billboards {
		if b.Ring == r {
			out = append(out, b)
		}
	}
	return out
}

// Bounds returns the ground-plane rectangle covered by a barrier.
func (t *Track) Bounds(r Ring) (lo, hi mgl64.Vec2) {
	lo = mgl64.Vec2{math.Inf(1), math.Inf(1)}
	hi = mgl64.Vec2{math.Inf(-1), math.Inf(-1)}
	for _, b := range t.Ring(r) {
		for _, c := range b.Corners() {
			lo = mgl64.Vec2{math.Min(lo.X(), c.X()), math.Min(lo.Y(), c.Z())}
			hi = mgl64.Vec2{math.Max(hi.X(), c.X()), math.Max(hi.Y(), c.Z())}
		}
	}
	return lo, hi
}

// InfieldCenter returns the middle of the inner barrier on the ground plane.
// Laps are counted around this point.
func (t *Track) InfieldCenter() mgl64.Vec3 {
	lo, hi := t.Bounds(RingInner)
	return mgl64.Vec3{(lo.X() + hi.X()) / 2, 0, (lo.Y() + hi.Y()) / 2}
}

// Center returns the middle of the outer barrier on the ground plane.
func (t *Track) Center() mgl64.Vec3 {
	lo, hi := t.Bounds(RingOuter)
	return mgl64.Vec3{(lo.X() + hi.X()) / 2, 0, (lo.Y() + hi.Y()) / 2}
}

package vehicle

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera anchor offsets in chassis units.
const (
	cameraBehind = 4.0
	cameraAbove  = 2.0
	cameraAhead  = 6.0
)

// Pose is a copy of the transforms a renderer needs for one frame.
type Pose struct {
	Chassis mgl64.Mat4
	Wheels  [4]mgl64.Mat4 // Absolute, indexed by Wheel
	Bones   []mgl64.Mat4  // Absolute, indexed like the skeleton
}

// Pose returns a snapshot of the current absolute transforms.
func (c *Car) Pose() Pose {
	var p Pose
	c.PoseInto(&p)
	return p
}

// PoseInto fills p, reusing its bone slice when large enough.
func (c *Car) PoseInto(p *Pose) {
	p.Chassis = c.ChassisTransform()
	p.Wheels = c.WheelTransforms()
	p.Bones = c.skeleton.CopyAbsoluteTo(p.Bones)
}

// ChassisTransform returns the chassis world transform.
func (c *Car) ChassisTransform() mgl64.Mat4 {
	return c.skeleton.Current(c.rig.chassis)
}

// WheelTransforms returns the absolute transform of each wheel.
func (c *Car) WheelTransforms() [4]mgl64.Mat4 {
	var out [4]mgl64.Mat4
	for w, i := range c.rig.wheels {
		out[w] = c.skeleton.Current(i)
	}
	return out
}

// Position returns the chassis origin in world space.
func (c *Car) Position() mgl64.Vec3 {
	return c.skeleton.Local(c.rig.chassis).Col(3).Vec3()
}

// SetPosition moves the car to p and clears its orientation.
func (c *Car) SetPosition(p mgl64.Vec3) {
	c.Place(p, 0)
}

// Place moves the car to p facing heading radians, measured about +Y from
// the world X axis.
func (c *Car) Place(p mgl64.Vec3, heading float64) {
	m := mgl64.Translate3D(p.X(), p.Y(), p.Z()).Mul4(mgl64.HomogRotate3DY(heading))
	c.skeleton.SetLocal(c.rig.chassis, m)
	c.skeleton.Update()
}

// Forward returns the chassis X axis in world space.
func (c *Car) Forward() mgl64.Vec3 {
	return c.skeleton.Local(c.rig.chassis).Col(0).Vec3()
}

// Up returns the chassis Y axis in world space.
func (c *Car) Up() mgl64.Vec3 {
	return c.skeleton.Local(c.rig.chassis).Col(1).Vec3()
}

// Heading returns the yaw of the chassis about +Y in (-π, π].
func (c *Car) Heading() float64 {
	f := c.Forward()
	return math.Atan2(-f.Z(), f.X())
}

// PositionBehind is the chase camera position: behind and above the car.
func (c *Car) PositionBehind() mgl64.Vec3 {
	return c.Position().Sub(c.Forward().Mul(cameraBehind)).Add(c.Up().Mul(cameraAbove))
}

// PositionAhead is the camera target, a little in front of the car.
func (c *Car) PositionAhead() mgl64.Vec3 {
	return c.Position().Add(c.Forward().Mul(cameraAhead))
}

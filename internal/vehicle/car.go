// Package vehicle implements the buggy's kinematic model: speed, gear and
// steering state driven by discrete commands, a per-tick advance that moves
// the chassis and spins the wheels through a bone hierarchy, and a boundary
// check against the drivable area.
//
// The model is deliberately eyeballed rather than physical. There is no
// friction, mass or suspension; the car weaves slightly through turns
// because rotation and translation are both applied in the chassis frame.
package vehicle

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// kmhFactor converts model speed to the value shown on the speedometer.
const kmhFactor = 216

// Direction is the selected gear: the sign applied to acceleration.
type Direction int

const (
	Forward Direction = 1
	Reverse Direction = -1
)

// String returns the gear name shown to the player.
func (d Direction) String() string {
	if d == Reverse {
		return "Reverse"
	}
	return "Forward"
}

// Car owns the simulation state of one vehicle and the bone transforms that
// animate it. It is not safe for concurrent use; renderers on another
// goroutine should read a Pose snapshot.
type Car struct {
	params   Params
	skeleton *Skeleton
	rig      rig

	speed         float64
	steer         float64
	direction     Direction
	wheelRotation float64

	distance     float64 // Distance covered by the last Advance
	headingDelta float64 // Heading change applied by the last Advance
	collided     bool    // Whether the last Advance started out of bounds
}

// New binds a car to a skeleton. The skeleton must contain the buggy bones
// with front wheels under the chassis and rear wheels under the differential.
func New(s *Skeleton, p Params) (*Car, error) {
	if s == nil {
		return nil, fmt.Errorf("vehicle: nil skeleton")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	r, err := bindRig(s)
	if err != nil {
		return nil, err
	}

	return &Car{
		params:    p,
		skeleton:  s,
		rig:       r,
		direction: Forward,
	}, nil
}

// NewBuggy builds a car on the stock buggy skeleton.
func NewBuggy(p Params) (*Car, error) {
	s, err := NewSkeleton(BuggyBones())
	if err != nil {
		return nil, err
	}
	return New(s, p)
}

// Reset returns the car to rest in its bind pose at the origin.
func (c *Car) Reset() {
	c.speed = 0
	c.steer = 0
	c.direction = Forward
	c.wheelRotation = 0
	c.distance = 0
	c.headingDelta = 0
	c.collided = false
	c.skeleton.ResetPose()
}

// SteerLeft turns the front wheels one step to the left.
func (c *Car) SteerLeft() {
	c.steer = math.Max(c.steer-c.params.SteerStep, -c.params.MaxSteer)
}

// SteerRight turns the front wheels one step to the right.
func (c *Car) SteerRight() {
	c.steer = math.Min(c.steer+c.params.SteerStep, c.params.MaxSteer)
}

// CenterSteering eases the wheels back toward straight ahead and snaps them
// there once the angle is small.
func (c *Car) CenterSteering() {
	c.steer *= c.params.CenterDamping
	if math.Abs(c.steer) < c.params.CenterSnap {
		c.steer = 0
	}
}

// Accelerate adds throttle in the selected gear.
func (c *Car) Accelerate() {
	c.speed += c.params.AccelerationStep * float64(c.direction)
	if math.Abs(c.speed) > c.params.MaxSpeed {
		c.speed = c.params.MaxSpeed * float64(c.direction)
	}
}

// Decelerate brakes against the selected gear. Speeds inside the stop
// window snap to zero so the car does not crawl forever.
func (c *Car) Decelerate() {
	c.speed -= c.params.BrakeStep * float64(c.direction)
	if math.Abs(c.speed) < c.params.StopSnap {
		c.speed = 0
	}
	if math.Abs(c.speed) > c.params.MaxSpeed {
		c.speed = math.Copysign(c.params.MaxSpeed, c.speed)
	}
}

// ShiftForward selects the forward gear. Ignored unless nearly stopped.
func (c *Car) ShiftForward() {
	if math.Abs(c.speed) < c.params.GearChangeThreshold {
		c.direction = Forward
	}
}

// ShiftReverse selects reverse. Ignored unless nearly stopped.
func (c *Car) ShiftReverse() {
	if math.Abs(c.speed) < c.params.GearChangeThreshold {
		c.direction = Reverse
	}
}

// Advance runs one simulation tick of dt seconds.
//
// A car whose leading wheels are out of bounds stops dead. Otherwise the
// chassis is translated by the current speed and yawed by the arc the
// wheels cover at the current steering angle, both in the chassis frame.
// Wheel bones are then rebuilt from their bind pose plus spin and steer.
func (c *Car) Advance(dt float64) {
	if !(dt > 0) || math.IsInf(dt, 0) {
		dt = 0
	}

	c.collided = c.CheckCollision()
	if c.collided {
		c.speed = 0
	}

	c.distance = c.speed * dt
	c.headingDelta = c.turnIncrement(c.distance)
	c.wheelRotation = wrapAngle(c.wheelRotation + c.distance/c.params.WheelCircumference)

	chassis := c.skeleton.Local(c.rig.chassis).
		Mul4(mgl64.Translate3D(c.speed, 0, 0)).
		Mul4(mgl64.HomogRotate3DY(c.headingDelta))
	c.skeleton.SetLocal(c.rig.chassis, chassis)

	steer := mgl64.HomogRotate3DX(c.steer)
	c.setWheel(FrontLeft, steer, c.wheelRotation)
	c.setWheel(FrontRight, steer, -c.wheelRotation)
	c.setWheel(RearLeft, mgl64.Ident4(), c.wheelRotation)
	c.setWheel(RearRight, mgl64.Ident4(), -c.wheelRotation)

	c.skeleton.Update()
}

// setWheel rebuilds a wheel bone as bind * steer * spin.
func (c *Car) setWheel(w Wheel, steer mgl64.Mat4, spin float64) {
	i := c.rig.wheels[w]
	c.skeleton.SetLocal(i, c.skeleton.Initial(i).Mul4(steer).Mul4(mgl64.HomogRotate3DZ(spin)))
}

// turnIncrement returns the heading change for covering distance along an
// arc of radius WheelBase / tan(steer). Near-zero steering is a straight line.
func (c *Car) turnIncrement(distance float64) float64 {
	if math.Abs(c.steer) < c.params.SteerEpsilon {
		return 0
	}
	radius := c.params.WheelBase / math.Tan(c.steer)
	return math.Mod(c.params.TurnGain*distance/radius, 2*math.Pi)
}

// CheckCollision tests the leading axle against the boundary: the front
// wheels in forward gear, the rear wheels in reverse. A collision is
// reported only when both wheels of that axle are outside.
func (c *Car) CheckCollision() bool {
	left, right := FrontLeft, FrontRight
	if c.direction == Reverse {
		left, right = RearLeft, RearRight
	}
	return c.wheelOutside(left) && c.wheelOutside(right)
}

// wheelOutside composes the wheel's world transform from the current local
// transforms and tests its hub position against the boundary.
func (c *Car) wheelOutside(w Wheel) bool {
	hub := c.skeleton.Absolute(c.rig.wheels[w]).Col(3).Vec3()
	return c.params.Boundary.Outside(hub)
}

// wrapAngle reduces a to (-2π, 2π) keeping its sign.
func wrapAngle(a float64) float64 {
	return math.Mod(a, 2*math.Pi)
}

// Speed returns the signed speed; negative while reversing.
func (c *Car) Speed() float64 { return c.speed }

// SteerAngle returns the current steering angle in radians.
func (c *Car) SteerAngle() float64 { return c.steer }

// Direction returns the selected gear.
func (c *Car) Direction() Direction { return c.direction }

// WheelRotation returns the accumulated wheel spin angle, wrapped to one turn.
func (c *Car) WheelRotation() float64 { return c.wheelRotation }

// DistanceTraveled returns the distance covered during the last Advance.
func (c *Car) DistanceTraveled() float64 { return c.distance }

// HeadingDelta returns the yaw applied during the last Advance.
func (c *Car) HeadingDelta() float64 { return c.headingDelta }

// Collided reports whether the last Advance found the car out of bounds.
func (c *Car) Collided() bool { return c.collided }

// Params returns the tuning the car was built with.
func (c *Car) Params() Params { return c.params }

// Skeleton exposes the bone hierarchy for renderers that walk it.
func (c *Car) Skeleton() *Skeleton { return c.skeleton }

// SetMaxSpeed changes the speed cap. Lowering it clamps the current speed.
func (c *Car) SetMaxSpeed(v float64) {
	if !(v > 0) {
		return
	}
	c.params.MaxSpeed = v
	if math.Abs(c.speed) > v {
		c.speed = math.Copysign(v, c.speed)
	}
}

// SpeedDisplay formats the speedometer reading.
func (c *Car) SpeedDisplay() string {
	return fmt.Sprintf("%06.2f Km/t", math.Abs(c.speed)*kmhFactor)
}

// GearDisplay returns the gear name for the HUD.
func (c *Car) GearDisplay() string {
	return c.direction.String()
}

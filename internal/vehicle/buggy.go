package vehicle

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Bone names the kinematic model requires.
const (
	BoneChassis              = "chassis"
	BoneDifferential         = "differential"
	BoneSuspensionRearRight  = "suspension_rear_right"
	BoneWheelRearRight       = "wheel_rear_right"
	BoneSuspensionRearLeft   = "suspension_rear_left"
	BoneWheelRearLeft        = "wheel_rear_left"
	BoneSuspensionFrontRight = "suspension_front_right"
	BoneWheelFrontRight      = "wheel_front_right"
	BoneSuspensionFrontLeft  = "suspension_front_left"
	BoneWheelFrontLeft       = "wheel_front_left"
)

// Wheel identifies one of the four wheels.
type Wheel int

const (
	FrontLeft Wheel = iota
	FrontRight
	RearLeft
	RearRight
)

// String returns a human-readable wheel name.
func (w Wheel) String() string {
	switch w {
	case FrontLeft:
		return "front-left"
	case FrontRight:
		return "front-right"
	case RearLeft:
		return "rear-left"
	case RearRight:
		return "rear-right"
	default:
		return "unknown"
	}
}

// Buggy geometry in chassis space. The chassis frame has X forward, Y up and
// +Z on the driver's left.
const (
	buggyAxleOffset       = 0.55 // Chassis origin to each axle along X
	buggySuspensionOffset = 0.3  // Axle centre to suspension mount along Z
	buggyHubOffset        = 0.1  // Suspension mount to wheel hub along Z
)

// BuggyBones returns the bind pose of the stock buggy.
//
// Wheel bones are oriented so that their local X axis points up and their
// local Z axis is the axle: RotateX steers and RotateZ spins. Right-side
// wheels are turned around to face outward, which is why they spin with the
// opposite sign.
func BuggyBones() []Bone {
	leftWheel := func(z float64) mgl64.Mat4 {
		return mgl64.Translate3D(0, 0, z).Mul4(mgl64.HomogRotate3DZ(math.Pi / 2))
	}
	rightWheel := func(z float64) mgl64.Mat4 {
		return mgl64.Translate3D(0, 0, z).
			Mul4(mgl64.HomogRotate3DY(math.Pi)).
			Mul4(mgl64.HomogRotate3DZ(math.Pi / 2))
	}

	return []Bone{
		{Name: BoneChassis, Parent: NoParent, Bind: mgl64.Ident4()},
		{Name: BoneDifferential, Parent: 0, Bind: mgl64.Translate3D(-buggyAxleOffset, 0, 0)},
		{Name: BoneSuspensionRearRight, Parent: 1, Bind: mgl64.Translate3D(0, 0, -buggySuspensionOffset)},
		{Name: BoneWheelRearRight, Parent: 2, Bind: rightWheel(-buggyHubOffset)},
		{Name: BoneSuspensionRearLeft, Parent: 1, Bind: mgl64.Translate3D(0, 0, buggySuspensionOffset)},
		{Name: BoneWheelRearLeft, Parent: 4, Bind: leftWheel(buggyHubOffset)},
		{Name: BoneSuspensionFrontRight, Parent: 0, Bind: mgl64.Translate3D(buggyAxleOffset, 0, -buggySuspensionOffset)},
		{Name: BoneWheelFrontRight, Parent: 6, Bind: rightWheel(-buggyHubOffset)},
		{Name: BoneSuspensionFrontLeft, Parent: 0, Bind: mgl64.Translate3D(buggyAxleOffset, 0, buggySuspensionOffset)},
		{Name: BoneWheelFrontLeft, Parent: 8, Bind: leftWheel(buggyHubOffset)},
	}
}

// rig caches the bone indices the car writes to every tick.
type rig struct {
	chassis      int
	differential int
	wheels       [4]int // Indexed by Wheel
}

// bindRig resolves the required bones by name and checks the hierarchy the
// kinematics depends on: front wheels hang off the chassis directly, rear
// wheels hang off the differential.
func bindRig(s *Skeleton) (rig, error) {
	var r rig
	lookup := func(name string) (int, error) {
		i, ok := s.Index(name)
		if !ok {
			return 0, fmt.Errorf("vehicle: skeleton is missing bone %q", name)
		}
		return i, nil
	}

	var err error
	if r.chassis, err = lookup(BoneChassis); err != nil {
		return r, err
	}
	if r.chassis != s.Root() {
		return r, fmt.Errorf("vehicle: bone %q must be the root", BoneChassis)
	}
	if r.differential, err = lookup(BoneDifferential); err != nil {
		return r, err
	}

	wheelBones := [4]string{
		FrontLeft:  BoneWheelFrontLeft,
		FrontRight: BoneWheelFrontRight,
		RearLeft:   BoneWheelRearLeft,
		RearRight:  BoneWheelRearRight,
	}
	for w, name := range wheelBones {
		if r.wheels[w], err = lookup(name); err != nil {
			return r, err
		}
	}

	for _, name := range []string{
		BoneSuspensionFrontLeft, BoneSuspensionFrontRight,
		BoneSuspensionRearLeft, BoneSuspensionRearRight,
	} {
		if _, err = lookup(name); err != nil {
			return r, err
		}
	}

	for _, w := range []Wheel{FrontLeft, FrontRight} {
		if s.HasAncestor(r.wheels[w], r.differential) {
			return r, fmt.Errorf("vehicle: %s wheel must not hang off the differential", w)
		}
	}
	for _, w := range []Wheel{RearLeft, RearRight} {
		if !s.HasAncestor(r.wheels[w], r.differential) {
			return r, fmt.Errorf("vehicle: %s wheel must hang off the differential", w)
		}
	}
	return r, nil
}

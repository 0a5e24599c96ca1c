package vehicle

import (
	"errors"
	"fmt"
	"math"
)

// Params holds the tuning constants of the kinematic model.
// All values are eyeballed, not derived from any physical model.
type Params struct {
	SteerStep     float64 // Radians added per SteerLeft/SteerRight call
	MaxSteer      float64 // Steering lock in radians (symmetric)
	CenterDamping float64 // Multiplier applied by CenterSteering
	CenterSnap    float64 // |steer| below this snaps to zero when centering

	AccelerationStep    float64 // Speed added per Accelerate call
	BrakeStep           float64 // Speed removed per Decelerate call
	StopSnap            float64 // |speed| below this snaps to zero when braking
	MaxSpeed            float64 // Hard cap on |speed|
	GearChangeThreshold float64 // |speed| must be below this to shift

	WheelBase          float64 // Distance to the front axle, sets turning radius
	WheelCircumference float64 // Distance covered by one wheel revolution
	TurnGain           float64 // Scales the per-tick heading change (1 = plain arc length / radius)
	SteerEpsilon       float64 // |steer| below this is treated as straight ahead

	Boundary Region // Drivable area checked by CheckCollision
}

// DefaultParams returns the stock buggy tuning.
func DefaultParams() Params {
	return Params{
		SteerStep:     0.01,
		MaxSteer:      0.5,
		CenterDamping: 0.9,
		CenterSnap:    0.025,

		AccelerationStep:    0.005,
		BrakeStep:           0.010,
		StopSnap:            0.011,
		MaxSpeed:            0.7,
		GearChangeThreshold: 0.016,

		WheelBase:          0.23,
		WheelCircumference: 0.00065 * 2 * math.Pi,
		TurnGain:           1.0,
		SteerEpsilon:       1e-6,

		Boundary: DefaultRegion(),
	}
}

// Validate reports parameters that would make the model degenerate.
func (p Params) Validate() error {
	var errs []error
	positive := []struct {
		name string
		val  float64
	}{
		{"steer_step", p.SteerStep},
		{"max_steer", p.MaxSteer},
		{"acceleration_step", p.AccelerationStep},
		{"brake_step", p.BrakeStep},
		{"max_speed", p.MaxSpeed},
		{"wheel_base", p.WheelBase},
		{"wheel_circumference", p.WheelCircumference},
		{"turn_gain", p.TurnGain},
	}
	for _, f := range positive {
		if !(f.val > 0) || math.IsInf(f.val, 0) {
			errs = append(errs, fmt.Errorf("%s must be positive and finite, got %v", f.name, f.val))
		}
	}
	if p.MaxSteer >= math.Pi/2 {
		errs = append(errs, fmt.Errorf("max_steer must be below pi/2, got %v", p.MaxSteer))
	}
	if p.CenterDamping < 0 || p.CenterDamping >= 1 {
		errs = append(errs, fmt.Errorf("center_damping must be in [0, 1), got %v", p.CenterDamping))
	}
	if p.CenterSnap < 0 || p.StopSnap < 0 || p.GearChangeThreshold < 0 || p.SteerEpsilon < 0 {
		errs = append(errs, errors.New("snap thresholds must not be negative"))
	}
	if err := p.Boundary.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("vehicle: invalid params: %w", errors.Join(errs...))
	}
	return nil
}

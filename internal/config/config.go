// Package config provides YAML-based configuration loading and difficulty
// management for the racer.
package config

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/buggy-racer/internal/vehicle"
)

// RacerConfig contains all configuration for the Buggy Racer game.
type RacerConfig struct {
	Vehicle    RacerVehicle     `yaml:"vehicle"`
	Track      RacerTrack       `yaml:"track"`
	Session    RacerSession     `yaml:"session"`
	Camera     RacerCamera      `yaml:"camera"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RacerVehicle defines the kinematic tuning of the buggy.
type RacerVehicle struct {
	SteerStep           float64 `yaml:"steer_step"`
	MaxSteer            float64 `yaml:"max_steer"`
	CenterDamping       float64 `yaml:"center_damping"`
	CenterSnap          float64 `yaml:"center_snap"`
	AccelerationStep    float64 `yaml:"acceleration_step"`
	BrakeStep           float64 `yaml:"brake_step"`
	StopSnap            float64 `yaml:"stop_snap"`
	MaxSpeed            float64 `yaml:"max_speed"`
	GearChangeThreshold float64 `yaml:"gear_change_threshold"`
	WheelBase           float64 `yaml:"wheel_base"`
	WheelCircumference  float64 `yaml:"wheel_circumference"`
	TurnGain            float64 `yaml:"turn_gain"`
}

// RacerTrack defines the drivable area and the spawn point.
type RacerTrack struct {
	Boundary RacerBoundary `yaml:"boundary"`
	Start    RacerStart    `yaml:"start"`
}

// RacerBoundary is the rectangle checked by the collision test.
type RacerBoundary struct {
	MinX float64 `yaml:"min_x"`
	MaxX float64 `yaml:"max_x"`
	MinZ float64 `yaml:"min_z"`
	MaxZ float64 `yaml:"max_z"`
}

// RacerStart is where the car spawns on reset.
type RacerStart struct {
	X       float64 `yaml:"x"`
	Z       float64 `yaml:"z"`
	Heading float64 `yaml:"heading"` // Degrees about +Y, 0 faces +X
}

// RacerSession defines the rules of one timed run.
type RacerSession struct {
	DurationSeconds int  `yaml:"duration_seconds"` // 0 means untimed
	AutoCenter      bool `yaml:"auto_center"`      // Ease steering back when no steer key arrives
}

// RacerCamera defines the initial view.
type RacerCamera struct {
	Mode           string  `yaml:"mode"`            // "chase", "overhead" or "trackside"
	OverheadHeight float64 `yaml:"overhead_height"` // Eye height of the overhead view
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to top speed at max difficulty
}

// Params converts the vehicle section into model parameters.
// Fields that must be positive keep the stock value when zero, so a
// hand-built config stays usable. Damping and the snap thresholds are
// taken as given because zero is a meaningful setting for them; files are
// decoded over DefaultRacerConfig, so an absent key still means stock.
func (c RacerConfig) Params() vehicle.Params {
	p := vehicle.DefaultParams()
	v := c.Vehicle

	set := func(dst *float64, val float64) {
		if val != 0 {
			*dst = val
		}
	}
	set(&p.SteerStep, v.SteerStep)
	set(&p.MaxSteer, v.MaxSteer)
	set(&p.AccelerationStep, v.AccelerationStep)
	set(&p.BrakeStep, v.BrakeStep)
	set(&p.MaxSpeed, v.MaxSpeed)
	set(&p.WheelBase, v.WheelBase)
	set(&p.WheelCircumference, v.WheelCircumference)
	set(&p.TurnGain, v.TurnGain)

	p.CenterDamping = v.CenterDamping
	p.CenterSnap = v.CenterSnap
	p.StopSnap = v.StopSnap
	p.GearChangeThreshold = v.GearChangeThreshold

	b := c.Track.Boundary
	if b != (RacerBoundary{}) {
		p.Boundary = vehicle.Region{MinX: b.MinX, MaxX: b.MaxX, MinZ: b.MinZ, MaxZ: b.MaxZ}
	}
	return p
}

// StartPosition returns the spawn point on the ground plane.
func (s RacerStart) StartPosition() mgl64.Vec3 {
	return mgl64.Vec3{s.X, 0, s.Z}
}

// HeadingRadians returns the spawn heading in radians.
func (s RacerStart) HeadingRadians() float64 {
	return s.Heading * math.Pi / 180
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	case DifficultyFixed:
		return 1.0
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

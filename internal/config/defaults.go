package config

import (
	_ "embed"
	"math"
)

//go:embed defaults/racer.yaml
var defaultRacerYAML []byte

// DefaultRacerConfig returns the default Buggy Racer configuration.
func DefaultRacerConfig() RacerConfig {
	return RacerConfig{
		Vehicle: RacerVehicle{
			SteerStep:           0.01,
			MaxSteer:            0.5,
			CenterDamping:       0.9,
			CenterSnap:          0.025,
			AccelerationStep:    0.005,
			BrakeStep:           0.010,
			StopSnap:            0.011,
			MaxSpeed:            0.5,
			GearChangeThreshold: 0.016,
			WheelBase:           0.23,
			WheelCircumference:  0.00065 * 2 * math.Pi,
			TurnGain:            2 * math.Pi,
		},
		Track: RacerTrack{
			Boundary: RacerBoundary{MinX: -50, MaxX: 26, MinZ: -48, MaxZ: 28},
			Start:    RacerStart{X: -12, Z: -44, Heading: 0},
		},
		Session: RacerSession{
			DurationSeconds: 180,
			AutoCenter:      false,
		},
		Camera: RacerCamera{
			Mode:           "chase",
			OverheadHeight: 110,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 7200,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.4,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "racer":
		return defaultRacerYAML
	default:
		return nil
	}
}

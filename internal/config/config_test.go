package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/buggy-racer/internal/vehicle"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseRacer(GetDefaultYAML("racer"))
	if err != nil {
		t.Fatalf("parseRacer(embedded) failed: %v", err)
	}
	want := DefaultRacerConfig()

	got, exp := cfg.Params(), want.Params()
	fields := []struct {
		name     string
		got, exp float64
	}{
		{"SteerStep", got.SteerStep, exp.SteerStep},
		{"MaxSteer", got.MaxSteer, exp.MaxSteer},
		{"MaxSpeed", got.MaxSpeed, exp.MaxSpeed},
		{"WheelBase", got.WheelBase, exp.WheelBase},
		{"WheelCircumference", got.WheelCircumference, exp.WheelCircumference},
		{"TurnGain", got.TurnGain, exp.TurnGain},
	}
	for _, f := range fields {
		if math.Abs(f.got-f.exp) > 1e-12 {
			t.Errorf("%s = %v, expected %v", f.name, f.got, f.exp)
		}
	}
	if got.Boundary != exp.Boundary {
		t.Errorf("Boundary = %+v, expected %+v", got.Boundary, exp.Boundary)
	}
	if cfg.Track.Start != want.Track.Start {
		t.Errorf("Start = %+v, expected %+v", cfg.Track.Start, want.Track.Start)
	}
	if cfg.Session != want.Session {
		t.Errorf("Session = %+v, expected %+v", cfg.Session, want.Session)
	}
	if cfg.Camera != want.Camera {
		t.Errorf("Camera = %+v, expected %+v", cfg.Camera, want.Camera)
	}
	if cfg.Difficulty != want.Difficulty {
		t.Errorf("Difficulty = %+v, expected %+v", cfg.Difficulty, want.Difficulty)
	}
}

func TestGetDefaultYAMLUnknown(t *testing.T) {
	if GetDefaultYAML("pong") != nil {
		t.Error("GetDefaultYAML() should return nil for unknown games")
	}
}

func TestLoadRacerCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "racer.yaml")
	data := "vehicle:\n  max_speed: 0.6\nsession:\n  duration_seconds: 30\ncamera:\n  mode: overhead\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRacer(path)
	if err != nil {
		t.Fatalf("LoadRacer() failed: %v", err)
	}
	if cfg.Vehicle.MaxSpeed != 0.6 {
		t.Errorf("MaxSpeed = %v, expected 0.6", cfg.Vehicle.MaxSpeed)
	}
	if cfg.Session.DurationSeconds != 30 {
		t.Errorf("DurationSeconds = %d, expected 30", cfg.Session.DurationSeconds)
	}
	if cfg.Camera.Mode != "overhead" {
		t.Errorf("Camera.Mode = %q, expected overhead", cfg.Camera.Mode)
	}
	// Keys missing from the file keep their defaults.
	if cfg.Vehicle.SteerStep != 0.01 {
		t.Errorf("SteerStep = %v, expected default 0.01", cfg.Vehicle.SteerStep)
	}
	if cfg.Track.Boundary.MaxX != 26 {
		t.Errorf("Boundary.MaxX = %v, expected default 26", cfg.Track.Boundary.MaxX)
	}
}

func TestLoadRacerErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"bad yaml", "vehicle: [", "failed to parse"},
		{"bad tuning", "vehicle:\n  max_steer: 2\n", "max_steer"},
		{"bad boundary", "track:\n  boundary:\n    min_x: 10\n    max_x: 5\n    min_z: 0\n    max_z: 1\n", "boundary"},
		{"bad camera", "camera:\n  mode: cockpit\n", "camera mode"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tc.name, " ", "_")+".yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := LoadRacer(path)
			if err == nil {
				t.Fatal("LoadRacer() should fail")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}

	if _, err := LoadRacer(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadRacer() should fail for a missing custom file")
	}
}

func TestParamsZeroFields(t *testing.T) {
	var cfg RacerConfig
	p := cfg.Params()
	stock := vehicle.DefaultParams()
	if p.MaxSpeed != stock.MaxSpeed || p.SteerStep != stock.SteerStep || p.Boundary != stock.Boundary {
		t.Error("zero positive fields should keep the stock values")
	}
	if err := p.Validate(); err != nil {
		t.Errorf("Params() of an empty config should validate, got %v", err)
	}

	cfg.Vehicle.MaxSpeed = 0.3
	cfg.Track.Boundary = RacerBoundary{MinX: -10, MaxX: 10, MinZ: -5, MaxZ: 5}
	p = cfg.Params()
	if p.MaxSpeed != 0.3 {
		t.Errorf("MaxSpeed = %v, expected 0.3", p.MaxSpeed)
	}
	if p.Boundary != (vehicle.Region{MinX: -10, MaxX: 10, MinZ: -5, MaxZ: 5}) {
		t.Errorf("Boundary = %+v, expected the configured region", p.Boundary)
	}
}

func TestParseRacerExplicitZeroThresholds(t *testing.T) {
	data := "vehicle:\n  stop_snap: 0\n  center_snap: 0\n  gear_change_threshold: 0\n"
	cfg, err := parseRacer([]byte(data))
	if err != nil {
		t.Fatalf("parseRacer() failed: %v", err)
	}

	p := cfg.Params()
	if p.StopSnap != 0 || p.CenterSnap != 0 || p.GearChangeThreshold != 0 {
		t.Errorf("StopSnap/CenterSnap/GearChangeThreshold = %v/%v/%v, expected explicit zeros",
			p.StopSnap, p.CenterSnap, p.GearChangeThreshold)
	}
	if p.CenterDamping != 0.9 || p.BrakeStep != 0.010 {
		t.Errorf("keys absent from the file should keep their defaults, got damping %v brake %v",
			p.CenterDamping, p.BrakeStep)
	}
}

func TestRacerStart(t *testing.T) {
	s := RacerStart{X: 3, Z: -4, Heading: 90}
	if pos := s.StartPosition(); pos.X() != 3 || pos.Y() != 0 || pos.Z() != -4 {
		t.Errorf("StartPosition() = %v, expected (3, 0, -4)", pos)
	}
	if math.Abs(s.HeadingRadians()-math.Pi/2) > 1e-12 {
		t.Errorf("HeadingRadians() = %v, expected pi/2", s.HeadingRadians())
	}
}

func TestApplyRacerPreset(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		enabled    bool
		level      float64
		duration   int
		autoCenter bool
	}{
		{DifficultyEasy, true, 0.0, 240, true},
		{DifficultyNormal, true, 0.3, 180, false},
		{DifficultyHard, true, 0.7, 120, false},
		{DifficultyFixed, false, 1.0, 180, false},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultRacerConfig()
			ApplyRacerPreset(&cfg, tc.preset)

			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.level {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.level)
			}
			if cfg.Session.DurationSeconds != tc.duration {
				t.Errorf("DurationSeconds = %d, expected %d", cfg.Session.DurationSeconds, tc.duration)
			}
			if cfg.Session.AutoCenter != tc.autoCenter {
				t.Errorf("AutoCenter = %v, expected %v", cfg.Session.AutoCenter, tc.autoCenter)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in   string
		want DifficultyPreset
		ok   bool
	}{
		{"", DifficultyNormal, true},
		{"easy", DifficultyEasy, true},
		{"fixed", DifficultyFixed, true},
		{"insane", "", false},
	}

	for _, tc := range tests {
		got, ok := ParsePreset(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParsePreset(%q) = (%q, %v), expected (%q, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

package config

import (
	"math"
	"testing"
)

func TestDifficultyLevelProgression(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 100},
		Scaling:      ScalingConfig{SpeedMultiplier: 0.5},
	}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		ticks    int
		expected float64
	}{
		{0, 0.2},
		{50, 0.6},
		{100, 1.0},
		{500, 1.0},
	}
	for _, tc := range tests {
		if got := d.Level(0, tc.ticks); math.Abs(got-tc.expected) > 1e-12 {
			t.Errorf("Level(0, %d) = %v, expected %v", tc.ticks, got, tc.expected)
		}
	}

	if got := d.Speed(0.5, 0, 100); math.Abs(got-0.75) > 1e-12 {
		t.Errorf("Speed() at max level = %v, expected 0.75", got)
	}
}

func TestDifficultyScoreProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 4},
	})

	if got := d.Level(2, 9999); got != 0.5 {
		t.Errorf("Level(2, _) = %v, expected 0.5", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.3,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 10},
	})

	if d.IsEnabled() {
		t.Error("IsEnabled() should be false when progression is off")
	}
	if got := d.Level(0, 1000); got != 0.3 {
		t.Errorf("Level() = %v, expected the initial level 0.3", got)
	}

	high := NewDifficultyManager(DifficultyConfig{InitialLevel: 5})
	if got := high.Level(0, 0); got != 1.0 {
		t.Errorf("Level() = %v, expected clamp to 1.0", got)
	}

	none := NewDifficultyManager(DifficultyConfig{Enabled: true, Progression: ProgressionConfig{Type: "none"}})
	if none.IsEnabled() {
		t.Error("progression type none should disable progression")
	}
}

func TestDifficultyZeroMaxAt(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 0},
	})
	if got := d.Level(0, 1); got != 1.0 {
		t.Errorf("Level() = %v, expected 1.0", got)
	}
}

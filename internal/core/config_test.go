package core

import "testing"

func TestRuntimeConfigStep(t *testing.T) {
	tests := []struct {
		rate     int
		expected float64
	}{
		{60, 1.0 / 60},
		{30, 1.0 / 30},
		{0, 1.0 / 60},
		{-5, 1.0 / 60},
	}

	for _, tc := range tests {
		cfg := RuntimeConfig{TickRate: tc.rate}
		if cfg.Step() != tc.expected {
			t.Errorf("Step() with rate %d = %v, expected %v", tc.rate, cfg.Step(), tc.expected)
		}
	}
}

func TestStepResultHas(t *testing.T) {
	r := StepResult{Events: []Event{{Kind: EventCrash}, {Kind: EventLap, Value: 900}}}

	if !r.Has(EventLap) {
		t.Error("Has(EventLap) should be true")
	}
	if r.Has(EventSessionEnd) {
		t.Error("Has(EventSessionEnd) should be false")
	}
	if (StepResult{}).Has(EventCrash) {
		t.Error("empty result should have no events")
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if len(f.Actions) != 0 {
		t.Error("new frame should be empty")
	}

	f.Set(ActionAccelerate)
	f.Set(ActionSteerLeft)
	if !f.Has(ActionAccelerate) || !f.Has(ActionSteerLeft) {
		t.Error("frame should report the actions that were set")
	}
	if f.Has(ActionBrake) {
		t.Error("frame should not report unset actions")
	}

	f.Clear()
	if f.Has(ActionAccelerate) || len(f.Actions) != 0 {
		t.Error("Clear() should remove all actions")
	}

	var zero InputFrame
	if zero.Has(ActionQuit) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionQuit)
	if !zero.Has(ActionQuit) {
		t.Error("Set() on a zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionGearReverse.String() != "GearReverse" {
		t.Errorf("String() = %q, expected %q", ActionGearReverse.String(), "GearReverse")
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("String() = %q, expected %q", Action(99).String(), "Unknown")
	}
}

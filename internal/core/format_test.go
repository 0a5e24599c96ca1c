package core

import (
	"testing"
	"time"
)

func TestFormatLapTime(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "-:--.--"},
		{-time.Second, "-:--.--"},
		{31*time.Second + 200*time.Millisecond, "0:31.20"},
		{75*time.Second + 5*time.Millisecond, "1:15.00"},
		{10*time.Minute + 999*time.Millisecond, "10:00.99"},
	}
	for _, tc := range tests {
		if got := FormatLapTime(tc.d); got != tc.want {
			t.Errorf("FormatLapTime(%v) = %q, expected %q", tc.d, got, tc.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{180 * time.Second, "3:00"},
		{59*time.Second + time.Millisecond, "1:00"},
		{time.Millisecond, "0:01"},
		{0, "0:00"},
		{-time.Second, "0:00"},
	}
	for _, tc := range tests {
		if got := FormatClock(tc.d); got != tc.want {
			t.Errorf("FormatClock(%v) = %q, expected %q", tc.d, got, tc.want)
		}
	}
}

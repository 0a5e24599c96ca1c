package core

import (
	"fmt"
	"time"
)

// FormatLapTime formats a lap time as m:ss.cc, or dashes when there is none.
func FormatLapTime(d time.Duration) string {
	if d <= 0 {
		return "-:--.--"
	}
	cs := d.Milliseconds() / 10
	return fmt.Sprintf("%d:%02d.%02d", cs/6000, (cs/100)%60, cs%100)
}

// FormatClock formats a countdown as m:ss, rounding up so the clock only
// reads 0:00 once time is up.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	s := int((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}

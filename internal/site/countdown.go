package site

import (
	"fmt"
	"time"
)

// Countdown holds the remaining time to kickoff as zero-padded fields
// ready for display.
type Countdown struct {
	Days    string
	Hours   string
	Minutes string
	Seconds string
}

// CountdownUntil splits the remainder between now and target into
// days, hours, minutes and seconds. At or past the target every field
// clamps to "00" instead of going negative.
func CountdownUntil(target, now time.Time) Countdown {
	diff := target.Sub(now)
	if diff <= 0 {
		return Countdown{Days: "00", Hours: "00", Minutes: "00", Seconds: "00"}
	}

	total := int64(diff / time.Second)
	days := total / 86400
	hours := (total % 86400) / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	return Countdown{
		Days:    pad2(days),
		Hours:   pad2(hours),
		Minutes: pad2(minutes),
		Seconds: pad2(seconds),
	}
}

// Expired reports whether every field already clamped to zero.
func (c Countdown) Expired() bool {
	return c.Days == "00" && c.Hours == "00" && c.Minutes == "00" && c.Seconds == "00"
}

func pad2(v int64) string {
	return fmt.Sprintf("%02d", v)
}

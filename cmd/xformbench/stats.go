package main

import (
	"time"
)

// PassTimes tracks how long propagation passes take.
type PassTimes struct {
	PassCount       uint64
	AverageDuration time.Duration
	MaxDuration     time.Duration

	// duration of the most recent pass
	Last time.Duration
}

func (t *PassTimes) Record(d time.Duration) {
	const window = 64

	t.Last = d
	t.MaxDuration = max(t.MaxDuration, d)

	if t.PassCount < window/2 {
		t.AverageDuration = d
	} else {
		t.AverageDuration = ((window-1)*t.AverageDuration + d) / window
	}

	t.PassCount += 1
}

// PassesPerSecond extrapolates the average pass duration.
func (t *PassTimes) PassesPerSecond() float64 {
	if t.AverageDuration == 0 {
		return 0
	}

	return 1.0 / t.AverageDuration.Seconds()
}

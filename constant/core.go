package constant

import "time"

// Refresh Loop Timing
const (
	// RefreshInterval is the sleep after each rendered line
	RefreshInterval = 1 * time.Second

	// PollInterval is the sleep after a poll that produced no new second
	// Kept well under a second so a boundary is picked up promptly
	PollInterval = 100 * time.Millisecond
)

// Status registry keys
const (
	MetricRendered = "refresh.rendered"
	MetricSkipped  = "refresh.skipped"
	MetricSkew     = "clock.skew"
	MetricRollover = "refresh.rollover"
	MetricLastLine = "refresh.last"
)

// SkewNotice is printed in one-shot mode when the clock reads before the epoch
const SkewNotice = "time-travelling"

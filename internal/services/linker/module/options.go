package module

import (
	"time"

	"followup/internal/platform/config"
)

// Options controls the linker worker
type Options struct {
	Interval   time.Duration
	BatchLimit int
	Threshold  time.Duration
	WindowPad  time.Duration
}

// FromConfig reads with LINKER_ prefix
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("LINKER_")
	return Options{
		Interval:   c.MayDuration("INTERVAL", time.Minute),
		BatchLimit: c.MayInt("BATCH_LIMIT", 128),
		Threshold:  c.MayDuration("THRESHOLD", 30*time.Minute),
		WindowPad:  c.MayDuration("WINDOW_PAD", 24*time.Hour),
	}
}

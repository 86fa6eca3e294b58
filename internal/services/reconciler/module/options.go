package module

import (
	"time"

	"followup/internal/platform/config"
)

// Options controls the reconciler worker
type Options struct {
	Interval   time.Duration
	BatchLimit int
}

// FromConfig reads with RECONCILER_ prefix
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("RECONCILER_")
	return Options{
		Interval:   c.MayDuration("INTERVAL", time.Minute),
		BatchLimit: c.MayInt("BATCH_LIMIT", 256),
	}
}

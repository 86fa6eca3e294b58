// Package service implements the location linker worker. Each cycle leases
// a batch of unlinked timeline events, loads the geolocation samples around
// the batch, and persists the best association per event. Events nothing
// qualifies for are still marked linked (with a null sample) so they are
// never rescanned.
package service

import (
	"context"
	"time"

	"followup/internal/core/geolink"
	"followup/internal/modkit"
	"followup/internal/modkit/repokit"
	"followup/internal/platform/logger"
	ldom "followup/internal/services/linker/domain"
	lrepo "followup/internal/services/linker/repo"
)

// Service implements both worker ports
type Service interface {
	ldom.WorkerPort
	ldom.LinkPort
}

// Config controls the linker
type Config struct {
	Interval   time.Duration
	BatchLimit int
	// Threshold bounds the nearest-point fallback per event
	Threshold time.Duration
	// WindowPad extends the sample load window past the batch bounds so
	// visits spanning into the batch are not cut off
	WindowPad time.Duration
}

// Svc implements the linker worker
type Svc struct {
	db     repokit.TxRunner
	binder repokit.Binder[lrepo.Repo]
	cfg    Config
	deps   modkit.Deps
}

// New constructs the service
func New(deps modkit.Deps, cfg Config) *Svc {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Minute
	}
	if cfg.BatchLimit <= 0 {
		cfg.BatchLimit = 128
	}
	if cfg.Threshold <= 0 {
		cfg.Threshold = 30 * time.Minute
	}
	if cfg.WindowPad <= 0 {
		cfg.WindowPad = 24 * time.Hour
	}
	return &Svc{
		db:     deps.PG,
		binder: lrepo.NewPG(),
		cfg:    cfg,
		deps:   deps,
	}
}

// Run ticks until the context ends; cycle errors are logged and the loop
// keeps going
func (s *Svc) Run(ctx context.Context) error {
	log := logger.Named("linker")
	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			res, err := s.RunOnce(ctx)
			if err != nil {
				log.Error().Err(err).Msg("link cycle failed")
				continue
			}
			if res.Leased > 0 {
				log.Info().
					Int("leased", res.Leased).
					Int("linked", res.Linked).
					Int("unlinked", res.Unlinked).
					Msg("link cycle applied")
			}
		}
	}
}

// RunOnce executes a single link cycle in one transaction
func (s *Svc) RunOnce(ctx context.Context) (ldom.Result, error) {
	var res ldom.Result
	err := repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		repo := s.binder.Bind(q)

		events, err := repo.LeaseUnlinked(ctx, s.cfg.BatchLimit)
		if err != nil {
			return err
		}
		if len(events) == 0 {
			return nil
		}

		from, to := batchBounds(events)
		samples, err := repo.SampleWindow(ctx,
			from.Add(-s.cfg.Threshold-s.cfg.WindowPad),
			to.Add(s.cfg.Threshold+s.cfg.WindowPad),
		)
		if err != nil {
			return err
		}

		for _, link := range geolink.Link(events, samples, s.cfg.Threshold) {
			var sampleID *string
			if link.Sample != nil {
				id := link.Sample.ID
				sampleID = &id
			}
			if err := repo.MarkLinked(ctx, link.EventID, sampleID); err != nil {
				return err
			}
			if sampleID != nil {
				res.Linked++
			} else {
				res.Unlinked++
			}
		}
		res.Leased = len(events)
		return nil
	})
	return res, err
}

// batchBounds returns the min and max event timestamps
func batchBounds(events []geolink.Event) (time.Time, time.Time) {
	from, to := events[0].At, events[0].At
	for _, ev := range events[1:] {
		if ev.At.Before(from) {
			from = ev.At
		}
		if ev.At.After(to) {
			to = ev.At
		}
	}
	return from, to
}

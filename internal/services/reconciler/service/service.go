// Package service implements the contact reconciler worker. Each cycle
// folds staged device address book rows into the canonical contact set
// using the merge and reconcile rules from core/contactmerge, inside one
// transaction so a crash never half-applies a batch.
package service

import (
	"context"
	"slices"
	"time"

	"followup/internal/core/contact"
	"followup/internal/core/contactmerge"
	"followup/internal/modkit"
	"followup/internal/modkit/repokit"
	"followup/internal/platform/logger"
	rdom "followup/internal/services/reconciler/domain"
	rrepo "followup/internal/services/reconciler/repo"
)

// Service implements both worker ports
type Service interface {
	rdom.WorkerPort
	rdom.ReconcilePort
}

// Config controls the reconciler
type Config struct {
	Interval   time.Duration
	BatchLimit int
}

// Svc implements the reconciler worker
type Svc struct {
	db     repokit.TxRunner
	binder repokit.Binder[rrepo.Repo]
	cfg    Config
	deps   modkit.Deps
}

// New constructs the service
func New(deps modkit.Deps, cfg Config) *Svc {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Minute
	}
	if cfg.BatchLimit <= 0 {
		cfg.BatchLimit = 256
	}
	return &Svc{
		db:     deps.PG,
		binder: rrepo.NewPG(),
		cfg:    cfg,
		deps:   deps,
	}
}

// Run ticks until the context ends; cycle errors are logged and the loop
// keeps going
func (s *Svc) Run(ctx context.Context) error {
	log := logger.Named("reconciler")
	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			res, err := s.RunOnce(ctx)
			if err != nil {
				log.Error().Err(err).Msg("reconcile cycle failed")
				continue
			}
			if res.Staged > 0 || res.Changed > 0 {
				log.Info().
					Int("staged", res.Staged).
					Int("changed", res.Changed).
					Msg("reconcile cycle applied")
			}
		}
	}
}

// RunOnce executes a single reconcile cycle in one transaction
func (s *Svc) RunOnce(ctx context.Context) (rdom.Result, error) {
	var res rdom.Result
	err := repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		repo := s.binder.Bind(q)

		staged, err := repo.Staged(ctx, s.cfg.BatchLimit)
		if err != nil {
			return err
		}
		if len(staged) == 0 {
			return nil
		}
		canonical, err := repo.Canonical(ctx)
		if err != nil {
			return err
		}

		// The merged set seeds the reconcile map so the device-sourced
		// creation time survives the equal-interaction tie; a canonical row
		// only wins its slot back when it interacted more recently than the
		// merged row.
		merged := contactmerge.Merge(canonical, staged)
		final := contactmerge.Reconcile(indexByID(merged), canonical)

		before := indexByID(canonical)
		changed := 0
		for id, rec := range final {
			if prev, ok := before[id]; ok && recordsEqual(prev, rec) {
				continue
			}
			if err := repo.Upsert(ctx, rec); err != nil {
				return err
			}
			changed++
		}

		ids := make([]string, 0, len(staged))
		for _, c := range staged {
			ids = append(ids, c.ID)
		}
		if err := repo.DeleteStaged(ctx, ids); err != nil {
			return err
		}

		res = rdom.Result{Staged: len(staged), Changed: changed}
		return nil
	})
	return res, err
}

func indexByID(contacts []contact.Record) map[string]contact.Record {
	out := make(map[string]contact.Record, len(contacts))
	for _, c := range contacts {
		out[c.ID] = c
	}
	return out
}

func recordsEqual(a, b contact.Record) bool {
	if a.ID != b.ID || a.Name != b.Name || a.Phone != b.Phone || a.Email != b.Email {
		return false
	}
	if !a.CreatedAt.Equal(b.CreatedAt) || a.Frequency != b.Frequency || a.Origin != b.Origin {
		return false
	}
	switch {
	case a.LastInteractionAt == nil && b.LastInteractionAt != nil,
		a.LastInteractionAt != nil && b.LastInteractionAt == nil:
		return false
	case a.LastInteractionAt != nil && !a.LastInteractionAt.Equal(*b.LastInteractionAt):
		return false
	}
	return slices.Equal(a.Tags, b.Tags)
}

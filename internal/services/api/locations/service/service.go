// Package service contains location workflows: batch sample ingest with
// columnar archival and nearest-sample lookups
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"followup/internal/core/geolink"
	"followup/internal/modkit/repokit"
	"followup/internal/platform/store"
	"followup/internal/services/api/locations/domain"
	"followup/internal/services/api/locations/repo"
)

// defaultThreshold bounds the nearest-point fallback when the caller does
// not supply one
const defaultThreshold = 30 * time.Minute

// archiveTable receives append-only sample history on the columnar side
const archiveTable = "location_samples_archive"

// Service defines the service contract for locations
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	// ch is optional; ingest archives there when present
	ch store.Clickhouse
}

// New creates a new locations service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], ch store.Clickhouse) *Svc {
	if db == nil {
		panic("locations.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("locations.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, ch: ch}
}

// Ingest validates, stores, and archives a batch of samples. Rows land in
// Postgres first; the columnar archive is best-effort only after the
// transactional write succeeds.
func (s *Svc) Ingest(ctx context.Context, in domain.IngestInput) (domain.IngestResult, error) {
	samples := make([]geolink.Sample, 0, len(in.Samples))
	for _, raw := range in.Samples {
		cs := geolink.Sample{
			ID:                 raw.ID,
			ArrivalAt:          raw.ArrivalAt,
			DepartureAt:        raw.DepartureAt,
			Latitude:           raw.Latitude,
			Longitude:          raw.Longitude,
			HorizontalAccuracy: raw.HorizontalAccuracy,
			Source:             geolink.Source(raw.Source),
		}
		if cs.ID == "" {
			cs.ID = uuid.NewString()
		}
		samples = append(samples, cs)
	}

	err := repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		return s.binder.Bind(q).InsertSamples(ctx, samples)
	})
	if err != nil {
		return domain.IngestResult{}, err
	}

	if s.ch != nil {
		// archive failures do not fail ingest; history replays on the next batch
		_ = s.ch.Insert(ctx, archiveTable, archiveRows(samples))
	}
	return domain.IngestResult{Stored: len(samples)}, nil
}

// archiveRows flattens samples into the columnar insert shape
func archiveRows(samples []geolink.Sample) [][]any {
	rows := make([][]any, 0, len(samples))
	for _, s := range samples {
		rows = append(rows, []any{
			s.ID, s.ArrivalAt, s.DepartureAt,
			s.Latitude, s.Longitude, s.HorizontalAccuracy, string(s.Source),
		})
	}
	return rows
}

// Nearby returns the best sample for an ad hoc timestamp, null when no
// visit contains it and nothing arrives within the threshold
func (s *Svc) Nearby(ctx context.Context, in domain.NearbyInput) (domain.NearbyResult, error) {
	threshold := defaultThreshold
	if in.ThresholdSeconds > 0 {
		threshold = time.Duration(in.ThresholdSeconds) * time.Second
	}

	// visits can span well past their arrival; pad the window a day on each
	// side of the threshold so containing intervals are not cut off
	from := in.At.Add(-threshold - 24*time.Hour)
	to := in.At.Add(threshold + 24*time.Hour)
	samples, err := s.Repo.Window(ctx, from, to)
	if err != nil {
		return domain.NearbyResult{}, err
	}

	best := geolink.Best(in.At, samples, threshold)
	if best == nil {
		return domain.NearbyResult{}, nil
	}
	out := domain.FromCore(*best)
	return domain.NearbyResult{Sample: &out}, nil
}

// Package repo provides postgres access for the location linker
package repo

import (
	"context"
	"time"

	"followup/internal/core/geolink"
	"followup/internal/modkit/repokit"
	perr "followup/internal/platform/errors"
	"followup/internal/platform/store"
)

// Repo defines the repository contract for link cycles. Lease and mark are
// expected to run inside the same transaction.
type Repo interface {
	// LeaseUnlinked takes up to limit unlinked timeline events, skipping
	// rows locked by concurrent linkers
	LeaseUnlinked(ctx context.Context, limit int) ([]geolink.Event, error)
	// SampleWindow returns samples whose arrival falls in [from, to]
	SampleWindow(ctx context.Context, from, to time.Time) ([]geolink.Sample, error)
	// MarkLinked records the association; sampleID nil means no sample
	// qualified and the event should not be rescanned
	MarkLinked(ctx context.Context, eventID string, sampleID *string) error
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) LeaseUnlinked(ctx context.Context, limit int) ([]geolink.Event, error) {
	out, err := store.Many(ctx, r.q, scanEvent, `
SELECT id::text, occurred_at
  FROM timeline_events
 WHERE NOT linked
 ORDER BY occurred_at
 LIMIT $1
   FOR UPDATE SKIP LOCKED
`, limit)
	if err != nil {
		return nil, perr.FromPostgres(err, "timeline lease query failed")
	}
	return out, nil
}

func (r *queries) SampleWindow(ctx context.Context, from, to time.Time) ([]geolink.Sample, error) {
	out, err := store.Many(ctx, r.q, scanSample, `
SELECT id::text, arrival_at, departure_at, lat, lon, horizontal_accuracy, source
  FROM location_samples
 WHERE arrival_at BETWEEN $1 AND $2
 ORDER BY arrival_at
`, from, to)
	if err != nil {
		return nil, perr.FromPostgres(err, "sample window query failed")
	}
	return out, nil
}

func scanEvent(row store.Row) (geolink.Event, error) {
	var ev geolink.Event
	if err := row.Scan(&ev.ID, &ev.At); err != nil {
		return geolink.Event{}, perr.Wrap(err, perr.ErrorCodeDB, "timeline event scan failed")
	}
	return ev, nil
}

func scanSample(row store.Row) (geolink.Sample, error) {
	var s geolink.Sample
	var src string
	if err := row.Scan(
		&s.ID, &s.ArrivalAt, &s.DepartureAt,
		&s.Latitude, &s.Longitude, &s.HorizontalAccuracy, &src,
	); err != nil {
		return geolink.Sample{}, perr.Wrap(err, perr.ErrorCodeDB, "location sample scan failed")
	}
	s.Source = geolink.Source(src)
	return s, nil
}

func (r *queries) MarkLinked(ctx context.Context, eventID string, sampleID *string) error {
	_, err := r.q.Exec(ctx, `
UPDATE timeline_events
   SET linked = true,
       location_sample_id = $2
 WHERE id = $1
`, eventID, sampleID)
	return perr.FromPostgres(err, "timeline mark linked failed")
}

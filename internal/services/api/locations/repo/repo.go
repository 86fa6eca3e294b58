// Package repo provides postgres access for location samples
package repo

import (
	"context"
	"time"

	"followup/internal/core/geolink"
	"followup/internal/modkit/repokit"
	perr "followup/internal/platform/errors"
	"followup/internal/platform/store"
)

// Repo defines the repository contract for location samples
type Repo interface {
	InsertSamples(ctx context.Context, samples []geolink.Sample) error
	// Window returns samples whose arrival falls in [from, to]
	Window(ctx context.Context, from, to time.Time) ([]geolink.Sample, error)
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

const sampleCols = `id::text, arrival_at, departure_at, lat, lon, horizontal_accuracy, source`

func (r *queries) InsertSamples(ctx context.Context, samples []geolink.Sample) error {
	const sqlq = `
INSERT INTO location_samples (id, arrival_at, departure_at, lat, lon, horizontal_accuracy, source)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO NOTHING
`
	for _, s := range samples {
		_, err := r.q.Exec(ctx, sqlq,
			s.ID, s.ArrivalAt, s.DepartureAt,
			s.Latitude, s.Longitude, s.HorizontalAccuracy, string(s.Source),
		)
		if err != nil {
			return perr.FromPostgres(err, "location sample insert failed")
		}
	}
	return nil
}

func (r *queries) Window(ctx context.Context, from, to time.Time) ([]geolink.Sample, error) {
	out, err := store.Many(ctx, r.q, scanSample, `
SELECT `+sampleCols+`
  FROM location_samples
 WHERE arrival_at BETWEEN $1 AND $2
 ORDER BY arrival_at
`, from, to)
	if err != nil {
		return nil, perr.FromPostgres(err, "location samples query failed")
	}
	return out, nil
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

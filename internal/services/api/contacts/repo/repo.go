// Package repo provides postgres access for contacts
package repo

import (
	"context"
	"time"

	"followup/internal/core/contact"
	"followup/internal/modkit/repokit"
	perr "followup/internal/platform/errors"
	"followup/internal/platform/store"
)

// Repo defines the repository contract for contacts
type Repo interface {
	List(ctx context.Context) ([]contact.Record, error)
	Get(ctx context.Context, id string) (contact.Record, error)
	Upsert(ctx context.Context, c contact.Record) error
	// StageDevice writes address book rows into the reconciler's staging
	// table, stamped with the submitting device
	StageDevice(ctx context.Context, contacts []contact.Record, sourceDevice string) error
	RecordInteraction(ctx context.Context, id string, at time.Time, kind string, eventID string) error
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

const contactCols = `id::text, name, phone, email, created_at, last_interaction_at, follow_up_frequency, tags, origin`

func (r *queries) List(ctx context.Context) ([]contact.Record, error) {
	out, err := store.Many(ctx, r.q, scanContact, `SELECT `+contactCols+` FROM contacts ORDER BY created_at DESC`)
	if err != nil {
		return nil, perr.FromPostgres(err, "contacts query failed")
	}
	return out, nil
}

func (r *queries) Get(ctx context.Context, id string) (contact.Record, error) {
	row := r.q.QueryRow(ctx, `SELECT `+contactCols+` FROM contacts WHERE id = $1`, id)
	c, err := scanContact(row)
	if err != nil {
		if perr.IsNoRows(err) {
			return contact.Record{}, perr.NotFoundf("contact %s not found", id)
		}
		return contact.Record{}, perr.FromPostgres(err, "contacts query failed")
	}
	return c, nil
}

func (r *queries) Upsert(ctx context.Context, c contact.Record) error {
	const sqlq = `
INSERT INTO contacts (id, name, phone, email, created_at, last_interaction_at, follow_up_frequency, tags, origin)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (id) DO UPDATE SET
  name = EXCLUDED.name,
  phone = EXCLUDED.phone,
  email = EXCLUDED.email,
  created_at = EXCLUDED.created_at,
  last_interaction_at = EXCLUDED.last_interaction_at,
  follow_up_frequency = EXCLUDED.follow_up_frequency,
  tags = EXCLUDED.tags,
  origin = EXCLUDED.origin
`
	_, err := r.q.Exec(ctx, sqlq,
		c.ID, c.Name, c.Phone, c.Email, c.CreatedAt, c.LastInteractionAt,
		string(c.Frequency), c.Tags, c.Origin,
	)
	return perr.FromPostgres(err, "contact upsert failed")
}

func (r *queries) StageDevice(ctx context.Context, contacts []contact.Record, sourceDevice string) error {
	const sqlq = `
INSERT INTO device_contacts (id, name, phone, email, created_at, last_interaction_at, follow_up_frequency, tags, source_device)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (id) DO UPDATE SET
  name = EXCLUDED.name,
  phone = EXCLUDED.phone,
  email = EXCLUDED.email,
  created_at = EXCLUDED.created_at,
  tags = EXCLUDED.tags,
  source_device = EXCLUDED.source_device
`
	for _, c := range contacts {
		_, err := r.q.Exec(ctx, sqlq,
			c.ID, c.Name, c.Phone, c.Email, c.CreatedAt, c.LastInteractionAt,
			string(c.Frequency), c.Tags, sourceDevice,
		)
		if err != nil {
			return perr.FromPostgres(err, "device contact stage failed")
		}
	}
	return nil
}

// RecordInteraction bumps last_interaction_at (only forward) and appends a
// timeline event for the linker to pick up
func (r *queries) RecordInteraction(ctx context.Context, id string, at time.Time, kind string, eventID string) error {
	tag, err := r.q.Exec(ctx, `
UPDATE contacts
   SET last_interaction_at = GREATEST(coalesce(last_interaction_at, 'epoch'::timestamptz), $2)
 WHERE id = $1
`, id, at)
	if err != nil {
		return perr.FromPostgres(err, "interaction update failed")
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("contact %s not found", id)
	}
	_, err = r.q.Exec(ctx, `
INSERT INTO timeline_events (id, contact_id, kind, occurred_at, linked)
VALUES ($1, $2, $3, $4, false)
`, eventID, id, kind, at)
	return perr.FromPostgres(err, "timeline event insert failed")
}

// scanContact reads one contact row from a row cursor
func scanContact(row store.Row) (contact.Record, error) {
	var c contact.Record
	var freq string
	if err := row.Scan(
		&c.ID, &c.Name, &c.Phone, &c.Email,
		&c.CreatedAt, &c.LastInteractionAt, &freq, &c.Tags, &c.Origin,
	); err != nil {
		return contact.Record{}, err
	}
	c.Frequency = contact.Frequency(freq)
	return c, nil
}

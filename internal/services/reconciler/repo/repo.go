// Package repo provides postgres access for the contact reconciler
package repo

import (
	"context"

	"followup/internal/core/contact"
	"followup/internal/modkit/repokit"
	perr "followup/internal/platform/errors"
	"followup/internal/platform/store"
)

// Repo defines the repository contract for reconcile cycles. All methods
// are expected to run inside one transaction per cycle.
type Repo interface {
	Canonical(ctx context.Context) ([]contact.Record, error)
	// Staged leases up to limit device address book rows for this cycle
	Staged(ctx context.Context, limit int) ([]contact.Record, error)
	Upsert(ctx context.Context, c contact.Record) error
	DeleteStaged(ctx context.Context, ids []string) error
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

func (r *queries) Canonical(ctx context.Context) ([]contact.Record, error) {
	out, err := store.Many(ctx, r.q, scanContact, `SELECT `+contactCols+` FROM contacts ORDER BY created_at`)
	if err != nil {
		return nil, perr.FromPostgres(err, "canonical contacts query failed")
	}
	return out, nil
}

func (r *queries) Staged(ctx context.Context, limit int) ([]contact.Record, error) {
	out, err := store.Many(ctx, r.q, scanContact, `
SELECT id::text, name, phone, email, created_at, last_interaction_at, follow_up_frequency, tags, 'device' AS origin
  FROM device_contacts
 ORDER BY created_at
 LIMIT $1
   FOR UPDATE SKIP LOCKED
`, limit)
	if err != nil {
		return nil, perr.FromPostgres(err, "staged contacts query failed")
	}
	return out, nil
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
	return perr.FromPostgres(err, "reconciled contact upsert failed")
}

func (r *queries) DeleteStaged(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.q.Exec(ctx, `DELETE FROM device_contacts WHERE id = ANY($1)`, ids)
	return perr.FromPostgres(err, "staged contacts delete failed")
}

func scanContact(row store.Row) (contact.Record, error) {
	var c contact.Record
	var freq string
	if err := row.Scan(
		&c.ID, &c.Name, &c.Phone, &c.Email,
		&c.CreatedAt, &c.LastInteractionAt, &freq, &c.Tags, &c.Origin,
	); err != nil {
		return contact.Record{}, perr.Wrap(err, perr.ErrorCodeDB, "contact scan failed")
	}
	c.Frequency = contact.Frequency(freq)
	return c, nil
}

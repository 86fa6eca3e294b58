// Package service contains contact workflows: grouped sections for the
// list screen, upserts, interaction recording, and follow-up scheduling
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"followup/internal/core/bucket"
	"followup/internal/core/cadence"
	"followup/internal/core/contact"
	"followup/internal/modkit/repokit"
	"followup/internal/modkit/scope"
	perr "followup/internal/platform/errors"
	"followup/internal/services/api/contacts/domain"
	"followup/internal/services/api/contacts/repo"
)

// Service defines the service contract for contacts
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	// now is a seam for tests; defaults to time.Now
	now func() time.Time
}

// New creates a new contacts service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("contacts.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("contacts.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, now: time.Now}
}

// Sections loads all contacts and groups them for display
func (s *Svc) Sections(ctx context.Context, in domain.SectionsInput) ([]domain.Section, error) {
	records, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	if in.Now != nil {
		now = *in.Now
	}

	var secs []bucket.Section
	switch in.Mode {
	case "day-month-year":
		secs = bucket.ConcreteSections(records, bucket.DayMonthYear)
	case "month-year":
		secs = bucket.ConcreteSections(records, bucket.MonthYear)
	case "relative":
		secs = bucket.Sections(records, false, now)
	default: // new-first is the list screen default
		secs = bucket.Sections(records, true, now)
	}

	out := make([]domain.Section, 0, len(secs))
	for _, sec := range secs {
		ds := domain.Section{Title: sec.Title, New: sec.New}
		ds.Contacts = make([]domain.Contact, 0, len(sec.Contacts))
		for _, c := range sec.Contacts {
			ds.Contacts = append(ds.Contacts, domain.FromRecord(c))
		}
		out = append(out, ds)
	}
	return out, nil
}

// Upsert validates and stores a contact, minting an id when absent
func (s *Svc) Upsert(ctx context.Context, in domain.UpsertInput) (domain.Contact, error) {
	freq := contact.Frequency(in.Frequency)
	if freq != contact.FrequencyNone && !freq.Valid() {
		return domain.Contact{}, perr.InvalidArgf("unknown follow-up frequency %q", in.Frequency)
	}
	rec := contact.Record{
		ID:        in.ID,
		Name:      in.Name,
		Phone:     in.Phone,
		Email:     in.Email,
		Frequency: freq,
		Tags:      in.Tags,
		Origin:    "app",
		CreatedAt: s.now(),
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if in.CreatedAt != nil {
		rec.CreatedAt = *in.CreatedAt
	}
	// edits keep the interaction history and original creation time
	if prev, err := s.Repo.Get(ctx, rec.ID); err == nil {
		rec.LastInteractionAt = prev.LastInteractionAt
		rec.Origin = prev.Origin
		if in.CreatedAt == nil {
			rec.CreatedAt = prev.CreatedAt
		}
	}
	if err := s.Repo.Upsert(ctx, rec); err != nil {
		return domain.Contact{}, err
	}
	stored, err := s.Repo.Get(ctx, rec.ID)
	if err != nil {
		return domain.Contact{}, err
	}
	return domain.FromRecord(stored), nil
}

// DeviceSync stages a batch of address book entries. The background
// reconciler folds them into the canonical set on its next cycle; nothing
// here touches the contacts table directly.
func (s *Svc) DeviceSync(ctx context.Context, in domain.DeviceSyncInput) (domain.DeviceSyncResult, error) {
	rows := make([]contact.Record, 0, len(in.Contacts))
	now := s.now()
	for _, raw := range in.Contacts {
		rec := contact.Record{
			ID:        raw.ID,
			Name:      raw.Name,
			Phone:     raw.Phone,
			Email:     raw.Email,
			Tags:      raw.Tags,
			Origin:    "device",
			CreatedAt: now,
		}
		if rec.ID == "" {
			rec.ID = uuid.NewString()
		}
		if raw.CreatedAt != nil {
			rec.CreatedAt = *raw.CreatedAt
		}
		rows = append(rows, rec)
	}
	sourceDevice, _ := scope.Get(ctx, "device_id")
	err := repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		return s.binder.Bind(q).StageDevice(ctx, rows, sourceDevice)
	})
	if err != nil {
		return domain.DeviceSyncResult{}, err
	}
	return domain.DeviceSyncResult{Staged: len(rows)}, nil
}

// RecordInteraction stamps a follow-up interaction. The contact leaves the
// New section permanently once this succeeds; the appended timeline event
// is picked up later by the location linker.
func (s *Svc) RecordInteraction(ctx context.Context, in domain.InteractionInput) (domain.Contact, error) {
	at := s.now()
	if in.OccurredAt != nil {
		at = *in.OccurredAt
	}
	kind := in.Kind
	if kind == "" {
		kind = "note"
	}
	err := repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		return s.binder.Bind(q).RecordInteraction(ctx, in.ContactID, at, kind, uuid.NewString())
	})
	if err != nil {
		return domain.Contact{}, err
	}
	stored, err := s.Repo.Get(ctx, in.ContactID)
	if err != nil {
		return domain.Contact{}, err
	}
	return domain.FromRecord(stored), nil
}

// NextFollowUp computes the contact's next reminder instant, null when the
// contact has no cadence or has never been followed up with
func (s *Svc) NextFollowUp(ctx context.Context, in domain.NextFollowUpInput) (domain.NextFollowUp, error) {
	rec, err := s.Repo.Get(ctx, in.ContactID)
	if err != nil {
		return domain.NextFollowUp{}, err
	}
	out := domain.NextFollowUp{ContactID: rec.ID, Frequency: string(rec.Frequency)}
	if next, ok := cadence.Next(rec.Frequency, rec.LastInteractionAt); ok {
		out.At = &next
	}
	return out, nil
}

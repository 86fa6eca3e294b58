package service

import (
	"context"
	"testing"
	"time"

	"followup/internal/core/contact"
	"followup/internal/modkit"
	"followup/internal/platform/store"
	rrepo "followup/internal/services/reconciler/repo"
)

type fakeRepo struct {
	canonical []contact.Record
	staged    []contact.Record

	upserts []contact.Record
	deleted []string
}

func (f *fakeRepo) Canonical(ctx context.Context) ([]contact.Record, error) {
	out := make([]contact.Record, len(f.canonical))
	copy(out, f.canonical)
	return out, nil
}

func (f *fakeRepo) Staged(ctx context.Context, limit int) ([]contact.Record, error) {
	if len(f.staged) > limit {
		return f.staged[:limit], nil
	}
	return f.staged, nil
}

func (f *fakeRepo) Upsert(ctx context.Context, c contact.Record) error {
	f.upserts = append(f.upserts, c)
	return nil
}

func (f *fakeRepo) DeleteStaged(ctx context.Context, ids []string) error {
	f.deleted = append(f.deleted, ids...)
	return nil
}

type fakeTx struct{ repo *fakeRepo }

func (fakeTx) Exec(ctx context.Context, sql string, args ...any) (store.CommandTag, error) {
	panic("unexpected Exec")
}
func (fakeTx) Query(ctx context.Context, sql string, args ...any) (store.Rows, error) {
	panic("unexpected Query")
}
func (fakeTx) QueryRow(ctx context.Context, sql string, args ...any) store.Row {
	panic("unexpected QueryRow")
}
func (f fakeTx) Tx(ctx context.Context, fn func(q store.RowQuerier) error) error { return fn(f) }

type fakeBinder struct{ repo *fakeRepo }

func (b fakeBinder) Bind(store.RowQuerier) rrepo.Repo { return b.repo }

func newTestSvc(f *fakeRepo) *Svc {
	s := New(modkit.Deps{PG: fakeTx{repo: f}}, Config{BatchLimit: 10})
	s.binder = fakeBinder{repo: f}
	return s
}

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestRunOnceEmptyStagingIsNoop(t *testing.T) {
	f := &fakeRepo{canonical: []contact.Record{{ID: "c1", Name: "Ana", CreatedAt: ts("2024-01-01T00:00:00Z")}}}
	res, err := newTestSvc(f).RunOnce(context.Background())
	if err != nil {
		t.Fatalf("RunOnce: %v", err)
	}
	if res.Staged != 0 || res.Changed != 0 {
		t.Fatalf("result = %+v, want zero", res)
	}
	if len(f.upserts) != 0 || len(f.deleted) != 0 {
		t.Fatalf("expected no writes on an empty staging table")
	}
}

func TestRunOnceMatchedDeviceRowBackdatesCreation(t *testing.T) {
	f := &fakeRepo{
		canonical: []contact.Record{{
			ID: "c1", Name: "Jo Smith", Phone: "555-1234",
			CreatedAt: ts("2024-03-01T00:00:00Z"), Origin: "app",
		}},
		staged: []contact.Record{{
			ID: "d1", Name: "jo  SMITH", Phone: "(555) 1234",
			CreatedAt: ts("2022-06-01T00:00:00Z"), Origin: "device",
		}},
	}
	res, err := newTestSvc(f).RunOnce(context.Background())
	if err != nil {
		t.Fatalf("RunOnce: %v", err)
	}
	if res.Staged != 1 || res.Changed != 1 {
		t.Fatalf("result = %+v, want 1 staged 1 changed", res)
	}
	if len(f.upserts) != 1 {
		t.Fatalf("upserts = %d, want 1", len(f.upserts))
	}
	got := f.upserts[0]
	if got.ID != "c1" {
		t.Fatalf("merged row id = %q, want the canonical id", got.ID)
	}
	if !got.CreatedAt.Equal(ts("2022-06-01T00:00:00Z")) {
		t.Fatalf("CreatedAt = %v, want the device creation time", got.CreatedAt)
	}
	if got.Name != "Jo Smith" {
		t.Fatalf("Name = %q, want the canonical spelling", got.Name)
	}
	if len(f.deleted) != 1 || f.deleted[0] != "d1" {
		t.Fatalf("deleted = %v, want the staged row", f.deleted)
	}
}

func TestRunOnceUnmatchedDeviceRowInserted(t *testing.T) {
	f := &fakeRepo{
		canonical: []contact.Record{{ID: "c1", Name: "Ana", CreatedAt: ts("2024-01-01T00:00:00Z")}},
		staged:    []contact.Record{{ID: "d9", Name: "Totally New", CreatedAt: ts("2024-02-01T00:00:00Z"), Origin: "device"}},
	}
	res, err := newTestSvc(f).RunOnce(context.Background())
	if err != nil {
		t.Fatalf("RunOnce: %v", err)
	}
	if res.Changed != 1 {
		t.Fatalf("Changed = %d, want 1 inserted row", res.Changed)
	}
	if f.upserts[0].ID != "d9" {
		t.Fatalf("inserted id = %q, want the device row id", f.upserts[0].ID)
	}
}

func TestRunOnceIdempotentAcrossCycles(t *testing.T) {
	staged := []contact.Record{{
		ID: "d1", Name: "Jo Smith", CreatedAt: ts("2022-06-01T00:00:00Z"), Origin: "device",
	}}
	f := &fakeRepo{
		canonical: []contact.Record{{ID: "c1", Name: "Jo Smith", CreatedAt: ts("2024-03-01T00:00:00Z"), Origin: "app"}},
		staged:    staged,
	}
	s := newTestSvc(f)
	if _, err := s.RunOnce(context.Background()); err != nil {
		t.Fatalf("first cycle: %v", err)
	}

	// apply the first cycle's writes, then feed the same staging rows again
	f.canonical[0] = f.upserts[0]
	f.upserts = nil
	f.staged = staged
	res, err := s.RunOnce(context.Background())
	if err != nil {
		t.Fatalf("second cycle: %v", err)
	}
	if res.Changed != 0 {
		t.Fatalf("second cycle Changed = %d, want 0 (idempotent)", res.Changed)
	}
}

func TestRunOnceBatchLimitRespected(t *testing.T) {
	f := &fakeRepo{}
	for i := 0; i < 25; i++ {
		f.staged = append(f.staged, contact.Record{
			ID:        ts("2024-01-01T00:00:00Z").Add(time.Duration(i) * time.Hour).Format(time.RFC3339),
			Name:      "Bulk",
			CreatedAt: ts("2024-01-01T00:00:00Z"),
			Origin:    "device",
		})
	}
	s := newTestSvc(f) // BatchLimit 10
	res, err := s.RunOnce(context.Background())
	if err != nil {
		t.Fatalf("RunOnce: %v", err)
	}
	if res.Staged != 10 {
		t.Fatalf("Staged = %d, want the batch limit", res.Staged)
	}
}

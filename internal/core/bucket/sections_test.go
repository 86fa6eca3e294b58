package bucket

import (
	"testing"
	"time"

	"followup/internal/core/contact"
)

func rec(id string, created time.Time, interacted *time.Time) contact.Record {
	return contact.Record{ID: id, Name: id, CreatedAt: created, LastInteractionAt: interacted}
}

func TestSections_OrderAndGrouping(t *testing.T) {
	now := mustParse(t, "2024-03-15T10:00:00Z")
	interacted := mustParse(t, "2024-03-14T12:00:00Z")

	contacts := []contact.Record{
		rec("old", mustParse(t, "2024-01-02T09:00:00Z"), nil),
		rec("month", mustParse(t, "2024-03-01T09:00:00Z"), nil),
		rec("fresh", mustParse(t, "2024-03-15T08:00:00Z"), nil),           // New
		rec("week-seen", mustParse(t, "2024-03-12T09:00:00Z"), &interacted), // interacted: not New
		rec("week-new", mustParse(t, "2024-03-13T09:00:00Z"), nil),        // New
	}

	secs := Sections(contacts, true, now)
	titles := make([]string, len(secs))
	for i, s := range secs {
		titles[i] = s.Title
	}
	want := []string{"New", "This Week", "This Month", "Previous"}
	if len(titles) != len(want) {
		t.Fatalf("section titles = %v, want %v", titles, want)
	}
	for i := range want {
		if titles[i] != want[i] {
			t.Fatalf("section titles = %v, want %v", titles, want)
		}
	}

	// New section: creation descending
	if got := secs[0].Contacts; got[0].ID != "fresh" || got[1].ID != "week-new" {
		t.Fatalf("New section order = %v, %v", got[0].ID, got[1].ID)
	}
	if secs[1].Contacts[0].ID != "week-seen" {
		t.Fatalf("This Week section = %v", secs[1].Contacts[0].ID)
	}
}

func TestSections_NewModeOff(t *testing.T) {
	now := mustParse(t, "2024-03-15T10:00:00Z")
	contacts := []contact.Record{
		rec("fresh", mustParse(t, "2024-03-15T08:00:00Z"), nil),
	}
	secs := Sections(contacts, false, now)
	if len(secs) != 1 || secs[0].New || secs[0].Title != "Today" {
		t.Fatalf("sections = %+v, want single Today section", secs)
	}
}

// Equal creation timestamps keep their input order; re-grouping the same
// slice must never reshuffle rows.
func TestSections_StableTies(t *testing.T) {
	now := mustParse(t, "2024-03-15T10:00:00Z")
	same := mustParse(t, "2024-03-15T08:00:00Z")
	contacts := []contact.Record{
		rec("a", same, nil),
		rec("b", same, nil),
		rec("c", same, nil),
	}
	for i := 0; i < 5; i++ {
		secs := Sections(contacts, false, now)
		got := secs[0].Contacts
		if got[0].ID != "a" || got[1].ID != "b" || got[2].ID != "c" {
			t.Fatalf("tie order changed on pass %d: %v %v %v", i, got[0].ID, got[1].ID, got[2].ID)
		}
	}
}

func TestConcreteSections(t *testing.T) {
	contacts := []contact.Record{
		rec("feb", mustParse(t, "2024-02-10T09:00:00Z"), nil),
		rec("mar-early", mustParse(t, "2024-03-01T09:00:00Z"), nil),
		rec("mar-late", mustParse(t, "2024-03-09T09:00:00Z"), nil),
	}
	secs := ConcreteSections(contacts, MonthYear)
	if len(secs) != 2 {
		t.Fatalf("sections = %d, want 2", len(secs))
	}
	if secs[0].Title != "March 2024" || secs[1].Title != "February 2024" {
		t.Fatalf("section order = %q, %q", secs[0].Title, secs[1].Title)
	}
	if got := secs[0].Contacts; got[0].ID != "mar-late" || got[1].ID != "mar-early" {
		t.Fatalf("within-section order = %v, %v", got[0].ID, got[1].ID)
	}
}

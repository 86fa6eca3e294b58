package geolink

import (
	"testing"
	"time"
)

func mustParse(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return ts
}

func visit(t *testing.T, id, from, to string, acc float64) Sample {
	dep := mustParse(t, to)
	return Sample{ID: id, ArrivalAt: mustParse(t, from), DepartureAt: &dep, HorizontalAccuracy: acc, Source: SourceVisit}
}

func point(t *testing.T, id, at string, acc float64) Sample {
	return Sample{ID: id, ArrivalAt: mustParse(t, at), HorizontalAccuracy: acc, Source: SourceLocation}
}

func TestBest_VisitBeatsCloserPoint(t *testing.T) {
	// the enclosing visit wins even when a point sample is
	// closer in time
	samples := []Sample{
		point(t, "close", "2024-03-15T09:14:00Z", 5),
		visit(t, "x", "2024-03-15T09:00:00Z", "2024-03-15T09:30:00Z", 50),
	}
	got := Best(mustParse(t, "2024-03-15T09:15:00Z"), samples, 10*time.Minute)
	if got == nil || got.ID != "x" {
		t.Fatalf("Best = %+v, want visit x", got)
	}
}

func TestBest_VisitIntervalInclusive(t *testing.T) {
	samples := []Sample{visit(t, "x", "2024-03-15T09:00:00Z", "2024-03-15T09:30:00Z", 10)}
	for _, at := range []string{"2024-03-15T09:00:00Z", "2024-03-15T09:30:00Z"} {
		if got := Best(mustParse(t, at), samples, 0); got == nil || got.ID != "x" {
			t.Fatalf("Best at boundary %s = %+v, want x", at, got)
		}
	}
	if got := Best(mustParse(t, "2024-03-15T09:30:01Z"), samples, 0); got != nil {
		t.Fatalf("Best past departure = %+v, want nil", got)
	}
}

func TestBest_OverlappingVisits(t *testing.T) {
	// overlapping dwells: most recent arrival wins, accuracy breaks
	// arrival ties
	samples := []Sample{
		visit(t, "early", "2024-03-15T08:00:00Z", "2024-03-15T10:00:00Z", 5),
		visit(t, "late", "2024-03-15T09:00:00Z", "2024-03-15T09:45:00Z", 80),
	}
	if got := Best(mustParse(t, "2024-03-15T09:15:00Z"), samples, 0); got == nil || got.ID != "late" {
		t.Fatalf("Best = %+v, want later arrival", got)
	}

	tied := []Sample{
		visit(t, "loose", "2024-03-15T09:00:00Z", "2024-03-15T10:00:00Z", 80),
		visit(t, "tight", "2024-03-15T09:00:00Z", "2024-03-15T10:00:00Z", 5),
	}
	if got := Best(mustParse(t, "2024-03-15T09:15:00Z"), tied, 0); got == nil || got.ID != "tight" {
		t.Fatalf("Best = %+v, want tighter accuracy on arrival tie", got)
	}
}

func TestBest_NearestWithinThreshold(t *testing.T) {
	samples := []Sample{
		point(t, "far", "2024-03-15T08:00:00Z", 5),
		point(t, "near", "2024-03-15T09:10:00Z", 5),
	}
	got := Best(mustParse(t, "2024-03-15T09:15:00Z"), samples, 30*time.Minute)
	if got == nil || got.ID != "near" {
		t.Fatalf("Best = %+v, want near", got)
	}
	// nothing within threshold: unlinked
	if got := Best(mustParse(t, "2024-03-15T09:15:00Z"), samples, time.Minute); got != nil {
		t.Fatalf("Best = %+v, want nil outside threshold", got)
	}
}

func TestBest_ExactDistanceTiePrefersAccuracy(t *testing.T) {
	samples := []Sample{
		point(t, "before", "2024-03-15T09:10:00Z", 50),
		point(t, "after", "2024-03-15T09:20:00Z", 5),
	}
	got := Best(mustParse(t, "2024-03-15T09:15:00Z"), samples, 10*time.Minute)
	if got == nil || got.ID != "after" {
		t.Fatalf("Best = %+v, want more precise reading on tie", got)
	}
}

func TestLink_ThresholdProperty(t *testing.T) {
	samples := []Sample{
		point(t, "p1", "2024-03-15T09:00:00Z", 5),
		visit(t, "v1", "2024-03-15T11:00:00Z", "2024-03-15T12:00:00Z", 5),
	}
	events := []Event{
		{ID: "e1", At: mustParse(t, "2024-03-15T09:05:00Z")},  // nearest p1
		{ID: "e2", At: mustParse(t, "2024-03-15T11:30:00Z")},  // visit v1
		{ID: "e3", At: mustParse(t, "2024-03-15T15:00:00Z")},  // unlinked
	}
	threshold := 10 * time.Minute

	out := Link(events, samples, threshold)
	if len(out) != 3 {
		t.Fatalf("linked %d, want 3", len(out))
	}
	for _, l := range out {
		var ev Event
		for _, e := range events {
			if e.ID == l.EventID {
				ev = e
			}
		}
		if l.Sample == nil {
			continue
		}
		// a non-visit match must sit inside the threshold window
		if l.Sample.Source != SourceVisit {
			if d := absDuration(ev.At.Sub(l.Sample.ArrivalAt)); d > threshold {
				t.Fatalf("event %s linked outside threshold: %v", ev.ID, d)
			}
		}
	}
	if out[0].Sample == nil || out[0].Sample.ID != "p1" {
		t.Fatalf("e1 = %+v, want p1", out[0].Sample)
	}
	if out[1].Sample == nil || out[1].Sample.ID != "v1" {
		t.Fatalf("e2 = %+v, want v1", out[1].Sample)
	}
	if out[2].Sample != nil {
		t.Fatalf("e3 = %+v, want unlinked", out[2].Sample)
	}
}

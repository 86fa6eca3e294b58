// Package geolink associates timestamped events with the best-matching
// geolocation sample. A dwell ("visit") interval containing the event
// always beats a nearby point reading; events with no qualifying sample
// stay unlinked, which is a valid terminal state rather than an error.
package geolink

import "time"

// Source distinguishes point readings from dwell intervals
type Source string

// Sample sources
const (
	SourceLocation Source = "location"
	SourceVisit    Source = "visit"
)

// Sample is one geolocation reading. A visit has a closed
// [ArrivalAt, DepartureAt] interval; a location is a point in time.
type Sample struct {
	ID                 string
	ArrivalAt          time.Time
	DepartureAt        *time.Time
	Latitude           float64
	Longitude          float64
	HorizontalAccuracy float64
	Source             Source
}

// Event is a timestamped record to be linked
type Event struct {
	ID string
	At time.Time
}

// Linked pairs an event with its chosen sample, nil when nothing qualified
type Linked struct {
	EventID string
	Sample  *Sample
}

// Link resolves every event against the sample set. Per event, in order:
//
//  1. A visit whose [arrival, departure] interval contains the event
//     timestamp (inclusive both ends). Overlapping visits tie-break on the
//     most recent arrival, then on smaller horizontal accuracy.
//  2. Otherwise the sample whose arrival is nearest the event timestamp
//     within ±threshold, with smaller horizontal accuracy breaking exact
//     distance ties.
//  3. Otherwise unlinked.
//
// Pure and side-effect free; the caller persists the associations and is
// responsible for only feeding previously-unlinked events.
func Link(events []Event, samples []Sample, threshold time.Duration) []Linked {
	out := make([]Linked, 0, len(events))
	for _, ev := range events {
		out = append(out, Linked{EventID: ev.ID, Sample: Best(ev.At, samples, threshold)})
	}
	return out
}

// Best returns the sample Link would choose for a single timestamp
func Best(at time.Time, samples []Sample, threshold time.Duration) *Sample {
	if v := bestVisit(at, samples); v != nil {
		return v
	}
	return nearest(at, samples, threshold)
}

func bestVisit(at time.Time, samples []Sample) *Sample {
	var best *Sample
	for i := range samples {
		s := &samples[i]
		if s.Source != SourceVisit || s.DepartureAt == nil {
			continue
		}
		if at.Before(s.ArrivalAt) || at.After(*s.DepartureAt) {
			continue
		}
		if best == nil || visitBetter(s, best) {
			best = s
		}
	}
	return best
}

// visitBetter prefers the later arrival, then the tighter accuracy
func visitBetter(a, b *Sample) bool {
	if !a.ArrivalAt.Equal(b.ArrivalAt) {
		return a.ArrivalAt.After(b.ArrivalAt)
	}
	return a.HorizontalAccuracy < b.HorizontalAccuracy
}

func nearest(at time.Time, samples []Sample, threshold time.Duration) *Sample {
	var best *Sample
	var bestDist time.Duration
	for i := range samples {
		s := &samples[i]
		d := absDuration(at.Sub(s.ArrivalAt))
		if d > threshold {
			continue
		}
		switch {
		case best == nil, d < bestDist:
			best, bestDist = s, d
		case d == bestDist && s.HorizontalAccuracy < best.HorizontalAccuracy:
			best = s
		}
	}
	return best
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}

// Package bucket classifies timestamps into display buckets for contact
// lists. Relative buckets are half-open intervals anchored at an injected
// "now"; together they partition everything up to the start of tomorrow, so
// exactly one bucket matches any timestamp.
package bucket

import (
	"fmt"
	"time"

	"followup/internal/core/calmath"
	"followup/internal/core/contact"
)

// RelativeBucket is a named recency band. Higher values are more recent,
// so ordering comparisons read naturally (Today > ThisWeek).
type RelativeBucket int

// Relative buckets, oldest first
const (
	BeforeLastMonth RelativeBucket = iota
	ThisMonth
	ThisWeek
	Today
)

// String returns the display title for the bucket
func (b RelativeBucket) String() string {
	switch b {
	case Today:
		return "Today"
	case ThisWeek:
		return "This Week"
	case ThisMonth:
		return "This Month"
	default:
		return "Previous"
	}
}

// Relative returns the bucket containing t. Evaluation order is
// Today, ThisWeek, ThisMonth; the intervals are
//
//	Today     = [start of today, start of tomorrow)
//	ThisWeek  = [now - 1 week, now)
//	ThisMonth = [(now - 1 week) - 1 month, now - 1 week)
//
// and everything earlier is BeforeLastMonth. Today is checked first, so a
// timestamp a few hours old lands in Today even though the ThisWeek
// interval also contains it.
func Relative(t, now time.Time) RelativeBucket {
	dayStart := calmath.StartOfDay(now)
	dayEnd := calmath.StartOfTomorrow(now)
	if contains(t, dayStart, dayEnd) {
		return Today
	}
	weekStart := calmath.Add(now, calmath.Week, -1)
	if contains(t, weekStart, now) {
		return ThisWeek
	}
	monthStart := calmath.Add(weekStart, calmath.Month, -1)
	if contains(t, monthStart, weekStart) {
		return ThisMonth
	}
	return BeforeLastMonth
}

// contains reports t in [from, to)
func contains(t, from, to time.Time) bool {
	return !t.Before(from) && t.Before(to)
}

// Granularity selects the field projection for a concrete bucket
type Granularity int

// Concrete bucket granularities
const (
	DayMonthYear Granularity = iota
	MonthYear
)

// ConcreteBucket is a calendar-aligned bucket obtained by projecting a
// timestamp's fields at a granularity. No interval search is involved.
type ConcreteBucket struct {
	Day         int // zero for MonthYear
	Month       time.Month
	Year        int
	Granularity Granularity
}

// Concrete projects t at granularity g
func Concrete(t time.Time, g Granularity) ConcreteBucket {
	y, m, d := t.Date()
	b := ConcreteBucket{Month: m, Year: y, Granularity: g}
	if g == DayMonthYear {
		b.Day = d
	}
	return b
}

// Start returns the bucket's interval start, used for ordering
func (c ConcreteBucket) Start() time.Time {
	d := c.Day
	if c.Granularity == MonthYear || d == 0 {
		d = 1
	}
	return time.Date(c.Year, c.Month, d, 0, 0, 0, 0, time.UTC)
}

// Title returns the display title, e.g. "15 March 2024" or "March 2024"
func (c ConcreteBucket) Title() string {
	if c.Granularity == DayMonthYear {
		return fmt.Sprintf("%d %s %d", c.Day, c.Month, c.Year)
	}
	return fmt.Sprintf("%s %d", c.Month, c.Year)
}

// IsNew reports whether a contact still belongs in the New section: created
// within the last week (Today or ThisWeek bucket) and never interacted
// with. Recording any interaction clears it permanently, regardless of how
// recently the contact was created.
func IsNew(c contact.Record, now time.Time) bool {
	if c.LastInteractionAt != nil {
		return false
	}
	return Relative(c.CreatedAt, now) >= ThisWeek
}

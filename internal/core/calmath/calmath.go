// Package calmath provides pure calendar arithmetic used by the grouping and
// scheduling cores. All functions are side-effect free and respect the
// location attached to their inputs; callers inject "now" explicitly.
package calmath

import "time"

// Unit is a calendar unit for Add
type Unit int

// Calendar units
const (
	Day Unit = iota
	Week
	Month
	Year
)

// StartOfDay returns midnight of t's calendar day in t's location
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfTomorrow returns midnight of the day after t
func StartOfTomorrow(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1)
}

// StartOfMonth returns midnight of the first day of t's month
func StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// Add shifts t by n units. Month and Year additions clamp to the last valid
// day of the target month so Jan 31 + 1 month lands on Feb 28/29 rather than
// normalizing into March.
func Add(t time.Time, unit Unit, n int) time.Time {
	switch unit {
	case Day:
		return t.AddDate(0, 0, n)
	case Week:
		return t.AddDate(0, 0, 7*n)
	case Month:
		return addMonthsClamped(t, n)
	case Year:
		return addMonthsClamped(t, 12*n)
	default:
		return t
	}
}

// addMonthsClamped adds months keeping the day-of-month where possible
func addMonthsClamped(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	// compute target year/month without day normalization
	total := int(m) - 1 + n
	ty := y + total/12
	tm := total % 12
	if tm < 0 {
		tm += 12
		ty--
	}
	month := time.Month(tm + 1)
	if dim := DaysIn(ty, month); d > dim {
		d = dim
	}
	h, mi, s := t.Clock()
	return time.Date(ty, month, d, h, mi, s, t.Nanosecond(), t.Location())
}

// DaysIn returns the number of days in the given month
func DaysIn(year int, month time.Month) int {
	// day 0 of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Template is a set of optional calendar fields. Next finds the first
// instant after a reference time matching every field that is set; unset
// fields are unconstrained. Minutes and seconds are always zeroed.
type Template struct {
	Hour    *int
	Weekday *time.Weekday
	Month   *time.Month
}

// searchHorizonDays bounds the forward scan in Next. A month+weekday
// template resolves within ~14 months, so four years is generous; running
// past it means the template is unsatisfiable.
const searchHorizonDays = 4 * 366

// Next returns the first instant strictly after `after` whose calendar
// fields match tpl. Returns false when no match exists within the search
// horizon; callers treat that as "no occurrence", never as an error.
func Next(after time.Time, tpl Template) (time.Time, bool) {
	hour := 0
	if tpl.Hour != nil {
		hour = *tpl.Hour
		if hour < 0 || hour > 23 {
			return time.Time{}, false
		}
	}
	day := StartOfDay(after)
	for i := 0; i <= searchHorizonDays; i++ {
		d := day.AddDate(0, 0, i)
		if tpl.Month != nil && d.Month() != *tpl.Month {
			continue
		}
		if tpl.Weekday != nil && d.Weekday() != *tpl.Weekday {
			continue
		}
		y, m, dd := d.Date()
		cand := time.Date(y, m, dd, hour, 0, 0, 0, after.Location())
		if cand.After(after) {
			return cand, true
		}
	}
	return time.Time{}, false
}

// HourOf is a pointer helper for Template literals
func HourOf(h int) *int { return &h }

// WeekdayOf is a pointer helper for Template literals
func WeekdayOf(w time.Weekday) *time.Weekday { return &w }

// MonthOf is a pointer helper for Template literals
func MonthOf(m time.Month) *time.Month { return &m }

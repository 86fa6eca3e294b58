// Package cadence computes the next scheduled follow-up instant for a
// contact given its follow-up frequency and the time of the last follow-up.
//
// Every cadence anchors to a fixed hour of day (12:00), and every cadence
// beyond daily anchors to Monday, so all reminders of a given frequency
// fire at one predictable moment regardless of when the user actually
// followed up. The Monday anchor is a product invariant, not a default.
package cadence

import (
	"time"

	"followup/internal/core/calmath"
	"followup/internal/core/contact"
)

// anchorHour is the hour of day every reminder fires at
const anchorHour = 12

// anchorWeekday is the weekday anchor for weekly and longer cadences
const anchorWeekday = time.Monday

// Next returns the next follow-up instant strictly after lastFollowedUpAt.
// A nil lastFollowedUpAt means the contact has never been followed up, so
// nothing is scheduled (false). An unknown frequency or an unsatisfiable
// calendar search also yields false; callers treat that as "no reminder",
// never as an error.
func Next(f contact.Frequency, lastFollowedUpAt *time.Time) (time.Time, bool) {
	if lastFollowedUpAt == nil || !f.Valid() {
		return time.Time{}, false
	}
	last := *lastFollowedUpAt
	tpl, ok := template(f, last)
	if !ok {
		return time.Time{}, false
	}
	return calmath.Next(last, tpl)
}

// template builds the calendar-field template for a frequency. Longer
// cadences extend shorter ones: weekly adds the Monday anchor to daily,
// monthly/quarterly/yearly add a month constraint to weekly.
func template(f contact.Frequency, last time.Time) (calmath.Template, bool) {
	tpl := calmath.Template{Hour: calmath.HourOf(anchorHour)}
	switch f {
	case contact.FrequencyDaily:
		return tpl, true
	case contact.FrequencyWeekly:
		tpl.Weekday = calmath.WeekdayOf(anchorWeekday)
		return tpl, true
	case contact.FrequencyMonthly:
		tpl.Weekday = calmath.WeekdayOf(anchorWeekday)
		tpl.Month = calmath.MonthOf(nextMonth(last.Month()))
		return tpl, true
	case contact.FrequencyQuarterly:
		tpl.Weekday = calmath.WeekdayOf(anchorWeekday)
		tpl.Month = calmath.MonthOf(nextQuarterMonth(last.Month()))
		return tpl, true
	case contact.FrequencyYearly:
		tpl.Weekday = calmath.WeekdayOf(anchorWeekday)
		tpl.Month = calmath.MonthOf(time.December)
		return tpl, true
	}
	return calmath.Template{}, false
}

// nextMonth wraps December to January; the forward search in calmath.Next
// rolls the year on its own when the wrapped month lies behind the input.
func nextMonth(m time.Month) time.Month {
	if m == time.December {
		return time.January
	}
	return m + 1
}

// nextQuarterMonth returns the first month of the quarter after the one
// containing m. Quarters are Jan-Mar, Apr-Jun, Jul-Sep, Oct-Dec; Q4 wraps
// to Q1 and the year roll again falls out of the forward search.
func nextQuarterMonth(m time.Month) time.Month {
	quarter := (int(m)-1)/3 + 1
	next := quarter%4 + 1
	return time.Month((next-1)*3 + 1)
}

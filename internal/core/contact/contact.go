// Package contact defines the plain record type the core packages compute
// over. Platform-specific contact representations (device address book,
// synced store) are mapped into Record at the service boundary before they
// reach any core function.
package contact

import "time"

// Frequency is how often a contact should be followed up with
type Frequency string

// Follow-up cadences
const (
	FrequencyNone      Frequency = ""
	FrequencyDaily     Frequency = "daily"
	FrequencyWeekly    Frequency = "weekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyYearly    Frequency = "yearly"
)

// Valid reports whether f is a known cadence (empty counts as unset, not valid)
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyQuarterly, FrequencyYearly:
		return true
	}
	return false
}

// Record is an immutable snapshot of a contact. The core never mutates one;
// derived values (bucket, next follow-up, merge decision) are returned to
// the caller, which owns persistence.
type Record struct {
	ID                string
	Name              string
	Phone             string
	Email             string
	CreatedAt         time.Time
	LastInteractionAt *time.Time
	Frequency         Frequency
	Tags              []string
	Origin            string
}

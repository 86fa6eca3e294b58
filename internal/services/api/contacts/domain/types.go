// Package domain holds the wire types and contracts for the contacts module
package domain

import (
	"time"

	"followup/internal/core/contact"
)

// Contact is the wire form of a contact record
type Contact struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Phone             string     `json:"phone,omitempty"`
	Email             string     `json:"email,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	LastInteractionAt *time.Time `json:"last_interaction_at,omitempty"`
	Frequency         string     `json:"follow_up_frequency,omitempty"`
	Tags              []string   `json:"tags,omitempty"`
	Origin            string     `json:"origin,omitempty"`
}

// ToRecord maps the wire form onto the core record
func (c Contact) ToRecord() contact.Record {
	return contact.Record{
		ID:                c.ID,
		Name:              c.Name,
		Phone:             c.Phone,
		Email:             c.Email,
		CreatedAt:         c.CreatedAt,
		LastInteractionAt: c.LastInteractionAt,
		Frequency:         contact.Frequency(c.Frequency),
		Tags:              c.Tags,
		Origin:            c.Origin,
	}
}

// FromRecord maps a core record onto the wire form
func FromRecord(r contact.Record) Contact {
	return Contact{
		ID:                r.ID,
		Name:              r.Name,
		Phone:             r.Phone,
		Email:             r.Email,
		CreatedAt:         r.CreatedAt,
		LastInteractionAt: r.LastInteractionAt,
		Frequency:         string(r.Frequency),
		Tags:              r.Tags,
		Origin:            r.Origin,
	}
}

// Section is one rendered contact group
type Section struct {
	Title    string    `json:"title"`
	New      bool      `json:"new,omitempty"`
	Contacts []Contact `json:"contacts"`
}

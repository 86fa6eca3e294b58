package domain

import "time"

// SectionsInput selects the grouping for the contact list
type SectionsInput struct {
	// Mode picks relative buckets with or without the leading New section,
	// or concrete calendar buckets
	Mode string `json:"mode,omitempty" validate:"omitempty,oneof=relative new-first day-month-year month-year" example:"new-first"`
	// Now overrides the reference clock, mainly for clients replaying state
	Now *time.Time `json:"now,omitempty"`
}

// UpsertInput creates or replaces a contact
type UpsertInput struct {
	ID        string   `json:"id,omitempty" validate:"omitempty,uuid4"`
	Name      string   `json:"name" validate:"required,min=1,max=200" example:"Jo Smith"`
	Phone     string   `json:"phone,omitempty" validate:"omitempty,max=40" example:"555-1234"`
	Email     string   `json:"email,omitempty" validate:"omitempty,email" example:"jo@example.com"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	Frequency string   `json:"follow_up_frequency,omitempty" validate:"omitempty,oneof=daily weekly monthly quarterly yearly"`
	Tags      []string `json:"tags,omitempty" validate:"omitempty,max=32,dive,min=1,max=64"`
}

// DeviceContactInput is one address book entry in a device sync batch
type DeviceContactInput struct {
	ID        string     `json:"id,omitempty" validate:"omitempty,uuid4"`
	Name      string     `json:"name" validate:"required,min=1,max=200"`
	Phone     string     `json:"phone,omitempty" validate:"omitempty,max=40"`
	Email     string     `json:"email,omitempty" validate:"omitempty,email"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	Tags      []string   `json:"tags,omitempty" validate:"omitempty,max=32,dive,min=1,max=64"`
}

// DeviceSyncInput stages a batch of device address book entries for the
// background reconciler
type DeviceSyncInput struct {
	Contacts []DeviceContactInput `json:"contacts" validate:"required,min=1,max=500,dive"`
}

// DeviceSyncResult reports how many entries were staged
type DeviceSyncResult struct {
	Staged int `json:"staged"`
}

// InteractionInput records a follow-up interaction with a contact
type InteractionInput struct {
	ContactID  string     `json:"contact_id" validate:"required,uuid4"`
	OccurredAt *time.Time `json:"occurred_at,omitempty"`
	Kind       string     `json:"kind,omitempty" validate:"omitempty,oneof=call text email meeting note" example:"call"`
}

// NextFollowUpInput asks for a contact's next scheduled follow-up
type NextFollowUpInput struct {
	ContactID string `json:"contact_id" validate:"required,uuid4"`
}

// NextFollowUp is the scheduling answer; At is null when nothing is due
type NextFollowUp struct {
	ContactID string     `json:"contact_id"`
	Frequency string     `json:"follow_up_frequency,omitempty"`
	At        *time.Time `json:"at,omitempty"`
}

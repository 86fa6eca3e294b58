package module

import (
	"context"

	contactsdom "followup/internal/services/api/contacts/domain"
	contactssvc "followup/internal/services/api/contacts/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptContactsPort adapts the contacts service to the domain port interface
type adaptContactsPort struct{ svc contactssvc.Service }

// Sections implements the domain ServicePort interface
func (a adaptContactsPort) Sections(ctx context.Context, in contactsdom.SectionsInput) ([]contactsdom.Section, error) {
	return a.svc.Sections(ctx, in)
}

// Upsert implements the domain ServicePort interface
func (a adaptContactsPort) Upsert(ctx context.Context, in contactsdom.UpsertInput) (contactsdom.Contact, error) {
	return a.svc.Upsert(ctx, in)
}

// DeviceSync implements the domain ServicePort interface
func (a adaptContactsPort) DeviceSync(ctx context.Context, in contactsdom.DeviceSyncInput) (contactsdom.DeviceSyncResult, error) {
	return a.svc.DeviceSync(ctx, in)
}

// RecordInteraction implements the domain ServicePort interface
func (a adaptContactsPort) RecordInteraction(ctx context.Context, in contactsdom.InteractionInput) (contactsdom.Contact, error) {
	return a.svc.RecordInteraction(ctx, in)
}

// NextFollowUp implements the domain ServicePort interface
func (a adaptContactsPort) NextFollowUp(ctx context.Context, in contactsdom.NextFollowUpInput) (contactsdom.NextFollowUp, error) {
	return a.svc.NextFollowUp(ctx, in)
}

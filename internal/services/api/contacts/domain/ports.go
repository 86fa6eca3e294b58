package domain

import "context"

// ServicePort defines the service contract for contacts
type ServicePort interface {
	Sections(ctx context.Context, in SectionsInput) ([]Section, error)
	Upsert(ctx context.Context, in UpsertInput) (Contact, error)
	DeviceSync(ctx context.Context, in DeviceSyncInput) (DeviceSyncResult, error)
	RecordInteraction(ctx context.Context, in InteractionInput) (Contact, error)
	NextFollowUp(ctx context.Context, in NextFollowUpInput) (NextFollowUp, error)
}

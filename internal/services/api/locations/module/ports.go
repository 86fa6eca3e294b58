package module

import (
	"context"

	locationsdom "followup/internal/services/api/locations/domain"
	locationssvc "followup/internal/services/api/locations/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptLocationsPort adapts the locations service to the domain port interface
type adaptLocationsPort struct{ svc locationssvc.Service }

// Ingest implements the domain ServicePort interface
func (a adaptLocationsPort) Ingest(ctx context.Context, in locationsdom.IngestInput) (locationsdom.IngestResult, error) {
	return a.svc.Ingest(ctx, in)
}

// Nearby implements the domain ServicePort interface
func (a adaptLocationsPort) Nearby(ctx context.Context, in locationsdom.NearbyInput) (locationsdom.NearbyResult, error) {
	return a.svc.Nearby(ctx, in)
}

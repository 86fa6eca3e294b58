package domain

import "context"

// ServicePort defines the service contract for locations
type ServicePort interface {
	Ingest(ctx context.Context, in IngestInput) (IngestResult, error)
	Nearby(ctx context.Context, in NearbyInput) (NearbyResult, error)
}

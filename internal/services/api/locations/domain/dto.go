package domain

import "time"

// SampleInput is one sample in an ingest batch
type SampleInput struct {
	ID                 string     `json:"id,omitempty" validate:"omitempty,uuid4"`
	ArrivalAt          time.Time  `json:"arrival_at" validate:"required"`
	DepartureAt        *time.Time `json:"departure_at,omitempty"`
	Latitude           float64    `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude          float64    `json:"longitude" validate:"gte=-180,lte=180"`
	HorizontalAccuracy float64    `json:"horizontal_accuracy" validate:"gte=0"`
	Source             string     `json:"source" validate:"required,oneof=location visit"`
}

// IngestInput is a batch of samples from the device
type IngestInput struct {
	Samples []SampleInput `json:"samples" validate:"required,min=1,max=500,dive"`
}

// IngestResult reports how many samples were stored
type IngestResult struct {
	Stored int `json:"stored"`
}

// NearbyInput asks for the best sample around a timestamp
type NearbyInput struct {
	At time.Time `json:"at" validate:"required"`
	// ThresholdSeconds bounds the nearest-point fallback; visits containing
	// the timestamp always qualify regardless
	ThresholdSeconds int `json:"threshold_s,omitempty" validate:"omitempty,gt=0,lte=86400"`
}

// NearbyResult is the chosen sample, null when nothing qualified
type NearbyResult struct {
	Sample *Sample `json:"sample,omitempty"`
}

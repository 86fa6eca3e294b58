// Package domain holds the wire types and contracts for the locations module
package domain

import (
	"time"

	"followup/internal/core/geolink"
)

// Sample is the wire form of a geolocation sample
type Sample struct {
	ID                 string     `json:"id"`
	ArrivalAt          time.Time  `json:"arrival_at"`
	DepartureAt        *time.Time `json:"departure_at,omitempty"`
	Latitude           float64    `json:"latitude"`
	Longitude          float64    `json:"longitude"`
	HorizontalAccuracy float64    `json:"horizontal_accuracy"`
	Source             string     `json:"source"`
}

// ToCore maps the wire form onto the core sample
func (s Sample) ToCore() geolink.Sample {
	return geolink.Sample{
		ID:                 s.ID,
		ArrivalAt:          s.ArrivalAt,
		DepartureAt:        s.DepartureAt,
		Latitude:           s.Latitude,
		Longitude:          s.Longitude,
		HorizontalAccuracy: s.HorizontalAccuracy,
		Source:             geolink.Source(s.Source),
	}
}

// FromCore maps a core sample onto the wire form
func FromCore(s geolink.Sample) Sample {
	return Sample{
		ID:                 s.ID,
		ArrivalAt:          s.ArrivalAt,
		DepartureAt:        s.DepartureAt,
		Latitude:           s.Latitude,
		Longitude:          s.Longitude,
		HorizontalAccuracy: s.HorizontalAccuracy,
		Source:             string(s.Source),
	}
}

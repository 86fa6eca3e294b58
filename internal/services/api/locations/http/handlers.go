// Package http provides http transport for locations
package http

import (
	stdhttp "net/http"

	"followup/internal/modkit/httpkit"
	"followup/internal/services/api/locations/domain"
	svc "followup/internal/services/api/locations/service"
)

// Register mounts location endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.IngestInput](r, "/samples", h.ingest)
	httpkit.PostJSON[domain.NearbyInput](r, "/nearby", h.nearby)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /locations/samples Locations locationsIngest
// @Summary Batch ingest of geolocation samples
// @Tags Locations
// @Accept json
// @Produce json
// @Param payload body domain.IngestInput true "Sample batch"
// @Success 200 {object} domain.IngestResult "ok"
// @Router /locations/samples [post]
func (h *handlers) ingest(r *stdhttp.Request, in domain.IngestInput) (any, error) {
	return h.svc.Ingest(r.Context(), in)
}

// swagger:route POST /locations/nearby Locations locationsNearby
// @Summary Best sample for a timestamp
// @Tags Locations
// @Accept json
// @Produce json
// @Param payload body domain.NearbyInput true "Timestamp and threshold"
// @Success 200 {object} domain.NearbyResult "ok"
// @Router /locations/nearby [post]
func (h *handlers) nearby(r *stdhttp.Request, in domain.NearbyInput) (any, error) {
	return h.svc.Nearby(r.Context(), in)
}

// Package http provides http transport for contacts
package http

import (
	stdhttp "net/http"

	"followup/internal/modkit/httpkit"
	"followup/internal/services/api/contacts/domain"
	svc "followup/internal/services/api/contacts/service"
)

// Register mounts contact endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.SectionsInput](r, "/sections", h.sections)
	httpkit.PostJSON[domain.UpsertInput](r, "/upsert", h.upsert)
	httpkit.PostJSON[domain.DeviceSyncInput](r, "/device-sync", h.deviceSync)
	httpkit.PostJSON[domain.InteractionInput](r, "/interactions", h.interaction)
	httpkit.PostJSON[domain.NextFollowUpInput](r, "/next-followup", h.nextFollowUp)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /contacts/sections Contacts contactsSections
// @Summary Contacts grouped into display sections
// @Tags Contacts
// @Accept json
// @Produce json
// @Param payload body domain.SectionsInput true "Grouping mode"
// @Success 200 {array} domain.Section "ok"
// @Router /contacts/sections [post]
func (h *handlers) sections(r *stdhttp.Request, in domain.SectionsInput) (any, error) {
	return h.svc.Sections(r.Context(), in)
}

// swagger:route POST /contacts/upsert Contacts contactsUpsert
// @Summary Create or replace a contact
// @Tags Contacts
// @Accept json
// @Produce json
// @Param payload body domain.UpsertInput true "Contact"
// @Success 200 {object} domain.Contact "ok"
// @Router /contacts/upsert [post]
func (h *handlers) upsert(r *stdhttp.Request, in domain.UpsertInput) (any, error) {
	return h.svc.Upsert(r.Context(), in)
}

// swagger:route POST /contacts/device-sync Contacts contactsDeviceSync
// @Summary Stage a batch of device address book entries
// @Tags Contacts
// @Accept json
// @Produce json
// @Param payload body domain.DeviceSyncInput true "Address book batch"
// @Success 200 {object} domain.DeviceSyncResult "ok"
// @Router /contacts/device-sync [post]
func (h *handlers) deviceSync(r *stdhttp.Request, in domain.DeviceSyncInput) (any, error) {
	return h.svc.DeviceSync(r.Context(), in)
}

// swagger:route POST /contacts/interactions Contacts contactsInteraction
// @Summary Record a follow-up interaction
// @Tags Contacts
// @Accept json
// @Produce json
// @Param payload body domain.InteractionInput true "Interaction"
// @Success 200 {object} domain.Contact "ok"
// @Router /contacts/interactions [post]
func (h *handlers) interaction(r *stdhttp.Request, in domain.InteractionInput) (any, error) {
	return h.svc.RecordInteraction(r.Context(), in)
}

// swagger:route POST /contacts/next-followup Contacts contactsNextFollowUp
// @Summary Next scheduled follow-up for a contact
// @Tags Contacts
// @Accept json
// @Produce json
// @Param payload body domain.NextFollowUpInput true "Contact id"
// @Success 200 {object} domain.NextFollowUp "ok"
// @Router /contacts/next-followup [post]
func (h *handlers) nextFollowUp(r *stdhttp.Request, in domain.NextFollowUpInput) (any, error) {
	return h.svc.NextFollowUp(r.Context(), in)
}

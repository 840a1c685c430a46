package http

import (
	"net/http"

	"github.com/MKhiriev/storefront/internal/app"
	"github.com/MKhiriev/storefront/internal/utils"
)

// initialize restores the seed data set. It is unauthenticated; the
// benchmark client calls it before every run.
func (h *Handler) initialize(w http.ResponseWriter, r *http.Request) {
	if err := h.services.MaintenanceService.Initialize(r.Context()); err != nil {
		h.handleError(w, r, err)
		return
	}

	_, _ = utils.WriteText(w, app.MsgInitializeFinished, http.StatusOK)
}

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/storefront/internal/app"
	"github.com/MKhiriev/storefront/internal/logger"
	"github.com/MKhiriev/storefront/internal/service"
	"github.com/MKhiriev/storefront/internal/utils"
)

// errorView describes how a service error is presented. Errors with a
// message re-render the login view with it.
type errorView struct {
	status       int
	message      string
	clearSession bool
}

var errorViewMap = map[error]errorView{
	service.ErrAuthenticationFailed: {
		status:       http.StatusUnauthorized,
		message:      app.MsgLoginFailed,
		clearSession: true,
	},
	service.ErrPermissionDenied: {
		status:  http.StatusForbidden,
		message: app.MsgLoginRequired,
	},
}

func viewFromError(err error) (errorView, bool) {
	for target, view := range errorViewMap {
		if errors.Is(err, target) {
			return view, true
		}
	}
	return errorView{}, false
}

// handleError writes the response for err. Unmapped errors become a plain
// text 500.
func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	view, ok := viewFromError(err)
	if !ok {
		log.Err(err).Msg("request failed")
		internalError(w)
		return
	}

	log.Info().Err(err).Int("status", view.status).Send()

	if view.clearSession {
		s := requestSession(r)
		s.UserID = 0
		if !s.IsNew() {
			if saveErr := h.sessions.Save(w, r, s); saveErr != nil {
				log.Err(saveErr).Msg("error clearing session user")
			}
		}
	}

	if renderErr := h.views.render(w, viewLogin, loginView{Message: view.message}, view.status); renderErr != nil {
		log.Err(renderErr).Send()
		internalError(w)
	}
}

func internalError(w http.ResponseWriter) {
	_, _ = utils.WriteText(w, app.MsgInternalServerError, http.StatusInternalServerError)
}

package http

import (
	"net/http"

	"github.com/MKhiriev/storefront/internal/app"
	"github.com/MKhiriev/storefront/internal/logger"
	"github.com/MKhiriev/storefront/internal/utils"
)

// loginPage drops whatever session the browser had and shows the login form.
func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	s := requestSession(r)
	if err := h.sessions.Clear(w, r, s); err != nil {
		log.Err(err).Msg("error clearing session")
		internalError(w)
		return
	}

	view := loginView{
		Message:     app.MsgLoginWelcome,
		CurrentUser: h.currentUser(r),
	}
	if err := h.views.render(w, viewLogin, view, http.StatusOK); err != nil {
		h.handleError(w, r, err)
	}
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form was passed")
	}

	user, err := h.services.AuthService.Authenticate(ctx, r.PostFormValue("email"), r.PostFormValue("password"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	s := requestSession(r)
	s.UserID = user.ID
	if err = h.sessions.Save(w, r, s); err != nil {
		h.handleError(w, r, err)
		return
	}

	log.Debug().Int64("id", user.ID).Msg("user successfully logged in")
	utils.Redirect(w, r, "/")
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Clear(w, r, requestSession(r)); err != nil {
		h.handleError(w, r, err)
		return
	}

	utils.Redirect(w, r, "/login")
}

package http

import (
	"net/http"

	"github.com/MKhiriev/storefront/internal/logger"
	"github.com/MKhiriev/storefront/internal/utils"
)

func (h *Handler) comment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := h.services.AuthService.RequireAuthenticated(ctx, requestSession(r).UserID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err = r.ParseForm(); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid form was passed")
	}

	err = h.services.CommentService.AddComment(ctx, pathID(r, paramProductID), user.ID, r.PostFormValue("content"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	utils.Redirect(w, r, userPath(user.ID))
}

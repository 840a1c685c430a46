package http

import (
	"net/http"

	"github.com/MKhiriev/storefront/internal/utils"
	"github.com/MKhiriev/storefront/models"
)

// withSession resolves the session cookie and stores the session in the
// request context under [utils.SessionCtxKey]. A missing, expired or
// tampered cookie yields a fresh empty session; the request always proceeds.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := h.sessions.Load(r)
		next.ServeHTTP(w, r.WithContext(utils.WithSession(r.Context(), s)))
	})
}

// requestSession returns the session loaded by withSession, or an empty one when
// the handler runs without the middleware.
func requestSession(r *http.Request) *models.Session {
	if s, ok := utils.GetSessionFromContext(r.Context()); ok {
		return s
	}
	return &models.Session{}
}

// currentUser resolves the session user for the page header. It is nil when
// nobody is logged in.
func (h *Handler) currentUser(r *http.Request) *models.User {
	user, ok := h.services.AuthService.CurrentUser(r.Context(), requestSession(r).UserID)
	if !ok {
		return nil
	}
	return &user
}

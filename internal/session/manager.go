// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/storefront/internal/config"
	"github.com/MKhiriev/storefront/internal/logger"
	"github.com/MKhiriev/storefront/internal/utils"
	"github.com/MKhiriev/storefront/models"
)

const tokenIssuer = "storefront"

// Manager binds sessions in a Store to browser cookies.
type Manager struct {
	store      Store
	cookieName string
	secret     string
	ttl        time.Duration
}

// NewManager returns a Manager using the cookie name, signing secret and
// lifetime from cfg.
func NewManager(store Store, cfg config.Session) *Manager {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &Manager{
		store:      store,
		cookieName: cfg.CookieName,
		secret:     cfg.Secret,
		ttl:        ttl,
	}
}

// Load returns the session referenced by the request cookie. A missing,
// tampered, expired or unknown cookie yields a fresh empty session; it is
// never an error.
func (m *Manager) Load(r *http.Request) *models.Session {
	log := logger.FromRequest(r)

	cookie, err := r.Cookie(m.cookieName)
	if err != nil {
		return &models.Session{}
	}

	sessionID, err := utils.ParseSessionToken(cookie.Value, m.secret, tokenIssuer)
	if err != nil {
		log.Debug().Err(fmt.Errorf("%w: %w", ErrInvalidSessionToken, err)).Msg("ignoring session cookie")
		return &models.Session{}
	}

	s, err := m.store.Get(r.Context(), sessionID)
	if err != nil {
		if !errors.Is(err, ErrSessionNotFound) {
			log.Err(err).Str("session_id", sessionID).Msg("error loading session")
		}
		return &models.Session{}
	}

	return s
}

// Save persists s and (re)issues the session cookie.
func (m *Manager) Save(w http.ResponseWriter, r *http.Request, s *models.Session) error {
	if err := m.store.Save(r.Context(), s); err != nil {
		return fmt.Errorf("error saving session: %w", err)
	}

	token, err := utils.GenerateSessionToken(tokenIssuer, s.ID, m.ttl, m.secret)
	if err != nil {
		return fmt.Errorf("error signing session: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// Clear drops s from the store, resets it in place and expires the cookie.
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request, s *models.Session) error {
	if s != nil {
		if !s.IsNew() {
			if err := m.store.Delete(r.Context(), s.ID); err != nil {
				return fmt.Errorf("error deleting session: %w", err)
			}
		}
		*s = models.Session{}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

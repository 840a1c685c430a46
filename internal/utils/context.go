// Package utils provides general-purpose helpers used across the storefront:
// typed context keys, session token signing, plain-text responses, id
// generation and rune-aware truncation.
package utils

import (
	"context"

	"github.com/MKhiriev/storefront/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// SessionCtxKey is the key the session middleware stores the request's
// *models.Session under.
var SessionCtxKey = contextKey("session")

// WithSession returns a copy of ctx carrying s.
func WithSession(ctx context.Context, s *models.Session) context.Context {
	return context.WithValue(ctx, SessionCtxKey, s)
}

// GetSessionFromContext retrieves the session stored by WithSession.
//
// Returns the session and an ok flag:
//   - ok == true:  a non-nil *models.Session is present
//   - ok == false: value is missing, nil or has an unexpected type
//
// Example usage:
//
//	sess, ok := utils.GetSessionFromContext(r.Context())
//	if !ok {
//	    // session middleware is not installed
//	}
func GetSessionFromContext(ctx context.Context) (*models.Session, bool) {
	s, ok := ctx.Value(SessionCtxKey).(*models.Session)
	if !ok || s == nil {
		return nil, false
	}
	return s, true
}

// GetSessionUserID returns the user id held by the request session, or 0 when
// there is no session or nobody is logged in.
func GetSessionUserID(ctx context.Context) int64 {
	s, ok := GetSessionFromContext(ctx)
	if !ok {
		return 0
	}
	return s.UserID
}

package session

import "errors"

var (
	ErrSessionNotFound     = errors.New("session not found")
	ErrInvalidSessionToken = errors.New("invalid session token")
	ErrEmptySessionID      = errors.New("empty session id")
)

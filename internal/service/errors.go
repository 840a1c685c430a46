package service

import "errors"

var (
	// ErrAuthenticationFailed is returned when the email is unknown or the
	// password does not match.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrPermissionDenied is returned when an operation needs a logged-in
	// user and the session holds none.
	ErrPermissionDenied = errors.New("permission denied")
)

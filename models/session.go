// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is the server-side state bound to a browser cookie. It holds at most
// one authenticated user id; zero means nobody is logged in.
type Session struct {
	ID        string
	UserID    int64
	CreatedAt time.Time
}

// IsNew reports whether the session has not been persisted yet.
func (s Session) IsNew() bool {
	return s.ID == ""
}

// IsAuthenticated reports whether a user id is stored in the session.
func (s Session) IsAuthenticated() bool {
	return s.UserID != 0
}

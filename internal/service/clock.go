package service

import "time"

// dbClockOffset is subtracted from the wall clock for every timestamp the
// storefront writes. The seed data was generated with the same offset.
const dbClockOffset = 9 * time.Hour

// clock returns the current time. Tests replace it.
type clock func() time.Time

func (c clock) dbNow() time.Time {
	if c == nil {
		c = time.Now
	}
	return c().Add(-dbClockOffset)
}

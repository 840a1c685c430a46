package models

import "time"

// History is a single purchase event. Buying the same product twice produces
// two rows.
type History struct {
	ID        int64
	ProductID int64
	UserID    int64
	CreatedAt time.Time
}

// TableName returns the name of the database table
// associated with the History model.
func (h History) TableName() string {
	return "histories"
}

package models

import "time"

// Comment is a short note left by a user on a product. Comments are immutable
// once created.
type Comment struct {
	ID        int64
	ProductID int64
	UserID    int64
	Content   string
	CreatedAt time.Time
}

// TableName returns the name of the database table
// associated with the Comment model.
func (c Comment) TableName() string {
	return "comments"
}

// ProductComment is a comment row joined to its author's name, as listed
// under a product on the catalog page.
type ProductComment struct {
	ProductID int64
	UserName  string
	Content   string
}

package models

// User represents a storefront account. Users are seeded externally and are
// never created or modified by the application.
type User struct {
	// ID is the unique, stable identifier of the user.
	ID int64

	// Name is the display name shown in page headers and next to comments.
	Name string

	// Email is the login key.
	Email string

	// Password is compared as-is against the submitted credential.
	// It is never rendered.
	Password string
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// IsZero reports whether u is the absent user.
func (u User) IsZero() bool {
	return u.ID == 0
}

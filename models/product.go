package models

import "time"

// Product is a catalog item. Products are read-only for the application.
type Product struct {
	ID          int64
	Name        string
	ImagePath   string
	Price       int64
	Description string
}

// TableName returns the name of the database table
// associated with the Product model.
func (p Product) TableName() string {
	return "products"
}

// CatalogProduct is a product as shown on a catalog page: the product itself,
// the number of comments found for it in the page's comment query and the
// most recent of those comments.
type CatalogProduct struct {
	Product

	CommentsCount int
	Comments      []ProductComment
}

// PurchasedProduct is one row of a purchase history: a product joined to the
// time of a single purchase event.
type PurchasedProduct struct {
	Product

	PurchasedAt time.Time
}

// PurchaseHistory aggregates every purchase of a user, newest first, with the
// total amount spent.
type PurchaseHistory struct {
	// User is the owner of the history. It is zero when the id does not
	// resolve to a user.
	User User

	Products []PurchasedProduct

	// TotalPay is the sum of Price over Products. Repeated purchases of the
	// same product contribute each time.
	TotalPay int64
}

package http

import (
	"math"

	"github.com/MKhiriev/storefront/models"
)

// loginView is rendered without the layout.
type loginView struct {
	Message     string
	CurrentUser *models.User
}

type indexView struct {
	CurrentUser *models.User
	Products    []models.CatalogProduct
	Page        int
}

func (v indexView) PrevPage() int { return v.Page - 1 }

func (v indexView) NextPage() int {
	if v.Page == math.MaxInt {
		return v.Page
	}
	return v.Page + 1
}

type productView struct {
	CurrentUser   *models.User
	Product       models.Product
	AlreadyBought bool
}

type myPageView struct {
	CurrentUser *models.User
	History     models.PurchaseHistory
}

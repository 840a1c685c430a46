package http

import (
	"net/http"
)

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	page := pageNumber(r)

	products, err := h.services.CatalogService.ListPage(r.Context(), page)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	view := indexView{
		CurrentUser: h.currentUser(r),
		Products:    products,
		Page:        page,
	}
	if err = h.views.render(w, viewIndex, view, http.StatusOK); err != nil {
		h.handleError(w, r, err)
	}
}

// product shows one product. An unknown id renders an empty page.
func (h *Handler) product(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID := pathID(r, paramProductID)

	product, err := h.services.CatalogService.GetProduct(ctx, productID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	alreadyBought, err := h.services.PurchaseService.AlreadyBought(ctx, productID, requestSession(r).UserID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	view := productView{
		CurrentUser:   h.currentUser(r),
		Product:       product,
		AlreadyBought: alreadyBought,
	}
	if err = h.views.render(w, viewProduct, view, http.StatusOK); err != nil {
		h.handleError(w, r, err)
	}
}

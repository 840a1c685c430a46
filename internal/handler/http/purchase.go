package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/storefront/internal/utils"
)

// buy needs a logged-in user; the product id is recorded as given.
func (h *Handler) buy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := h.services.AuthService.RequireAuthenticated(ctx, requestSession(r).UserID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err = h.services.PurchaseService.Buy(ctx, pathID(r, paramProductID), user.ID); err != nil {
		h.handleError(w, r, err)
		return
	}

	utils.Redirect(w, r, userPath(user.ID))
}

// purchaseHistory lists the purchases of any user id. There is no ownership
// check.
func (h *Handler) purchaseHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.services.PurchaseService.PurchaseHistory(r.Context(), pathID(r, paramUserID))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	view := myPageView{
		CurrentUser: h.currentUser(r),
		History:     history,
	}
	if err = h.views.render(w, viewMyPage, view, http.StatusOK); err != nil {
		h.handleError(w, r, err)
	}
}

func userPath(userID int64) string {
	return fmt.Sprintf("/users/%d", userID)
}

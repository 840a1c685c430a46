package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

const (
	paramUserID    = "user_id"
	paramProductID = "product_id"
	queryPage      = "page"
)

// pathID returns the numeric URL parameter name. Anything that is not an
// integer yields 0, which matches no row.
func pathID(r *http.Request, name string) int64 {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// pageNumber reads ?page=. Missing or malformed values select the first page.
func pageNumber(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get(queryPage))
	if err != nil || page < 0 {
		return 0
	}
	return page
}

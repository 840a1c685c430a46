package utils

import (
	"io"
	"net/http"
)

// WriteText writes body as a text/plain response with the given status code.
//
// Returns the number of bytes written and any error from the underlying
// writer.
//
// Example usage:
//
//	utils.WriteText(w, "Finish", http.StatusOK)
func WriteText(w http.ResponseWriter, body string, statusCode int) (int, error) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(statusCode)

	return io.WriteString(w, body)
}

// Redirect sends a 302 Found to location, the status every form post and
// logout in the storefront answers with.
func Redirect(w http.ResponseWriter, r *http.Request, location string) {
	http.Redirect(w, r, location, http.StatusFound)
}

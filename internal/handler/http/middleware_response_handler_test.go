package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseWriter_WriteHeader_CalledTwice_IgnoresSecond(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.WriteHeader(http.StatusFound)
	w.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusFound, w.statusCode())
	assert.Equal(t, http.StatusFound, rr.Code)
}

func TestResponseWriter_Write_ImplicitOKAndSize(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	_, _ = w.Write([]byte("Fin"))
	_, _ = w.Write([]byte("ish"))

	assert.Equal(t, http.StatusOK, w.statusCode())
	assert.Equal(t, 6, w.size)
	assert.Equal(t, "Finish", rr.Body.String())
}

func TestResponseWriter_StatusCodeDefaultsToOK(t *testing.T) {
	w := &responseWriter{ResponseWriter: httptest.NewRecorder()}

	assert.Equal(t, http.StatusOK, w.statusCode())
	assert.Same(t, w.ResponseWriter, w.Unwrap())
}

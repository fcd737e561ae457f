package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/render"
)

// NotFound writes a plain-text 404 response. It is used for every failed
// request so that clients cannot tell why a request failed.
func NotFound(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusNotFound)
	render.PlainText(w, r, "404 page not found")
}

// JSON writes v as a JSON response with the given status code. A status of 0
// leaves the default status (200).
func JSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	if status != 0 {
		render.Status(r, status)
	}
	render.JSON(w, r, v)
}

// Image writes b as a 200 response with the given content type.
func Image(w http.ResponseWriter, contentType string, b []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(b)))
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

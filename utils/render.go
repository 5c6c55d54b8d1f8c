package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/amanhimself/blog/status"
)

// RenderJSON writes v as a JSON response. Encoding failures are swallowed:
// by the time Encode fails the header is already on the wire.
func RenderJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

type APIFunc func(w http.ResponseWriter, r *http.Request) error

// MakeAPIHandler adapts an error-returning handler. A status.Toast keeps its
// status code and message; anything else becomes an opaque 500.
func MakeAPIHandler(fn APIFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}

		var toast status.Toast
		if errors.As(err, &toast) {
			RenderJSON(w, toast.StatusCode, toast)
			return
		}

		RenderJSON(w, http.StatusInternalServerError, status.Toast{
			Message: "internal server error",
		})
	}
}

package mux

import (
	"bytes"
	"encoding/json"
	"net/http"
)

// ResponseJSON encodes v as JSON and writes it to the response with the given
// status code. The Content-Type header is set to "application/json".
// If encoding fails, an HTTP 500 Internal Server Error is written instead.
func ResponseJSON(w http.ResponseWriter, code int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(buf.Bytes())
}

// VarsHandler answers every request with its route parameters as a JSON
// object. Routes loaded without a handler of their own use it.
func VarsHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		vars := Vars(r)
		if vars == nil {
			vars = map[string]string{}
		}
		ResponseJSON(w, http.StatusOK, vars)
	})
}

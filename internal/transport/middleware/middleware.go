// Package middleware holds the HTTP middleware mounted on the router.
package middleware

import "net/http"

// Middleware is a function that wraps an http.Handler. It matches chi's Use signature.
type Middleware func(http.Handler) http.Handler

// writeJSONError writes the error envelope shared with the rest package.
// Middleware cannot import rest, so the body is built by hand.
func writeJSONError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error":{"code":"` + code + `","message":"` + message + `"}}`))
}

package middleware

import (
	"crypto/subtle"
	"net/http"
)

// NewAdminGate returns a middleware that guards administrator endpoints
// (price configuration, data export) behind a shared static token sent in
// the X-Admin-Token header. This is the operator password gate, not an
// authentication system; real identity management stays out of scope.
//
// The comparison is constant-time so the token cannot be probed
// byte-by-byte through response timing.
func NewAdminGate(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get("X-Admin-Token")
			if token == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":{"code":"unauthorized","message":"admin token required"}}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

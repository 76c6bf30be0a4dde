package middleware

import (
	"net/http"

	"github.com/tunebridge/tunebridge/internal/token"
)

// Credential copies the raw Authorization header into the request
// context so resolvers can hand it to the mediators. The value is
// carried verbatim; scheme handling belongs to the token verifier, and
// an absent header travels as the empty string.
func Credential(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := token.WithCredential(r.Context(), r.Header.Get("Authorization"))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/kestrel-web/kestrel"
)

// RequestID adds a uuid to the request context under kestrel.RequestIDKey.
func RequestID() Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), kestrel.RequestIDKey, uuid.NewString())
			h.ServeHTTP(w, r.Clone(ctx))
		})
	}
}

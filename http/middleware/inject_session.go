package middleware

import (
	"context"
	"net/http"

	"github.com/kestrel-web/kestrel"
	"github.com/kestrel-web/kestrel/http/session"
)

// InjectSession stores the session associated with the *http.Request
// in *http.Request.Context under kestrel.SessionKey.
//
// If store is nil, NoopAdapter returns and this middleware does nothing.
func InjectSession(store session.SessionStorer) Adapter {
	if store == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, err := store.GetSession(r)
			if err != nil {
				h.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), kestrel.SessionKey, s)
			h.ServeHTTP(w, r.Clone(ctx))
		})
	}
}

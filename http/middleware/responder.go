package middleware

import (
	"context"
	"net/http"

	"github.com/kestrel-web/kestrel"
	"github.com/kestrel-web/kestrel/http/resp"
)

// InjectResponder stores a *resp.Responder in the *http.Request.Context
// under kestrel.ResponderKey, thereby making it available to handlers.
//
// If rp is nil, NoopAdapter returns and this middleware does nothing.
func InjectResponder(rp *resp.Responder) Adapter {
	if rp == nil {
		return NoopAdapter
	}

	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handler.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), kestrel.ResponderKey, rp)))
		})
	}
}

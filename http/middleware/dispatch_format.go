package middleware

import (
	"net/http"

	"github.com/kestrel-web/kestrel"
)

// formatParam is the query parameter selecting the dispatch format.
const formatParam = "format"

// DispatchFormat parses the "format" query parameter into a kestrel.Format
// and stashes it in the *http.Request.Context under kestrel.FormatKey.
//
// Unknown selectors - the missing parameter included - become kestrel.FormatDefault,
// so handlers can always read a usable Format back out with kestrel.FormatFromContext.
func DispatchFormat() Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			f := kestrel.ParseFormat(r.URL.Query().Get(formatParam))
			h.ServeHTTP(w, r.Clone(kestrel.NewFormatContext(r.Context(), f)))
		})
	}
}

package middleware

import (
	"net/http"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/kestrel-web/kestrel"
)

// ReportPanic wraps the handler in sentryhttp.Handle
// in order to recover and report panics.
//
// In development and testing environments panics surface unwrapped,
// keeping stack traces in the terminal where they are being worked on.
func ReportPanic(env kestrel.Environment) Adapter {
	if env.IsDevelopment() || env.IsTesting() {
		return NoopAdapter
	}

	sh := sentryhttp.New(sentryhttp.Options{
		Repanic:         false,
		WaitForDelivery: true,
	})

	return func(handler http.Handler) http.Handler {
		return sh.Handle(handler)
	}
}

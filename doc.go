/*

Package kestrel holds the shared vocabulary of a kestrel web application:
typed context keys, enumerable constants such as Environment and Format,
sentinel errors, and helpers for reading configuration out of environment
variables.

The interesting machinery lives in the subpackages:

	logger          leveled, colorized logging with optional Sentry reporting
	http/resp       the Responder and its format dispatcher
	http/template   HTML template parsing over fs.FS
	http/session    cookie- or Redis-backed sessions and flash messages
	http/middleware adapters applied around handlers
	http/router     route registration on top of gorilla/mux
	aerie           application bootstrap and the web server lifecycle

*/
package kestrel

package resp

import (
	"net/url"

	"github.com/kestrel-web/kestrel/http/template"
	"github.com/kestrel-web/kestrel/logger"
)

// A ResponderOptFn mutates the provided *Responder in some way.
// A ResponderOptFn is used when constructing a new Responder.
type ResponderOptFn func(*Responder)

// WithContactErrMsg sets the error message to use for error Flashes.
//
// We recommend using session.ContactUsErr as a template.
func WithContactErrMsg(msg string) func(*Responder) {
	return func(d *Responder) {
		d.contactErrMsg = msg
	}
}

// WithCtxInjector sets the ContextInjector merging request context values
// into every rendered context.
func WithCtxInjector(ci ContextInjector) func(*Responder) {
	return func(d *Responder) {
		d.injector = ci
	}
}

// WithDefaultPage sets the page identifier Dispatch renders
// when no Page option is applied.
//
// If never called, the default page is "page/home".
func WithDefaultPage(fp string) func(*Responder) {
	return func(d *Responder) {
		if fp != "" {
			d.page = fp
		}
	}
}

// WithErrTemplate sets the template identified by the filepath to use for rendering
// when an unexpected, unhandled error occurs and no other response can be formed.
//
// If never called, the package-embedded error page renders.
func WithErrTemplate(fp string) func(*Responder) {
	return func(d *Responder) {
		d.templates.err = fp
	}
}

// WithFragmentCache sets the FragmentCacher reusing rendered fragments
// for the "json" dispatch format.
func WithFragmentCache(c FragmentCacher) func(*Responder) {
	return func(d *Responder) {
		d.cache = c
	}
}

// WithLogger sets the provided implementation of logger.Logger in order to log all statements through it.
//
// If no Logger is provided through this option, a default logger will be configured.
func WithLogger(log logger.Logger) func(*Responder) {
	return func(d *Responder) {
		d.logger = log
	}
}

// WithParser sets the provided implementation of template.Parser to use for parsing HTML templates.
func WithParser(p template.Parser) func(*Responder) {
	return func(d *Responder) {
		d.parser = p
	}
}

// WithRootUrl sets the provided URL after parsing it into a *url.URL to use for rendering and redirecting
//
// NOTE: If u fails parsing by url.ParseRequestURI, the root URL becomes https://example.com
func WithRootUrl(u string) func(*Responder) {
	good, err := url.ParseRequestURI(u)
	if err != nil {
		good, _ = url.ParseRequestURI("https://example.com")
	}

	return func(d *Responder) {
		d.rootUrl = good
	}
}

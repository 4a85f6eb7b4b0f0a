package aerie

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/kestrel-web/kestrel"
	"github.com/kestrel-web/kestrel/http/resp"
	"github.com/kestrel-web/kestrel/http/router"
	"github.com/kestrel-web/kestrel/http/session"
	"github.com/kestrel-web/kestrel/http/template"
	"github.com/kestrel-web/kestrel/logger"
)

// setupLog reports configuration progress while an *Aerie is under construction.
var setupLog logger.Logger

// An AerieOption configures an *Aerie either (1) directly, immediately upon being called
// or (2) in the OptFollowup it returns.
// Some AerieOptions require data in others and thus an OptFollowup can be returned
// in order to be called at a later time when that data is available.
//
// WithLogger is an example of the first.
// An unexported field on the passed in *Aerie is updated with the enclosed value.
//
// WithRouter is an example of the second.
// An unexported field on the passed in *Aerie
// is updated only when the closure it returns is called.
type AerieOption func(a *Aerie) (OptFollowup, error)
type OptFollowup func() error

// WithContext exposes the provided context.Context to the kestrel app.
func WithContext(ctx context.Context) AerieOption {
	return func(a *Aerie) (OptFollowup, error) {
		a.ctx = ctx
		if setupLog != nil {
			setupLog.Debug(fmt.Sprintf("using context %T", ctx), nil)
		}

		return nil, nil
	}
}

// WithEnv casts the provided string into a valid Environment,
// or, reads from the ENVIRONMENT environment variable a valid Environment.
//
// If both fail, the default Environment is Development.
func WithEnv(envVar string) AerieOption {
	e := kestrel.Environment(envVar)
	if err := e.Valid(); err == nil {
		return func(a *Aerie) (OptFollowup, error) {
			a.env = e
			if setupLog != nil {
				setupLog.Debug(fmt.Sprintf("using env %s", e), nil)
			}

			return nil, nil
		}
	}

	return func(a *Aerie) (OptFollowup, error) {
		a.env = kestrel.EnvVarOrEnv(environmentEnvVar, kestrel.Development)
		if setupLog != nil {
			setupLog.Debug(fmt.Sprintf("using env %s", a.env), nil)
		}

		return nil, nil
	}
}

// WithLogger exposes the provided logger.Logger to the kestrel app.
func WithLogger(l logger.Logger) AerieOption {
	return func(a *Aerie) (OptFollowup, error) {
		a.l = l
		if setupLog == nil {
			setupLog = l
		}

		setupLog.Debug(fmt.Sprintf("using logger %T", l), nil)

		return nil, nil
	}
}

// WithParser exposes the template.Parser to the kestrel app.
func WithParser(p template.Parser) AerieOption {
	return func(a *Aerie) (OptFollowup, error) {
		a.p = p
		if setupLog != nil {
			setupLog.Debug(fmt.Sprintf("using parser %T", p), nil)
		}

		return nil, nil
	}
}

// WithResponder constructs a followup option that, when called,
// exposes the *resp.Responder to the kestrel app.
func WithResponder(d *resp.Responder) AerieOption {
	return func(a *Aerie) (OptFollowup, error) {
		return func() error {
			a.Responder = d
			if setupLog != nil {
				setupLog.Debug("using responder", nil)
			}

			return nil
		}, nil
	}
}

// WithRouter constructs a followup option that, when called,
// exposes the *router.Router to the kestrel app.
func WithRouter(r *router.Router) AerieOption {
	return func(a *Aerie) (OptFollowup, error) {
		return func() error {
			if a.srv == nil {
				a.srv = defaultServer(a.ctx)
			}

			a.Router = r
			a.srv.Handler = r

			if setupLog != nil {
				setupLog.Debug(fmt.Sprintf("using router %T", r), nil)
				setupLog.Debug(fmt.Sprintf("using server %T", a.srv), nil)
			}

			return nil
		}, nil
	}
}

// WithSessionStore exposes the session.SessionStorer to the kestrel app.
func WithSessionStore(store session.SessionStorer) AerieOption {
	return func(a *Aerie) (OptFollowup, error) {
		a.sessions = store
		if setupLog != nil {
			setupLog.Debug(fmt.Sprintf("using session store %T", store), nil)
		}

		return nil, nil
	}
}

// WithServer exposes the *http.Server to the kestrel app.
func WithServer(s *http.Server) AerieOption {
	return func(a *Aerie) (OptFollowup, error) {
		old := a.srv
		a.srv = s

		if old != nil {
			a.srv.Handler = old.Handler
		}

		return nil, nil
	}
}

// WithURL parses the provided string to set the base URL of the kestrel app.
func WithURL(u string) AerieOption {
	return func(a *Aerie) (OptFollowup, error) {
		parsed, err := url.ParseRequestURI(u)
		if err != nil {
			return nil, fmt.Errorf("%w: cannot parse %q: %s", kestrel.ErrNotValid, u, err)
		}

		a.url = parsed
		if setupLog != nil {
			setupLog.Debug(fmt.Sprintf("using base URL %s", parsed), nil)
		}

		return nil, nil
	}
}

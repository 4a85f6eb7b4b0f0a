package aerie

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/kestrel-web/kestrel"
	"github.com/kestrel-web/kestrel/http/middleware"
	"github.com/kestrel-web/kestrel/http/resp"
	"github.com/kestrel-web/kestrel/http/router"
	"github.com/kestrel-web/kestrel/http/session"
	"github.com/kestrel-web/kestrel/http/template"
	"github.com/kestrel-web/kestrel/logger"
)

const (
	// Base URL defaults
	BaseURLEnvVar = "BASE_URL"

	// App metadata
	AppDescEnvVar    = "APP_DESCRIPTION"
	AppTitleEnvVar   = "APP_TITLE"
	ContactUsEnvVar  = "CONTACT_US_EMAIL"
	defaultContactUs = "hello@example.com"

	// Environment defaults
	environmentEnvVar = "ENVIRONMENT"

	// Log defaults
	logLevelEnvVar = "LOG_LEVEL"

	// Redis defaults
	redisURLEnvVar  = "REDIS_URL"
	redisPassEnvVar = "REDIS_PASSWORD"

	// Web server defaults
	DefaultHost               = "localhost"
	DefaultPort               = ":3000"
	portEnvVar                = "PORT"
	serverReadTimeoutEnvVar   = "SERVER_READ_TIMEOUT"
	DefaultServerReadTimeout  = 5 * time.Second
	serverIdleTimeoutEnvVar   = "SERVER_IDLE_TIMEOUT"
	DefaultServerIdleTimeout  = 120 * time.Second
	serverWriteTimeoutEnvVar  = "SERVER_WRITE_TIMEOUT"
	DefaultServerWriteTimeout = 5 * time.Second

	// Session defaults
	SessionAuthKeyEnvVar    = "SESSION_AUTH_KEY"
	SessionEncryptKeyEnvVar = "SESSION_ENCRYPTION_KEY"
	defaultSessionMaxAge    = 3600 * 24 * 7
)

var defaultBaseURL = "http://" + DefaultHost + DefaultPort

// defaultOpts is the baseline configuration options run before user supplied ones.
//
// Order matters: each option can rely on the fields set by those before it,
// and followups - the responder and router - run after user options had their say.
func defaultOpts() []AerieOption {
	return []AerieOption{
		WithEnv(os.Getenv(environmentEnvVar)),
		defaultLoggerOpt(),
		WithURL(kestrel.EnvVarOrURL(BaseURLEnvVar, defaultBaseURL).String()),
		defaultParserOpt(),
		defaultSessionOpt(),
		defaultResponderOpt(),
		defaultRouterOpt(),
	}
}

// defaultLoggerOpt constructs a logger.Logger from LOG_LEVEL and ENVIRONMENT.
func defaultLoggerOpt() AerieOption {
	return func(a *Aerie) (OptFollowup, error) {
		l := logger.New(
			logger.WithEnv(a.env.String()),
			logger.WithLevel(envVarOrLogLevel(logLevelEnvVar, logger.LogLevelInfo)),
		)

		return WithLogger(l)(a)
	}
}

// defaultParserOpt constructs a *template.Parser reading templates
// from the current working directory.
//
// defaultParserOpt makes available these functions in an HTML template:
//
//   - "env"
//   - "title" returns the value set by the APP_TITLE env var
//   - "description" returns the value set by the APP_DESCRIPTION env var
//   - "nonce"
//   - "rootUrl"
func defaultParserOpt() AerieOption {
	return func(a *Aerie) (OptFollowup, error) {
		p := template.NewParser(
			template.WithFS(os.DirFS(".")),
			template.WithFn(template.Env(a.env)),
			template.WithFn("title", func() string { return os.Getenv(AppTitleEnvVar) }),
			template.WithFn("description", func() string { return os.Getenv(AppDescEnvVar) }),
			template.WithFn(template.Nonce()),
			template.WithFn(template.RootUrl(a.url)),
		)

		return WithParser(p)(a)
	}
}

// defaultSessionOpt constructs a SessionStorer to be used for storing session data.
//
// Sessions are backed by Redis when REDIS_URL is set and cookies otherwise.
// Both KEY env vars must be valid hex encoded values; cf. [encoding/hex].
func defaultSessionOpt() AerieOption {
	return func(a *Aerie) (OptFollowup, error) {
		appName := strings.ToLower(kestrel.EnvVarOrString(AppTitleEnvVar, "app"))
		appName = regexp.MustCompile(`[,':]`).ReplaceAllString(appName, "")
		appName = regexp.MustCompile(`\s`).ReplaceAllString(appName, "-")

		cfg := session.Config{
			AuthKey:     os.Getenv(SessionAuthKeyEnvVar),
			EncryptKey:  os.Getenv(SessionEncryptKeyEnvVar),
			Env:         a.env,
			SessionName: "kestrel-" + appName,
		}

		// NOTE: WithMaxAge must precede the option selecting the backing store.
		args := []session.ServiceOpt{session.WithMaxAge(defaultSessionMaxAge)}
		if uri := os.Getenv(redisURLEnvVar); uri != "" {
			args = append(args, session.WithRedis(uri, os.Getenv(redisPassEnvVar)))
		} else {
			args = append(args, session.WithCookie())
		}

		store, err := session.NewStoreService(cfg, args...)
		if err != nil {
			return nil, err
		}

		return WithSessionStore(store)(a)
	}
}

// defaultResponderOpt configures the [*resp.Responder] to be used by http.Handlers.
//
// The "json" dispatch format caches fragments in Redis when REDIS_URL is set
// and in memory in production environments otherwise.
func defaultResponderOpt() AerieOption {
	return func(a *Aerie) (OptFollowup, error) {
		return func() error {
			if a.Responder != nil {
				return nil
			}

			contact := kestrel.EnvVarOrString(ContactUsEnvVar, defaultContactUs)
			args := []resp.ResponderOptFn{
				resp.WithContactErrMsg(fmt.Sprintf(session.ContactUsErr, contact)),
				resp.WithLogger(a.l),
				resp.WithParser(a.p),
				resp.WithRootUrl(a.url.String()),
			}

			if uri := os.Getenv(redisURLEnvVar); uri != "" {
				cache := resp.NewRedisCache(&redis.Options{Addr: uri, Password: os.Getenv(redisPassEnvVar)})
				args = append(args, resp.WithFragmentCache(cache))
			} else if a.env.IsProduction() {
				args = append(args, resp.WithFragmentCache(resp.NewFragmentMap()))
			}

			fn, err := WithResponder(resp.NewResponder(args...))(a)
			if err != nil {
				return err
			}

			return fn()
		}, nil
	}
}

// defaultRouterOpt constructs a [*router.Router] with the baseline middleware stack.
func defaultRouterOpt() AerieOption {
	return func(a *Aerie) (OptFollowup, error) {
		return func() error {
			if a.Router != nil {
				return nil
			}

			vs := middleware.NewVisitors()
			r := router.New(a.env, middleware.LogRequest(a.l))
			r.OnEveryRequest(
				middleware.RateLimit(vs),
				middleware.ForceHTTPS(a.env),
				middleware.RequestID(),
				middleware.InjectIPAddress(),
				middleware.LogRequest(a.l),
				middleware.InjectSession(a.sessions),
				middleware.InjectResponder(a.Responder),
				middleware.DispatchFormat(),
			)
			r.HandleNotFound(func(wx http.ResponseWriter, rx *http.Request) {
				if strings.Contains(rx.Header.Get("Accept"), "text/html") && rx.URL.Path != a.url.Path {
					a.Responder.Redirect(wx, rx, resp.ToRoot())
					return
				}

				wx.WriteHeader(http.StatusNotFound)
			})

			fn, err := WithRouter(r)(a)
			if err != nil {
				return err
			}

			return fn()
		}, nil
	}
}

// defaultServer constructs a default [*http.Server].
func defaultServer(ctx context.Context) *http.Server {
	port := kestrel.EnvVarOrString(portEnvVar, DefaultPort)
	if port[0] != ':' {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		IdleTimeout:  kestrel.EnvVarOrDuration(serverIdleTimeoutEnvVar, DefaultServerIdleTimeout),
		ReadTimeout:  kestrel.EnvVarOrDuration(serverReadTimeoutEnvVar, DefaultServerReadTimeout),
		WriteTimeout: kestrel.EnvVarOrDuration(serverWriteTimeoutEnvVar, DefaultServerWriteTimeout),
	}
	if ctx != nil {
		srv.BaseContext = func(_ net.Listener) context.Context { return ctx }
	}

	return srv
}

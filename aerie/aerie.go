package aerie

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	// NOTE: loads ".env" before any option reads the environment.
	_ "github.com/joho/godotenv/autoload"
	"github.com/kestrel-web/kestrel"
	"github.com/kestrel-web/kestrel/http/resp"
	"github.com/kestrel-web/kestrel/http/router"
	"github.com/kestrel-web/kestrel/http/session"
	"github.com/kestrel-web/kestrel/http/template"
	"github.com/kestrel-web/kestrel/logger"
)

// An Aerie manages and exposes all components of a kestrel app to one another.
type Aerie struct {
	*resp.Responder
	*router.Router

	ctx      context.Context
	env      kestrel.Environment
	l        logger.Logger
	p        template.Parser
	sessions session.SessionStorer
	srv      *http.Server
	url      *url.URL
}

// New constructs an Aerie from the provided options.
// Default options are applied first followed by the options passed into New.
// Options supplied to New overwrite default configurations.
func New(opts ...AerieOption) (*Aerie, error) {
	a := new(Aerie)
	followups := make([]OptFollowup, 0)

	// NOTE: calling an option configures the *Aerie under construction.
	// Some options require data from other options.
	// These options, therefore, must delay configuring the *Aerie
	// until either (1) user supplied AerieOptions or (2) default AerieOptions
	// configure the *Aerie first.
	// They return an OptFollowup to be called after the initial set of options are run.
	for _, opt := range append(defaultOpts(), opts...) {
		fn, err := opt(a)
		if err != nil {
			return a, fmt.Errorf("%w: %s", kestrel.ErrBadConfig, err)
		}

		if fn != nil {
			followups = append(followups, fn)
		}
	}

	for _, fn := range followups {
		if err := fn(); err != nil {
			return nil, fmt.Errorf("%w: %s", kestrel.ErrBadConfig, err)
		}
	}

	return a, nil
}

func (a *Aerie) EmitLogger() logger.Logger               { return a.l }
func (a *Aerie) EmitSessionStore() session.SessionStorer { return a.sessions }

// Guide begins the web server.
//
// These, and (*Aerie).Shutdown, stop Guide:
//
// - os.Interrupt
// - os.Kill
// - syscall.SIGHUP
// - syscall.SIGINT
// - syscall.SIGQUIT
// - syscall.SIGTERM
func (a *Aerie) Guide() error {
	var cancel context.CancelFunc
	a.ctx, cancel = context.WithCancel(context.Background())

	ch := make(chan os.Signal, 1)
	signal.Notify(
		ch,
		os.Interrupt,
		os.Kill,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)

	go func() {
		s := <-ch
		a.l.Info(fmt.Sprint("received shutdown signal: ", s), nil)
		cancel()
	}()

	go func() {
		a.l.Info(fmt.Sprintf("running web server at %s", a.srv.Addr), nil)
		a.srv.Handler = a.Router
		if err := a.srv.ListenAndServe(); err != http.ErrServerClosed {
			err = fmt.Errorf("could not listen: %w", err)
			a.l.Error(err.Error(), nil)
		}
	}()

	<-a.ctx.Done()
	return a.Shutdown()
}

// Shutdown shutdowns the web server.
func (a *Aerie) Shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	a.l.Info("shutting down web server", nil)
	err := a.srv.Shutdown(shutdownCtx)
	if err == http.ErrServerClosed {
		a.l.Info("web server shutdown successfully", nil)
		return nil
	}

	if err != nil {
		return fmt.Errorf("could not shutdown: %w", err)
	}

	a.l.Info("web server shutdown successfully", nil)
	return nil
}

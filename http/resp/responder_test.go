package resp

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kestrel-web/kestrel"
	"github.com/kestrel-web/kestrel/http/session"
	"github.com/kestrel-web/kestrel/http/template/templatetest"
	"github.com/kestrel-web/kestrel/logger"
	"github.com/stretchr/testify/require"
)

// testLogger captures statements so assertions do not depend on stdout.
type testLogger struct {
	debugs []string
	errors []string
	infos  []string
	warns  []string
}

func newTestLogger() *testLogger { return new(testLogger) }

func (tl *testLogger) Debug(msg string, _ *logger.LogContext) { tl.debugs = append(tl.debugs, msg) }
func (tl *testLogger) Error(msg string, _ *logger.LogContext) { tl.errors = append(tl.errors, msg) }
func (tl *testLogger) Fatal(msg string, _ *logger.LogContext) { tl.errors = append(tl.errors, msg) }
func (tl *testLogger) Info(msg string, _ *logger.LogContext)  { tl.infos = append(tl.infos, msg) }
func (tl *testLogger) Warn(msg string, _ *logger.LogContext)  { tl.warns = append(tl.warns, msg) }
func (tl *testLogger) LogLevel() logger.LogLevel              { return logger.LogLevelDebug }

func TestNewResponder(t *testing.T) {
	t.Run("Zero-Value", func(t *testing.T) {
		d := NewResponder(WithLogger(newTestLogger()))

		require.Equal(t, defaultPage, d.page)
		require.Equal(t, defaultErrTemplate, d.templates.err)
		require.IsType(t, NoopInjector{}, d.injector)
		require.Nil(t, d.cache)
	})

	t.Run("With-Opts", func(t *testing.T) {
		l := newTestLogger()
		cache := NewFragmentMap()
		d := NewResponder(
			WithLogger(l),
			WithDefaultPage("page/index"),
			WithErrTemplate("tmpl/oops.html"),
			WithFragmentCache(cache),
			WithContactErrMsg("contact us"),
		)

		require.Equal(t, l, d.logger)
		require.Equal(t, "page/index", d.page)
		require.Equal(t, "tmpl/oops.html", d.templates.err)
		require.NotNil(t, d.cache)
		require.Equal(t, "contact us", d.contactErrMsg)
	})
}

func TestResponderErr(t *testing.T) {
	// Arrange
	l := newTestLogger()
	d := NewResponder(WithLogger(l))
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
	expected := errors.New("potato")

	// Act
	d.Err(w, r, expected)

	// Assert
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Equal(t, expected.Error(), strings.TrimSpace(w.Body.String()))
	require.Len(t, l.errors, 1)
}

func TestResponderHtml(t *testing.T) {
	t.Run("Tmpls", func(t *testing.T) {
		// Arrange
		parser := templatetest.NewParser(
			templatetest.NewMockFile("layout/base.html", []byte("hello {{.name}}")),
		)
		d := NewResponder(WithLogger(newTestLogger()), WithParser(parser))
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)

		// Act
		err := d.Html(w, r, Tmpls("layout/base.html"), Data(map[string]any{"name": "world"}))

		// Assert
		require.Nil(t, err)
		require.Equal(t, "hello world", w.Body.String())
	})

	t.Run("No-Tmpls", func(t *testing.T) {
		// Arrange
		parser := templatetest.NewParser()
		d := NewResponder(WithLogger(newTestLogger()), WithParser(parser))
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)

		// Act
		err := d.Html(w, r)

		// Assert
		require.ErrorIs(t, err, ErrMissingData)
		require.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestResponderJson(t *testing.T) {
	tcs := []struct {
		name         string
		opts         []Fn
		expectedCode int
		expectedBody string
	}{
		{"No-Data", nil, http.StatusOK, `{}`},
		{"Data", []Fn{Data(map[string]any{"go": "far"})}, http.StatusOK, `{"data":{"go":"far"}}`},
		{"Code", []Fn{Code(http.StatusCreated), Data("ok")}, http.StatusCreated, `{"data":"ok"}`},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			d := NewResponder(WithLogger(newTestLogger()))
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)

			// Act
			err := d.Json(w, r, tc.opts...)

			// Assert
			require.Nil(t, err)
			require.Equal(t, tc.expectedCode, w.Code)
			require.Equal(t, "application/json; charset=UTF-8", w.Header().Get("Content-Type"))
			require.Equal(t, tc.expectedBody, strings.TrimSpace(w.Body.String()))
		})
	}
}

func TestResponderRedirect(t *testing.T) {
	tcs := []struct {
		name         string
		opts         []Fn
		expectedCode int
		expectedLoc  string
	}{
		{"To-Root", nil, http.StatusFound, "https://example.com"},
		{"Url", []Fn{Url("https://example.com/next")}, http.StatusFound, "https://example.com/next"},
		{
			"Param",
			[]Fn{Url("https://example.com/next"), Param("a", "b")},
			http.StatusFound,
			"https://example.com/next?a=b",
		},
		{"4xx-Coerced", []Fn{Code(http.StatusNotFound)}, http.StatusSeeOther, "https://example.com"},
		{"5xx-Coerced", []Fn{Code(http.StatusInternalServerError)}, http.StatusTemporaryRedirect, "https://example.com"},
		{"3xx-Kept", []Fn{Code(http.StatusMovedPermanently)}, http.StatusMovedPermanently, "https://example.com"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			d := NewResponder(WithLogger(newTestLogger()), WithRootUrl("https://example.com"))
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)

			// Act
			err := d.Redirect(w, r, tc.opts...)

			// Assert
			require.Nil(t, err)
			require.Equal(t, tc.expectedCode, w.Code)
			require.Equal(t, tc.expectedLoc, w.Header().Get("Location"))
		})
	}
}

func TestResponderSession(t *testing.T) {
	t.Run("Not-Found", func(t *testing.T) {
		d := NewResponder(WithLogger(newTestLogger()))

		_, err := d.Session(context.Background())

		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Invalid", func(t *testing.T) {
		d := NewResponder(WithLogger(newTestLogger()))
		ctx := context.WithValue(context.Background(), kestrel.SessionKey, "nope")

		_, err := d.Session(ctx)

		require.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("Found", func(t *testing.T) {
		d := NewResponder(WithLogger(newTestLogger()))
		r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
		s, err := session.NewStub().GetSession(r)
		require.Nil(t, err)
		ctx := context.WithValue(context.Background(), kestrel.SessionKey, s)

		got, err := d.Session(ctx)

		require.Nil(t, err)
		require.Equal(t, s, got)
	})
}

func TestResponderDo(t *testing.T) {
	t.Run("Retries-Out-Of-Order-Opts", func(t *testing.T) {
		// Arrange
		d := NewResponder(WithLogger(newTestLogger()))
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)

		// Param requires Url to have run first; do retries it after Url succeeds.
		rr, err := d.do(w, r, Param("a", "b"), Url("https://example.com/next"))

		// Assert
		require.Nil(t, err)
		require.Equal(t, "https://example.com/next?a=b", rr.url.String())
	})

	t.Run("Ctx-Cancelled", func(t *testing.T) {
		// Arrange
		d := NewResponder(WithLogger(newTestLogger()))
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
		ctx, cancel := context.WithCancel(r.Context())
		cancel()
		r = r.WithContext(ctx)

		// Act
		_, err := d.do(w, r, Code(http.StatusOK))

		// Assert
		require.ErrorIs(t, err, ErrDone)
	})
}

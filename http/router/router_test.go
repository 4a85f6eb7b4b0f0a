package router_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kestrel-web/kestrel"
	"github.com/kestrel-web/kestrel/http/middleware"
	"github.com/kestrel-web/kestrel/http/router"
	"github.com/stretchr/testify/require"
)

func TestRouterHandle(t *testing.T) {
	// Arrange
	r := router.New(kestrel.Testing, middleware.NoopAdapter)
	r.Handle(router.Route{
		Path:   "/ride",
		Method: http.MethodGet,
		Handler: func(w http.ResponseWriter, rx *http.Request) {
			fmt.Fprint(w, "ok")
		},
	})

	// Act
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "https://example.com/ride", nil))

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "ok", w.Body.String())

	// Act - wrong method does not match
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "https://example.com/ride", nil))

	// Assert
	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestRouterHandleRoutes(t *testing.T) {
	// Arrange
	var calls []string
	adpt := func(name string) middleware.Adapter {
		return func(h http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, rx *http.Request) {
				calls = append(calls, name)
				h.ServeHTTP(w, rx)
			})
		}
	}

	r := router.New(kestrel.Testing, middleware.NoopAdapter)
	r.OnEveryRequest(adpt("every"))
	r.HandleRoutes([]router.Route{
		{
			Path:        "/ride",
			Method:      http.MethodGet,
			Handler:     func(w http.ResponseWriter, rx *http.Request) {},
			Middlewares: []middleware.Adapter{adpt("route")},
		},
	}, adpt("group"))

	// Act
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "https://example.com/ride", nil))

	// Assert
	require.Equal(t, []string{"every", "group", "route"}, calls)
}

func TestRouterHandleNotFound(t *testing.T) {
	// Arrange
	r := router.New(kestrel.Testing, middleware.NoopAdapter)
	r.HandleNotFound(func(w http.ResponseWriter, rx *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	// Act
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "https://example.com/nope", nil))

	// Assert
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouterCatchAll(t *testing.T) {
	// Arrange
	r := router.New(kestrel.Testing, middleware.NoopAdapter)
	r.CatchAll(func(w http.ResponseWriter, rx *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	// Act
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "https://example.com/anything/at/all", nil))

	// Assert
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRouterSubrouter(t *testing.T) {
	// Arrange
	r := router.New(kestrel.Testing, middleware.NoopAdapter)
	api := r.Subrouter("/api/v1")
	api.Handle(router.Route{
		Path:   "/users",
		Method: http.MethodGet,
		Handler: func(w http.ResponseWriter, rx *http.Request) {
			fmt.Fprint(w, "users")
		},
	})

	// Act
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "https://example.com/api/v1/users", nil))

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "users", w.Body.String())
}

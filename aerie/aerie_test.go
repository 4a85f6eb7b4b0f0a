package aerie_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kestrel-web/kestrel"
	"github.com/kestrel-web/kestrel/aerie"
	"github.com/kestrel-web/kestrel/http/router"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Setenv("ENVIRONMENT", kestrel.Testing.String())

	// Act
	a, err := newTestAerie(t)

	// Assert
	require.Nil(t, err)
	require.NotNil(t, a.Responder)
	require.NotNil(t, a.Router)
	require.NotNil(t, a.EmitLogger())
	require.NotNil(t, a.EmitSessionStore())
}

func TestNewHandlesRoutes(t *testing.T) {
	t.Setenv("ENVIRONMENT", kestrel.Testing.String())

	// Arrange
	a, err := newTestAerie(t)
	require.Nil(t, err)

	a.Handle(router.Route{
		Path:   "/ride",
		Method: http.MethodGet,
		Handler: func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, "ok")
		},
	})

	// Act
	w := httptest.NewRecorder()
	a.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "https://example.com/ride", nil))

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "ok", w.Body.String())
}

func TestNewNotFound(t *testing.T) {
	t.Setenv("ENVIRONMENT", kestrel.Testing.String())

	// Arrange
	a, err := newTestAerie(t)
	require.Nil(t, err)

	// Act
	w := httptest.NewRecorder()
	a.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "https://example.com/nope", nil))

	// Assert
	require.Equal(t, http.StatusNotFound, w.Code)
}

// newTestAerie constructs an *aerie.Aerie for tests.
func newTestAerie(t *testing.T) (*aerie.Aerie, error) {
	t.Helper()
	return aerie.New()
}

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kestrel-web/kestrel"
	"github.com/kestrel-web/kestrel/http/middleware"
	"github.com/stretchr/testify/require"
)

func TestForceHTTPS(t *testing.T) {
	t.Run("Development-Passes", func(t *testing.T) {
		// Arrange
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "http://example.com/ride", nil)

		// Act
		middleware.ForceHTTPS(kestrel.Development)(NoopHandler()).ServeHTTP(w, r)

		// Assert
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Forwarded-Proto-Passes", func(t *testing.T) {
		// Arrange
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "http://example.com/ride", nil)
		r.Header.Set("X-Forwarded-Proto", "https")

		// Act
		middleware.ForceHTTPS(kestrel.Production)(NoopHandler()).ServeHTTP(w, r)

		// Assert
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Production-Redirects", func(t *testing.T) {
		// Arrange
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "http://example.com/ride", nil)

		// Act
		middleware.ForceHTTPS(kestrel.Production)(NoopHandler()).ServeHTTP(w, r)

		// Assert
		require.Equal(t, http.StatusPermanentRedirect, w.Code)
		require.Equal(t, "https://example.com/ride", w.Header().Get("Location"))
	})
}

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kestrel-web/kestrel"
	"github.com/kestrel-web/kestrel/http/middleware"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	// Arrange
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)

	// Act
	actual := middleware.RequestID()

	// Assert
	actual(http.HandlerFunc(func(wx http.ResponseWriter, rx *http.Request) {
		val, ok := rx.Context().Value(kestrel.RequestIDKey).(string)
		require.True(t, ok)
		require.NotZero(t, val)
	})).ServeHTTP(w, r)
}

package middleware_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kestrel-web/kestrel/http/middleware"
	"github.com/kestrel-web/kestrel/logger"
	"github.com/stretchr/testify/require"
)

func NoopHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
}

// testLogger captures statements so assertions do not depend on stdout.
type testLogger struct {
	infos []string
}

func (tl *testLogger) Debug(msg string, _ *logger.LogContext) {}
func (tl *testLogger) Error(msg string, _ *logger.LogContext) {}
func (tl *testLogger) Fatal(msg string, _ *logger.LogContext) {}
func (tl *testLogger) Info(msg string, _ *logger.LogContext)  { tl.infos = append(tl.infos, msg) }
func (tl *testLogger) Warn(msg string, _ *logger.LogContext)  {}
func (tl *testLogger) LogLevel() logger.LogLevel              { return logger.LogLevelInfo }

func TestChain(t *testing.T) {
	// Arrange
	var calls []string
	adpt := func(name string) middleware.Adapter {
		return func(h http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls = append(calls, name)
				h.ServeHTTP(w, r)
			})
		}
	}
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)

	// Act
	middleware.Chain(NoopHandler(), adpt("first"), adpt("second"), adpt("third")).ServeHTTP(w, r)

	// Assert
	require.Equal(t, []string{"first", "second", "third"}, calls)
}

func TestNoopAdapter(t *testing.T) {
	h := NoopHandler()
	require.Equal(t, fmt.Sprintf("%p", h), fmt.Sprintf("%p", middleware.NoopAdapter(h)))
}

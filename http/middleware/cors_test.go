package middleware_test

import (
	"fmt"
	"testing"

	"github.com/kestrel-web/kestrel/http/middleware"
	"github.com/stretchr/testify/require"
)

func TestCORS(t *testing.T) {
	actual := middleware.CORS("")
	require.Equal(t, fmt.Sprintf("%p", middleware.NoopAdapter), fmt.Sprintf("%p", actual))

	actual = middleware.CORS("https://example.com")
	require.NotEqual(t, fmt.Sprintf("%p", middleware.NoopAdapter), fmt.Sprintf("%p", actual))
}

package middleware_test

import (
	"fmt"
	"testing"

	"github.com/kestrel-web/kestrel"
	"github.com/kestrel-web/kestrel/http/middleware"
	"github.com/stretchr/testify/require"
)

func TestReportPanic(t *testing.T) {
	actual := middleware.ReportPanic(kestrel.Development)
	require.Equal(t, fmt.Sprintf("%p", middleware.NoopAdapter), fmt.Sprintf("%p", actual))

	actual = middleware.ReportPanic(kestrel.Testing)
	require.Equal(t, fmt.Sprintf("%p", middleware.NoopAdapter), fmt.Sprintf("%p", actual))
}

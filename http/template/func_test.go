package template_test

import (
	"net/url"
	"testing"

	"github.com/kestrel-web/kestrel"
	"github.com/kestrel-web/kestrel/http/template"
	"github.com/stretchr/testify/require"
)

func TestEnv(t *testing.T) {
	name, fn := template.Env(kestrel.Testing)
	require.Equal(t, "env", name)
	require.Equal(t, "TESTING", fn())
}

func TestNonce(t *testing.T) {
	name, fn := template.Nonce()
	require.Equal(t, "nonce", name)
	require.NotEqual(t, fn(), fn())
}

func TestRootUrl(t *testing.T) {
	t.Run("Nil", func(t *testing.T) {
		name, fn := template.RootUrl(nil)
		require.Equal(t, "rootUrl", name)
		require.Zero(t, fn())
	})

	t.Run("Set", func(t *testing.T) {
		u, err := url.ParseRequestURI("https://example.com")
		require.Nil(t, err)

		name, fn := template.RootUrl(u)
		require.Equal(t, "rootUrl", name)
		require.Equal(t, "https://example.com", fn())
	})
}

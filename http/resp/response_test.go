package resp

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCode(t *testing.T) {
	r := new(Response)

	err := Code(http.StatusTeapot)(Responder{}, r)

	require.Nil(t, err)
	require.Equal(t, http.StatusTeapot, r.code)
}

func TestData(t *testing.T) {
	r := new(Response)
	expected := map[string]any{"go": "far"}

	err := Data(expected)(Responder{}, r)

	require.Nil(t, err)
	require.Equal(t, expected, r.data)
}

func TestPage(t *testing.T) {
	t.Run("Sets", func(t *testing.T) {
		r := &Response{page: defaultPage}

		err := Page("page/about")(Responder{}, r)

		require.Nil(t, err)
		require.Equal(t, "page/about", r.page)
	})

	t.Run("Empty-String-Keeps-Default", func(t *testing.T) {
		r := &Response{page: defaultPage}

		err := Page("")(Responder{}, r)

		require.Nil(t, err)
		require.Equal(t, defaultPage, r.page)
	})
}

func TestParam(t *testing.T) {
	t.Run("No-Url", func(t *testing.T) {
		r := new(Response)

		err := Param("a", "b")(Responder{}, r)

		require.ErrorIs(t, err, ErrMissingData)
	})

	t.Run("Adds", func(t *testing.T) {
		u, err := url.ParseRequestURI("https://example.com/next")
		require.Nil(t, err)
		r := &Response{url: u}

		require.Nil(t, Param("a", "b")(Responder{}, r))
		require.Nil(t, Param("c", "d")(Responder{}, r))
		require.Equal(t, "https://example.com/next?a=b&c=d", r.url.String())
	})
}

func TestTmpls(t *testing.T) {
	r := new(Response)

	require.Nil(t, Tmpls("layout/base.html")(Responder{}, r))
	require.Nil(t, Tmpls("layout/nav.html", "layout/footer.html")(Responder{}, r))
	require.Equal(t, []string{"layout/base.html", "layout/nav.html", "layout/footer.html"}, r.tmpls)
}

func TestToRoot(t *testing.T) {
	u, err := url.ParseRequestURI("https://example.com")
	require.Nil(t, err)
	d := Responder{rootUrl: u}
	r := new(Response)

	require.Nil(t, ToRoot()(d, r))
	require.Equal(t, u, r.url)
}

func TestUrl(t *testing.T) {
	t.Run("Invalid", func(t *testing.T) {
		r := new(Response)

		err := Url("not-a-url")(Responder{}, r)

		require.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("Valid", func(t *testing.T) {
		r := new(Response)

		err := Url("https://example.com/next")(Responder{}, r)

		require.Nil(t, err)
		require.Equal(t, "https://example.com/next", r.url.String())
	})
}

func TestErrFn(t *testing.T) {
	// Arrange
	l := newTestLogger()
	d := Responder{logger: l}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
	r := &Response{w: w, r: req}

	// Act
	err := Err(errors.New("potato"))(d, r)

	// Assert
	require.Nil(t, err)
	require.Equal(t, http.StatusInternalServerError, r.code)
	require.Len(t, l.errors, 1)
}

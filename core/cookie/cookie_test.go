package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/core/cookie"
)

func setCookieFromRecorder(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func TestSet_Attributes(t *testing.T) {
	t.Parallel()

	binder := cookie.New()
	rec := httptest.NewRecorder()
	expiresAt := time.Now().Add(time.Hour)

	require.NoError(t, binder.Set(rec, "tok-value", expiresAt))

	c := setCookieFromRecorder(t, rec)
	assert.Equal(t, "session", c.Name)
	assert.Equal(t, "tok-value", c.Value)
	assert.Equal(t, "/", c.Path)
	assert.True(t, c.HttpOnly)
	assert.False(t, c.Secure)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	assert.InDelta(t, 3600, c.MaxAge, 2)
	assert.WithinDuration(t, expiresAt, c.Expires, time.Second)
}

func TestSet_SecureAndCustomName(t *testing.T) {
	t.Parallel()

	binder := cookie.NewFromConfig(cookie.Config{
		Name:     "__Host-session",
		Path:     "/",
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
	rec := httptest.NewRecorder()

	require.NoError(t, binder.Set(rec, "tok", time.Now().Add(time.Minute)))

	c := setCookieFromRecorder(t, rec)
	assert.Equal(t, "__Host-session", c.Name)
	assert.True(t, c.Secure)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
}

func TestSet_ExpiredSession(t *testing.T) {
	t.Parallel()

	binder := cookie.New()
	rec := httptest.NewRecorder()

	// Binding an already-expired session clears instead of erroring; the
	// client must not keep a dead credential.
	require.NoError(t, binder.Set(rec, "tok", time.Now().Add(-time.Second)))

	c := setCookieFromRecorder(t, rec)
	assert.Empty(t, c.Value)
	assert.Equal(t, -1, c.MaxAge)
}

func TestClear(t *testing.T) {
	t.Parallel()

	binder := cookie.New(cookie.WithSecure(true))
	rec := httptest.NewRecorder()

	binder.Clear(rec)

	c := setCookieFromRecorder(t, rec)
	assert.Equal(t, "session", c.Name)
	assert.Empty(t, c.Value)
	assert.Equal(t, -1, c.MaxAge, "net/http renders MaxAge<0 as Max-Age=0")
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure, "clear must carry identical attribute flags")
}

func TestRead(t *testing.T) {
	t.Parallel()

	binder := cookie.New()

	t.Run("present", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "session", Value: "the-token"})

		tok, err := binder.Read(r)
		require.NoError(t, err)
		assert.Equal(t, "the-token", tok)
	})

	t.Run("absent", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/", nil)

		_, err := binder.Read(r)
		require.Error(t, err)
		assert.ErrorIs(t, err, cookie.ErrNoCookie)
	})
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	binder := cookie.New()
	rec := httptest.NewRecorder()
	require.NoError(t, binder.Set(rec, "round-trip-token", time.Now().Add(time.Hour)))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		r.AddCookie(c)
	}

	tok, err := binder.Read(r)
	require.NoError(t, err)
	assert.Equal(t, "round-trip-token", tok)
}

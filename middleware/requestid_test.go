package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/middleware"
)

func TestRequestID_Generated(t *testing.T) {
	t.Parallel()

	var got string
	h := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := middleware.RequestIDFromContext(r.Context())
		require.True(t, ok)
		got = id
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotEmpty(t, got)
	_, err := uuid.Parse(got)
	assert.NoError(t, err, "generated ids are UUIDs")
	assert.Equal(t, got, rec.Header().Get(middleware.RequestIDHeader))
}

func TestRequestID_ReusesExisting(t *testing.T) {
	t.Parallel()

	var got string
	h := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = middleware.RequestIDFromContext(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(middleware.RequestIDHeader, "client-supplied-id")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)

	assert.Equal(t, "client-supplied-id", got)
	assert.Equal(t, "client-supplied-id", rec.Header().Get(middleware.RequestIDHeader))
}

func TestRequestIDFromContext_Absent(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := middleware.RequestIDFromContext(r.Context())
	assert.False(t, ok)
}

package clientip_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/authkit/pkg/clientip"
)

func TestGetIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{
			name:       "remote addr only",
			remoteAddr: "203.0.113.7:51234",
			want:       "203.0.113.7",
		},
		{
			name:       "cloudflare header wins",
			headers:    map[string]string{"CF-Connecting-IP": "198.51.100.1", "X-Forwarded-For": "10.0.0.1"},
			remoteAddr: "203.0.113.7:51234",
			want:       "198.51.100.1",
		},
		{
			name:       "forwarded chain uses first entry",
			headers:    map[string]string{"X-Forwarded-For": "198.51.100.2, 10.0.0.1, 10.0.0.2"},
			remoteAddr: "203.0.113.7:51234",
			want:       "198.51.100.2",
		},
		{
			name:       "x-real-ip",
			headers:    map[string]string{"X-Real-IP": "198.51.100.3"},
			remoteAddr: "203.0.113.7:51234",
			want:       "198.51.100.3",
		},
		{
			name:       "invalid header falls through",
			headers:    map[string]string{"X-Forwarded-For": "not-an-ip"},
			remoteAddr: "203.0.113.7:51234",
			want:       "203.0.113.7",
		},
		{
			name:       "ipv6 remote addr",
			remoteAddr: "[2001:db8::1]:443",
			want:       "2001:db8::1",
		},
		{
			name:       "unparseable everything",
			remoteAddr: "garbage",
			want:       "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}

			assert.Equal(t, tt.want, clientip.GetIP(r))
		})
	}
}

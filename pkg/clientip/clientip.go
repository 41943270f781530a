package clientip

import (
	"net"
	"net/http"
	"strings"
)

// Proxy headers in priority order. CDN-injected headers are checked before
// the generic forwarding ones because they are set by infrastructure the
// application operator controls, not by the client.
var headers = []string{
	"CF-Connecting-IP",
	"DO-Connecting-IP",
	"X-Forwarded-For",
	"X-Real-IP",
}

// GetIP extracts the real client IP address from the request, walking proxy
// headers in priority order and falling back to RemoteAddr. Returns an empty
// string only if nothing parses as an IP.
func GetIP(r *http.Request) string {
	for _, h := range headers {
		v := r.Header.Get(h)
		if v == "" {
			continue
		}

		// X-Forwarded-For may carry a chain; the first entry is the client.
		if i := strings.IndexByte(v, ','); i >= 0 {
			v = v[:i]
		}
		v = strings.TrimSpace(v)
		if ip := net.ParseIP(v); ip != nil {
			return ip.String()
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if ip := net.ParseIP(host); ip != nil {
		return ip.String()
	}
	return ""
}

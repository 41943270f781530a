// Package clientip extracts real client IP addresses from HTTP requests.
//
// Behind proxies, load balancers, or CDNs the connection's RemoteAddr is the
// last hop, not the client. GetIP checks proxy headers in priority order
// (CF-Connecting-IP, DO-Connecting-IP, X-Forwarded-For, X-Real-IP) before
// falling back to RemoteAddr, and validates that the candidate parses as an
// IP before trusting it.
//
//	ip := clientip.GetIP(r)
package clientip

// Package realip resolves the client IP address of an HTTP request,
// honoring reverse-proxy headers before falling back to RemoteAddr.
package realip

import (
	"net"
	"net/http"
	"strings"
)

// FromRequest extracts the client IP address from the request.
// X-Forwarded-For takes precedence (first address in the chain), then
// X-Real-IP, then the connection's remote address.
func FromRequest(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if ip := firstIP(xff); ip != "" {
			return ip
		}
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		if ip := net.ParseIP(strings.TrimSpace(xri)); ip != nil {
			return ip.String()
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// firstIP parses the first address of a comma-separated list.
func firstIP(s string) string {
	if idx := strings.IndexByte(s, ','); idx != -1 {
		s = s[:idx]
	}
	if ip := net.ParseIP(strings.TrimSpace(s)); ip != nil {
		return ip.String()
	}
	return ""
}

package http

import (
	"net/http"
	"strings"
)

// resolveOrigin reconstructs the public `scheme://host` origin of the
// deployment making the request.
//
// Proxy-set forwarding headers take precedence over connection-level data,
// because behind a reverse proxy the TLS connection the server sees is not
// the one the end deployment used:
//   - X-Forwarded-Proto wins for the scheme, then the presence of a TLS
//     connection state, then plain "http".
//   - X-Forwarded-Host wins for the host, then [http.Request.Host].
//
// Only the first value of a comma-separated forwarding header is used (the
// client-most proxy). The result is lowercased so that lookups are
// case-insensitive.
func resolveOrigin(r *http.Request) string {
	scheme := firstForwardedValue(r.Header.Get("X-Forwarded-Proto"))
	if scheme == "" {
		if r.TLS != nil {
			scheme = "https"
		} else {
			scheme = "http"
		}
	}

	host := firstForwardedValue(r.Header.Get("X-Forwarded-Host"))
	if host == "" {
		host = r.Host
	}

	return strings.ToLower(scheme + "://" + host)
}

func firstForwardedValue(headerValue string) string {
	first, _, _ := strings.Cut(headerValue, ",")
	return strings.TrimSpace(first)
}

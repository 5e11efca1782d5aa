package clientip

import (
	"net"
	"net/http"
	"strings"
)

// Proxy headers in priority order. The most trustworthy sources come first.
var proxyHeaders = []string{
	"CF-Connecting-IP",
	"DO-Connecting-IP",
	"X-Forwarded-For",
	"X-Real-IP",
}

// GetIP returns the client IP for the request. Falls back to the raw
// RemoteAddr host when no header yields a valid address.
func GetIP(r *http.Request) string {
	for _, header := range proxyHeaders {
		value := r.Header.Get(header)
		if value == "" {
			continue
		}

		// X-Forwarded-For may carry a chain: "client, proxy1, proxy2".
		// The leftmost entry is the original client.
		if idx := strings.IndexByte(value, ','); idx != -1 {
			value = value[:idx]
		}

		if ip := normalize(value); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if ip := normalize(host); ip != "" {
		return ip
	}
	return host
}

// normalize validates and canonicalizes a candidate IP string. Returns ""
// for malformed values and for the unspecified address.
func normalize(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil || ip.IsUnspecified() {
		return ""
	}
	return ip.String()
}

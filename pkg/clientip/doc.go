// Package clientip extracts the real client IP address from HTTP requests.
//
// Proxy headers are checked in priority order before falling back to the
// connection's remote address:
//  1. CF-Connecting-IP (Cloudflare)
//  2. DO-Connecting-IP (DigitalOcean)
//  3. X-Forwarded-For (leftmost entry is the original client)
//  4. X-Real-IP (nginx and friends)
//  5. RemoteAddr
//
// Candidate values are validated and normalized with net.ParseIP; malformed
// headers and the unspecified address 0.0.0.0 are skipped. GetIP never
// panics: when no candidate validates, it returns the raw RemoteAddr host.
package clientip

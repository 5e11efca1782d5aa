// Package httpapi is the transport adapter: it translates HTTP requests into
// session lifecycle operations and core errors into HTTP status codes.
//
// The adapter owns nothing but translation. Client network identity is taken
// from request metadata (proxy headers, remote address) and the request body;
// no transport-level token is bound to the session id, so the core stays
// ignorant of cookies.
package httpapi

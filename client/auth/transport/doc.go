// Package transport implements an http.RoundTripper that attaches the current
// session's bearer token to every outgoing request.
//
// The token is read from an oauth2.TokenSource when each request is sent, so
// a login or logout takes effect for the next request without mutating any
// shared default headers. When the source yields no token the request goes
// out without an Authorization header.
package transport

// Package mock provides an in-memory link-shortener backend served through
// httptest, used by unit tests and local demos.
//
// It implements the login/logout and links endpoints the client talks to,
// issues signed JWT access tokens, revokes them on logout and records every
// request it receives so tests can assert on the exact method, URI and
// Authorization header that were sent.
package mock

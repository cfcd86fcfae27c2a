package transport

import (
	"net/http"
)

const (
	authorizationHeader = "Authorization"
	bearerPrefix        = "Bearer "
)

// clone copies the request so that header changes do not leak to the caller.
func clone(r *http.Request) *http.Request {
	return r.Clone(r.Context())
}

// BearerHeader formats the Authorization header value for token.
func BearerHeader(token string) string {
	return bearerPrefix + token
}

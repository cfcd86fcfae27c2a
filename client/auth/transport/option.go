package transport

import (
	"net/http"

	"golang.org/x/oauth2"
)

type Option func(*RoundTripper)

// WithTokenSource sets the token source consulted on every request
func WithTokenSource(source oauth2.TokenSource) Option {
	return func(t *RoundTripper) {
		t.source = source
	}
}

// WithTransport sets the underlying transport
func WithTransport(transport http.RoundTripper) Option {
	return func(t *RoundTripper) {
		if transport != nil {
			t.transport = transport
		}
	}
}

package transport

import (
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
)

type RoundTripper struct {
	source    oauth2.TokenSource
	transport http.RoundTripper
}

func New(options ...Option) *RoundTripper {
	ret := &RoundTripper{
		transport: http.DefaultTransport,
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

// Token returns the access token to attach, or "" for an anonymous request.
func (r *RoundTripper) Token(req *http.Request) (string, error) {
	if r.source == nil {
		return "", nil
	}
	tok, err := r.source.Token()
	if err != nil {
		return "", fmt.Errorf("failed to get token: %w", err)
	}
	if tok == nil {
		return "", nil
	}
	return tok.AccessToken, nil
}

func (r *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	token, err := r.Token(req)
	if err != nil {
		if req.Body != nil {
			_ = req.Body.Close()
		}
		return nil, err
	}
	next := clone(req)
	next.Header.Del(authorizationHeader)
	if token != "" {
		next.Header.Set(authorizationHeader, BearerHeader(token))
	}
	return r.transport.RoundTrip(next)
}

// Client returns an http.Client using the RoundTripper.
func (r *RoundTripper) Client() *http.Client {
	return &http.Client{Transport: r}
}

package transport

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

type tokenSourceFunc func() (*oauth2.Token, error)

func (f tokenSourceFunc) Token() (*oauth2.Token, error) { return f() }

func TestRoundTripper(t *testing.T) {
	var received string
	var present bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present = r.Header[authorizationHeader]
		received = r.Header.Get(authorizationHeader)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	var testCases = []struct {
		description   string
		source        oauth2.TokenSource
		callerHeader  string
		expectPresent bool
		expectHeader  string
	}{
		{
			description: "no source",
		},
		{
			description: "empty token",
			source:      oauth2.StaticTokenSource(&oauth2.Token{}),
		},
		{
			description:   "session token",
			source:        oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "tok123"}),
			expectPresent: true,
			expectHeader:  "Bearer tok123",
		},
		{
			description:  "caller header stripped when logged out",
			source:       oauth2.StaticTokenSource(&oauth2.Token{}),
			callerHeader: "Bearer stale",
		},
		{
			description:   "caller header replaced",
			source:        oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "fresh"}),
			callerHeader:  "Bearer stale",
			expectPresent: true,
			expectHeader:  "Bearer fresh",
		},
	}

	for _, testCase := range testCases {
		received, present = "", false
		rt := New(WithTokenSource(testCase.source))
		req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, server.URL, nil)
		require.NoError(t, err, testCase.description)
		if testCase.callerHeader != "" {
			req.Header.Set(authorizationHeader, testCase.callerHeader)
		}
		resp, err := rt.Client().Do(req)
		require.NoError(t, err, testCase.description)
		_ = resp.Body.Close()
		assert.Equal(t, testCase.expectPresent, present, testCase.description)
		assert.Equal(t, testCase.expectHeader, received, testCase.description)
		if testCase.callerHeader != "" {
			assert.Equal(t, testCase.callerHeader, req.Header.Get(authorizationHeader), "caller request mutated: "+testCase.description)
		}
	}
}

func TestRoundTripper_ReadsSourcePerRequest(t *testing.T) {
	var headers []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers = append(headers, r.Header.Get(authorizationHeader))
	}))
	defer server.Close()

	current := ""
	rt := New(WithTokenSource(tokenSourceFunc(func() (*oauth2.Token, error) {
		return &oauth2.Token{AccessToken: current}, nil
	})))
	client := rt.Client()
	for _, token := range []string{"", "a", "b", ""} {
		current = token
		resp, err := client.Get(server.URL)
		require.NoError(t, err)
		_ = resp.Body.Close()
	}
	assert.Equal(t, []string{"", "Bearer a", "Bearer b", ""}, headers)
}

func TestRoundTripper_SourceError(t *testing.T) {
	rt := New(WithTokenSource(tokenSourceFunc(func() (*oauth2.Token, error) {
		return nil, errors.New("boom")
	})))
	req, err := http.NewRequest(http.MethodGet, "http://127.0.0.1:1", nil)
	require.NoError(t, err)
	_, err = rt.RoundTrip(req)
	assert.ErrorContains(t, err, "boom")
}

// Context values never add or suppress the header.
func TestRoundTripper_ContextValuesIgnored(t *testing.T) {
	var headers []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers = append(headers, r.Header.Get(authorizationHeader))
	}))
	defer server.Close()

	type key string
	var testCases = []struct {
		description  string
		source       oauth2.TokenSource
		value        string
		expectHeader string
	}{
		{description: "logged out", source: oauth2.StaticTokenSource(&oauth2.Token{}), value: "forced"},
		{description: "logged in", source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "tok123"}), value: "", expectHeader: "Bearer tok123"},
	}
	for _, testCase := range testCases {
		headers = nil
		ctx := context.WithValue(context.Background(), key("authToken"), testCase.value)
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL, nil)
		require.NoError(t, err, testCase.description)
		resp, err := New(WithTokenSource(testCase.source)).Client().Do(req)
		require.NoError(t, err, testCase.description)
		_ = resp.Body.Close()
		assert.Equal(t, []string{testCase.expectHeader}, headers, testCase.description)
	}
}

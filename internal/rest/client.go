// Package rest performs the single JSON-over-HTTP exchange every service
// method is built on.
package rest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/viant/shortlink/schema"
)

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Request describes one call relative to a base URL.
type Request struct {
	Method string
	Path   string
	// RawQuery is appended verbatim after '?'.
	RawQuery string
	Form     url.Values
}

// URL joins base and the request path/query.
func (r *Request) URL(baseURL string) string {
	ret := strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(r.Path, "/")
	if r.RawQuery != "" {
		ret += "?" + r.RawQuery
	}
	return ret
}

// Do sends the request. Non-2xx responses are returned as *schema.HTTPError
// along with the read response.
func Do(ctx context.Context, client *http.Client, baseURL string, request *Request) (*Response, error) {
	var body io.Reader
	if request.Form != nil {
		body = strings.NewReader(request.Form.Encode())
	}
	req, err := http.NewRequestWithContext(ctx, request.Method, request.URL(baseURL), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if request.Form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	httpResponse, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer httpResponse.Body.Close()
	data, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	response := &Response{StatusCode: httpResponse.StatusCode, Header: httpResponse.Header, Body: data}
	if httpResponse.StatusCode < 200 || httpResponse.StatusCode > 299 {
		return response, schema.NewHTTPError(httpResponse.StatusCode, data)
	}
	return response, nil
}

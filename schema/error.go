package schema

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"
)

// Kind classifies a failed service operation.
type Kind string

const (
	AuthenticationFailure  Kind = "AuthenticationFailure"
	LogoutTransportFailure Kind = "LogoutTransportFailure"
	LinksFetchFailure      Kind = "LinksFetchFailure"
	LinksCreateFailure     Kind = "LinksCreateFailure"
	LinksDeleteFailure     Kind = "LinksDeleteFailure"
	AnalyticsFetchFailure  Kind = "AnalyticsFetchFailure"
	LinkFetchFailure       Kind = "LinkFetchFailure"
	LinkUpdateFailure      Kind = "LinkUpdateFailure"
	LinkResolveFailure     Kind = "LinkResolveFailure"
)

// Generic user-facing messages used when the server does not supply a detail.
const (
	MessageLoginFailed     = "Login failed"
	MessageFetchLinks      = "Failed to fetch links"
	MessageCreateLink      = "Failed to create link"
	MessageDeleteLink      = "Failed to delete link"
	MessageFetchAnalytics  = "Failed to fetch link analytics"
	MessageFetchLink       = "Failed to fetch link"
	MessageUpdateLink      = "Failed to update link"
	MessageResolveLink     = "Failed to resolve link"
	MessageLogoutTransport = "Logout error"
)

// Sentinels for errors.Is matching by kind.
var (
	ErrAuthenticationFailure  = &Error{Kind: AuthenticationFailure}
	ErrLogoutTransportFailure = &Error{Kind: LogoutTransportFailure}
	ErrLinksFetchFailure      = &Error{Kind: LinksFetchFailure}
	ErrLinksCreateFailure     = &Error{Kind: LinksCreateFailure}
	ErrLinksDeleteFailure     = &Error{Kind: LinksDeleteFailure}
	ErrAnalyticsFetchFailure  = &Error{Kind: AnalyticsFetchFailure}
	ErrLinkFetchFailure       = &Error{Kind: LinkFetchFailure}
	ErrLinkUpdateFailure      = &Error{Kind: LinkUpdateFailure}
	ErrLinkResolveFailure     = &Error{Kind: LinkResolveFailure}
)

// Error is the user-facing failure of a service operation. Error() returns
// Message verbatim; the underlying cause is available through Unwrap.
type Error struct {
	Kind       Kind
	Message    string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// NewError builds an operation error of the given kind. When useDetail is set
// and cause carries a server detail, the detail becomes the message.
func NewError(kind Kind, generic string, cause error, useDetail bool) *Error {
	ret := &Error{Kind: kind, Message: generic, Err: cause}
	var httpErr *HTTPError
	if errors.As(cause, &httpErr) {
		ret.StatusCode = httpErr.StatusCode
		if useDetail && httpErr.Detail != "" {
			ret.Message = httpErr.Detail
		}
	}
	return ret
}

// HTTPError represents a non-2xx response.
type HTTPError struct {
	StatusCode int
	Detail     string
	Body       []byte
}

func (e *HTTPError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Detail)
	}
	return fmt.Sprintf("%d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// NewHTTPError creates an HTTPError, extracting a string "detail" field from a JSON body.
func NewHTTPError(statusCode int, body []byte) *HTTPError {
	ret := &HTTPError{StatusCode: statusCode, Body: body}
	if gjson.ValidBytes(body) {
		if detail := gjson.GetBytes(body, "detail"); detail.Type == gjson.String {
			ret.Detail = detail.String()
		}
	}
	return ret
}

package auth

import (
	"log/slog"
	"net/http"

	"github.com/viant/shortlink/client/auth/store"
)

type Option func(*Service)

// WithStore sets the durable store
func WithStore(store store.Store) Option {
	return func(s *Service) {
		s.store = store
	}
}

// WithSession sets a shared session
func WithSession(session *Session) Option {
	return func(s *Service) {
		s.session = session
	}
}

// WithHTTPClient sets the HTTP client; it is expected to authenticate
// requests from the same session (see transport.WithTokenSource).
func WithHTTPClient(client *http.Client) Option {
	return func(s *Service) {
		s.client = client
	}
}

// WithNavigator sets the navigator invoked after logout
func WithNavigator(navigator Navigator) Option {
	return func(s *Service) {
		s.navigator = navigator
	}
}

// WithLogger sets logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithEndpoints overrides the login and logout paths
func WithEndpoints(loginPath, logoutPath string) Option {
	return func(s *Service) {
		if loginPath != "" {
			s.loginPath = loginPath
		}
		if logoutPath != "" {
			s.logoutPath = logoutPath
		}
	}
}

package links

import (
	"log/slog"
	"net/http"
)

type Option func(*Service)

// WithHTTPClient sets the shared, session-authenticated HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(s *Service) {
		s.client = client
	}
}

// WithLogger sets logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/viant/shortlink/client/auth/store"
	"github.com/viant/shortlink/client/auth/transport"
	"github.com/viant/shortlink/client/state"
	"github.com/viant/shortlink/internal/rest"
	"github.com/viant/shortlink/schema"
)

const (
	DefaultLoginPath  = "/auth/login"
	DefaultLogoutPath = "/auth/logout"
)

// Service performs login/logout and keeps the session in sync with durable storage.
type Service struct {
	baseURL    string
	loginPath  string
	logoutPath string
	session    *Session
	store      store.Store
	client     *http.Client
	navigator  Navigator
	logger     *slog.Logger
	state      state.State
	now        func() time.Time
}

// New creates a Service. A token found in the store under store.TokenKey is
// loaded into the session, so the next request is already authenticated.
func New(baseURL string, options ...Option) (*Service, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("base URL was empty")
	}
	ret := &Service{
		baseURL:    baseURL,
		loginPath:  DefaultLoginPath,
		logoutPath: DefaultLogoutPath,
		navigator:  nopNavigator{},
		now:        time.Now,
	}
	for _, opt := range options {
		opt(ret)
	}
	if ret.store == nil {
		ret.store = store.NewMemoryStore()
	}
	if ret.session == nil {
		ret.session = &Session{}
	}
	if ret.logger == nil {
		ret.logger = slog.Default()
	}
	if ret.client == nil {
		ret.client = transport.New(transport.WithTokenSource(ret.session)).Client()
	}
	if token, ok := ret.store.Lookup(store.TokenKey); ok && token != "" {
		ret.session.hydrate(token)
	}
	return ret, nil
}

// Login authenticates with form credentials. On success the token is stored
// in the session and persisted; on failure the existing session is kept and
// the returned error carries the server detail or "Login failed".
func (s *Service) Login(ctx context.Context, username, password string) (*schema.TokenResponse, error) {
	return state.Track(&s.state, func() (*schema.TokenResponse, error) {
		return s.login(ctx, username, password)
	}).Unpack()
}

func (s *Service) login(ctx context.Context, username, password string) (*schema.TokenResponse, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	response, err := rest.Do(ctx, s.client, s.baseURL, &rest.Request{Method: http.MethodPost, Path: s.loginPath, Form: form})
	if err != nil {
		return nil, schema.NewError(schema.AuthenticationFailure, schema.MessageLoginFailed, err, true)
	}
	token := &schema.TokenResponse{Raw: response.Body}
	if err = json.Unmarshal(response.Body, token); err != nil {
		return nil, schema.NewError(schema.AuthenticationFailure, schema.MessageLoginFailed, fmt.Errorf("failed to decode login response: %w", err), false)
	}
	if token.AccessToken == "" {
		return nil, schema.NewError(schema.AuthenticationFailure, schema.MessageLoginFailed, fmt.Errorf("login response had no access_token"), false)
	}
	s.session.set(token.AccessToken, token.ExpiresIn, token.Expiry(s.now()))
	if err = s.store.Put(store.TokenKey, token.AccessToken); err != nil {
		s.logger.Warn("failed to persist token", "error", err)
	}
	s.logger.Debug("logged in", "user", username)
	return token, nil
}

// Logout notifies the server and then clears the session, the persisted token
// and navigates to LoginRoute. The server call is best-effort: its failure is
// logged and never returned.
func (s *Service) Logout(ctx context.Context) {
	if _, err := rest.Do(ctx, s.client, s.baseURL, &rest.Request{Method: http.MethodPost, Path: s.logoutPath}); err != nil {
		logoutErr := schema.NewError(schema.LogoutTransportFailure, schema.MessageLogoutTransport, err, false)
		s.logger.Warn("logout error", "kind", logoutErr.Kind, "error", err)
	}
	s.session.clear()
	if err := s.store.Remove(store.TokenKey); err != nil {
		s.logger.Warn("failed to remove persisted token", "error", err)
	}
	s.navigator.Navigate(LoginRoute)
}

// IsAuthenticated reports whether the session holds an access token.
func (s *Service) IsAuthenticated() bool {
	return s.session.IsAuthenticated()
}

func (s *Service) AccessToken() string { return s.session.AccessToken() }

func (s *Service) ExpiresIn() *int { return s.session.ExpiresIn() }

func (s *Service) Expiry() time.Time { return s.session.Expiry() }

func (s *Service) Session() *Session { return s.session }

// HTTPClient returns the client whose requests carry the session token.
func (s *Service) HTTPClient() *http.Client { return s.client }

func (s *Service) Loading() bool { return s.state.Loading() }

func (s *Service) ErrorMessage() string { return s.state.ErrorMessage() }

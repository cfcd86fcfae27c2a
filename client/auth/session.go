package auth

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
)

// Session holds the current access token and its expiry hint.
type Session struct {
	mu          sync.RWMutex
	accessToken string
	expiresIn   *int
	expiry      time.Time
}

// NewSession creates a session holding accessToken.
func NewSession(accessToken string) *Session {
	ret := &Session{}
	ret.hydrate(accessToken)
	return ret
}

// Token implements oauth2.TokenSource. An empty AccessToken means no session.
func (s *Session) Token() (*oauth2.Token, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return &oauth2.Token{AccessToken: s.accessToken, TokenType: "Bearer", Expiry: s.expiry}, nil
}

func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// ExpiresIn returns the expires_in value of the last login, nil when unknown.
func (s *Session) ExpiresIn() *int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.expiresIn == nil {
		return nil
	}
	v := *s.expiresIn
	return &v
}

// Expiry returns the absolute expiry hint, zero when unknown.
func (s *Session) Expiry() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expiry
}

func (s *Session) IsAuthenticated() bool {
	return s.AccessToken() != ""
}

func (s *Session) set(accessToken string, expiresIn *int, expiry time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = accessToken
	s.expiresIn = expiresIn
	s.expiry = expiry
}

// hydrate loads a persisted token; only the token survives a restart, so the
// expiry hint is recovered from the JWT exp claim when there is one.
func (s *Session) hydrate(accessToken string) {
	s.set(accessToken, nil, tokenExpiry(accessToken))
}

func (s *Session) clear() {
	s.set("", nil, time.Time{})
}

func tokenExpiry(accessToken string) time.Time {
	if accessToken == "" {
		return time.Time{}
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

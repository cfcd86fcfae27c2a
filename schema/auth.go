package schema

import (
	"encoding/json"
	"time"
)

// TokenResponse is the /auth/login success payload.
type TokenResponse struct {
	AccessToken string          `json:"access_token"`
	ExpiresIn   *int            `json:"expires_in,omitempty"`
	TokenType   string          `json:"token_type,omitempty"`
	Raw         json.RawMessage `json:"-"`
}

// Expiry returns the absolute expiry relative to now, or zero time when unknown.
func (r *TokenResponse) Expiry(now time.Time) time.Time {
	if r.ExpiresIn == nil {
		return time.Time{}
	}
	return now.Add(time.Duration(*r.ExpiresIn) * time.Second)
}

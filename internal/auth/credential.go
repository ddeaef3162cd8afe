// Package auth holds the static bearer credential used for provider API access.
package auth

import (
	"errors"

	"golang.org/x/oauth2"
)

// ErrAPIKeyNotSet indicates no bearer token is configured.
var ErrAPIKeyNotSet = errors.New("API key not set")

// Credential wraps a pre-provisioned bearer token, assumed valid for the
// process lifetime. Built once at startup, read-only thereafter.
type Credential struct {
	token string
}

// NewCredential creates a Credential from a raw bearer token, which may be
// empty when the environment provides none.
func NewCredential(token string) *Credential {
	return &Credential{token: token}
}

// Token returns the bearer token in OAuth2 form.
func (c *Credential) Token() (*oauth2.Token, error) {
	if c.token == "" {
		return nil, ErrAPIKeyNotSet
	}

	return &oauth2.Token{AccessToken: c.token, TokenType: "Bearer"}, nil
}

// TokenSource returns a static source for the configured token.
func (c *Credential) TokenSource() (oauth2.TokenSource, error) {
	tok, err := c.Token()
	if err != nil {
		return nil, err
	}

	return oauth2.StaticTokenSource(tok), nil
}

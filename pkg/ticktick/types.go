package ticktick

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

// Tokens is the persisted part of Credentials.
type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// CredentialStore persists tokens across restarts.
type CredentialStore interface {
	Load(ctx context.Context) (Tokens, error)
	Save(ctx context.Context, tokens Tokens) error
}

// Notifier tells the user something needs their attention.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}

// OAuthConfig describes the registered TickTick OAuth application.
type OAuthConfig struct {
	ClientID     string
	ClientSecret string
	AuthURL      string
	TokenURL     string
	RedirectURI  string
	Scope        string
	// Timeout bounds one call to the token endpoint. Zero means
	// DefaultTokenTimeout.
	Timeout time.Duration
}

// oauth2Config builds the x/oauth2 config. TickTick expects the client
// credentials as HTTP Basic auth on the token endpoint.
func (c OAuthConfig) oauth2Config() *oauth2.Config {
	authURL := c.AuthURL
	if authURL == "" {
		authURL = DefaultAuthURL
	}
	tokenURL := c.TokenURL
	if tokenURL == "" {
		tokenURL = DefaultTokenURL
	}
	scope := c.Scope
	if scope == "" {
		scope = DefaultScope
	}

	return &oauth2.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		RedirectURL:  c.RedirectURI,
		Scopes:       []string{scope},
		Endpoint: oauth2.Endpoint{
			AuthURL:   authURL,
			TokenURL:  tokenURL,
			AuthStyle: oauth2.AuthStyleInHeader,
		},
	}
}

// tokenContext makes x/oauth2 use a client with a timeout instead of
// http.DefaultClient.
func (c OAuthConfig) tokenContext(ctx context.Context) context.Context {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTokenTimeout
	}
	return context.WithValue(ctx, oauth2.HTTPClient, &http.Client{Timeout: timeout})
}

package ticktick

import "sync"

// Credentials is the process-wide TickTick token handle. It is shared by
// the API client, the Refresher and the Authenticator, and is safe for
// concurrent use. Tokens are overwritten in place, never discarded.
type Credentials struct {
	mu           sync.RWMutex
	accessToken  string
	refreshToken string
}

// NewCredentials creates a handle seeded with tokens.
func NewCredentials(tokens Tokens) *Credentials {
	return &Credentials{
		accessToken:  tokens.AccessToken,
		refreshToken: tokens.RefreshToken,
	}
}

// AccessToken returns the current access token, or "".
func (c *Credentials) AccessToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken
}

// RefreshToken returns the current refresh token, or "".
func (c *Credentials) RefreshToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.refreshToken
}

// Tokens returns a copy of both tokens.
func (c *Credentials) Tokens() Tokens {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Tokens{AccessToken: c.accessToken, RefreshToken: c.refreshToken}
}

// SetTokens replaces the access token and, when non-empty, the refresh token.
func (c *Credentials) SetTokens(accessToken, refreshToken string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = accessToken
	if refreshToken != "" {
		c.refreshToken = refreshToken
	}
}

// ClearAccessToken drops the access token so it is not used again until
// the user reauthorizes.
func (c *Credentials) ClearAccessToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = ""
}

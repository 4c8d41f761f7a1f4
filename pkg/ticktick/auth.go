package ticktick

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"

	pkgLog "notes-copilot/pkg/log"
)

// Authenticator runs the authorization-code flow that seeds Credentials.
type Authenticator struct {
	cfg    OAuthConfig
	oauth  *oauth2.Config
	creds  *Credentials
	store  CredentialStore
	states *StateStore
	l      pkgLog.Logger
}

// NewAuthenticator creates an Authenticator.
func NewAuthenticator(cfg OAuthConfig, creds *Credentials, store CredentialStore, states *StateStore, l pkgLog.Logger) *Authenticator {
	if states == nil {
		states = NewStateStore(0, 0)
	}
	return &Authenticator{
		cfg:    cfg,
		oauth:  cfg.oauth2Config(),
		creds:  creds,
		store:  store,
		states: states,
		l:      l,
	}
}

// AuthCodeURL returns the URL the user opens to grant access, and the
// state it embeds.
func (a *Authenticator) AuthCodeURL() (string, string, error) {
	if a.oauth.ClientID == "" {
		return "", "", ErrNotConfigured
	}
	state := a.states.Issue()
	return a.oauth.AuthCodeURL(state), state, nil
}

// Exchange redeems an authorization code and stores the resulting tokens.
func (a *Authenticator) Exchange(ctx context.Context, code, state string) error {
	if code == "" {
		return ErrMissingCode
	}
	if !a.states.Consume(state) {
		return ErrInvalidState
	}
	return a.ExchangeCode(ctx, code)
}

// ExchangeCode redeems a code without a state check. It serves codes the
// user pasted by hand, where no redirect carried a state back.
func (a *Authenticator) ExchangeCode(ctx context.Context, code string) error {
	if code == "" {
		return ErrMissingCode
	}

	token, err := a.oauth.Exchange(a.cfg.tokenContext(ctx), code)
	if err != nil {
		return fmt.Errorf("ticktick: exchange authorization code: %w", err)
	}

	a.creds.SetTokens(token.AccessToken, token.RefreshToken)
	if err := a.store.Save(ctx, a.creds.Tokens()); err != nil {
		return fmt.Errorf("ticktick: save credentials: %w", err)
	}

	a.l.Info(ctx, "ticktick: authorization completed", "has_refresh_token", token.RefreshToken != "")
	return nil
}

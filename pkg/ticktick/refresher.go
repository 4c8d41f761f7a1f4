package ticktick

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/oauth2"

	pkgErrors "notes-copilot/pkg/errors"
	pkgLog "notes-copilot/pkg/log"
)

// Refresher exchanges the refresh token for a new access token. It
// satisfies httpclient.TokenRefresher.
type Refresher struct {
	mu       sync.Mutex
	cfg      OAuthConfig
	oauth    *oauth2.Config
	creds    *Credentials
	store    CredentialStore
	notifier Notifier
	l        pkgLog.Logger
}

// NewRefresher creates a Refresher. notifier may be nil.
func NewRefresher(cfg OAuthConfig, creds *Credentials, store CredentialStore, notifier Notifier, l pkgLog.Logger) *Refresher {
	return &Refresher{
		cfg:      cfg,
		oauth:    cfg.oauth2Config(),
		creds:    creds,
		store:    store,
		notifier: notifier,
		l:        l,
	}
}

// Refresh obtains a new access token, updates Credentials and persists
// them. On any failure the access token is cleared and
// ErrReauthenticationRequired is returned; Refresh never retries itself.
func (r *Refresher) Refresh(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	refreshToken := r.creds.RefreshToken()
	if refreshToken == "" {
		return "", r.fail(ctx, fmt.Errorf("no refresh token stored"))
	}

	// An empty access token forces the token source to hit the endpoint.
	token, err := r.oauth.TokenSource(r.cfg.tokenContext(ctx), &oauth2.Token{RefreshToken: refreshToken}).Token()
	if err != nil {
		return "", r.fail(ctx, err)
	}
	if token.AccessToken == "" {
		return "", r.fail(ctx, fmt.Errorf("token endpoint returned no access token"))
	}

	r.creds.SetTokens(token.AccessToken, token.RefreshToken)
	if err := r.store.Save(ctx, r.creds.Tokens()); err != nil {
		r.l.Warn(ctx, "ticktick: failed to persist refreshed token", "error", err.Error())
	}

	r.l.Info(ctx, "ticktick: access token refreshed")
	return token.AccessToken, nil
}

func (r *Refresher) fail(ctx context.Context, cause error) error {
	r.l.Error(ctx, "ticktick: token refresh failed", "error", cause.Error())

	r.creds.ClearAccessToken()
	if err := r.store.Save(ctx, r.creds.Tokens()); err != nil {
		r.l.Warn(ctx, "ticktick: failed to persist cleared token", "error", err.Error())
	}

	if r.notifier != nil {
		if err := r.notifier.Notify(ctx, reconnectMessage); err != nil {
			r.l.Warn(ctx, "ticktick: failed to send reconnect notice", "error", err.Error())
		}
	}

	return fmt.Errorf("ticktick: %w: %w", pkgErrors.ErrReauthenticationRequired, cause)
}

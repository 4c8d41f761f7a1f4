package httpclient

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	pkgLog "notes-copilot/pkg/log"
)

// TokenRefresher obtains a fresh access token after a 401.
type TokenRefresher interface {
	Refresh(ctx context.Context) (string, error)
}

// Config holds Client configuration. Zero values fall back to defaults.
type Config struct {
	HTTPClient  *http.Client
	MaxAttempts int
	BaseDelay   time.Duration
	Limiter     *rate.Limiter
	Refresher   TokenRefresher
	Logger      pkgLog.Logger
	// Name labels log lines, e.g. "ticktick".
	Name string
}

// Client executes requests with bounded retry and 401-triggered refresh.
// It is safe for concurrent use when its Refresher is.
type Client struct {
	httpClient  *http.Client
	maxAttempts int
	baseDelay   time.Duration
	limiter     *rate.Limiter
	refresher   TokenRefresher
	l           pkgLog.Logger
	name        string
}

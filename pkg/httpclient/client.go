package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	pkgErrors "notes-copilot/pkg/errors"
)

var errUnauthorized = errors.New("unauthorized")

// New creates a Client from cfg.
func New(cfg Config) *Client {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = DefaultBaseDelay
	}
	if cfg.Name == "" {
		cfg.Name = "http"
	}

	return &Client{
		httpClient:  cfg.HTTPClient,
		maxAttempts: cfg.MaxAttempts,
		baseDelay:   cfg.BaseDelay,
		limiter:     cfg.Limiter,
		refresher:   cfg.Refresher,
		l:           cfg.Logger,
		name:        cfg.Name,
	}
}

// NewRateLimiter returns a limiter allowing requestsPerMin, or nil when
// requestsPerMin is not positive.
func NewRateLimiter(requestsPerMin int) *rate.Limiter {
	if requestsPerMin <= 0 {
		return nil
	}
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(float64(requestsPerMin)/60.0), burst)
}

// Do executes req with up to maxAttempts attempts sharing one counter.
//
// A 401 on any attempt but the last calls the refresher, swaps in the new
// bearer token and retries. A transport error waits baseDelay*attempt and
// retries. A 401 on the last attempt is returned to the caller as is. When
// every attempt fails at the transport the error wraps ErrMaxRetriesExceeded.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	if err := makeReplayable(req); err != nil {
		return nil, err
	}

	authHeader := req.Header.Get("Authorization")
	var lastErr error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("%s: rate limiter: %w", c.name, err)
			}
		}

		attemptReq, err := cloneRequest(ctx, req, authHeader)
		if err != nil {
			return nil, err
		}

		resp, err := c.httpClient.Do(attemptReq)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			lastErr = err
			c.warnf(ctx, "%s: %s %s failed (attempt %d/%d): %v",
				c.name, req.Method, req.URL.Path, attempt, c.maxAttempts, err)

			if attempt == c.maxAttempts {
				break
			}
			if err := sleep(ctx, c.baseDelay*time.Duration(attempt)); err != nil {
				return nil, err
			}
			continue
		}

		if resp.StatusCode == http.StatusUnauthorized && c.refresher != nil && attempt < c.maxAttempts {
			drainAndClose(resp.Body)
			c.warnf(ctx, "%s: %s %s unauthorized (attempt %d/%d), refreshing token",
				c.name, req.Method, req.URL.Path, attempt, c.maxAttempts)

			token, err := c.refresher.Refresh(ctx)
			if err != nil {
				return nil, err
			}
			authHeader = "Bearer " + token
			lastErr = errUnauthorized
			continue
		}

		return resp, nil
	}

	return nil, fmt.Errorf("%s: %w after %d attempts: %w", c.name, pkgErrors.ErrMaxRetriesExceeded, c.maxAttempts, lastErr)
}

func (c *Client) warnf(ctx context.Context, template string, arg ...any) {
	if c.l != nil {
		c.l.Warnf(ctx, template, arg...)
	}
}

// makeReplayable makes sure the body can be re-read on every attempt.
func makeReplayable(req *http.Request) error {
	if req.Body == nil || req.Body == http.NoBody || req.GetBody != nil {
		return nil
	}

	data, err := io.ReadAll(req.Body)
	req.Body.Close()
	if err != nil {
		return fmt.Errorf("failed to buffer request body: %w", err)
	}

	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(data)), nil
	}
	req.Body, _ = req.GetBody()
	return nil
}

func cloneRequest(ctx context.Context, req *http.Request, authHeader string) (*http.Request, error) {
	r := req.Clone(ctx)
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, fmt.Errorf("failed to rewind request body: %w", err)
		}
		r.Body = body
	}
	if authHeader != "" {
		r.Header.Set("Authorization", authHeader)
	}
	return r, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, io.LimitReader(body, 64<<10))
	body.Close()
}

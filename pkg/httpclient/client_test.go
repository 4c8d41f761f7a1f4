package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	pkgErrors "notes-copilot/pkg/errors"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

type mockRefresher struct {
	token string
	err   error
	calls int
}

func (m *mockRefresher) Refresh(ctx context.Context) (string, error) {
	m.calls++
	return m.token, m.err
}

type failingTransport struct {
	calls atomic.Int32
}

func (f *failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	f.calls.Add(1)
	return nil, errors.New("dial tcp: connection refused")
}

func TestDo_RefreshesOnceAfterUnauthorized(t *testing.T) {
	var calls atomic.Int32
	var mu sync.Mutex
	var bodies []string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := calls.Add(1)
		raw, _ := io.ReadAll(r.Body)
		mu.Lock()
		bodies = append(bodies, string(raw))
		mu.Unlock()

		if n == 1 {
			if r.Header.Get("Authorization") != "Bearer stale" {
				t.Errorf("first attempt auth = %q", r.Header.Get("Authorization"))
			}
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.Header.Get("Authorization") != "Bearer fresh" {
			t.Errorf("retry auth = %q, want Bearer fresh", r.Header.Get("Authorization"))
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, `{"ok":true}`)
	}))
	defer ts.Close()

	refresher := &mockRefresher{token: "fresh"}
	c := New(Config{Refresher: refresher, BaseDelay: time.Millisecond, Logger: &mockLogger{}})

	req, _ := http.NewRequest(http.MethodPost, ts.URL+"/project", strings.NewReader(`{"q":1}`))
	req.Header.Set("Authorization", "Bearer stale")

	resp, err := c.Do(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if refresher.calls != 1 {
		t.Errorf("refresher calls = %d, want 1", refresher.calls)
	}
	if calls.Load() != 2 {
		t.Errorf("server calls = %d, want 2", calls.Load())
	}
	mu.Lock()
	defer mu.Unlock()
	for i, b := range bodies {
		if b != `{"q":1}` {
			t.Errorf("attempt %d body = %q, want replayed body", i+1, b)
		}
	}
}

func TestDo_TransportErrorExhaustsAttempts(t *testing.T) {
	transport := &failingTransport{}
	c := New(Config{
		HTTPClient: &http.Client{Transport: transport},
		BaseDelay:  time.Millisecond,
		Logger:     &mockLogger{},
	})

	req, _ := http.NewRequest(http.MethodGet, "http://ticktick.invalid/project", nil)
	_, err := c.Do(context.Background(), req)

	if !errors.Is(err, pkgErrors.ErrMaxRetriesExceeded) {
		t.Fatalf("error = %v, want ErrMaxRetriesExceeded", err)
	}
	if got := transport.calls.Load(); got != 3 {
		t.Errorf("transport calls = %d, want 3", got)
	}
}

func TestDo_UnauthorizedOnLastAttemptIsReturned(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	refresher := &mockRefresher{token: "still-bad"}
	c := New(Config{Refresher: refresher, BaseDelay: time.Millisecond})

	req, _ := http.NewRequest(http.MethodGet, ts.URL, nil)
	resp, err := c.Do(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
	if calls.Load() != 3 {
		t.Errorf("server calls = %d, want 3", calls.Load())
	}
	if refresher.calls != 2 {
		t.Errorf("refresher calls = %d, want 2", refresher.calls)
	}
}

func TestDo_RefreshFailureStopsRetrying(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	refresher := &mockRefresher{err: fmt.Errorf("ticktick: %w", pkgErrors.ErrReauthenticationRequired)}
	c := New(Config{Refresher: refresher, BaseDelay: time.Millisecond})

	req, _ := http.NewRequest(http.MethodGet, ts.URL, nil)
	_, err := c.Do(context.Background(), req)

	if !errors.Is(err, pkgErrors.ErrReauthenticationRequired) {
		t.Fatalf("error = %v, want ErrReauthenticationRequired", err)
	}
	if calls.Load() != 1 {
		t.Errorf("server calls = %d, want 1", calls.Load())
	}
}

func TestDo_WithoutRefresherReturnsUnauthorized(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	c := New(Config{BaseDelay: time.Millisecond})
	req, _ := http.NewRequest(http.MethodGet, ts.URL, nil)
	resp, err := c.Do(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestDo_ContextCancelledDuringBackoff(t *testing.T) {
	transport := &failingTransport{}
	c := New(Config{
		HTTPClient: &http.Client{Transport: transport},
		BaseDelay:  time.Hour,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	req, _ := http.NewRequest(http.MethodGet, "http://ticktick.invalid/project", nil)
	_, err := c.Do(ctx, req)

	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("error = %v, want context.DeadlineExceeded", err)
	}
	if got := transport.calls.Load(); got != 1 {
		t.Errorf("transport calls = %d, want 1", got)
	}
}

func TestNewRateLimiter(t *testing.T) {
	if NewRateLimiter(0) != nil {
		t.Error("expected nil limiter for 0 requests/min")
	}
	l := NewRateLimiter(5)
	if l == nil {
		t.Fatal("expected limiter")
	}
	if l.Burst() != 1 {
		t.Errorf("burst = %d, want 1", l.Burst())
	}
}

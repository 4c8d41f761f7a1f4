package ticktick

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	pkgErrors "notes-copilot/pkg/errors"
	pkgLog "notes-copilot/pkg/log"
)

type memStore struct {
	mu     sync.Mutex
	tokens Tokens
	saves  int
	err    error
}

func (m *memStore) Load(ctx context.Context) (Tokens, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tokens, nil
}

func (m *memStore) Save(ctx context.Context, tokens Tokens) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	if m.err != nil {
		return m.err
	}
	m.tokens = tokens
	return nil
}

type mockNotifier struct {
	messages []string
}

func (m *mockNotifier) Notify(ctx context.Context, message string) error {
	m.messages = append(m.messages, message)
	return nil
}

// tokenServer fakes the TickTick token endpoint.
func tokenServer(t *testing.T, handle func(w http.ResponseWriter, form url.Values)) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "client-id" || pass != "client-secret" {
			t.Errorf("expected client credentials as basic auth, got %q/%q (ok=%v)", user, pass, ok)
		}
		if err := r.ParseForm(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		handle(w, r.PostForm)
	}))
}

func oauthCfg(tokenURL string) OAuthConfig {
	return OAuthConfig{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		TokenURL:     tokenURL,
		RedirectURI:  "http://localhost:8080/oauth/ticktick/callback",
	}
}

func TestRefresh_Success(t *testing.T) {
	ts := tokenServer(t, func(w http.ResponseWriter, form url.Values) {
		if form.Get("grant_type") != "refresh_token" || form.Get("refresh_token") != "refresh-1" {
			t.Errorf("unexpected form %v", form)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"access-2","refresh_token":"refresh-2","token_type":"bearer","expires_in":3600}`))
	})
	defer ts.Close()

	creds := NewCredentials(Tokens{AccessToken: "access-1", RefreshToken: "refresh-1"})
	store := &memStore{}
	notifier := &mockNotifier{}
	r := NewRefresher(oauthCfg(ts.URL), creds, store, notifier, pkgLog.NewNop())

	token, err := r.Refresh(context.Background())
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if token != "access-2" {
		t.Errorf("token = %q, want access-2", token)
	}
	if got := creds.Tokens(); got.AccessToken != "access-2" || got.RefreshToken != "refresh-2" {
		t.Errorf("credentials not updated in place: %+v", got)
	}
	if store.tokens.AccessToken != "access-2" {
		t.Errorf("store not updated: %+v", store.tokens)
	}
	if len(notifier.messages) != 0 {
		t.Errorf("unexpected notifications: %v", notifier.messages)
	}
}

func TestRefresh_KeepsRefreshTokenWhenNotRotated(t *testing.T) {
	ts := tokenServer(t, func(w http.ResponseWriter, form url.Values) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"access-2","token_type":"bearer"}`))
	})
	defer ts.Close()

	creds := NewCredentials(Tokens{RefreshToken: "refresh-1"})
	r := NewRefresher(oauthCfg(ts.URL), creds, &memStore{}, nil, pkgLog.NewNop())

	if _, err := r.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if creds.RefreshToken() != "refresh-1" {
		t.Errorf("refresh token = %q, want refresh-1", creds.RefreshToken())
	}
}

func TestRefresh_FailureRequiresReauthentication(t *testing.T) {
	ts := tokenServer(t, func(w http.ResponseWriter, form url.Values) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"invalid_grant"}`))
	})
	defer ts.Close()

	creds := NewCredentials(Tokens{AccessToken: "access-1", RefreshToken: "revoked"})
	store := &memStore{}
	notifier := &mockNotifier{}
	r := NewRefresher(oauthCfg(ts.URL), creds, store, notifier, pkgLog.NewNop())

	_, err := r.Refresh(context.Background())
	if !errors.Is(err, pkgErrors.ErrReauthenticationRequired) {
		t.Fatalf("error = %v, want ErrReauthenticationRequired", err)
	}
	if creds.AccessToken() != "" {
		t.Errorf("access token = %q, want cleared", creds.AccessToken())
	}
	if store.saves != 1 || store.tokens.AccessToken != "" {
		t.Errorf("cleared state not persisted: saves=%d tokens=%+v", store.saves, store.tokens)
	}
	if len(notifier.messages) != 1 {
		t.Errorf("notifications = %d, want 1", len(notifier.messages))
	}
}

func TestRefresh_NoRefreshTokenMakesNoRequest(t *testing.T) {
	called := false
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer ts.Close()

	r := NewRefresher(oauthCfg(ts.URL), NewCredentials(Tokens{AccessToken: "a"}), &memStore{}, nil, pkgLog.NewNop())
	_, err := r.Refresh(context.Background())
	if !errors.Is(err, pkgErrors.ErrReauthenticationRequired) {
		t.Fatalf("error = %v, want ErrReauthenticationRequired", err)
	}
	if called {
		t.Error("token endpoint must not be called without a refresh token")
	}
}

func TestAuthCodeURL(t *testing.T) {
	a := NewAuthenticator(oauthCfg(""), NewCredentials(Tokens{}), &memStore{}, nil, pkgLog.NewNop())

	raw, state, err := a.AuthCodeURL()
	if err != nil {
		t.Fatalf("AuthCodeURL: %v", err)
	}
	if !strings.HasPrefix(raw, DefaultAuthURL+"?") {
		t.Errorf("url = %s, want prefix %s", raw, DefaultAuthURL)
	}

	u, _ := url.Parse(raw)
	q := u.Query()
	want := map[string]string{
		"client_id":     "client-id",
		"scope":         "tasks:read",
		"response_type": "code",
		"redirect_uri":  "http://localhost:8080/oauth/ticktick/callback",
		"state":         state,
	}
	for k, v := range want {
		if q.Get(k) != v {
			t.Errorf("%s = %q, want %q", k, q.Get(k), v)
		}
	}
}

func TestAuthCodeURL_NotConfigured(t *testing.T) {
	a := NewAuthenticator(OAuthConfig{}, NewCredentials(Tokens{}), &memStore{}, nil, pkgLog.NewNop())
	if _, _, err := a.AuthCodeURL(); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("error = %v, want ErrNotConfigured", err)
	}
}

func TestExchange(t *testing.T) {
	ts := tokenServer(t, func(w http.ResponseWriter, form url.Values) {
		if form.Get("grant_type") != "authorization_code" || form.Get("code") != "the-code" {
			t.Errorf("unexpected form %v", form)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"access-1","refresh_token":"refresh-1","token_type":"bearer"}`))
	})
	defer ts.Close()

	creds := NewCredentials(Tokens{})
	store := &memStore{}
	a := NewAuthenticator(oauthCfg(ts.URL), creds, store, nil, pkgLog.NewNop())

	_, state, err := a.AuthCodeURL()
	if err != nil {
		t.Fatalf("AuthCodeURL: %v", err)
	}

	if err := a.Exchange(context.Background(), "the-code", state); err != nil {
		t.Fatalf("Exchange: %v", err)
	}
	if got := creds.Tokens(); got.AccessToken != "access-1" || got.RefreshToken != "refresh-1" {
		t.Errorf("credentials = %+v", got)
	}
	if store.tokens.RefreshToken != "refresh-1" {
		t.Errorf("store = %+v", store.tokens)
	}

	// A state is redeemable once.
	if err := a.Exchange(context.Background(), "the-code", state); !errors.Is(err, ErrInvalidState) {
		t.Errorf("second Exchange error = %v, want ErrInvalidState", err)
	}
}

func TestExchange_RejectsBadInput(t *testing.T) {
	a := NewAuthenticator(oauthCfg("http://127.0.0.1:0"), NewCredentials(Tokens{}), &memStore{}, nil, pkgLog.NewNop())

	if err := a.Exchange(context.Background(), "", "x"); !errors.Is(err, ErrMissingCode) {
		t.Errorf("error = %v, want ErrMissingCode", err)
	}
	if err := a.Exchange(context.Background(), "code", "never-issued"); !errors.Is(err, ErrInvalidState) {
		t.Errorf("error = %v, want ErrInvalidState", err)
	}
}

func TestStateStore_Expires(t *testing.T) {
	s := NewStateStore(4, 20*time.Millisecond)
	state := s.Issue()
	time.Sleep(60 * time.Millisecond)
	if s.Consume(state) {
		t.Fatal("expired state must not be redeemable")
	}
}

func TestExchangeCode_SkipsState(t *testing.T) {
	ts := tokenServer(t, func(w http.ResponseWriter, form url.Values) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"pasted-access","token_type":"bearer"}`))
	})
	defer ts.Close()

	creds := NewCredentials(Tokens{RefreshToken: "old-refresh"})
	a := NewAuthenticator(oauthCfg(ts.URL), creds, &memStore{}, nil, pkgLog.NewNop())

	if err := a.ExchangeCode(context.Background(), "pasted"); err != nil {
		t.Fatalf("ExchangeCode: %v", err)
	}
	if got := creds.Tokens(); got.AccessToken != "pasted-access" || got.RefreshToken != "old-refresh" {
		t.Errorf("credentials = %+v", got)
	}
}

// stalledTokenServer accepts connections and never answers until the test
// ends.
func stalledTokenServer(t *testing.T) string {
	t.Helper()
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}))
	t.Cleanup(ts.Close)
	t.Cleanup(func() { close(release) })
	return ts.URL
}

func TestRefresh_StalledTokenEndpointTimesOut(t *testing.T) {
	cfg := oauthCfg(stalledTokenServer(t))
	cfg.Timeout = 50 * time.Millisecond

	creds := NewCredentials(Tokens{AccessToken: "a", RefreshToken: "r"})
	r := NewRefresher(cfg, creds, &memStore{}, nil, pkgLog.NewNop())

	done := make(chan error, 1)
	go func() {
		_, err := r.Refresh(context.Background())
		done <- err
	}()

	select {
	case err := <-done:
		if !errors.Is(err, pkgErrors.ErrReauthenticationRequired) {
			t.Fatalf("error = %v, want ErrReauthenticationRequired", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Refresh did not time out")
	}
}

func TestExchangeCode_StalledTokenEndpointTimesOut(t *testing.T) {
	cfg := oauthCfg(stalledTokenServer(t))
	cfg.Timeout = 50 * time.Millisecond
	a := NewAuthenticator(cfg, NewCredentials(Tokens{}), &memStore{}, nil, pkgLog.NewNop())

	done := make(chan error, 1)
	go func() { done <- a.ExchangeCode(context.Background(), "code") }()

	select {
	case err := <-done:
		if err == nil {
			t.Fatal("expected timeout error")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("ExchangeCode did not time out")
	}
}

package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"notes-copilot/internal/briefing"
	"notes-copilot/internal/middleware"
	"notes-copilot/internal/task"
	pkgErrors "notes-copilot/pkg/errors"
	"notes-copilot/pkg/llmprovider"
	pkgLog "notes-copilot/pkg/log"
)

type stubTasks struct{}

func (stubTasks) GetRelevantTasks(ctx context.Context) (task.Buckets, error) { return task.Empty(), nil }
func (stubTasks) FormatBriefing(b task.Buckets) string                       { return "" }

type stubBriefing struct{}

func (stubBriefing) CreateDailyBriefing(ctx context.Context) (briefing.Result, error) {
	return briefing.Result{}, nil
}
func (stubBriefing) CreateMonthlySummary(ctx context.Context) ([]briefing.Result, error) {
	return nil, nil
}
func (stubBriefing) OrganizeText(ctx context.Context, path string) (briefing.Result, error) {
	return briefing.Result{}, nil
}

type stubGenerator struct {
	err error
}

func (g stubGenerator) CheckConnection(ctx context.Context) error { return g.err }
func (g stubGenerator) Generate(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	return &llmprovider.Response{Text: "ok"}, nil
}

func newServer(t *testing.T, secret string, gen stubGenerator) *HTTPServer {
	t.Helper()
	srv, err := New(pkgLog.NewNop(), Config{
		Port:            8080,
		Mode:            "test",
		Environment:     "test",
		JWTSecret:       secret,
		TaskUseCase:     stubTasks{},
		BriefingUseCase: stubBriefing{},
		Generator:       gen,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv
}

func get(srv *HTTPServer, path, token string) int {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w.Code
}

func TestSystemRoutes(t *testing.T) {
	srv := newServer(t, "", stubGenerator{})

	for _, path := range []string{"/health", "/live", "/ready"} {
		if code := get(srv, path, ""); code != http.StatusOK {
			t.Errorf("GET %s = %d, want 200", path, code)
		}
	}

	down := newServer(t, "", stubGenerator{err: &pkgErrors.ConnectivityError{Target: "ollama"}})
	if code := get(down, "/ready", ""); code != http.StatusServiceUnavailable {
		t.Errorf("GET /ready with backend down = %d, want 503", code)
	}
	if code := get(down, "/live", ""); code != http.StatusOK {
		t.Errorf("GET /live with backend down = %d, want 200", code)
	}
}

func TestAPIRoutesRequireToken(t *testing.T) {
	srv := newServer(t, "secret", stubGenerator{})

	if code := get(srv, "/api/v1/tasks/relevant", ""); code != http.StatusUnauthorized {
		t.Errorf("without token = %d, want 401", code)
	}

	token, err := middleware.GenerateToken([]byte("secret"), "test", time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if code := get(srv, "/api/v1/tasks/relevant", token); code != http.StatusOK {
		t.Errorf("with token = %d, want 200", code)
	}
}

func TestOAuthRoutesOptional(t *testing.T) {
	srv := newServer(t, "", stubGenerator{})
	if code := get(srv, "/oauth/ticktick/authorize", ""); code != http.StatusNotFound {
		t.Errorf("oauth without authorizer = %d, want 404", code)
	}
}

func TestNew_Validates(t *testing.T) {
	if _, err := New(pkgLog.NewNop(), Config{Mode: "test", Port: 8080}); err == nil {
		t.Error("expected error without use cases")
	}
}

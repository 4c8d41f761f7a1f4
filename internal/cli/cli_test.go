package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/99designs/keyring"

	"notes-copilot/config"
	"notes-copilot/internal/app"
	"notes-copilot/internal/briefing"
	"notes-copilot/internal/credential"
	"notes-copilot/internal/middleware"
	"notes-copilot/internal/model"
	"notes-copilot/internal/task"
	"notes-copilot/pkg/llmprovider"
	pkgLog "notes-copilot/pkg/log"
	"notes-copilot/pkg/ticktick"
)

type fakeProvider struct {
	up     bool
	prompt string
}

func (p *fakeProvider) CheckConnection(ctx context.Context) bool { return p.up }
func (p *fakeProvider) GenerateResponse(ctx context.Context, prompt string) (string, error) {
	p.prompt = prompt
	return "echo: " + prompt, nil
}
func (p *fakeProvider) Name() string  { return "fake" }
func (p *fakeProvider) Model() string { return "fake-1" }

type fakeTasks struct {
	buckets task.Buckets
}

func (f fakeTasks) GetRelevantTasks(ctx context.Context) (task.Buckets, error) { return f.buckets, nil }
func (f fakeTasks) FormatBriefing(b task.Buckets) string                       { return "## Tasks\n" }

type fakeBriefing struct {
	organized string
}

func (f *fakeBriefing) CreateDailyBriefing(ctx context.Context) (briefing.Result, error) {
	return briefing.Result{Path: "AI Generated/Daily Briefing 2024-03-15.md", Notes: 4, Tasks: 2}, nil
}

func (f *fakeBriefing) CreateMonthlySummary(ctx context.Context) ([]briefing.Result, error) {
	return []briefing.Result{{Path: "m/2024-01-Summary.md", Notes: 3}}, errors.New("summarize 2024-02: down")
}

func (f *fakeBriefing) OrganizeText(ctx context.Context, path string) (briefing.Result, error) {
	f.organized = path
	return briefing.Result{Path: path}, nil
}

type fixture struct {
	app      *app.App
	provider *fakeProvider
	brief    *fakeBriefing
}

func newFixture() *fixture {
	l := pkgLog.NewNop()
	provider := &fakeProvider{up: true}
	brief := &fakeBriefing{}
	creds := ticktick.NewCredentials(ticktick.Tokens{AccessToken: "a", RefreshToken: "r"})
	store := credential.New(keyring.NewArrayKeyring(nil))

	cfg := &config.Config{}
	cfg.TickTick.Enabled = true
	cfg.Auth.JWTSecret = "secret"

	b := task.Empty()
	b.Overdue = []model.Task{{ID: "1", Title: "late"}}

	return &fixture{
		provider: provider,
		brief:    brief,
		app: &app.App{
			Config:          cfg,
			Logger:          l,
			Credentials:     creds,
			CredentialStore: store,
			Authenticator: ticktick.NewAuthenticator(ticktick.OAuthConfig{
				ClientID:    "cid",
				RedirectURI: "http://localhost:8080/oauth/ticktick/callback",
			}, creds, store, nil, l),
			Manager:    llmprovider.NewManager(provider, nil, l),
			TaskUC:     fakeTasks{buckets: b},
			BriefingUC: brief,
		},
	}
}

func (f *fixture) run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd("test", func(ctx context.Context) (*app.App, error) { return f.app, nil })

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCheck(t *testing.T) {
	f := newFixture()
	out, err := f.run(t, "", "check")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !strings.Contains(out, "✓ fake (fake-1)") || !strings.Contains(out, "ticktick: connected") {
		t.Errorf("output = %q", out)
	}

	f.provider.up = false
	if _, err := f.run(t, "", "check"); err == nil {
		t.Error("check should fail when the backend is down")
	}
}

func TestGenerate(t *testing.T) {
	f := newFixture()

	out, err := f.run(t, "", "generate", "hello", "there")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if strings.TrimSpace(out) != "echo: hello there" {
		t.Errorf("output = %q", out)
	}

	out, err = f.run(t, "from stdin\n", "generate")
	if err != nil {
		t.Fatalf("generate from stdin: %v", err)
	}
	if f.provider.prompt != "from stdin" {
		t.Errorf("prompt = %q", f.provider.prompt)
	}

	if _, err := f.run(t, "   ", "generate"); err == nil {
		t.Error("expected error for empty prompt")
	}
}

func TestTasks(t *testing.T) {
	f := newFixture()

	out, err := f.run(t, "", "tasks")
	if err != nil || out != "## Tasks\n" {
		t.Errorf("tasks = %q, %v", out, err)
	}

	out, err = f.run(t, "", "tasks", "--json")
	if err != nil || !strings.Contains(out, `"overdue"`) || !strings.Contains(out, `"late"`) {
		t.Errorf("tasks --json = %q, %v", out, err)
	}
}

func TestBriefingCommands(t *testing.T) {
	f := newFixture()

	out, err := f.run(t, "", "briefing", "daily")
	if err != nil || !strings.Contains(out, "Daily Briefing 2024-03-15.md (4 notes, 2 tasks)") {
		t.Errorf("daily = %q, %v", out, err)
	}

	out, err = f.run(t, "", "briefing", "monthly")
	if err == nil {
		t.Error("monthly should surface the failure")
	}
	if !strings.Contains(out, "2024-01-Summary.md") {
		t.Errorf("completed months should still be listed, got %q", out)
	}

	if _, err := f.run(t, "", "organize", "Inbox/a.md"); err != nil || f.brief.organized != "Inbox/a.md" {
		t.Errorf("organize: %v, path %q", err, f.brief.organized)
	}
	if _, err := f.run(t, "", "organize"); err == nil {
		t.Error("organize without a path should fail")
	}
}

func TestAuthCommands(t *testing.T) {
	f := newFixture()

	out, err := f.run(t, "", "auth", "url")
	if err != nil || !strings.Contains(out, "client_id=cid") {
		t.Errorf("auth url = %q, %v", out, err)
	}

	out, err = f.run(t, "", "auth", "token", "--subject", "me")
	if err != nil {
		t.Fatalf("auth token: %v", err)
	}
	sub, err := middleware.ParseToken([]byte("secret"), strings.TrimSpace(out))
	if err != nil || sub != "me" {
		t.Errorf("issued token subject = %q, %v", sub, err)
	}

	if _, err := f.run(t, "", "auth", "logout"); err != nil {
		t.Fatalf("auth logout: %v", err)
	}
	if f.app.Credentials.AccessToken() != "" {
		t.Error("logout should clear the access token")
	}
}

func TestVersion(t *testing.T) {
	out, err := newFixture().run(t, "", "version")
	if err != nil || out != "copilot test\n" {
		t.Errorf("version = %q, %v", out, err)
	}
}

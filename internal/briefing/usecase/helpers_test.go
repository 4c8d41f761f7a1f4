package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"

	"notes-copilot/internal/briefing"
	"notes-copilot/internal/task"
	"notes-copilot/internal/vault"
	vaultFS "notes-copilot/internal/vault/fs"
	"notes-copilot/pkg/llmprovider"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockTasks struct {
	buckets task.Buckets
	err     error
	calls   int
}

func (m *mockTasks) GetRelevantTasks(ctx context.Context) (task.Buckets, error) {
	m.calls++
	return m.buckets, m.err
}

func (m *mockTasks) FormatBriefing(b task.Buckets) string {
	return "TASK SECTION\n"
}

type mockGenerator struct {
	prompts  []string
	reply    string
	genErr   error
	checkErr error
}

func (m *mockGenerator) CheckConnection(ctx context.Context) error {
	return m.checkErr
}

func (m *mockGenerator) Generate(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.prompts = append(m.prompts, req.Prompt)
	if m.genErr != nil {
		return nil, m.genErr
	}
	return &llmprovider.Response{Text: m.reply, ProviderName: "fake", ModelName: "fake-1"}, nil
}

type mockNotifier struct {
	messages []string
}

func (m *mockNotifier) Notify(ctx context.Context, message string) error {
	m.messages = append(m.messages, message)
	return nil
}

type fixture struct {
	uc       *implUseCase
	store    vault.Store
	tasks    *mockTasks
	gen      *mockGenerator
	notifier *mockNotifier
}

var fixedNow = time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)

func newFixture(t *testing.T, notes map[string]string) *fixture {
	t.Helper()

	store := vaultFS.New(afero.NewMemMapFs(), &mockLogger{})
	for p, content := range notes {
		if err := store.Write(context.Background(), p, content); err != nil {
			t.Fatalf("seed %s: %v", p, err)
		}
	}

	f := &fixture{
		store:    store,
		tasks:    &mockTasks{buckets: task.Empty()},
		gen:      &mockGenerator{reply: "GENERATED"},
		notifier: &mockNotifier{},
	}
	f.uc = New(&mockLogger{}, store, f.tasks, f.gen, f.notifier, briefing.Options{
		DailyNotesFolder: "Daily Notes",
		OutputFolder:     "AI Generated",
		MonthlyFolder:    "AI Generated/Monthly",
		DaysToAnalyze:    30,
	}).(*implUseCase)
	f.uc.now = func() time.Time { return fixedNow }
	return f
}

func mustRead(t *testing.T, s vault.Store, p string) string {
	t.Helper()
	content, err := s.Read(context.Background(), p)
	if err != nil {
		t.Fatalf("read %s: %v", p, err)
	}
	return content
}

func containsAll(s string, parts ...string) bool {
	for _, p := range parts {
		if !strings.Contains(s, p) {
			return false
		}
	}
	return true
}

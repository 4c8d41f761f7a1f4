package usecase

import (
	"context"
	"time"

	"notes-copilot/internal/model"
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

// Mock task repository for testing
type mockRepo struct {
	projects    []model.Project
	projectsErr error
	tasks       map[string][]model.Task
	taskErrs    map[string]error
	calls       int
}

func (m *mockRepo) ListProjects(ctx context.Context) ([]model.Project, error) {
	m.calls++
	return m.projects, m.projectsErr
}

func (m *mockRepo) ListProjectTasks(ctx context.Context, projectID string) ([]model.Task, error) {
	m.calls++
	if err := m.taskErrs[projectID]; err != nil {
		return nil, err
	}
	return m.tasks[projectID], nil
}

func at(t time.Time) *time.Time {
	return &t
}

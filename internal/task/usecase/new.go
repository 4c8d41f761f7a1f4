package usecase

import (
	"time"

	"notes-copilot/internal/task/repository"
	pkgLog "notes-copilot/pkg/log"
	pkgTickTick "notes-copilot/pkg/ticktick"
)

type implUseCase struct {
	l       pkgLog.Logger
	repo    repository.TaskRepository
	creds   *pkgTickTick.Credentials
	enabled bool
	now     func() time.Time
	// loc is the zone due dates are shown in.
	loc *time.Location
}

// New creates a new task UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.TaskRepository,
	creds *pkgTickTick.Credentials,
	enabled bool,
) *implUseCase {
	return &implUseCase{
		l:       l,
		repo:    repo,
		creds:   creds,
		enabled: enabled,
		now:     time.Now,
		loc:     time.Local,
	}
}

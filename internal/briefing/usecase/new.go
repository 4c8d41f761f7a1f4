package usecase

import (
	"time"

	"notes-copilot/internal/briefing"
	"notes-copilot/internal/task"
	"notes-copilot/internal/vault"
	pkgLog "notes-copilot/pkg/log"
	"notes-copilot/pkg/notify"
)

type implUseCase struct {
	l        pkgLog.Logger
	store    vault.Store
	tasks    task.UseCase
	gen      briefing.Generator
	notifier notify.Notifier
	opts     briefing.Options
	now      func() time.Time
}

// New creates a new briefing UseCase instance.
func New(
	l pkgLog.Logger,
	store vault.Store,
	tasks task.UseCase,
	gen briefing.Generator,
	notifier notify.Notifier,
	opts briefing.Options,
) briefing.UseCase {
	return &implUseCase{
		l:        l,
		store:    store,
		tasks:    tasks,
		gen:      gen,
		notifier: notifier,
		opts:     opts,
		now:      time.Now,
	}
}
